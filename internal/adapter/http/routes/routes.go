package routes

import (
	"context"
	"fmt"
	"log"
	_ "orcamento_arq/docs"
	"orcamento_arq/internal/adapter/http/handlers"
	repository2 "orcamento_arq/internal/adapter/persistence/repository"
	sqliterepo "orcamento_arq/internal/adapter/persistence/sqlite"
	"orcamento_arq/internal/infrastructure/database"
	"orcamento_arq/internal/infrastructure/pricing"
	"orcamento_arq/internal/usecase"
	"orcamento_arq/internal/usecase/interfaces"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = "8080"

// repositories groups one storage backend behind the use case ports.
type repositories struct {
	briefings interfaces.IBriefingRepository
	budgets   interfaces.IBudgetRepository
	pricing   interfaces.IPricingConfigRepository
	close     func() error
}

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	repos, err := openRepositories(context.Background(), getenvDefault("STORAGE_BACKEND", "dynamodb"))
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() {
		if err := repos.close(); err != nil {
			log.Printf("[routes] storage close failed err=%v", err)
		}
	}()

	if err := getRoutes(repos); err != nil {
		log.Fatalf("Failed to configure routes: %v", err)
	}

	err = router.Run(":" + getenvDefault("PORT", defaultPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(repos repositories) error {
	storageTimeout := durationFromEnv("STORAGE_TIMEOUT", 5*time.Second)
	cacheTTL := durationFromEnv("PRICING_CACHE_TTL", pricing.DefaultCacheTTL)

	defaults := pricing.SystemDefaults()
	if path := strings.TrimSpace(os.Getenv("PRICING_DEFAULTS_FILE")); path != "" {
		loaded, err := pricing.LoadDefaults(path)
		if err != nil {
			return fmt.Errorf("pricing defaults %s: %w", path, err)
		}
		defaults = loaded
		log.Printf("[routes] pricing defaults loaded path=%s", path)
	}
	pricingProvider := pricing.NewProvider(repos.pricing, defaults, cacheTTL)

	budgetUseCase := usecase.NewBudgetGenerationUseCase(repos.briefings, repos.budgets, pricingProvider, storageTimeout)
	briefingUseCase := usecase.NewBriefingUseCase(repos.briefings, storageTimeout)
	pricingUseCase := usecase.NewPricingUseCase(repos.pricing, pricingProvider, storageTimeout)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	briefingHandler := handlers.NewBriefingHandler(briefingUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBriefingRoutes(v1, briefingHandler, budgetHandler)
	addBudgetRoutes(v1, budgetHandler)
	addPricingRoutes(v1, pricingHandler)
	return nil
}

func openRepositories(ctx context.Context, backend string) (repositories, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "sqlite":
		path := getenvDefault("SQLITE_PATH", "orcamento.db")
		db, err := database.OpenSQLite(path)
		if err != nil {
			return repositories{}, err
		}
		log.Printf("[routes] storage backend=sqlite path=%s", path)
		return repositories{
			briefings: sqliterepo.NewBriefingRepository(db),
			budgets:   sqliterepo.NewBudgetRepository(db),
			pricing:   sqliterepo.NewPricingConfigRepository(db),
			close:     db.Close,
		}, nil
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return repositories{}, err
		}
		log.Printf("[routes] storage backend=dynamodb")
		return repositories{
			briefings: repository2.NewBriefingDynamoRepository(ddb),
			budgets:   repository2.NewBudgetDynamoRepository(ddb),
			pricing:   repository2.NewPricingConfigDynamoRepository(ddb),
			close:     func() error { return nil },
		}, nil
	default:
		return repositories{}, fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationFromEnv(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[routes] ignoring invalid %s=%q", key, raw)
		return def
	}
	return d
}
