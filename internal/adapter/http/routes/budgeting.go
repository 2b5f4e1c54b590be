package routes

import (
	"orcamento_arq/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBriefings = "/briefings"
	PathBudgets   = "/budgets"
	PathPricing   = "/pricing"
)

func addBriefingRoutes(rg *gin.RouterGroup, briefingHandler *handlers.BriefingHandler, budgetHandler *handlers.BudgetHandler) {
	briefings := rg.Group(PathBriefings)
	{
		briefings.POST("", briefingHandler.CreateBriefing)
		briefings.GET("/available", briefingHandler.ListAvailableBriefings)
		briefings.GET("/:id", briefingHandler.GetBriefing)
		briefings.PATCH("/:id/status", briefingHandler.UpdateBriefingStatus)
		briefings.POST("/:id/budget", budgetHandler.GenerateBudget)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("/:id", budgetHandler.GetBudget)
	}
}

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("", pricingHandler.GetPricing)
		pricing.PUT("", pricingHandler.PutPricing)
	}
}
