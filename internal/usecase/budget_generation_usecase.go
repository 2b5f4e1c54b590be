package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/budgeting"
	"orcamento_arq/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultStorageTimeout = 5 * time.Second
	maxCodeAttempts       = 3
)

// IBudgetGenerationUseCase exposes automated budget generation.
//
//   - Generate runs Analyze -> Calculate -> Validate for a briefing and
//     persists the result, at most once per (tenant, briefing).
//   - GetByID reads a persisted budget back.

type IBudgetGenerationUseCase interface {
	Generate(ctx context.Context, briefingID, tenantID, userID string) (BudgetResult, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Budget, error)
}

// BudgetAudit is the metadata returned with every generated budget.
type BudgetAudit struct {
	MethodologyVersion string
	GeneratedAt        time.Time
	ProcessingDuration time.Duration
	Validations        []entities.Validation
}

// BudgetResult is the composed outcome of a successful generation.
type BudgetResult struct {
	Budget   entities.Budget
	Features entities.FeatureSet
	Audit    BudgetAudit
}

type BudgetGenerationUseCase struct {
	briefings      interfaces.IBriefingRepository
	budgets        interfaces.IBudgetRepository
	pricing        interfaces.IPricingConfigProvider
	storageTimeout time.Duration

	now   func() time.Time
	randN func(n int) int
	newID func() string
}

var _ IBudgetGenerationUseCase = (*BudgetGenerationUseCase)(nil)

func NewBudgetGenerationUseCase(
	briefings interfaces.IBriefingRepository,
	budgets interfaces.IBudgetRepository,
	pricing interfaces.IPricingConfigProvider,
	storageTimeout time.Duration,
) *BudgetGenerationUseCase {
	if storageTimeout <= 0 {
		storageTimeout = defaultStorageTimeout
	}
	return &BudgetGenerationUseCase{
		briefings:      briefings,
		budgets:        budgets,
		pricing:        pricing,
		storageTimeout: storageTimeout,
		now:            time.Now,
		randN:          rand.IntN,
		newID:          uuid.NewString,
	}
}

func (u *BudgetGenerationUseCase) Generate(ctx context.Context, briefingID, tenantID, userID string) (BudgetResult, error) {
	started := u.now()
	briefingID = strings.TrimSpace(briefingID)
	tenantID = strings.TrimSpace(tenantID)
	userID = strings.TrimSpace(userID)
	switch {
	case tenantID == "":
		return BudgetResult{}, ErrInvalidTenantID
	case briefingID == "":
		return BudgetResult{}, ErrInvalidBriefingID
	case userID == "":
		return BudgetResult{}, ErrInvalidUserID
	}
	log.Printf("[budget][usecase] generate start tenant_id=%s briefing_id=%s user_id=%s", tenantID, briefingID, userID)

	briefing, err := u.fetchBriefing(ctx, tenantID, briefingID)
	if err != nil {
		log.Printf("[budget][usecase] failed loading briefing briefing_id=%s err=%v", briefingID, err)
		return BudgetResult{}, &PersistenceError{Op: "fetch briefing", Err: err}
	}
	if briefing.ID == "" || briefing.Deleted() {
		log.Printf("[budget][usecase] briefing not found briefing_id=%s", briefingID)
		return BudgetResult{}, ErrBriefingNotFound
	}

	if !briefing.Status.EligibleForBudget() {
		// A briefing already advanced by a previous generation reports the
		// conflict, so a retried request sees the same error as a raced one.
		if briefing.Status == entities.BriefingStatusOrcamentoEmAndamento {
			if conflict := u.existingConflict(ctx, tenantID, briefingID); conflict != nil {
				log.Printf("[budget][usecase] budget already exists briefing_id=%s code=%s", briefingID, conflict.Code)
				return BudgetResult{}, conflict
			}
		}
		log.Printf("[budget][usecase] briefing not eligible briefing_id=%s status=%s", briefingID, briefing.Status)
		return BudgetResult{}, fmt.Errorf("%w: %s", ErrInvalidBriefingStatus, briefing.Status)
	}

	existing, err := u.fetchActiveBudget(ctx, tenantID, briefingID)
	if err != nil {
		log.Printf("[budget][usecase] failed checking existing budget briefing_id=%s err=%v", briefingID, err)
		return BudgetResult{}, &PersistenceError{Op: "fetch active budget", Err: err}
	}
	if existing.ID != "" {
		log.Printf("[budget][usecase] budget already exists briefing_id=%s code=%s", briefingID, existing.Code)
		return BudgetResult{}, &BudgetConflictError{BudgetID: existing.ID, Code: existing.Code}
	}

	cfg, err := u.fetchPricing(ctx, tenantID)
	if err != nil {
		log.Printf("[budget][usecase] failed loading pricing tenant_id=%s err=%v", tenantID, err)
		if errors.Is(err, budgeting.ErrConfiguration) {
			return BudgetResult{}, err
		}
		return BudgetResult{}, &PersistenceError{Op: "fetch pricing config", Err: err}
	}

	validated, features, err := runPipeline(briefing, cfg)
	if err != nil {
		log.Printf("[budget][usecase] pipeline failed briefing_id=%s err=%v", briefingID, err)
		return BudgetResult{}, err
	}

	now := u.now().UTC()
	validated.ProcessingDuration = u.now().Sub(started)
	budget := entities.Budget{
		ValidatedBudget:    validated,
		ID:                 u.newID(),
		Code:               budgeting.NewCode(now, u.randN),
		TenantID:           tenantID,
		BriefingID:         briefingID,
		ClientID:           briefing.ClientID,
		ResponsibleUserID:  userID,
		Status:             entities.BudgetStatusRascunho,
		MethodologyVersion: budgeting.MethodologyVersion,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	saved, err := u.persist(ctx, budget)
	for attempt := 1; errors.Is(err, interfaces.ErrDuplicateBudgetCode) && attempt < maxCodeAttempts; attempt++ {
		log.Printf("[budget][usecase] code collision briefing_id=%s code=%s attempt=%d", briefingID, budget.Code, attempt)
		budget.Code = budgeting.NewCode(u.now().UTC(), u.randN)
		saved, err = u.persist(ctx, budget)
	}
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrDuplicateBudget):
			log.Printf("[budget][usecase] storage rejected duplicate briefing_id=%s", briefingID)
			if conflict := u.existingConflict(ctx, tenantID, briefingID); conflict != nil {
				return BudgetResult{}, conflict
			}
			return BudgetResult{}, &BudgetConflictError{}
		case errors.Is(err, interfaces.ErrBriefingTransitionRejected):
			log.Printf("[budget][usecase] briefing transition rejected briefing_id=%s", briefingID)
			if conflict := u.existingConflict(ctx, tenantID, briefingID); conflict != nil {
				return BudgetResult{}, conflict
			}
			return BudgetResult{}, fmt.Errorf("%w: status changed during generation", ErrInvalidBriefingStatus)
		default:
			log.Printf("[budget][usecase] budget persist failed briefing_id=%s err=%v", briefingID, err)
			return BudgetResult{}, &PersistenceError{Op: "save budget", Err: err}
		}
	}

	log.Printf("[budget][usecase] generate success briefing_id=%s budget_id=%s code=%s total=%s confidence=%.3f",
		briefingID, saved.ID, saved.Code, saved.Total, saved.Confidence)
	return BudgetResult{
		Budget:   saved,
		Features: features,
		Audit: BudgetAudit{
			MethodologyVersion: saved.MethodologyVersion,
			GeneratedAt:        saved.CreatedAt,
			ProcessingDuration: saved.ProcessingDuration,
			Validations:        saved.Validations,
		},
	}, nil
}

func (u *BudgetGenerationUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Budget, error) {
	tenantID = strings.TrimSpace(tenantID)
	id = strings.TrimSpace(id)
	if tenantID == "" {
		return entities.Budget{}, ErrInvalidTenantID
	}
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	ctx, cancel := context.WithTimeout(ctx, u.storageTimeout)
	defer cancel()
	b, err := u.budgets.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Budget{}, &PersistenceError{Op: "fetch budget", Err: err}
	}
	if b.ID == "" || b.Deleted() {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// runPipeline sequences the three pure stages. A panic in any stage is
// reported as ErrInternal.
func runPipeline(b entities.Briefing, cfg entities.PricingConfig) (vb entities.ValidatedBudget, fs entities.FeatureSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[budget][usecase] pipeline panic briefing_id=%s recovered=%v", b.ID, r)
			vb, fs, err = entities.ValidatedBudget{}, entities.FeatureSet{}, fmt.Errorf("%w: budget pipeline", ErrInternal)
		}
	}()

	fs = budgeting.Analyze(b)
	cb, err := budgeting.Calculate(fs, cfg)
	if err != nil {
		return entities.ValidatedBudget{}, fs, err
	}
	vb, err = budgeting.Validate(cb, fs)
	if err != nil {
		return entities.ValidatedBudget{}, fs, err
	}
	return vb, fs, nil
}

func (u *BudgetGenerationUseCase) fetchBriefing(ctx context.Context, tenantID, briefingID string) (entities.Briefing, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storageTimeout)
	defer cancel()
	return u.briefings.GetByID(ctx, tenantID, briefingID)
}

func (u *BudgetGenerationUseCase) fetchActiveBudget(ctx context.Context, tenantID, briefingID string) (entities.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storageTimeout)
	defer cancel()
	return u.budgets.GetActiveByBriefingID(ctx, tenantID, briefingID)
}

func (u *BudgetGenerationUseCase) fetchPricing(ctx context.Context, tenantID string) (entities.PricingConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storageTimeout)
	defer cancel()
	return u.pricing.Get(ctx, tenantID)
}

func (u *BudgetGenerationUseCase) persist(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storageTimeout)
	defer cancel()
	return u.budgets.CreateWithBriefingTransition(ctx, b, entities.BriefingStatusOrcamentoEmAndamento)
}

// existingConflict resolves the live budget of a briefing into a conflict
// error. It returns nil when no budget exists or it cannot be read.
func (u *BudgetGenerationUseCase) existingConflict(ctx context.Context, tenantID, briefingID string) *BudgetConflictError {
	existing, err := u.fetchActiveBudget(ctx, tenantID, briefingID)
	if err != nil {
		log.Printf("[budget][usecase] failed resolving existing budget briefing_id=%s err=%v", briefingID, err)
		return nil
	}
	if existing.ID == "" {
		return nil
	}
	return &BudgetConflictError{BudgetID: existing.ID, Code: existing.Code}
}
