package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/budgeting"
	"orcamento_arq/internal/usecase/interfaces"
	"strings"
	"time"
)

// IPricingUseCase reads and overrides the pricing table of a tenant.

type IPricingUseCase interface {
	GetEffective(ctx context.Context, tenantID string) (entities.PricingConfig, error)
	SaveOverride(ctx context.Context, tenantID string, cfg entities.PricingConfig) (entities.PricingConfig, error)
}

type PricingUseCase struct {
	repo           interfaces.IPricingConfigRepository
	provider       interfaces.IPricingConfigProvider
	storageTimeout time.Duration
	now            func() time.Time
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IPricingConfigRepository, provider interfaces.IPricingConfigProvider, storageTimeout time.Duration) *PricingUseCase {
	if storageTimeout <= 0 {
		storageTimeout = defaultStorageTimeout
	}
	return &PricingUseCase{repo: repo, provider: provider, storageTimeout: storageTimeout, now: time.Now}
}

// GetEffective returns the tenant table with system defaults filled in.
func (u *PricingUseCase) GetEffective(ctx context.Context, tenantID string) (entities.PricingConfig, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.PricingConfig{}, ErrInvalidTenantID
	}

	ctx, cancel := context.WithTimeout(ctx, u.storageTimeout)
	defer cancel()
	cfg, err := u.provider.Get(ctx, tenantID)
	if err != nil {
		if errors.Is(err, budgeting.ErrConfiguration) {
			return entities.PricingConfig{}, err
		}
		return entities.PricingConfig{}, &PersistenceError{Op: "fetch pricing config", Err: err}
	}
	return cfg.Resolved(), nil
}

// SaveOverride stores the tenant override and drops the cached table so the
// next generation prices with it.
func (u *PricingUseCase) SaveOverride(ctx context.Context, tenantID string, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.PricingConfig{}, ErrInvalidTenantID
	}
	if err := budgeting.CheckPricingConfig(cfg); err != nil {
		log.Printf("[pricing][usecase] override rejected tenant_id=%s err=%v", tenantID, err)
		return entities.PricingConfig{}, fmt.Errorf("%w: %v", ErrInvalidPricingConfig, err)
	}

	cfg.TenantID = tenantID
	cfg.Source = entities.PricingSourceTenant
	cfg.UpdatedAt = u.now().UTC()
	cfg.Defaults = nil

	saveCtx, cancel := context.WithTimeout(ctx, u.storageTimeout)
	defer cancel()
	saved, err := u.repo.Save(saveCtx, cfg)
	if err != nil {
		log.Printf("[pricing][usecase] save failed tenant_id=%s err=%v", tenantID, err)
		return entities.PricingConfig{}, &PersistenceError{Op: "save pricing config", Err: err}
	}
	u.provider.Invalidate(tenantID)
	log.Printf("[pricing][usecase] override saved tenant_id=%s", tenantID)
	return saved, nil
}
