package interfaces

import (
	"context"
	"orcamento_arq/internal/domain/entities"
)

// IPricingConfigRepository stores per-tenant pricing overrides.
// GetByTenant returns found=false when the tenant has no override row.

type IPricingConfigRepository interface {
	GetByTenant(ctx context.Context, tenantID string) (cfg entities.PricingConfig, found bool, err error)
	Save(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error)
}

// IPricingConfigProvider resolves the effective pricing for a tenant: its
// override layered over the system defaults.
type IPricingConfigProvider interface {
	Get(ctx context.Context, tenantID string) (entities.PricingConfig, error)
	Invalidate(tenantID string)
}
