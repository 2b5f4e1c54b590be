package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/interfaces"
)

// PricingConfigRepository stores one pricing override per tenant.
type PricingConfigRepository struct {
	db *sql.DB
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigRepository)(nil)

func NewPricingConfigRepository(db *sql.DB) *PricingConfigRepository {
	return &PricingConfigRepository{db: db}
}

func (r *PricingConfigRepository) GetByTenant(ctx context.Context, tenantID string) (entities.PricingConfig, bool, error) {
	var raw, updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT config, updated_at FROM pricing_configs WHERE tenant_id = ?`, tenantID).Scan(&raw, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PricingConfig{}, false, nil
	}
	if err != nil {
		return entities.PricingConfig{}, false, fmt.Errorf("select pricing config: %w", err)
	}

	var cfg entities.PricingConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return entities.PricingConfig{}, false, fmt.Errorf("decode pricing config: %w", err)
	}
	cfg.TenantID = tenantID
	cfg.UpdatedAt = parseTime(updatedAt)
	return cfg, true, nil
}

func (r *PricingConfigRepository) Save(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return entities.PricingConfig{}, fmt.Errorf("encode pricing config: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO pricing_configs (tenant_id, config, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(tenant_id) DO UPDATE SET config = excluded.config, updated_at = excluded.updated_at`,
		cfg.TenantID, string(raw), formatTime(cfg.UpdatedAt))
	if err != nil {
		return entities.PricingConfig{}, fmt.Errorf("upsert pricing config: %w", err)
	}
	return cfg, nil
}
