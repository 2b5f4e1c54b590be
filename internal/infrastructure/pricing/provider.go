package pricing

import (
	"context"
	"log"
	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/interfaces"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultCacheTTL    = 5 * time.Minute
	DefaultLoadTimeout = 5 * time.Second
)

type cacheEntry struct {
	cfg       entities.PricingConfig
	expiresAt time.Time
}

// Provider resolves the effective pricing table of a tenant: the stored
// override layered over the system defaults. Results are cached per tenant
// for ttl and concurrent misses for the same tenant share one storage read.
type Provider struct {
	repo     interfaces.IPricingConfigRepository
	defaults entities.PricingConfig
	ttl      time.Duration
	now      func() time.Time
	// loadTimeout bounds a shared load, which outlives the caller that started it.
	loadTimeout time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
	// epoch is bumped by Invalidate; loads started under an older epoch are
	// returned to their callers but not cached.
	epoch map[string]uint64
	group singleflight.Group
}

var _ interfaces.IPricingConfigProvider = (*Provider)(nil)

func NewProvider(repo interfaces.IPricingConfigRepository, defaults entities.PricingConfig, ttl time.Duration) *Provider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	defaults.Source = entities.PricingSourceSystem
	defaults.TenantID = ""
	defaults.Defaults = nil
	return &Provider{
		repo:        repo,
		defaults:    defaults,
		ttl:         ttl,
		now:         time.Now,
		loadTimeout: DefaultLoadTimeout,
		entries:     map[string]cacheEntry{},
		epoch:       map[string]uint64{},
	}
}

func (p *Provider) Get(ctx context.Context, tenantID string) (entities.PricingConfig, error) {
	p.mu.RLock()
	entry, ok := p.entries[tenantID]
	epoch := p.epoch[tenantID]
	p.mu.RUnlock()
	if ok && p.now().Before(entry.expiresAt) {
		return clone(entry.cfg), nil
	}

	ch := p.group.DoChan(tenantID, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.loadTimeout)
		defer cancel()
		cfg, err := p.load(loadCtx, tenantID)
		if err != nil {
			return entities.PricingConfig{}, err
		}
		p.mu.Lock()
		if p.epoch[tenantID] == epoch {
			p.entries[tenantID] = cacheEntry{cfg: cfg, expiresAt: p.now().Add(p.ttl)}
		}
		p.mu.Unlock()
		return cfg, nil
	})

	select {
	case <-ctx.Done():
		return entities.PricingConfig{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			log.Printf("[pricing][provider] load failed tenant_id=%s err=%v", tenantID, res.Err)
			return entities.PricingConfig{}, res.Err
		}
		return clone(res.Val.(entities.PricingConfig)), nil
	}
}

// Invalidate drops the cached table of a tenant.
func (p *Provider) Invalidate(tenantID string) {
	p.mu.Lock()
	delete(p.entries, tenantID)
	p.epoch[tenantID]++
	p.mu.Unlock()
	p.group.Forget(tenantID)
}

func (p *Provider) load(ctx context.Context, tenantID string) (entities.PricingConfig, error) {
	defaults := p.defaults
	if p.repo == nil || tenantID == "" {
		return defaults, nil
	}

	override, found, err := p.repo.GetByTenant(ctx, tenantID)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if !found {
		defaults.TenantID = tenantID
		return defaults, nil
	}
	override.TenantID = tenantID
	override.Source = entities.PricingSourceTenant
	override.Defaults = &defaults
	return override, nil
}
