package pricing

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"orcamento_arq/internal/domain/entities"
	mock_interfaces "orcamento_arq/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProvider_Get(t *testing.T) {
	t.Run("falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		p := NewProvider(repo, SystemDefaults(), time.Minute)

		repo.EXPECT().GetByTenant(gomock.Any(), "tenant-1").Return(entities.PricingConfig{}, false, nil)

		cfg, err := p.Get(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if cfg.Source != entities.PricingSourceSystem || cfg.TenantID != "tenant-1" {
			t.Fatalf("unexpected cfg: %+v", cfg)
		}
	})

	t.Run("layers override over defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		p := NewProvider(repo, SystemDefaults(), time.Minute)

		repo.EXPECT().GetByTenant(gomock.Any(), "tenant-1").Return(entities.PricingConfig{
			UnitCosts: map[entities.Typology]map[entities.Standard]entities.Money{
				entities.TypologyResidencial: {entities.StandardAlto: 20000},
			},
		}, true, nil)

		cfg, err := p.Get(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if cfg.Source != entities.PricingSourceTenant {
			t.Fatalf("unexpected source %q", cfg.Source)
		}
		if v, _ := cfg.UnitCost(entities.TypologyResidencial, entities.StandardAlto); v != 20000 {
			t.Fatalf("expected override, got %d", v)
		}
		if v, _ := cfg.UnitCost(entities.TypologyResidencial, entities.StandardMedio); v != 11000 {
			t.Fatalf("expected default, got %d", v)
		}
	})

	t.Run("caches until ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		p := NewProvider(repo, SystemDefaults(), time.Minute)
		now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		p.now = func() time.Time { return now }

		repo.EXPECT().GetByTenant(gomock.Any(), "tenant-1").Return(entities.PricingConfig{}, false, nil).Times(2)

		for i := 0; i < 3; i++ {
			if _, err := p.Get(context.Background(), "tenant-1"); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		}
		now = now.Add(2 * time.Minute)
		if _, err := p.Get(context.Background(), "tenant-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("invalidate forces reload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		p := NewProvider(repo, SystemDefaults(), time.Minute)

		repo.EXPECT().GetByTenant(gomock.Any(), "tenant-1").Return(entities.PricingConfig{}, false, nil).Times(2)

		_, _ = p.Get(context.Background(), "tenant-1")
		p.Invalidate("tenant-1")
		_, _ = p.Get(context.Background(), "tenant-1")
	})

	t.Run("errors are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		p := NewProvider(repo, SystemDefaults(), time.Minute)

		gomock.InOrder(
			repo.EXPECT().GetByTenant(gomock.Any(), "tenant-1").Return(entities.PricingConfig{}, false, errors.New("db")),
			repo.EXPECT().GetByTenant(gomock.Any(), "tenant-1").Return(entities.PricingConfig{}, false, nil),
		)

		if _, err := p.Get(context.Background(), "tenant-1"); err == nil {
			t.Fatalf("expected error")
		}
		if _, err := p.Get(context.Background(), "tenant-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

type blockingRepo struct {
	calls   atomic.Int32
	release chan struct{}
}

func (r *blockingRepo) GetByTenant(ctx context.Context, tenantID string) (entities.PricingConfig, bool, error) {
	r.calls.Add(1)
	<-r.release
	return entities.PricingConfig{}, false, nil
}

func (r *blockingRepo) Save(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	return cfg, nil
}

func TestProvider_ConcurrentMissesShareOneLoad(t *testing.T) {
	repo := &blockingRepo{release: make(chan struct{})}
	p := NewProvider(repo, SystemDefaults(), time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Get(context.Background(), "tenant-1"); err != nil {
				t.Errorf("unexpected err: %v", err)
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(repo.release)
	wg.Wait()

	if n := repo.calls.Load(); n != 1 {
		t.Fatalf("expected one storage read, got %d", n)
	}
}

type ctxRecordingRepo struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	loadErr atomic.Value
}

func (r *ctxRecordingRepo) GetByTenant(ctx context.Context, tenantID string) (entities.PricingConfig, bool, error) {
	if r.calls.Add(1) == 1 {
		close(r.started)
	}
	<-r.release
	if err := ctx.Err(); err != nil {
		r.loadErr.Store(err)
		return entities.PricingConfig{}, false, err
	}
	return entities.PricingConfig{}, false, nil
}

func (r *ctxRecordingRepo) Save(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	return cfg, nil
}

func TestProvider_CancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	repo := &ctxRecordingRepo{started: make(chan struct{}), release: make(chan struct{})}
	p := NewProvider(repo, SystemDefaults(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := p.Get(ctx, "tenant-1")
		firstErr <- err
	}()
	<-repo.started

	secondErr := make(chan error, 1)
	go func() {
		cfg, err := p.Get(context.Background(), "tenant-1")
		if err == nil && cfg.TenantID != "tenant-1" {
			err = errors.New("unexpected tenant " + cfg.TenantID)
		}
		secondErr <- err
	}()

	cancel()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled for the cancelled caller, got %v", err)
	}

	close(repo.release)
	if err := <-secondErr; err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v := repo.loadErr.Load(); v != nil {
		t.Fatalf("shared load saw a cancelled context: %v", v)
	}
	if n := repo.calls.Load(); n != 1 {
		t.Fatalf("expected one storage read, got %d", n)
	}
}

func TestProvider_SharedLoadIsBounded(t *testing.T) {
	repo := &deadlineRepo{}
	p := NewProvider(repo, SystemDefaults(), time.Minute)
	p.loadTimeout = 20 * time.Millisecond

	_, err := p.Get(context.Background(), "tenant-1")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

type deadlineRepo struct{}

func (deadlineRepo) GetByTenant(ctx context.Context, tenantID string) (entities.PricingConfig, bool, error) {
	<-ctx.Done()
	return entities.PricingConfig{}, false, ctx.Err()
}

func (deadlineRepo) Save(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	return cfg, nil
}
