package budgeting

import (
	"errors"
	"math"
	"testing"

	"orcamento_arq/internal/domain/entities"
)

func TestCalculate_ResidentialHighStandard(t *testing.T) {
	fs := Analyze(residentialBriefing())

	cb, err := Calculate(fs, systemPricing())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 180/m² * 200 m² * 1.0 + (3500 + 2500 + 2500 + 4000) surcharges.
	if cb.Total != 4850000 {
		t.Fatalf("expected total 48500.00, got %s", cb.Total)
	}
	if cb.ValuePerM2 != 24250 {
		t.Fatalf("expected 242.50/m², got %s", cb.ValuePerM2)
	}
	if cb.TotalDurationDays != 110 {
		t.Fatalf("expected 110 days, got %d", cb.TotalDurationDays)
	}

	wantDurations := []int{6, 6, 22, 22, 11, 43}
	for i, item := range cb.Schedule {
		if item.Phase != entities.PhaseCatalog[i].Code {
			t.Fatalf("phase %d: expected %s got %s", i, entities.PhaseCatalog[i].Code, item.Phase)
		}
		if item.DurationDays != wantDurations[i] {
			t.Fatalf("phase %s: expected %d days got %d", item.Phase, wantDurations[i], item.DurationDays)
		}
	}
	if cb.Schedule[5].StartOffset != 67 {
		t.Fatalf("expected executive design to start at day 67, got %d", cb.Schedule[5].StartOffset)
	}

	if cb.DisciplineComposition[0].Key != string(entities.DisciplineArquitetura) || cb.DisciplineComposition[0].Amount != 3600000 {
		t.Fatalf("unexpected architecture line: %+v", cb.DisciplineComposition[0])
	}
	if len(cb.Proposal.Installments) != len(entities.PhaseCatalog) || cb.Proposal.ValidityDays != proposalValidityDays {
		t.Fatalf("unexpected proposal: %+v", cb.Proposal)
	}
	if cb.PricingSource != entities.PricingSourceSystem || cb.MinValuePerM2 != 5000 {
		t.Fatalf("unexpected pricing metadata: %s %s", cb.PricingSource, cb.MinValuePerM2)
	}
}

func TestCalculate_Invariants(t *testing.T) {
	areas := []float64{37.5, 123.45, 200, 999.99, 20000}
	cfg := systemPricing()

	for _, typology := range entities.TypologyPrecedence {
		for _, standard := range entities.Standards {
			for _, complexity := range entities.Complexities {
				for _, area := range areas {
					fs := entities.FeatureSet{
						Typology:        typology,
						Standard:        standard,
						Complexity:      complexity,
						ConstructedArea: area,
						Disciplines:     typologyDefaultDisciplines[typology],
					}
					cb, err := Calculate(fs, cfg)
					if err != nil {
						t.Fatalf("%s/%s/%s/%v: unexpected error: %v", typology, standard, complexity, area, err)
					}
					assertComputedInvariants(t, cb)
				}
			}
		}
	}
}

func assertComputedInvariants(t *testing.T, cb entities.ComputedBudget) {
	t.Helper()

	if diff := math.Abs(cb.ValuePerM2.Reais()*cb.ConstructedArea - cb.Total.Reais()); diff > 0.01 {
		t.Fatalf("value per m² * area differs from total by %v (%s * %v vs %s)", diff, cb.ValuePerM2, cb.ConstructedArea, cb.Total)
	}

	days := 0
	for _, item := range cb.Schedule {
		if item.DurationDays < 0 {
			t.Fatalf("negative duration: %+v", item)
		}
		days += item.DurationDays
	}
	if days != cb.TotalDurationDays || len(cb.Schedule) != len(entities.PhaseCatalog) {
		t.Fatalf("schedule sums to %d over %d phases, total %d", days, len(cb.Schedule), cb.TotalDurationDays)
	}

	for name, items := range map[string][]entities.CompositionItem{
		"phase":      cb.PhaseComposition,
		"discipline": cb.DisciplineComposition,
	} {
		var pct entities.BasisPoints
		var amount entities.Money
		for _, it := range items {
			pct += it.Percentage
			amount += it.Amount
		}
		if pct != entities.FullBasisPoints {
			t.Fatalf("%s composition percentages sum to %d", name, pct)
		}
		if amount != cb.Total {
			t.Fatalf("%s composition amounts sum to %s, total %s", name, amount, cb.Total)
		}
	}
}

func TestCalculate_TenantOverrideFallsBack(t *testing.T) {
	system := systemPricing()
	tenant := entities.PricingConfig{
		TenantID: "tenant-1",
		Source:   entities.PricingSourceTenant,
		UnitCosts: map[entities.Typology]map[entities.Standard]entities.Money{
			entities.TypologyResidencial: {entities.StandardAlto: 20000},
		},
		Defaults: &system,
	}

	cb, err := Calculate(Analyze(residentialBriefing()), tenant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 200/m² * 200 m² + 12500 surcharges from the system table.
	if cb.Total != 5250000 {
		t.Fatalf("expected 52500.00, got %s", cb.Total)
	}
	if cb.PricingSource != entities.PricingSourceTenant {
		t.Fatalf("expected tenant source, got %s", cb.PricingSource)
	}
	if cb.MinValuePerM2 != system.MinValuePerM2 {
		t.Fatalf("expected min value fallback, got %s", cb.MinValuePerM2)
	}
}

func TestCalculate_Errors(t *testing.T) {
	fs := Analyze(residentialBriefing())

	t.Run("non-positive area", func(t *testing.T) {
		bad := fs
		bad.ConstructedArea = 0
		if _, err := Calculate(bad, systemPricing()); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("area above ceiling", func(t *testing.T) {
		bad := fs
		bad.ConstructedArea = 1e15
		cb, err := Calculate(bad, systemPricing())
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v (total %s)", err, cb.Total)
		}
	})

	t.Run("total overflows int64 cents", func(t *testing.T) {
		cfg := systemPricing()
		cfg.UnitCosts[entities.TypologyResidencial][entities.StandardAlto] = entities.Money(math.MaxInt64 / 100)
		big := fs
		big.ConstructedArea = MaxConstructedArea
		if _, err := Calculate(big, cfg); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("missing unit cost without fallback", func(t *testing.T) {
		cfg := systemPricing()
		delete(cfg.UnitCosts, entities.TypologyResidencial)
		if _, err := Calculate(fs, cfg); !errors.Is(err, ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
	})

	t.Run("malformed phase split", func(t *testing.T) {
		cfg := systemPricing()
		cfg.PhaseSplits[entities.TypologyResidencial][entities.PhaseProjetoExecutivo] = 3000
		if _, err := Calculate(fs, cfg); !errors.Is(err, ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
	})

	t.Run("missing duration rule", func(t *testing.T) {
		cfg := systemPricing()
		cfg.Durations = nil
		if _, err := Calculate(fs, cfg); !errors.Is(err, ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
	})
}

func TestBuildSchedule_RemainderGoesToFinalPhase(t *testing.T) {
	split := systemPricing().PhaseSplits[entities.TypologyInstitucional]
	for _, total := range []int{1, 7, 13, 101, 997} {
		schedule := buildSchedule(total, split)
		sum := 0
		for _, item := range schedule {
			if item.DurationDays < 0 {
				t.Fatalf("total %d: negative duration %+v", total, item)
			}
			sum += item.DurationDays
		}
		if sum != total {
			t.Fatalf("total %d: schedule sums to %d", total, sum)
		}
	}
}

func TestAllocate_SumsExactly(t *testing.T) {
	amounts := percentagesOf([]entities.Money{1, 1, 1})
	if amounts[0]+amounts[1]+amounts[2] != entities.FullBasisPoints {
		t.Fatalf("unexpected split %v", amounts)
	}
	if amounts[0] != 3334 {
		t.Fatalf("expected leftover on first item, got %v", amounts)
	}
}
