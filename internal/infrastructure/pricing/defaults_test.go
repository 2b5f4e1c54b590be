package pricing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/budgeting"
)

func TestSystemDefaults(t *testing.T) {
	cfg := SystemDefaults()

	if cfg.Source != entities.PricingSourceSystem {
		t.Fatalf("unexpected source %q", cfg.Source)
	}
	if got := cfg.UnitCosts[entities.TypologyResidencial][entities.StandardAlto]; got != 18000 {
		t.Fatalf("unexpected residencial/alto unit cost %d", got)
	}
	if got := cfg.ComplexityMultipliers[entities.ComplexityMuitoAlta]; got != 14500 {
		t.Fatalf("unexpected muito_alta multiplier %d", got)
	}
	if got := cfg.PhaseSplits[entities.TypologyResidencial][entities.PhaseProjetoExecutivo]; got != 4000 {
		t.Fatalf("unexpected PE split %d", got)
	}
	if got := cfg.DisciplineSurcharges[entities.DisciplinePaisagismo]; got != 400000 {
		t.Fatalf("unexpected paisagismo surcharge %d", got)
	}
	if got := cfg.MinValuePerM2; got != 5000 {
		t.Fatalf("unexpected minimum %d", got)
	}
	if got := cfg.ComplexityDurationFactors[entities.ComplexityAlta]; got != 12000 {
		t.Fatalf("unexpected alta duration factor %d", got)
	}
}

func TestSystemDefaults_ReturnsCopy(t *testing.T) {
	a := SystemDefaults()
	a.UnitCosts[entities.TypologyResidencial][entities.StandardAlto] = 1
	b := SystemDefaults()
	if b.UnitCosts[entities.TypologyResidencial][entities.StandardAlto] != 18000 {
		t.Fatalf("defaults were mutated through a copy")
	}
}

func TestParseTable_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown field": "unexpected: 1\n",
		"incomplete":    "unit_costs_per_m2:\n  residencial: { simples: 70 }\n",
		"bad split": `
unit_costs_per_m2:
  residencial: { simples: 70, medio: 110, alto: 180, luxo: 270 }
phase_splits_percent:
  residencial: { LV: 50, PN: 5, EP: 20, AP: 20, PL: 10, PE: 40 }
`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseTable([]byte(raw)); !errors.Is(err, budgeting.ErrConfiguration) {
				t.Fatalf("expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		cfg, err := LoadDefaults("")
		if err != nil || len(cfg.UnitCosts) != len(entities.TypologyPrecedence) {
			t.Fatalf("unexpected result: %v", err)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pricing.yaml")
		if err := os.WriteFile(path, embeddedDefaults, 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		cfg, err := LoadDefaults(path)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if cfg.UnitCosts[entities.TypologyIndustrial][entities.StandardLuxo] != 16000 {
			t.Fatalf("unexpected table: %+v", cfg.UnitCosts)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadDefaults(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})
}
