package request

import (
	"errors"
	"orcamento_arq/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidPricingValue = errors.New("pricing values must not be negative")

type DurationRequest struct {
	BaseDays     int `json:"base_days"`
	DaysPer100M2 int `json:"days_per_100m2"`
}

// PricingOverrideRequest carries a tenant override. Money is in reais,
// multipliers and factors are ratios (1.2 = +20%) and phase splits are
// percentages. Omitted entries fall back to the system table.
type PricingOverrideRequest struct {
	UnitCostsPerM2            map[string]map[string]float64 `json:"unit_costs_per_m2"`
	ComplexityMultipliers     map[string]float64            `json:"complexity_multipliers"`
	DisciplineSurcharges      map[string]float64            `json:"discipline_surcharges"`
	PhaseSplitsPercent        map[string]map[string]float64 `json:"phase_splits_percent"`
	Durations                 map[string]DurationRequest    `json:"durations"`
	ComplexityDurationFactors map[string]float64            `json:"complexity_duration_factors"`
	MinValuePerM2             *float64                      `json:"min_value_per_m2"`
}

func (r PricingOverrideRequest) ToEntity() (entities.PricingConfig, error) {
	cfg := entities.PricingConfig{Source: entities.PricingSourceTenant}

	if len(r.UnitCostsPerM2) > 0 {
		cfg.UnitCosts = make(map[entities.Typology]map[entities.Standard]entities.Money, len(r.UnitCostsPerM2))
		for t, byStd := range r.UnitCostsPerM2 {
			costs := make(map[entities.Standard]entities.Money, len(byStd))
			for s, v := range byStd {
				if v < 0 {
					return entities.PricingConfig{}, ErrInvalidPricingValue
				}
				costs[entities.Standard(s)] = entities.MoneyFromReais(v)
			}
			cfg.UnitCosts[entities.Typology(t)] = costs
		}
	}
	if len(r.ComplexityMultipliers) > 0 {
		cfg.ComplexityMultipliers = make(map[entities.Complexity]entities.BasisPoints, len(r.ComplexityMultipliers))
		for c, v := range r.ComplexityMultipliers {
			if v < 0 {
				return entities.PricingConfig{}, ErrInvalidPricingValue
			}
			cfg.ComplexityMultipliers[entities.Complexity(c)] = toBasisPoints(v)
		}
	}
	if len(r.DisciplineSurcharges) > 0 {
		cfg.DisciplineSurcharges = make(map[entities.Discipline]entities.Money, len(r.DisciplineSurcharges))
		for d, v := range r.DisciplineSurcharges {
			if v < 0 {
				return entities.PricingConfig{}, ErrInvalidPricingValue
			}
			cfg.DisciplineSurcharges[entities.Discipline(d)] = entities.MoneyFromReais(v)
		}
	}
	if len(r.PhaseSplitsPercent) > 0 {
		cfg.PhaseSplits = make(map[entities.Typology]map[entities.PhaseCode]entities.BasisPoints, len(r.PhaseSplitsPercent))
		for t, split := range r.PhaseSplitsPercent {
			phases := make(map[entities.PhaseCode]entities.BasisPoints, len(split))
			for code, pct := range split {
				if pct < 0 {
					return entities.PricingConfig{}, ErrInvalidPricingValue
				}
				phases[entities.PhaseCode(code)] = toBasisPoints(pct / 100)
			}
			cfg.PhaseSplits[entities.Typology(t)] = phases
		}
	}
	if len(r.Durations) > 0 {
		cfg.Durations = make(map[entities.Typology]entities.DurationRule, len(r.Durations))
		for t, d := range r.Durations {
			cfg.Durations[entities.Typology(t)] = entities.DurationRule{BaseDays: d.BaseDays, DaysPer100M2: d.DaysPer100M2}
		}
	}
	if len(r.ComplexityDurationFactors) > 0 {
		cfg.ComplexityDurationFactors = make(map[entities.Complexity]entities.BasisPoints, len(r.ComplexityDurationFactors))
		for c, v := range r.ComplexityDurationFactors {
			if v < 0 {
				return entities.PricingConfig{}, ErrInvalidPricingValue
			}
			cfg.ComplexityDurationFactors[entities.Complexity(c)] = toBasisPoints(v)
		}
	}
	if r.MinValuePerM2 != nil {
		if *r.MinValuePerM2 < 0 {
			return entities.PricingConfig{}, ErrInvalidPricingValue
		}
		cfg.MinValuePerM2 = entities.MoneyFromReais(*r.MinValuePerM2)
	}
	return cfg, nil
}

func toBasisPoints(ratio float64) entities.BasisPoints {
	return entities.BasisPoints(decimal.NewFromFloat(ratio).Shift(4).Round(0).IntPart())
}
