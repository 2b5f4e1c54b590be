package response

import (
	"orcamento_arq/internal/domain/entities"
	"time"
)

type DurationResponse struct {
	BaseDays     int `json:"base_days"`
	DaysPer100M2 int `json:"days_per_100m2"`
}

// PricingResponse mirrors the override request units: reais, ratios and
// percentages.
type PricingResponse struct {
	Source                    string                        `json:"source"`
	UnitCostsPerM2            map[string]map[string]float64 `json:"unit_costs_per_m2"`
	ComplexityMultipliers     map[string]float64            `json:"complexity_multipliers"`
	DisciplineSurcharges      map[string]float64            `json:"discipline_surcharges"`
	PhaseSplitsPercent        map[string]map[string]float64 `json:"phase_splits_percent"`
	Durations                 map[string]DurationResponse   `json:"durations"`
	ComplexityDurationFactors map[string]float64            `json:"complexity_duration_factors"`
	MinValuePerM2             float64                       `json:"min_value_per_m2"`
	UpdatedAt                 *time.Time                    `json:"updated_at,omitempty"`
}

func FromPricingConfig(cfg entities.PricingConfig) PricingResponse {
	out := PricingResponse{
		Source:                    string(cfg.Source),
		UnitCostsPerM2:            make(map[string]map[string]float64, len(cfg.UnitCosts)),
		ComplexityMultipliers:     make(map[string]float64, len(cfg.ComplexityMultipliers)),
		DisciplineSurcharges:      make(map[string]float64, len(cfg.DisciplineSurcharges)),
		PhaseSplitsPercent:        make(map[string]map[string]float64, len(cfg.PhaseSplits)),
		Durations:                 make(map[string]DurationResponse, len(cfg.Durations)),
		ComplexityDurationFactors: make(map[string]float64, len(cfg.ComplexityDurationFactors)),
		MinValuePerM2:             cfg.MinValuePerM2.Reais(),
	}
	for t, byStd := range cfg.UnitCosts {
		costs := make(map[string]float64, len(byStd))
		for s, v := range byStd {
			costs[string(s)] = v.Reais()
		}
		out.UnitCostsPerM2[string(t)] = costs
	}
	for c, bp := range cfg.ComplexityMultipliers {
		out.ComplexityMultipliers[string(c)] = bp.Percent() / 100
	}
	for d, v := range cfg.DisciplineSurcharges {
		out.DisciplineSurcharges[string(d)] = v.Reais()
	}
	for t, split := range cfg.PhaseSplits {
		phases := make(map[string]float64, len(split))
		for code, bp := range split {
			phases[string(code)] = bp.Percent()
		}
		out.PhaseSplitsPercent[string(t)] = phases
	}
	for t, d := range cfg.Durations {
		out.Durations[string(t)] = DurationResponse{BaseDays: d.BaseDays, DaysPer100M2: d.DaysPer100M2}
	}
	for c, bp := range cfg.ComplexityDurationFactors {
		out.ComplexityDurationFactors[string(c)] = bp.Percent() / 100
	}
	if !cfg.UpdatedAt.IsZero() {
		updated := cfg.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out
}
