package entities

import "time"

type PricingSource string

const (
	PricingSourceSystem PricingSource = "system"
	PricingSourceTenant PricingSource = "tenant"
)

// DurationRule estimates total delivery days for a typology.
type DurationRule struct {
	BaseDays     int `json:"base_days"`
	DaysPer100M2 int `json:"days_per_100m2"`
}

// PricingConfig holds the cost tables used by the calculator.
//
// Lookup is two-tier: an entry present in the config itself wins, otherwise
// Defaults (the system table) is consulted. A tenant override only needs to
// carry the entries it changes.
type PricingConfig struct {
	TenantID                  string                                 `json:"tenant_id,omitempty"`
	Source                    PricingSource                          `json:"source"`
	UnitCosts                 map[Typology]map[Standard]Money        `json:"unit_costs,omitempty"`
	ComplexityMultipliers     map[Complexity]BasisPoints             `json:"complexity_multipliers,omitempty"`
	DisciplineSurcharges      map[Discipline]Money                   `json:"discipline_surcharges,omitempty"`
	PhaseSplits               map[Typology]map[PhaseCode]BasisPoints `json:"phase_splits,omitempty"`
	Durations                 map[Typology]DurationRule              `json:"durations,omitempty"`
	ComplexityDurationFactors map[Complexity]BasisPoints             `json:"complexity_duration_factors,omitempty"`
	MinValuePerM2             Money                                  `json:"min_value_per_m2,omitempty"`
	UpdatedAt                 time.Time                              `json:"updated_at,omitempty"`

	Defaults *PricingConfig `json:"-"`
}

func (c PricingConfig) UnitCost(t Typology, s Standard) (Money, bool) {
	if byStd, ok := c.UnitCosts[t]; ok {
		if v, ok := byStd[s]; ok && v > 0 {
			return v, true
		}
	}
	if c.Defaults != nil {
		return c.Defaults.UnitCost(t, s)
	}
	return 0, false
}

func (c PricingConfig) ComplexityMultiplier(cx Complexity) (BasisPoints, bool) {
	if v, ok := c.ComplexityMultipliers[cx]; ok && v > 0 {
		return v, true
	}
	if c.Defaults != nil {
		return c.Defaults.ComplexityMultiplier(cx)
	}
	return 0, false
}

// DisciplineSurcharge returns zero for disciplines nobody priced; a missing
// surcharge is not a configuration error.
func (c PricingConfig) DisciplineSurcharge(d Discipline) Money {
	if v, ok := c.DisciplineSurcharges[d]; ok {
		return v
	}
	if c.Defaults != nil {
		return c.Defaults.DisciplineSurcharge(d)
	}
	return 0
}

func (c PricingConfig) PhaseSplit(t Typology) (map[PhaseCode]BasisPoints, bool) {
	if v, ok := c.PhaseSplits[t]; ok && len(v) > 0 {
		return v, true
	}
	if c.Defaults != nil {
		return c.Defaults.PhaseSplit(t)
	}
	return nil, false
}

func (c PricingConfig) Duration(t Typology) (DurationRule, bool) {
	if v, ok := c.Durations[t]; ok && v.BaseDays > 0 {
		return v, true
	}
	if c.Defaults != nil {
		return c.Defaults.Duration(t)
	}
	return DurationRule{}, false
}

func (c PricingConfig) ComplexityDurationFactor(cx Complexity) BasisPoints {
	if v, ok := c.ComplexityDurationFactors[cx]; ok && v > 0 {
		return v
	}
	if c.Defaults != nil {
		return c.Defaults.ComplexityDurationFactor(cx)
	}
	return FullBasisPoints
}

func (c PricingConfig) MinimumValuePerM2() Money {
	if c.MinValuePerM2 > 0 {
		return c.MinValuePerM2
	}
	if c.Defaults != nil {
		return c.Defaults.MinimumValuePerM2()
	}
	return 0
}

// Resolved flattens the two lookup tiers into a single table covering every
// known key. Keys with no entry in either tier are left out.
func (c PricingConfig) Resolved() PricingConfig {
	out := PricingConfig{
		TenantID:                  c.TenantID,
		Source:                    c.Source,
		UnitCosts:                 map[Typology]map[Standard]Money{},
		ComplexityMultipliers:     map[Complexity]BasisPoints{},
		DisciplineSurcharges:      map[Discipline]Money{},
		PhaseSplits:               map[Typology]map[PhaseCode]BasisPoints{},
		Durations:                 map[Typology]DurationRule{},
		ComplexityDurationFactors: map[Complexity]BasisPoints{},
		MinValuePerM2:             c.MinimumValuePerM2(),
		UpdatedAt:                 c.UpdatedAt,
	}
	for _, t := range TypologyPrecedence {
		for _, s := range Standards {
			if v, ok := c.UnitCost(t, s); ok {
				if out.UnitCosts[t] == nil {
					out.UnitCosts[t] = map[Standard]Money{}
				}
				out.UnitCosts[t][s] = v
			}
		}
		if v, ok := c.PhaseSplit(t); ok {
			out.PhaseSplits[t] = v
		}
		if v, ok := c.Duration(t); ok {
			out.Durations[t] = v
		}
	}
	for _, cx := range Complexities {
		if v, ok := c.ComplexityMultiplier(cx); ok {
			out.ComplexityMultipliers[cx] = v
		}
		out.ComplexityDurationFactors[cx] = c.ComplexityDurationFactor(cx)
	}
	for _, d := range Disciplines {
		if v := c.DisciplineSurcharge(d); v > 0 {
			out.DisciplineSurcharges[d] = v
		}
	}
	return out
}
