package budgeting

import (
	"fmt"

	"orcamento_arq/internal/domain/entities"
)

// CheckPricingConfig rejects tables the calculator could not price with.
// Entries are optional (a tenant override only carries what it changes) but
// every entry present must be usable.
func CheckPricingConfig(cfg entities.PricingConfig) error {
	for t, byStd := range cfg.UnitCosts {
		if !t.Valid() {
			return fmt.Errorf("%w: unknown typology %q", ErrConfiguration, t)
		}
		for s, v := range byStd {
			if !s.Valid() {
				return fmt.Errorf("%w: unknown standard %q", ErrConfiguration, s)
			}
			if v <= 0 {
				return fmt.Errorf("%w: unit cost for %s/%s must be positive", ErrConfiguration, t, s)
			}
		}
	}
	for c, bp := range cfg.ComplexityMultipliers {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown complexity %q", ErrConfiguration, c)
		}
		if bp <= 0 {
			return fmt.Errorf("%w: multiplier for %s must be positive", ErrConfiguration, c)
		}
	}
	for d, v := range cfg.DisciplineSurcharges {
		if !d.Valid() {
			return fmt.Errorf("%w: unknown discipline %q", ErrConfiguration, d)
		}
		if v < 0 {
			return fmt.Errorf("%w: surcharge for %s must not be negative", ErrConfiguration, d)
		}
	}
	for t, split := range cfg.PhaseSplits {
		if !t.Valid() {
			return fmt.Errorf("%w: unknown typology %q", ErrConfiguration, t)
		}
		if err := checkPhaseSplit(split); err != nil {
			return fmt.Errorf("%w: phase split for %s: %v", ErrConfiguration, t, err)
		}
	}
	for t, rule := range cfg.Durations {
		if !t.Valid() {
			return fmt.Errorf("%w: unknown typology %q", ErrConfiguration, t)
		}
		if rule.BaseDays <= 0 || rule.DaysPer100M2 < 0 {
			return fmt.Errorf("%w: duration rule for %s", ErrConfiguration, t)
		}
	}
	for c, bp := range cfg.ComplexityDurationFactors {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown complexity %q", ErrConfiguration, c)
		}
		if bp <= 0 {
			return fmt.Errorf("%w: duration factor for %s must be positive", ErrConfiguration, c)
		}
	}
	if cfg.MinValuePerM2 < 0 {
		return fmt.Errorf("%w: minimum value per m2 must not be negative", ErrConfiguration)
	}
	return nil
}

// CheckSystemPricing additionally requires the system table to be complete.
func CheckSystemPricing(cfg entities.PricingConfig) error {
	if err := CheckPricingConfig(cfg); err != nil {
		return err
	}
	for _, t := range entities.TypologyPrecedence {
		for _, s := range entities.Standards {
			if _, ok := cfg.UnitCosts[t][s]; !ok {
				return fmt.Errorf("%w: missing unit cost for %s/%s", ErrConfiguration, t, s)
			}
		}
		if _, ok := cfg.PhaseSplits[t]; !ok {
			return fmt.Errorf("%w: missing phase split for %s", ErrConfiguration, t)
		}
		if _, ok := cfg.Durations[t]; !ok {
			return fmt.Errorf("%w: missing duration rule for %s", ErrConfiguration, t)
		}
	}
	for _, c := range entities.Complexities {
		if _, ok := cfg.ComplexityMultipliers[c]; !ok {
			return fmt.Errorf("%w: missing multiplier for %s", ErrConfiguration, c)
		}
	}
	return nil
}
