package pricing

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/budgeting"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var embeddedDefaults []byte

type durationDoc struct {
	BaseDays     int `yaml:"base_days"`
	DaysPer100M2 int `yaml:"days_per_100m2"`
}

// tableDoc is the on-disk shape of a pricing table.
type tableDoc struct {
	UnitCostsPerM2            map[string]map[string]float64 `yaml:"unit_costs_per_m2"`
	ComplexityMultipliers     map[string]float64            `yaml:"complexity_multipliers"`
	DisciplineSurcharges      map[string]float64            `yaml:"discipline_surcharges"`
	PhaseSplitsPercent        map[string]map[string]float64 `yaml:"phase_splits_percent"`
	Durations                 map[string]durationDoc        `yaml:"durations"`
	ComplexityDurationFactors map[string]float64            `yaml:"complexity_duration_factors"`
	MinValuePerM2             float64                       `yaml:"min_value_per_m2"`
}

var systemDefaults = sync.OnceValue(func() entities.PricingConfig {
	cfg, err := ParseTable(embeddedDefaults)
	if err != nil {
		panic(fmt.Sprintf("pricing: embedded defaults: %v", err))
	}
	return cfg
})

// SystemDefaults returns the built-in pricing table.
func SystemDefaults() entities.PricingConfig {
	return clone(systemDefaults())
}

// LoadDefaults reads the system table from path, or returns the built-in one
// when path is empty.
func LoadDefaults(path string) (entities.PricingConfig, error) {
	if path == "" {
		return SystemDefaults(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return entities.PricingConfig{}, fmt.Errorf("read pricing defaults: %w", err)
	}
	return ParseTable(raw)
}

// ParseTable decodes a YAML pricing table and checks it is complete enough
// to serve as the system fallback.
func ParseTable(raw []byte) (entities.PricingConfig, error) {
	var doc tableDoc
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return entities.PricingConfig{}, fmt.Errorf("%w: decode: %v", budgeting.ErrConfiguration, err)
	}

	cfg := entities.PricingConfig{
		Source:                    entities.PricingSourceSystem,
		UnitCosts:                 map[entities.Typology]map[entities.Standard]entities.Money{},
		ComplexityMultipliers:     map[entities.Complexity]entities.BasisPoints{},
		DisciplineSurcharges:      map[entities.Discipline]entities.Money{},
		PhaseSplits:               map[entities.Typology]map[entities.PhaseCode]entities.BasisPoints{},
		Durations:                 map[entities.Typology]entities.DurationRule{},
		ComplexityDurationFactors: map[entities.Complexity]entities.BasisPoints{},
		MinValuePerM2:             entities.MoneyFromReais(doc.MinValuePerM2),
	}
	for t, byStd := range doc.UnitCostsPerM2 {
		costs := make(map[entities.Standard]entities.Money, len(byStd))
		for s, v := range byStd {
			costs[entities.Standard(s)] = entities.MoneyFromReais(v)
		}
		cfg.UnitCosts[entities.Typology(t)] = costs
	}
	for c, v := range doc.ComplexityMultipliers {
		cfg.ComplexityMultipliers[entities.Complexity(c)] = ratioToBasisPoints(v)
	}
	for d, v := range doc.DisciplineSurcharges {
		cfg.DisciplineSurcharges[entities.Discipline(d)] = entities.MoneyFromReais(v)
	}
	for t, split := range doc.PhaseSplitsPercent {
		phases := make(map[entities.PhaseCode]entities.BasisPoints, len(split))
		for code, pct := range split {
			phases[entities.PhaseCode(code)] = ratioToBasisPoints(pct / 100)
		}
		cfg.PhaseSplits[entities.Typology(t)] = phases
	}
	for t, d := range doc.Durations {
		cfg.Durations[entities.Typology(t)] = entities.DurationRule{BaseDays: d.BaseDays, DaysPer100M2: d.DaysPer100M2}
	}
	for c, v := range doc.ComplexityDurationFactors {
		cfg.ComplexityDurationFactors[entities.Complexity(c)] = ratioToBasisPoints(v)
	}

	if err := budgeting.CheckSystemPricing(cfg); err != nil {
		return entities.PricingConfig{}, err
	}
	return cfg, nil
}

func ratioToBasisPoints(v float64) entities.BasisPoints {
	return entities.BasisPoints(decimal.NewFromFloat(v).Shift(4).Round(0).IntPart())
}

// clone deep-copies the maps so callers can't mutate the cached table.
func clone(c entities.PricingConfig) entities.PricingConfig {
	out := c
	out.UnitCosts = make(map[entities.Typology]map[entities.Standard]entities.Money, len(c.UnitCosts))
	for t, byStd := range c.UnitCosts {
		inner := make(map[entities.Standard]entities.Money, len(byStd))
		for s, v := range byStd {
			inner[s] = v
		}
		out.UnitCosts[t] = inner
	}
	out.ComplexityMultipliers = copyMap(c.ComplexityMultipliers)
	out.DisciplineSurcharges = copyMap(c.DisciplineSurcharges)
	out.PhaseSplits = make(map[entities.Typology]map[entities.PhaseCode]entities.BasisPoints, len(c.PhaseSplits))
	for t, split := range c.PhaseSplits {
		out.PhaseSplits[t] = copyMap(split)
	}
	out.Durations = copyMap(c.Durations)
	out.ComplexityDurationFactors = copyMap(c.ComplexityDurationFactors)
	if c.Defaults != nil {
		d := clone(*c.Defaults)
		out.Defaults = &d
	}
	return out
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
