package budgeting

import (
	"fmt"
	"math"
	"strings"

	"orcamento_arq/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const proposalValidityDays = 30

var (
	bpDivisor     = decimal.NewFromInt(int64(entities.FullBasisPoints))
	hundredSquare = decimal.NewFromInt(100)
)

// Calculate prices a FeatureSet. Only a pricing table with no usable entry
// (tenant or system) for the features fails with ErrConfiguration; a
// non-positive area fails with ErrInvalidInput.
func Calculate(fs entities.FeatureSet, cfg entities.PricingConfig) (entities.ComputedBudget, error) {
	if fs.ConstructedArea <= 0 || math.IsNaN(fs.ConstructedArea) || math.IsInf(fs.ConstructedArea, 0) {
		return entities.ComputedBudget{}, fmt.Errorf("%w: constructed area must be positive, got %v", ErrInvalidInput, fs.ConstructedArea)
	}
	if fs.ConstructedArea > MaxConstructedArea {
		return entities.ComputedBudget{}, fmt.Errorf("%w: constructed area %v above %v m²", ErrInvalidInput, fs.ConstructedArea, MaxConstructedArea)
	}

	unit, ok := cfg.UnitCost(fs.Typology, fs.Standard)
	if !ok {
		return entities.ComputedBudget{}, fmt.Errorf("%w: no unit cost for %s/%s", ErrConfiguration, fs.Typology, fs.Standard)
	}
	multiplier, ok := cfg.ComplexityMultiplier(fs.Complexity)
	if !ok {
		return entities.ComputedBudget{}, fmt.Errorf("%w: no multiplier for complexity %s", ErrConfiguration, fs.Complexity)
	}
	split, ok := cfg.PhaseSplit(fs.Typology)
	if !ok {
		return entities.ComputedBudget{}, fmt.Errorf("%w: no phase split for %s", ErrConfiguration, fs.Typology)
	}
	if err := checkPhaseSplit(split); err != nil {
		return entities.ComputedBudget{}, fmt.Errorf("%w: phase split for %s: %v", ErrConfiguration, fs.Typology, err)
	}
	rule, ok := cfg.Duration(fs.Typology)
	if !ok {
		return entities.ComputedBudget{}, fmt.Errorf("%w: no duration rule for %s", ErrConfiguration, fs.Typology)
	}

	area := decimal.NewFromFloat(fs.ConstructedArea)

	// Architecture carries the area-based fee; every other discipline adds its surcharge.
	base := unit.Decimal().Mul(area).Mul(decimal.NewFromInt(int64(multiplier))).Div(bpDivisor)
	disciplineWeights := make([]decimal.Decimal, len(fs.Disciplines))
	raw := base
	baseAssigned := false
	for i, d := range fs.Disciplines {
		surcharge := cfg.DisciplineSurcharge(d).Decimal()
		raw = raw.Add(surcharge)
		disciplineWeights[i] = surcharge
		if d == entities.DisciplineArquitetura {
			disciplineWeights[i] = surcharge.Add(base)
			baseAssigned = true
		}
	}

	valuePerM2, ok := entities.MoneyFromDecimalChecked(raw.Div(area))
	if !ok {
		return entities.ComputedBudget{}, fmt.Errorf("%w: value per m² out of range", ErrInvalidInput)
	}
	total, ok := entities.MoneyFromDecimalChecked(valuePerM2.Decimal().Mul(area))
	if !ok {
		return entities.ComputedBudget{}, fmt.Errorf("%w: total out of range", ErrInvalidInput)
	}

	disciplines := fs.Disciplines
	if !baseAssigned {
		disciplines = append([]entities.Discipline{entities.DisciplineArquitetura}, disciplines...)
		disciplineWeights = append([]decimal.Decimal{base}, disciplineWeights...)
	}

	totalDays := estimateDuration(rule, cfg.ComplexityDurationFactor(fs.Complexity), area)

	cb := entities.ComputedBudget{
		Typology:          fs.Typology,
		Standard:          fs.Standard,
		Complexity:        fs.Complexity,
		ConstructedArea:   fs.ConstructedArea,
		Total:             total,
		ValuePerM2:        valuePerM2,
		TotalDurationDays: totalDays,
		Schedule:          buildSchedule(totalDays, split),
		MinValuePerM2:     cfg.MinimumValuePerM2(),
		PricingSource:     cfg.Source,
	}
	cb.PhaseComposition = phaseComposition(total, split)
	cb.DisciplineComposition = disciplineComposition(total, disciplines, disciplineWeights)
	cb.Proposal = draftProposal(cb)
	return cb, nil
}

func checkPhaseSplit(split map[entities.PhaseCode]entities.BasisPoints) error {
	if len(split) != len(entities.PhaseCatalog) {
		return fmt.Errorf("expected %d phases, got %d", len(entities.PhaseCatalog), len(split))
	}
	sum := entities.BasisPoints(0)
	for _, p := range entities.PhaseCatalog {
		bp, ok := split[p.Code]
		if !ok {
			return fmt.Errorf("missing phase %s", p.Code)
		}
		if bp < 0 {
			return fmt.Errorf("negative share for phase %s", p.Code)
		}
		sum += bp
	}
	if sum != entities.FullBasisPoints {
		return fmt.Errorf("shares sum to %d basis points", sum)
	}
	return nil
}

func estimateDuration(rule entities.DurationRule, factor entities.BasisPoints, area decimal.Decimal) int {
	days := decimal.NewFromInt(int64(rule.BaseDays)).
		Add(decimal.NewFromInt(int64(rule.DaysPer100M2)).Mul(area).Div(hundredSquare)).
		Mul(decimal.NewFromInt(int64(factor))).
		Div(bpDivisor)
	total := roundHalfUp(days)
	if total < 1 {
		total = 1
	}
	if total > math.MaxInt32 {
		total = math.MaxInt32
	}
	return int(total)
}

// buildSchedule distributes totalDays over the phase catalog. Each phase is
// rounded half-up and the final phase absorbs the remainder, so the durations
// always sum to totalDays.
func buildSchedule(totalDays int, split map[entities.PhaseCode]entities.BasisPoints) []entities.ScheduleItem {
	n := len(entities.PhaseCatalog)
	durations := make([]int, n)
	total := decimal.NewFromInt(int64(totalDays))

	assigned := 0
	for i, p := range entities.PhaseCatalog[:n-1] {
		durations[i] = int(roundHalfUp(total.Mul(decimal.NewFromInt(int64(split[p.Code]))).Div(bpDivisor)))
		assigned += durations[i]
	}
	if assigned > totalDays {
		// Rounding up overshot a very short schedule; fall back to floors.
		assigned = 0
		for i, p := range entities.PhaseCatalog[:n-1] {
			durations[i] = int(total.Mul(decimal.NewFromInt(int64(split[p.Code]))).Div(bpDivisor).Floor().IntPart())
			assigned += durations[i]
		}
	}
	durations[n-1] = totalDays - assigned

	out := make([]entities.ScheduleItem, n)
	offset := 0
	for i, p := range entities.PhaseCatalog {
		out[i] = entities.ScheduleItem{
			Phase:        p.Code,
			Name:         p.Name,
			DurationDays: durations[i],
			StartOffset:  offset,
		}
		offset += durations[i]
	}
	return out
}

func phaseComposition(total entities.Money, split map[entities.PhaseCode]entities.BasisPoints) []entities.CompositionItem {
	weights := make([]decimal.Decimal, len(entities.PhaseCatalog))
	for i, p := range entities.PhaseCatalog {
		weights[i] = decimal.NewFromInt(int64(split[p.Code]))
	}
	amounts := allocateMoney(total, weights)

	out := make([]entities.CompositionItem, len(entities.PhaseCatalog))
	for i, p := range entities.PhaseCatalog {
		out[i] = entities.CompositionItem{
			Key:        string(p.Code),
			Label:      p.Name,
			Amount:     amounts[i],
			Percentage: split[p.Code],
		}
	}
	return out
}

func disciplineComposition(total entities.Money, disciplines []entities.Discipline, weights []decimal.Decimal) []entities.CompositionItem {
	amounts := allocateMoney(total, weights)
	percentages := percentagesOf(amounts)

	out := make([]entities.CompositionItem, len(disciplines))
	for i, d := range disciplines {
		out[i] = entities.CompositionItem{
			Key:        string(d),
			Label:      disciplineLabel(d),
			Amount:     amounts[i],
			Percentage: percentages[i],
		}
	}
	return out
}

// rescaleComposition re-allocates total over items keeping their relative weights.
func rescaleComposition(total entities.Money, items []entities.CompositionItem, keepPercentages bool) []entities.CompositionItem {
	weights := make([]decimal.Decimal, len(items))
	for i, it := range items {
		if keepPercentages {
			weights[i] = decimal.NewFromInt(int64(it.Percentage))
		} else {
			weights[i] = decimal.NewFromInt(int64(it.Amount))
		}
	}
	amounts := allocateMoney(total, weights)

	out := make([]entities.CompositionItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].Amount = amounts[i]
	}
	if !keepPercentages {
		percentages := percentagesOf(amounts)
		for i := range out {
			out[i].Percentage = percentages[i]
		}
	}
	return out
}

func draftProposal(cb entities.ComputedBudget) entities.Proposal {
	scope := make([]string, 0, len(cb.DisciplineComposition))
	for _, item := range cb.DisciplineComposition {
		scope = append(scope, item.Label)
	}

	installments := make([]entities.ProposalInstallment, 0, len(cb.PhaseComposition))
	for _, item := range cb.PhaseComposition {
		installments = append(installments, entities.ProposalInstallment{
			Phase:  entities.PhaseCode(item.Key),
			Label:  item.Label,
			Amount: item.Amount,
		})
	}

	return entities.Proposal{
		Title: fmt.Sprintf("Proposta de honorários: projeto %s padrão %s", strings.ToLower(typologyLabel(cb.Typology)), cb.Standard),
		Summary: fmt.Sprintf(
			"Desenvolvimento de projeto %s com %.2f m² de área construída, complexidade %s, em %d dias corridos. Valor total R$ %s (R$ %s/m²).",
			strings.ToLower(typologyLabel(cb.Typology)), cb.ConstructedArea, cb.Complexity, cb.TotalDurationDays, cb.Total, cb.ValuePerM2,
		),
		Scope:        scope,
		Installments: installments,
		ValidityDays: proposalValidityDays,
	}
}

func typologyLabel(t entities.Typology) string {
	if l, ok := typologyLabels[t]; ok {
		return l
	}
	return string(t)
}

func disciplineLabel(d entities.Discipline) string {
	if l, ok := disciplineLabels[d]; ok {
		return l
	}
	return string(d)
}
