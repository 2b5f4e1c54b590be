package budgeting

import (
	"fmt"
	"math"

	"orcamento_arq/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Validation check names recorded in the audit trail.
const (
	CheckValuePerM2Range = "value_per_m2_range"
	CheckScheduleSanity  = "schedule_sanity"
	CheckMinimumMargin   = "minimum_margin"
	CheckDesiredDeadline = "desired_deadline"
	CheckMinimumTotal    = "minimum_total"
)

// Risk tags emitted by the validator.
const (
	RiskAreaOutlier            = "area_atipica"
	RiskAreaEstimated          = "area_estimada"
	RiskInsufficientDiscipline = "disciplinas_insuficientes"
	RiskBelowMinimumMargin     = "margem_abaixo_minimo"
	RiskLowConfidence          = "baixa_confianca_extracao"
	RiskScheduleOutOfRange     = "cronograma_fora_do_limite"
	RiskDeadlineTooShort       = "prazo_desejado_insuficiente"
	RiskValuePerM2Clamped      = "valor_m2_ajustado"
	RiskTotalBelowOneCent      = "valor_total_irrisorio"
)

// Validate sanity-checks a computed budget against static plausibility tables
// and enriches it with confidence, benchmarking and risk analysis. Business
// anomalies never fail: they are clamped or flagged and always recorded in
// Validations. Only a structurally malformed budget returns ErrInvalidInput.
func Validate(cb entities.ComputedBudget, fs entities.FeatureSet) (entities.ValidatedBudget, error) {
	if err := checkStructure(cb); err != nil {
		return entities.ValidatedBudget{}, err
	}

	vb := entities.ValidatedBudget{ComputedBudget: cb}
	var risks []entities.RiskFinding

	// Plausibility of the unit value.
	if lo, hi, ok := plausibilityRange(cb.Typology, cb.Standard); ok {
		switch {
		case cb.ValuePerM2 < lo || cb.ValuePerM2 > hi:
			bound := lo
			if cb.ValuePerM2 > hi {
				bound = hi
			}
			original := cb.ValuePerM2
			clampValuePerM2(&vb.ComputedBudget, bound)
			vb.Validations = append(vb.Validations, entities.Validation{
				Check:    CheckValuePerM2Range,
				Outcome:  entities.ValidationAdjusted,
				Message:  fmt.Sprintf("value per m² %s outside [%s, %s]; clamped to %s", original, lo, hi, bound),
				Original: floatPtr(original.Reais()),
				Adjusted: floatPtr(bound.Reais()),
			})
			risks = append(risks, entities.RiskFinding{
				Tag:      RiskValuePerM2Clamped,
				Severity: entities.RiskMedium,
				Message:  fmt.Sprintf("Valor por m² ajustado de R$ %s para R$ %s", original, bound),
			})
			if vb.Total < 1 {
				vb.Validations = append(vb.Validations, entities.Validation{
					Check:    CheckMinimumTotal,
					Outcome:  entities.ValidationFailed,
					Message:  fmt.Sprintf("total %s below one cent after clamping value per m² to %s", vb.Total, bound),
					Original: floatPtr(cb.Total.Reais()),
					Adjusted: floatPtr(vb.Total.Reais()),
				})
				risks = append(risks, entities.RiskFinding{
					Tag:      RiskTotalBelowOneCent,
					Severity: entities.RiskHigh,
					Message:  fmt.Sprintf("Área de %g m² resulta em valor total inferior a R$ 0,01", cb.ConstructedArea),
				})
			}
		default:
			vb.Validations = append(vb.Validations, entities.Validation{
				Check:   CheckValuePerM2Range,
				Outcome: entities.ValidationPass,
				Message: fmt.Sprintf("value per m² %s within [%s, %s]", cb.ValuePerM2, lo, hi),
			})
		}
	} else {
		vb.Validations = append(vb.Validations, entities.Validation{
			Check:   CheckValuePerM2Range,
			Outcome: entities.ValidationPass,
			Message: "no plausibility range for typology/standard",
		})
	}

	// Schedule sanity.
	if cb.TotalDurationDays <= 0 || cb.TotalDurationDays > MaxScheduleDays {
		vb.Validations = append(vb.Validations, entities.Validation{
			Check:    CheckScheduleSanity,
			Outcome:  entities.ValidationFailed,
			Message:  fmt.Sprintf("total duration %d days outside (0, %d]", cb.TotalDurationDays, MaxScheduleDays),
			Original: floatPtr(float64(cb.TotalDurationDays)),
		})
		risks = append(risks, entities.RiskFinding{
			Tag:      RiskScheduleOutOfRange,
			Severity: entities.RiskHigh,
			Message:  fmt.Sprintf("Cronograma de %d dias fora do limite aceitável", cb.TotalDurationDays),
		})
	} else {
		vb.Validations = append(vb.Validations, entities.Validation{
			Check:   CheckScheduleSanity,
			Outcome: entities.ValidationPass,
			Message: fmt.Sprintf("total duration %d days", cb.TotalDurationDays),
		})
	}

	// Tenant margin floor, checked after clamping.
	if vb.MinValuePerM2 > 0 && vb.ValuePerM2 < vb.MinValuePerM2 {
		vb.Validations = append(vb.Validations, entities.Validation{
			Check:    CheckMinimumMargin,
			Outcome:  entities.ValidationFailed,
			Message:  fmt.Sprintf("value per m² %s below tenant minimum %s", vb.ValuePerM2, vb.MinValuePerM2),
			Original: floatPtr(vb.ValuePerM2.Reais()),
		})
		risks = append(risks, entities.RiskFinding{
			Tag:      RiskBelowMinimumMargin,
			Severity: entities.RiskHigh,
			Message:  fmt.Sprintf("Valor por m² R$ %s abaixo da margem mínima do escritório (R$ %s)", vb.ValuePerM2, vb.MinValuePerM2),
		})
	}

	if fs.DesiredDeadlineDays > 0 && vb.TotalDurationDays > fs.DesiredDeadlineDays {
		risks = append(risks, entities.RiskFinding{
			Tag:      RiskDeadlineTooShort,
			Severity: entities.RiskMedium,
			Message:  fmt.Sprintf("Prazo desejado de %d dias menor que o cronograma estimado de %d dias", fs.DesiredDeadlineDays, vb.TotalDurationDays),
		})
	}

	risks = append(risks, featureRisks(fs)...)

	vb.Confidence = propagateConfidence(fs.Confidence, vb.Validations)
	vb.Benchmarking = benchmark(vb.ComputedBudget, fs.Location)
	if risks == nil {
		risks = []entities.RiskFinding{}
	}
	vb.RiskAnalysis = risks
	return vb, nil
}

func checkStructure(cb entities.ComputedBudget) error {
	if cb.ConstructedArea <= 0 || math.IsNaN(cb.ConstructedArea) {
		return fmt.Errorf("%w: constructed area must be positive", ErrInvalidInput)
	}
	if cb.Total <= 0 || cb.ValuePerM2 <= 0 {
		return fmt.Errorf("%w: total and value per m² must be positive", ErrInvalidInput)
	}
	if err := checkComposition("phase", cb.Total, cb.PhaseComposition); err != nil {
		return err
	}
	if err := checkComposition("discipline", cb.Total, cb.DisciplineComposition); err != nil {
		return err
	}

	if len(cb.Schedule) != len(entities.PhaseCatalog) {
		return fmt.Errorf("%w: schedule has %d phases, catalog has %d", ErrInvalidInput, len(cb.Schedule), len(entities.PhaseCatalog))
	}
	sum := 0
	for i, item := range cb.Schedule {
		if item.Phase != entities.PhaseCatalog[i].Code {
			return fmt.Errorf("%w: schedule phase %q at position %d, expected %q", ErrInvalidInput, item.Phase, i, entities.PhaseCatalog[i].Code)
		}
		if item.DurationDays < 0 {
			return fmt.Errorf("%w: negative duration for phase %s", ErrInvalidInput, item.Phase)
		}
		sum += item.DurationDays
	}
	if sum != cb.TotalDurationDays {
		return fmt.Errorf("%w: schedule sums to %d days, total is %d", ErrInvalidInput, sum, cb.TotalDurationDays)
	}
	return nil
}

func checkComposition(kind string, total entities.Money, items []entities.CompositionItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: empty %s composition", ErrInvalidInput, kind)
	}
	var pct entities.BasisPoints
	var amount entities.Money
	for _, it := range items {
		pct += it.Percentage
		amount += it.Amount
	}
	if pct != entities.FullBasisPoints {
		return fmt.Errorf("%w: %s composition percentages sum to %.2f%%", ErrInvalidInput, kind, pct.Percent())
	}
	if amount != total {
		return fmt.Errorf("%w: %s composition amounts sum to %s, total is %s", ErrInvalidInput, kind, amount, total)
	}
	return nil
}

// clampValuePerM2 replaces the unit value and derives every dependent amount from it.
func clampValuePerM2(cb *entities.ComputedBudget, bound entities.Money) {
	area := decimal.NewFromFloat(cb.ConstructedArea)
	cb.ValuePerM2 = bound
	cb.Total = entities.MoneyFromDecimal(bound.Decimal().Mul(area))
	cb.PhaseComposition = rescaleComposition(cb.Total, cb.PhaseComposition, true)
	cb.DisciplineComposition = rescaleComposition(cb.Total, cb.DisciplineComposition, false)
	cb.Proposal = draftProposal(*cb)
}

func featureRisks(fs entities.FeatureSet) []entities.RiskFinding {
	var risks []entities.RiskFinding

	areaDefaulted := false
	for _, d := range fs.Defaulted {
		if d == "constructed_area" {
			areaDefaulted = true
		}
	}
	if areaDefaulted {
		risks = append(risks, entities.RiskFinding{
			Tag:      RiskAreaEstimated,
			Severity: entities.RiskHigh,
			Message:  fmt.Sprintf("Área construída não informada; estimada em %.0f m²", fs.ConstructedArea),
		})
	} else if r, ok := typologyAreaRange[fs.Typology]; ok && (fs.ConstructedArea < r.Min || fs.ConstructedArea > r.Max) {
		risks = append(risks, entities.RiskFinding{
			Tag:      RiskAreaOutlier,
			Severity: entities.RiskMedium,
			Message:  fmt.Sprintf("Área de %.2f m² fora da faixa usual (%.0f a %.0f m²) para %s", fs.ConstructedArea, r.Min, r.Max, fs.Typology),
		})
	}

	if minimum, ok := typologyMinRequested[fs.Typology]; ok && len(fs.RequestedDisciplines) < minimum {
		risks = append(risks, entities.RiskFinding{
			Tag:      RiskInsufficientDiscipline,
			Severity: entities.RiskMedium,
			Message:  fmt.Sprintf("%d disciplina(s) solicitada(s); esperado ao menos %d para %s", len(fs.RequestedDisciplines), minimum, fs.Typology),
		})
	}

	switch {
	case fs.Confidence < 0.2:
		risks = append(risks, entities.RiskFinding{
			Tag:      RiskLowConfidence,
			Severity: entities.RiskHigh,
			Message:  fmt.Sprintf("Briefing com poucas informações (confiança %.2f)", fs.Confidence),
		})
	case fs.Confidence < 0.5:
		risks = append(risks, entities.RiskFinding{
			Tag:      RiskLowConfidence,
			Severity: entities.RiskMedium,
			Message:  fmt.Sprintf("Briefing incompleto (confiança %.2f)", fs.Confidence),
		})
	}
	return risks
}

func propagateConfidence(base float64, validations []entities.Validation) float64 {
	c := base
	for _, v := range validations {
		switch v.Outcome {
		case entities.ValidationAdjusted:
			c *= adjustedPenalty
		case entities.ValidationFailed:
			c *= failedPenalty
		}
	}
	return roundConfidence(c)
}

func plausibilityRange(t entities.Typology, s entities.Standard) (entities.Money, entities.Money, bool) {
	median, ok := referenceMedianPerM2[t][s]
	if !ok {
		return 0, 0, false
	}
	return scale(median, referenceMinBP), scale(median, referenceMaxBP), true
}

func benchmark(cb entities.ComputedBudget, loc entities.Location) entities.Benchmarking {
	region := loc.State
	factor, ok := regionFactors[region]
	if !ok {
		region = "BR"
		factor = entities.FullBasisPoints
	}

	out := entities.Benchmarking{Region: region}
	median, ok := referenceMedianPerM2[cb.Typology][cb.Standard]
	if !ok {
		out.ValuePerM2 = entities.BenchmarkPosition{Value: cb.ValuePerM2, Band: entities.BandWithin, Percentile: 50}
		out.Total = entities.BenchmarkPosition{Value: cb.Total, Band: entities.BandWithin, Percentile: 50}
		return out
	}
	median = scale(median, factor)

	area := decimal.NewFromFloat(cb.ConstructedArea)
	perArea := func(m entities.Money) entities.Money {
		return entities.MoneyFromDecimal(m.Decimal().Mul(area))
	}

	anchors := [5]entities.Money{
		scale(median, referenceMinBP),
		scale(median, referenceP25BP),
		median,
		scale(median, referenceP75BP),
		scale(median, referenceMaxBP),
	}
	out.ValuePerM2 = position(cb.ValuePerM2, anchors)

	var totalAnchors [5]entities.Money
	for i, a := range anchors {
		totalAnchors[i] = perArea(a)
	}
	out.Total = position(cb.Total, totalAnchors)
	return out
}

// position places value within a distribution described by its
// min, p25, p50, p75 and max anchors, interpolating linearly between them.
func position(value entities.Money, anchors [5]entities.Money) entities.BenchmarkPosition {
	pos := entities.BenchmarkPosition{
		Value:        value,
		ReferenceP25: anchors[1],
		ReferenceP50: anchors[2],
		ReferenceP75: anchors[3],
	}

	percentiles := [5]float64{0, 25, 50, 75, 100}
	switch {
	case value <= anchors[0]:
		pos.Percentile = 0
	case value >= anchors[4]:
		pos.Percentile = 100
	default:
		for i := 1; i < len(anchors); i++ {
			if value <= anchors[i] {
				lo, hi := float64(anchors[i-1]), float64(anchors[i])
				frac := 0.0
				if hi > lo {
					frac = (float64(value) - lo) / (hi - lo)
				}
				pos.Percentile = math.Round((percentiles[i-1]+frac*25)*10) / 10
				break
			}
		}
	}

	switch {
	case value < anchors[1]:
		pos.Band = entities.BandBelow
	case value > anchors[3]:
		pos.Band = entities.BandAbove
	default:
		pos.Band = entities.BandWithin
	}
	return pos
}

func scale(m entities.Money, bp entities.BasisPoints) entities.Money {
	return entities.MoneyFromDecimal(m.Decimal().Mul(decimal.NewFromInt(int64(bp))).Div(bpDivisor))
}

func floatPtr(v float64) *float64 {
	return &v
}
