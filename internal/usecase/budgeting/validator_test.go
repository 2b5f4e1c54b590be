package budgeting

import (
	"errors"
	"testing"

	"orcamento_arq/internal/domain/entities"
)

func computeResidential(t *testing.T, cfg entities.PricingConfig) (entities.ComputedBudget, entities.FeatureSet) {
	t.Helper()
	fs := Analyze(residentialBriefing())
	cb, err := Calculate(fs, cfg)
	if err != nil {
		t.Fatalf("unexpected calculate error: %v", err)
	}
	return cb, fs
}

func countOutcome(vs []entities.Validation, check string, outcome entities.ValidationOutcome) int {
	n := 0
	for _, v := range vs {
		if v.Check == check && v.Outcome == outcome {
			n++
		}
	}
	return n
}

func hasRisk(risks []entities.RiskFinding, tag string) bool {
	for _, r := range risks {
		if r.Tag == tag {
			return true
		}
	}
	return false
}

func TestValidate_PlausibleBudgetPasses(t *testing.T) {
	cb, fs := computeResidential(t, systemPricing())

	vb, err := Validate(cb, fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vb.Total != cb.Total || vb.ValuePerM2 != cb.ValuePerM2 {
		t.Fatalf("plausible budget was modified: %s %s", vb.Total, vb.ValuePerM2)
	}
	for _, v := range vb.Validations {
		if v.Outcome != entities.ValidationPass {
			t.Fatalf("unexpected non-pass validation: %+v", v)
		}
	}
	if vb.Confidence != fs.Confidence {
		t.Fatalf("expected confidence %v, got %v", fs.Confidence, vb.Confidence)
	}
	if vb.Benchmarking.Region != "SP" || vb.Benchmarking.ValuePerM2.Band != entities.BandWithin {
		t.Fatalf("unexpected benchmarking: %+v", vb.Benchmarking)
	}
	if p := vb.Benchmarking.ValuePerM2.Percentile; p <= 25 || p >= 50 {
		t.Fatalf("expected percentile between 25 and 50, got %v", p)
	}
	if vb.RiskAnalysis == nil {
		t.Fatalf("expected an empty, non-nil risk list")
	}
}

func TestValidate_ClampsValuePerM2(t *testing.T) {
	cases := []struct {
		name      string
		unitCost  entities.Money
		wantBound entities.Money
	}{
		// residencial/alto median 230.00: range [126.50, 414.00]
		{name: "above range", unitCost: 200000, wantBound: 41400},
		{name: "below range", unitCost: 1000, wantBound: 12650},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := systemPricing()
			cfg.UnitCosts[entities.TypologyResidencial][entities.StandardAlto] = tc.unitCost
			cb, fs := computeResidential(t, cfg)

			vb, err := Validate(cb, fs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if vb.ValuePerM2 != tc.wantBound {
				t.Fatalf("expected clamp to %s, got %s", tc.wantBound, vb.ValuePerM2)
			}
			if got := countOutcome(vb.Validations, CheckValuePerM2Range, entities.ValidationAdjusted); got != 1 {
				t.Fatalf("expected exactly one adjusted entry, got %d (%+v)", got, vb.Validations)
			}
			for _, v := range vb.Validations {
				if v.Outcome == entities.ValidationAdjusted && (v.Original == nil || v.Adjusted == nil || *v.Adjusted != tc.wantBound.Reais()) {
					t.Fatalf("adjusted entry must carry original and clamped values: %+v", v)
				}
			}
			assertComputedInvariants(t, vb.ComputedBudget)
			if vb.Confidence != fs.Confidence*adjustedPenalty {
				t.Fatalf("expected one adjusted penalty, got %v", vb.Confidence)
			}
			if !hasRisk(vb.RiskAnalysis, RiskValuePerM2Clamped) {
				t.Fatalf("expected clamp risk, got %+v", vb.RiskAnalysis)
			}
			if vb.Proposal.Installments[0].Amount != vb.PhaseComposition[0].Amount {
				t.Fatalf("proposal installments not refreshed after clamp")
			}
		})
	}
}

func TestValidate_ClampBelowOneCentIsFlagged(t *testing.T) {
	fs := Analyze(residentialBriefing())
	fs.ConstructedArea = 1e-6
	cb, err := Calculate(fs, systemPricing())
	if err != nil {
		t.Fatalf("unexpected calculate error: %v", err)
	}

	vb, err := Validate(cb, fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vb.Total != 0 {
		t.Fatalf("expected clamped total to round to zero, got %s", vb.Total)
	}
	if got := countOutcome(vb.Validations, CheckMinimumTotal, entities.ValidationFailed); got != 1 {
		t.Fatalf("expected one failed minimum_total entry, got %d (%+v)", got, vb.Validations)
	}
	if !hasRisk(vb.RiskAnalysis, RiskTotalBelowOneCent) {
		t.Fatalf("expected high risk for negligible total, got %+v", vb.RiskAnalysis)
	}

	normal, _ := computeResidential(t, systemPricing())
	vbNormal, err := Validate(normal, Analyze(residentialBriefing()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if countOutcome(vbNormal.Validations, CheckMinimumTotal, entities.ValidationFailed) != 0 {
		t.Fatalf("regular budget must not be flagged")
	}
}

func TestValidate_MalformedBudgetIsFatal(t *testing.T) {
	cb, fs := computeResidential(t, systemPricing())

	t.Run("percentages", func(t *testing.T) {
		bad := cb
		bad.PhaseComposition = append([]entities.CompositionItem(nil), cb.PhaseComposition...)
		bad.PhaseComposition[0].Percentage += 100
		if _, err := Validate(bad, fs); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("schedule sum", func(t *testing.T) {
		bad := cb
		bad.TotalDurationDays++
		if _, err := Validate(bad, fs); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown phase", func(t *testing.T) {
		bad := cb
		bad.Schedule = append([]entities.ScheduleItem(nil), cb.Schedule...)
		bad.Schedule[2].Phase = "XX"
		if _, err := Validate(bad, fs); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("area", func(t *testing.T) {
		bad := cb
		bad.ConstructedArea = 0
		if _, err := Validate(bad, fs); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestValidate_ScheduleOutOfRangeIsFlagged(t *testing.T) {
	cb, fs := computeResidential(t, systemPricing())
	cb.Schedule = append([]entities.ScheduleItem(nil), cb.Schedule...)
	extra := MaxScheduleDays + 1 - cb.TotalDurationDays
	cb.Schedule[len(cb.Schedule)-1].DurationDays += extra
	cb.TotalDurationDays += extra

	vb, err := Validate(cb, fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if countOutcome(vb.Validations, CheckScheduleSanity, entities.ValidationFailed) != 1 {
		t.Fatalf("expected failed schedule check, got %+v", vb.Validations)
	}
	if !hasRisk(vb.RiskAnalysis, RiskScheduleOutOfRange) {
		t.Fatalf("expected schedule risk, got %+v", vb.RiskAnalysis)
	}
	if vb.Confidence != fs.Confidence*failedPenalty {
		t.Fatalf("expected failed penalty, got %v", vb.Confidence)
	}
}

func TestValidate_RiskAnalysis(t *testing.T) {
	t.Run("below tenant minimum margin", func(t *testing.T) {
		cfg := systemPricing()
		cfg.MinValuePerM2 = 30000
		cb, fs := computeResidential(t, cfg)

		vb, err := Validate(cb, fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hasRisk(vb.RiskAnalysis, RiskBelowMinimumMargin) {
			t.Fatalf("expected margin risk, got %+v", vb.RiskAnalysis)
		}
		if countOutcome(vb.Validations, CheckMinimumMargin, entities.ValidationFailed) != 1 {
			t.Fatalf("expected failed margin check, got %+v", vb.Validations)
		}
	})

	t.Run("area outlier and missing disciplines", func(t *testing.T) {
		b := residentialBriefing()
		b.Answers.Areas.ConstructedArea = f64Ptr(2500)
		b.Answers.Scope.RequestedDisciplines = nil
		fs := Analyze(b)
		cb, err := Calculate(fs, systemPricing())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		vb, err := Validate(cb, fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hasRisk(vb.RiskAnalysis, RiskAreaOutlier) {
			t.Fatalf("expected area outlier risk, got %+v", vb.RiskAnalysis)
		}
		if !hasRisk(vb.RiskAnalysis, RiskInsufficientDiscipline) {
			t.Fatalf("expected discipline risk, got %+v", vb.RiskAnalysis)
		}
	})

	t.Run("empty briefing is high risk", func(t *testing.T) {
		fs := Analyze(entities.Briefing{ID: "b", TenantID: "t"})
		cb, err := Calculate(fs, systemPricing())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		vb, err := Validate(cb, fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hasRisk(vb.RiskAnalysis, RiskLowConfidence) || !hasRisk(vb.RiskAnalysis, RiskAreaEstimated) {
			t.Fatalf("expected low-confidence findings, got %+v", vb.RiskAnalysis)
		}
		if vb.Benchmarking.Region != "BR" {
			t.Fatalf("expected national benchmark, got %s", vb.Benchmarking.Region)
		}
	})

	t.Run("desired deadline shorter than schedule", func(t *testing.T) {
		b := residentialBriefing()
		b.Answers.Timeline.DesiredDeadlineDays = intPtr(60)
		fs := Analyze(b)
		cb, err := Calculate(fs, systemPricing())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		vb, err := Validate(cb, fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hasRisk(vb.RiskAnalysis, RiskDeadlineTooShort) {
			t.Fatalf("expected deadline risk, got %+v", vb.RiskAnalysis)
		}
	})
}

func TestPosition_Bands(t *testing.T) {
	anchors := [5]entities.Money{100, 200, 300, 400, 500}
	cases := []struct {
		value      entities.Money
		band       entities.BenchmarkBand
		percentile float64
	}{
		{value: 50, band: entities.BandBelow, percentile: 0},
		{value: 150, band: entities.BandBelow, percentile: 12.5},
		{value: 300, band: entities.BandWithin, percentile: 50},
		{value: 450, band: entities.BandAbove, percentile: 87.5},
		{value: 900, band: entities.BandAbove, percentile: 100},
	}
	for _, tc := range cases {
		got := position(tc.value, anchors)
		if got.Band != tc.band || got.Percentile != tc.percentile {
			t.Fatalf("value %d: expected %s/%v, got %s/%v", tc.value, tc.band, tc.percentile, got.Band, got.Percentile)
		}
	}
}
