package response

import (
	"testing"
	"time"

	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase"
)

func TestFromBudgetResult(t *testing.T) {
	original, adjusted := 80.0, 95.5
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	b := entities.Budget{ID: "bud-1", Code: "ORC-V2-2603-ABC-007", Status: entities.BudgetStatusRascunho, CreatedAt: now}
	b.Total = entities.Money(1800000)
	b.ValuePerM2 = entities.Money(10000)
	b.PhaseComposition = []entities.CompositionItem{
		{Key: "EP", Label: "Estudo Preliminar", Amount: entities.Money(270000), Percentage: 1500},
	}
	b.Schedule = []entities.ScheduleItem{{Phase: "EP", Name: "Estudo Preliminar", DurationDays: 12}}
	b.Proposal.Installments = []entities.ProposalInstallment{{Phase: "EP", Label: "Estudo Preliminar", Amount: entities.Money(270000)}}
	b.Benchmarking.ValuePerM2 = entities.BenchmarkPosition{Value: entities.Money(10000), ReferenceP50: entities.Money(9000), Band: entities.BandWithin}
	b.Validations = []entities.Validation{{Check: "min_value_per_m2", Outcome: entities.ValidationAdjusted, Original: &original, Adjusted: &adjusted}}

	out := FromBudgetResult(usecase.BudgetResult{
		Budget: b,
		Features: entities.FeatureSet{
			Typology:    entities.TypologyResidencial,
			Disciplines: []entities.Discipline{entities.DisciplineArquitetura},
			Location:    entities.Location{City: "Curitiba", State: "PR"},
		},
		Audit: usecase.BudgetAudit{GeneratedAt: now, ProcessingDuration: 1500 * time.Millisecond, Validations: b.Validations},
	})

	if out.Budget.Total != 18000 || out.Budget.ValuePerM2 != 100 {
		t.Fatalf("unexpected money conversion: %+v", out.Budget)
	}
	if out.Budget.PhaseComposition[0].Amount != 2700 || out.Budget.PhaseComposition[0].Percentage != 15 {
		t.Fatalf("unexpected composition %+v", out.Budget.PhaseComposition[0])
	}
	if out.Budget.Proposal.Installments[0].Amount != 2700 {
		t.Fatalf("unexpected installment %+v", out.Budget.Proposal.Installments[0])
	}
	if out.Budget.Benchmarking.ValuePerM2.ReferenceP50 != 90 || out.Budget.Benchmarking.ValuePerM2.Band != "dentro" {
		t.Fatalf("unexpected benchmark %+v", out.Budget.Benchmarking.ValuePerM2)
	}
	if v := out.Budget.Validations[0]; v.Outcome != "adjusted" || *v.Adjusted != 95.5 {
		t.Fatalf("unexpected validation %+v", v)
	}
	if out.Budget.RiskAnalysis == nil || len(out.Budget.RiskAnalysis) != 0 {
		t.Fatalf("expected empty non-nil risk list")
	}
	if out.Features.City != "Curitiba" || out.Features.Disciplines[0] != "arquitetura" {
		t.Fatalf("unexpected features %+v", out.Features)
	}
	if out.Audit.ProcessingDurationMs != 1500 || out.Audit.ValidationCount != 1 {
		t.Fatalf("unexpected audit %+v", out.Audit)
	}
}

func TestFromBriefings(t *testing.T) {
	out := FromBriefings([]entities.Briefing{
		{ID: "br-1", Status: entities.BriefingStatusConcluido},
		{ID: "br-2", Status: entities.BriefingStatusAprovado},
	})
	if out.Total != 2 || out.Items[1].Status != "aprovado" {
		t.Fatalf("unexpected list %+v", out)
	}

	empty := FromBriefings(nil)
	if empty.Items == nil || empty.Total != 0 {
		t.Fatalf("expected empty non-nil items")
	}
}

func TestFromPricingConfig(t *testing.T) {
	out := FromPricingConfig(entities.PricingConfig{
		Source:        entities.PricingSourceSystem,
		PhaseSplits:   map[entities.Typology]map[entities.PhaseCode]entities.BasisPoints{entities.TypologyComercial: {"EP": 2500}},
		Durations:     map[entities.Typology]entities.DurationRule{entities.TypologyComercial: {BaseDays: 30, DaysPer100M2: 5}},
		MinValuePerM2: entities.Money(4500),
	})
	if out.PhaseSplitsPercent["comercial"]["EP"] != 25 {
		t.Fatalf("unexpected split %v", out.PhaseSplitsPercent)
	}
	if out.Durations["comercial"].BaseDays != 30 || out.MinValuePerM2 != 45 {
		t.Fatalf("unexpected config %+v", out)
	}
	if out.UpdatedAt != nil {
		t.Fatalf("expected no updated_at for system table")
	}
}
