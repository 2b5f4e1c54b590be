package budgeting

import "orcamento_arq/internal/domain/entities"

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

func systemPricing() entities.PricingConfig {
	split := func(lv, pn, ep, ap, pl, pe entities.BasisPoints) map[entities.PhaseCode]entities.BasisPoints {
		return map[entities.PhaseCode]entities.BasisPoints{
			entities.PhaseLevantamento:     lv,
			entities.PhasePrograma:         pn,
			entities.PhaseEstudoPreliminar: ep,
			entities.PhaseAnteprojeto:      ap,
			entities.PhaseProjetoLegal:     pl,
			entities.PhaseProjetoExecutivo: pe,
		}
	}
	return entities.PricingConfig{
		Source: entities.PricingSourceSystem,
		UnitCosts: map[entities.Typology]map[entities.Standard]entities.Money{
			entities.TypologyResidencial:   {entities.StandardSimples: 7000, entities.StandardMedio: 11000, entities.StandardAlto: 18000, entities.StandardLuxo: 27000},
			entities.TypologyComercial:     {entities.StandardSimples: 8000, entities.StandardMedio: 12500, entities.StandardAlto: 19500, entities.StandardLuxo: 29000},
			entities.TypologyCorporativo:   {entities.StandardSimples: 8500, entities.StandardMedio: 13500, entities.StandardAlto: 20500, entities.StandardLuxo: 30000},
			entities.TypologyInstitucional: {entities.StandardSimples: 9000, entities.StandardMedio: 14000, entities.StandardAlto: 21500, entities.StandardLuxo: 32000},
			entities.TypologyIndustrial:    {entities.StandardSimples: 4500, entities.StandardMedio: 7000, entities.StandardAlto: 11000, entities.StandardLuxo: 16000},
		},
		ComplexityMultipliers: map[entities.Complexity]entities.BasisPoints{
			entities.ComplexityBaixa: 9000, entities.ComplexityMedia: 10000,
			entities.ComplexityAlta: 12000, entities.ComplexityMuitoAlta: 14500,
		},
		DisciplineSurcharges: map[entities.Discipline]entities.Money{
			entities.DisciplineEstrutural:      350000,
			entities.DisciplineHidrossanitario: 250000,
			entities.DisciplineEletrico:        250000,
			entities.DisciplineClimatizacao:    300000,
			entities.DisciplineIncendio:        280000,
			entities.DisciplineLuminotecnico:   300000,
			entities.DisciplineInteriores:      600000,
			entities.DisciplinePaisagismo:      400000,
			entities.DisciplineAcustica:        350000,
		},
		PhaseSplits: map[entities.Typology]map[entities.PhaseCode]entities.BasisPoints{
			entities.TypologyResidencial:   split(500, 500, 2000, 2000, 1000, 4000),
			entities.TypologyComercial:     split(500, 500, 1800, 2000, 1200, 4000),
			entities.TypologyCorporativo:   split(500, 700, 1800, 2000, 1000, 4000),
			entities.TypologyInstitucional: split(500, 800, 1700, 1800, 1400, 3800),
			entities.TypologyIndustrial:    split(400, 600, 1500, 2000, 1500, 4000),
		},
		Durations: map[entities.Typology]entities.DurationRule{
			entities.TypologyResidencial:   {BaseDays: 90, DaysPer100M2: 10},
			entities.TypologyComercial:     {BaseDays: 100, DaysPer100M2: 10},
			entities.TypologyCorporativo:   {BaseDays: 110, DaysPer100M2: 8},
			entities.TypologyInstitucional: {BaseDays: 140, DaysPer100M2: 10},
			entities.TypologyIndustrial:    {BaseDays: 100, DaysPer100M2: 5},
		},
		ComplexityDurationFactors: map[entities.Complexity]entities.BasisPoints{
			entities.ComplexityBaixa: 9000, entities.ComplexityMedia: 10000,
			entities.ComplexityAlta: 12000, entities.ComplexityMuitoAlta: 14000,
		},
		MinValuePerM2: 5000,
	}
}

// residentialBriefing is a fully answered residential, high-standard briefing
// with 200 m² and one discipline requested beyond the typology defaults.
func residentialBriefing() entities.Briefing {
	slope := entities.TerrainFlat
	return entities.Briefing{
		ID:       "brief-1",
		TenantID: "tenant-1",
		ClientID: "client-1",
		Status:   entities.BriefingStatusConcluido,
		Answers: entities.BriefingAnswers{
			Project: entities.ProjectSection{
				Name:        strPtr("Casa Alto da Boa Vista"),
				Description: strPtr("Casa térrea para família de quatro pessoas com área de lazer"),
				Uses:        []string{"moradia"},
				Typology:    strPtr("residential"),
				Floors:      intPtr(1),
				Rooms:       intPtr(4),
			},
			Site: entities.SiteSection{
				City:     strPtr("Campinas"),
				State:    strPtr("sp"),
				LandArea: f64Ptr(450),
				Slope:    &slope,
			},
			Areas:  entities.AreasSection{ConstructedArea: f64Ptr(200)},
			Finish: entities.FinishSection{Standard: strPtr("high")},
			Scope: entities.ScopeSection{
				Complexity:           strPtr("media"),
				RequestedDisciplines: []string{"Paisagismo"},
			},
			Special: entities.SpecialSection{
				Pool:     boolPtr(true),
				Elevator: boolPtr(false),
			},
		},
	}
}
