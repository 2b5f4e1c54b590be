package budgeting

import (
	"math"
	"reflect"
	"testing"

	"orcamento_arq/internal/domain/entities"
)

func TestAnalyze_FullyAnsweredResidential(t *testing.T) {
	fs := Analyze(residentialBriefing())

	if fs.Typology != entities.TypologyResidencial {
		t.Fatalf("expected residencial, got %s", fs.Typology)
	}
	if fs.Standard != entities.StandardAlto {
		t.Fatalf("expected alto, got %s", fs.Standard)
	}
	if fs.Complexity != entities.ComplexityMedia {
		t.Fatalf("expected explicit media complexity, got %s", fs.Complexity)
	}
	if fs.ConstructedArea != 200 || fs.LandArea != 450 {
		t.Fatalf("unexpected areas: %+v", fs)
	}
	want := []entities.Discipline{
		entities.DisciplineArquitetura,
		entities.DisciplineEstrutural,
		entities.DisciplineHidrossanitario,
		entities.DisciplineEletrico,
		entities.DisciplinePaisagismo,
	}
	if !reflect.DeepEqual(fs.Disciplines, want) {
		t.Fatalf("unexpected disciplines: %v", fs.Disciplines)
	}
	if !reflect.DeepEqual(fs.RequestedDisciplines, []entities.Discipline{entities.DisciplinePaisagismo}) {
		t.Fatalf("unexpected requested disciplines: %v", fs.RequestedDisciplines)
	}
	if !reflect.DeepEqual(fs.SpecialCharacteristics, []entities.SpecialCharacteristic{entities.SpecialPiscina}) {
		t.Fatalf("unexpected special characteristics: %v", fs.SpecialCharacteristics)
	}
	if fs.Location.State != "SP" || fs.Location.City != "Campinas" {
		t.Fatalf("unexpected location: %+v", fs.Location)
	}
	if fs.Confidence != 1 {
		t.Fatalf("expected full confidence, got %v (defaulted %v)", fs.Confidence, fs.Defaulted)
	}
	if len(fs.Defaulted) != 0 {
		t.Fatalf("expected nothing defaulted, got %v", fs.Defaulted)
	}
}

func TestAnalyze_EmptyBriefingDegrades(t *testing.T) {
	fs := Analyze(entities.Briefing{ID: "b-1", TenantID: "t-1"})

	if fs.Confidence > 0.2 {
		t.Fatalf("expected confidence <= 0.2, got %v", fs.Confidence)
	}
	if fs.Typology != entities.TypologyResidencial || fs.Standard != entities.StandardMedio {
		t.Fatalf("unexpected defaults: %s/%s", fs.Typology, fs.Standard)
	}
	if fs.ConstructedArea <= 0 {
		t.Fatalf("expected a default area, got %v", fs.ConstructedArea)
	}
	if fs.Complexity != entities.ComplexityBaixa {
		t.Fatalf("expected baixa complexity, got %s", fs.Complexity)
	}
	if len(fs.Defaulted) != len(expectedSignals) {
		t.Fatalf("expected every signal defaulted, got %v", fs.Defaulted)
	}
	if fs.TenantID != "t-1" || fs.BriefingID != "b-1" {
		t.Fatalf("expected identifiers to be carried: %+v", fs)
	}
}

func TestAnalyze_MissingAreaGatesConfidence(t *testing.T) {
	b := residentialBriefing()
	b.Answers.Areas.ConstructedArea = nil

	fs := Analyze(b)
	if fs.Confidence >= 0.2 {
		t.Fatalf("expected gated confidence, got %v", fs.Confidence)
	}
	if fs.ConstructedArea != typologyDefaultArea[entities.TypologyResidencial] {
		t.Fatalf("expected typology default area, got %v", fs.ConstructedArea)
	}

	b.Answers.Areas.ConstructedArea = f64Ptr(-10)
	if fs := Analyze(b); fs.Confidence >= 0.2 {
		t.Fatalf("expected negative area to be treated as missing, got %v", fs.Confidence)
	}
}

func TestAnalyze_TypologyScoring(t *testing.T) {
	t.Run("keywords", func(t *testing.T) {
		b := entities.Briefing{Answers: entities.BriefingAnswers{
			Project: entities.ProjectSection{Description: strPtr("Galpão logístico com depósito")},
		}}
		if got := Analyze(b).Typology; got != entities.TypologyIndustrial {
			t.Fatalf("expected industrial, got %s", got)
		}
	})

	t.Run("tie follows precedence", func(t *testing.T) {
		b := entities.Briefing{Answers: entities.BriefingAnswers{
			Project: entities.ProjectSection{Description: strPtr("loja com escritório")},
		}}
		if got := Analyze(b).Typology; got != entities.TypologyComercial {
			t.Fatalf("expected comercial, got %s", got)
		}
	})

	t.Run("explicit answer outweighs keywords", func(t *testing.T) {
		b := entities.Briefing{Answers: entities.BriefingAnswers{
			Project: entities.ProjectSection{
				Typology:    strPtr("Industrial"),
				Description: strPtr("casa casa casa"),
			},
		}}
		if got := Analyze(b).Typology; got != entities.TypologyIndustrial {
			t.Fatalf("expected industrial, got %s", got)
		}
	})

	t.Run("unknown explicit answer falls back to keywords", func(t *testing.T) {
		b := entities.Briefing{Answers: entities.BriefingAnswers{
			Project: entities.ProjectSection{
				Typology: strPtr("spaceship"),
				Uses:     []string{"escola infantil"},
			},
		}}
		if got := Analyze(b).Typology; got != entities.TypologyInstitucional {
			t.Fatalf("expected institucional, got %s", got)
		}
	})
}

func TestAnalyze_StandardInference(t *testing.T) {
	b := entities.Briefing{Answers: entities.BriefingAnswers{
		Finish: entities.FinishSection{Keywords: []string{"acabamento de alto padrão"}},
	}}
	if got := Analyze(b).Standard; got != entities.StandardAlto {
		t.Fatalf("expected alto, got %s", got)
	}

	b.Answers.Finish.Keywords = []string{"mármore", "premium"}
	if got := Analyze(b).Standard; got != entities.StandardLuxo {
		t.Fatalf("expected luxo, got %s", got)
	}
}

func TestAnalyze_DisciplineParsing(t *testing.T) {
	b := residentialBriefing()
	b.Answers.Scope.RequestedDisciplines = []string{"Elétrica", " paisagismo ", "HVAC", "astrologia", "eletrico"}

	fs := Analyze(b)
	want := []entities.Discipline{entities.DisciplineEletrico, entities.DisciplineClimatizacao, entities.DisciplinePaisagismo}
	if !reflect.DeepEqual(fs.RequestedDisciplines, want) {
		t.Fatalf("unexpected requested disciplines: %v", fs.RequestedDisciplines)
	}
	if len(fs.Disciplines) != 6 {
		t.Fatalf("expected union of 6 disciplines, got %v", fs.Disciplines)
	}
}

func TestAnalyze_ExplicitComplexityWins(t *testing.T) {
	b := residentialBriefing()
	b.Answers.Scope.Complexity = strPtr("muito alta")
	b.Answers.Areas.ConstructedArea = f64Ptr(60)

	if got := Analyze(b).Complexity; got != entities.ComplexityMuitoAlta {
		t.Fatalf("expected muito_alta, got %s", got)
	}
}

func TestInferComplexity(t *testing.T) {
	cases := []struct {
		name        string
		area        float64
		disciplines int
		specials    int
		want        entities.Complexity
	}{
		{name: "small plain", area: 100, disciplines: 4, specials: 0, want: entities.ComplexityBaixa},
		{name: "medium house", area: 200, disciplines: 5, specials: 1, want: entities.ComplexityMedia},
		{name: "large building", area: 800, disciplines: 7, specials: 2, want: entities.ComplexityAlta},
		{name: "very large", area: 3000, disciplines: 8, specials: 3, want: entities.ComplexityMuitoAlta},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := InferComplexity(tc.area, tc.disciplines, tc.specials, DefaultComplexityWeights)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestAnalyze_IgnoresNonFiniteAreas(t *testing.T) {
	b := residentialBriefing()
	b.Answers.Site.LandArea = f64Ptr(math.Inf(1))
	b.Answers.Areas.ConstructedArea = f64Ptr(math.Inf(1))

	fs := Analyze(b)
	if fs.LandArea != 0 {
		t.Fatalf("expected infinite land area to be dropped, got %v", fs.LandArea)
	}
	if math.IsInf(fs.ConstructedArea, 0) || fs.ConstructedArea <= 0 {
		t.Fatalf("expected a finite default constructed area, got %v", fs.ConstructedArea)
	}
}
