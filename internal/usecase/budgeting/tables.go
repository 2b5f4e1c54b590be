package budgeting

import (
	"orcamento_arq/internal/domain/entities"
)

// MethodologyVersion is stamped on every generated budget.
const MethodologyVersion = "NBR13532-2.0"

// MaxScheduleDays is the sane upper bound for a full phase schedule.
const MaxScheduleDays = 3650

// MaxConstructedArea is the largest area, in m², the calculator prices.
const MaxConstructedArea = 10_000_000.0

var typologyLabels = map[entities.Typology]string{
	entities.TypologyResidencial:   "Residencial",
	entities.TypologyComercial:     "Comercial",
	entities.TypologyCorporativo:   "Corporativo",
	entities.TypologyInstitucional: "Institucional",
	entities.TypologyIndustrial:    "Industrial",
}

var disciplineLabels = map[entities.Discipline]string{
	entities.DisciplineArquitetura:     "Arquitetura",
	entities.DisciplineEstrutural:      "Estrutural",
	entities.DisciplineHidrossanitario: "Hidrossanitário",
	entities.DisciplineEletrico:        "Elétrico",
	entities.DisciplineClimatizacao:    "Climatização",
	entities.DisciplineIncendio:        "Prevenção e combate a incêndio",
	entities.DisciplineLuminotecnico:   "Luminotécnico",
	entities.DisciplineInteriores:      "Interiores",
	entities.DisciplinePaisagismo:      "Paisagismo",
	entities.DisciplineAcustica:        "Acústica",
}

// typologyDefaultDisciplines are always needed for the typology, requested or not.
var typologyDefaultDisciplines = map[entities.Typology][]entities.Discipline{
	entities.TypologyResidencial: {
		entities.DisciplineArquitetura, entities.DisciplineEstrutural,
		entities.DisciplineHidrossanitario, entities.DisciplineEletrico,
	},
	entities.TypologyComercial: {
		entities.DisciplineArquitetura, entities.DisciplineEstrutural,
		entities.DisciplineHidrossanitario, entities.DisciplineEletrico,
		entities.DisciplineClimatizacao, entities.DisciplineIncendio,
	},
	entities.TypologyCorporativo: {
		entities.DisciplineArquitetura, entities.DisciplineEstrutural,
		entities.DisciplineHidrossanitario, entities.DisciplineEletrico,
		entities.DisciplineClimatizacao, entities.DisciplineIncendio,
		entities.DisciplineLuminotecnico,
	},
	entities.TypologyInstitucional: {
		entities.DisciplineArquitetura, entities.DisciplineEstrutural,
		entities.DisciplineHidrossanitario, entities.DisciplineEletrico,
		entities.DisciplineClimatizacao, entities.DisciplineIncendio,
		entities.DisciplineAcustica,
	},
	entities.TypologyIndustrial: {
		entities.DisciplineArquitetura, entities.DisciplineEstrutural,
		entities.DisciplineHidrossanitario, entities.DisciplineEletrico,
		entities.DisciplineIncendio,
	},
}

// typologyMinRequested is how many disciplines a client is expected to scope
// explicitly for the typology.
var typologyMinRequested = map[entities.Typology]int{
	entities.TypologyResidencial:   1,
	entities.TypologyComercial:     2,
	entities.TypologyCorporativo:   2,
	entities.TypologyInstitucional: 3,
	entities.TypologyIndustrial:    2,
}

// typologyDefaultArea is substituted when the briefing carries no usable area.
var typologyDefaultArea = map[entities.Typology]float64{
	entities.TypologyResidencial:   150,
	entities.TypologyComercial:     200,
	entities.TypologyCorporativo:   400,
	entities.TypologyInstitucional: 800,
	entities.TypologyIndustrial:    1500,
}

type areaRange struct {
	Min float64
	Max float64
}

// typologyAreaRange bounds the usual constructed area; outside it the area is an outlier.
var typologyAreaRange = map[entities.Typology]areaRange{
	entities.TypologyResidencial:   {Min: 40, Max: 1500},
	entities.TypologyComercial:     {Min: 30, Max: 5000},
	entities.TypologyCorporativo:   {Min: 80, Max: 20000},
	entities.TypologyInstitucional: {Min: 100, Max: 30000},
	entities.TypologyIndustrial:    {Min: 200, Max: 100000},
}

// referenceMedianPerM2 is the market median fee per m² (cents) by typology and standard.
// The reference distribution and the plausibility range are derived from it.
var referenceMedianPerM2 = map[entities.Typology]map[entities.Standard]entities.Money{
	entities.TypologyResidencial: {
		entities.StandardSimples: 9500, entities.StandardMedio: 15000,
		entities.StandardAlto: 23000, entities.StandardLuxo: 34000,
	},
	entities.TypologyComercial: {
		entities.StandardSimples: 10500, entities.StandardMedio: 16500,
		entities.StandardAlto: 25000, entities.StandardLuxo: 36000,
	},
	entities.TypologyCorporativo: {
		entities.StandardSimples: 11000, entities.StandardMedio: 17500,
		entities.StandardAlto: 26500, entities.StandardLuxo: 38000,
	},
	entities.TypologyInstitucional: {
		entities.StandardSimples: 12000, entities.StandardMedio: 18500,
		entities.StandardAlto: 28000, entities.StandardLuxo: 40000,
	},
	entities.TypologyIndustrial: {
		entities.StandardSimples: 6000, entities.StandardMedio: 9500,
		entities.StandardAlto: 14000, entities.StandardLuxo: 20000,
	},
}

// Distribution anchors relative to the median, in basis points.
const (
	referenceMinBP entities.BasisPoints = 5500
	referenceP25BP entities.BasisPoints = 8000
	referenceP75BP entities.BasisPoints = 12500
	referenceMaxBP entities.BasisPoints = 18000
)

// regionFactors adjust the reference distribution by state.
var regionFactors = map[string]entities.BasisPoints{
	"SP": 11000,
	"RJ": 10800,
	"DF": 10500,
	"SC": 10300,
	"PR": 10200,
	"RS": 10200,
	"MG": 9700,
	"BA": 9500,
	"PE": 9500,
	"CE": 9300,
}

// Confidence penalties applied once per non-passing validation.
const (
	adjustedPenalty = 0.85
	failedPenalty   = 0.6
)

// ComplexityWeights control the inferred complexity score.
type ComplexityWeights struct {
	Area        int
	Disciplines int
	Special     int
}

var DefaultComplexityWeights = ComplexityWeights{Area: 1, Disciplines: 1, Special: 1}

// complexityTierCeilings map an inferred score to a tier: score <= ceiling.
var complexityTierCeilings = []struct {
	Ceiling int
	Tier    entities.Complexity
}{
	{Ceiling: 1, Tier: entities.ComplexityBaixa},
	{Ceiling: 3, Tier: entities.ComplexityMedia},
	{Ceiling: 5, Tier: entities.ComplexityAlta},
}
