package entities

// Typology is the project category that drives cost tables.
type Typology string

const (
	TypologyResidencial   Typology = "residencial"
	TypologyComercial     Typology = "comercial"
	TypologyCorporativo   Typology = "corporativo"
	TypologyInstitucional Typology = "institucional"
	TypologyIndustrial    Typology = "industrial"
)

// TypologyPrecedence is the tie-break order used when two typologies score the same.
var TypologyPrecedence = []Typology{
	TypologyResidencial,
	TypologyComercial,
	TypologyCorporativo,
	TypologyInstitucional,
	TypologyIndustrial,
}

func (t Typology) Valid() bool {
	for _, known := range TypologyPrecedence {
		if t == known {
			return true
		}
	}
	return false
}

// Standard (padrão) is the finish tier within a typology.
type Standard string

const (
	StandardSimples Standard = "simples"
	StandardMedio   Standard = "medio"
	StandardAlto    Standard = "alto"
	StandardLuxo    Standard = "luxo"
)

var Standards = []Standard{StandardSimples, StandardMedio, StandardAlto, StandardLuxo}

func (s Standard) Valid() bool {
	for _, known := range Standards {
		if s == known {
			return true
		}
	}
	return false
}

type Complexity string

const (
	ComplexityBaixa     Complexity = "baixa"
	ComplexityMedia     Complexity = "media"
	ComplexityAlta      Complexity = "alta"
	ComplexityMuitoAlta Complexity = "muito_alta"
)

var Complexities = []Complexity{ComplexityBaixa, ComplexityMedia, ComplexityAlta, ComplexityMuitoAlta}

func (c Complexity) Valid() bool {
	for _, known := range Complexities {
		if c == known {
			return true
		}
	}
	return false
}

type Discipline string

const (
	DisciplineArquitetura     Discipline = "arquitetura"
	DisciplineEstrutural      Discipline = "estrutural"
	DisciplineHidrossanitario Discipline = "hidrossanitario"
	DisciplineEletrico        Discipline = "eletrico"
	DisciplineClimatizacao    Discipline = "climatizacao"
	DisciplineIncendio        Discipline = "incendio"
	DisciplineLuminotecnico   Discipline = "luminotecnico"
	DisciplineInteriores      Discipline = "interiores"
	DisciplinePaisagismo      Discipline = "paisagismo"
	DisciplineAcustica        Discipline = "acustica"
)

// Disciplines is the canonical ordering used for every discipline list.
var Disciplines = []Discipline{
	DisciplineArquitetura,
	DisciplineEstrutural,
	DisciplineHidrossanitario,
	DisciplineEletrico,
	DisciplineClimatizacao,
	DisciplineIncendio,
	DisciplineLuminotecnico,
	DisciplineInteriores,
	DisciplinePaisagismo,
	DisciplineAcustica,
}

func (d Discipline) Valid() bool {
	for _, known := range Disciplines {
		if d == known {
			return true
		}
	}
	return false
}

type SpecialCharacteristic string

const (
	SpecialPiscina          SpecialCharacteristic = "piscina"
	SpecialElevador         SpecialCharacteristic = "elevador"
	SpecialSubsolo          SpecialCharacteristic = "subsolo"
	SpecialTombamento       SpecialCharacteristic = "tombamento"
	SpecialAutomacao        SpecialCharacteristic = "automacao"
	SpecialCertificacao     SpecialCharacteristic = "certificacao_sustentavel"
	SpecialAcessibilidade   SpecialCharacteristic = "acessibilidade"
	SpecialTerrenoInclinado SpecialCharacteristic = "terreno_inclinado"
)

type Location struct {
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

// FeatureSet is the normalized description of a project extracted from a briefing.
// It lives only for the duration of one generation.
type FeatureSet struct {
	TenantID               string                  `json:"tenant_id"`
	BriefingID             string                  `json:"briefing_id"`
	Typology               Typology                `json:"typology"`
	Standard               Standard                `json:"standard"`
	Complexity             Complexity              `json:"complexity"`
	ConstructedArea        float64                 `json:"constructed_area"`
	LandArea               float64                 `json:"land_area"`
	Disciplines            []Discipline            `json:"disciplines"`
	RequestedDisciplines   []Discipline            `json:"requested_disciplines"`
	SpecialCharacteristics []SpecialCharacteristic `json:"special_characteristics"`
	Location               Location                `json:"location"`
	DesiredDeadlineDays    int                     `json:"desired_deadline_days,omitempty"`
	Confidence             float64                 `json:"confidence"`
	Defaulted              []string                `json:"defaulted,omitempty"`
}
