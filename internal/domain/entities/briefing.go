package entities

import "time"

// BriefingStatus is the lifecycle of an intake questionnaire.
type BriefingStatus string

const (
	BriefingStatusRascunho             BriefingStatus = "rascunho"
	BriefingStatusEmAndamento          BriefingStatus = "em_andamento"
	BriefingStatusConcluido            BriefingStatus = "concluido"
	BriefingStatusAprovado             BriefingStatus = "aprovado"
	BriefingStatusOrcamentoEmAndamento BriefingStatus = "orcamento_em_andamento"
	BriefingStatusArquivado            BriefingStatus = "arquivado"
)

// BudgetEligibleStatuses lists the statuses from which a budget may be generated.
var BudgetEligibleStatuses = []BriefingStatus{
	BriefingStatusConcluido,
	BriefingStatusAprovado,
	BriefingStatusEmAndamento,
}

func (s BriefingStatus) Valid() bool {
	switch s {
	case BriefingStatusRascunho, BriefingStatusEmAndamento, BriefingStatusConcluido,
		BriefingStatusAprovado, BriefingStatusOrcamentoEmAndamento, BriefingStatusArquivado:
		return true
	}
	return false
}

func (s BriefingStatus) EligibleForBudget() bool {
	for _, allowed := range BudgetEligibleStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

// Briefing is the client intake questionnaire that seeds a budget.
//
// Storage model:
//   - DynamoDB PK: id, GSI tenant_id-index (PK: tenant_id)
//   - SQLite table briefings, answers kept as a JSON column
type Briefing struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	ClientID  string          `json:"client_id"`
	Answers   BriefingAnswers `json:"answers"`
	Status    BriefingStatus  `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
}

func (b Briefing) Deleted() bool {
	return b.DeletedAt != nil
}

// BriefingAnswers is the typed questionnaire. Every field is optional: a nil
// pointer or empty slice means the question was not answered.
type BriefingAnswers struct {
	Project  ProjectSection  `json:"project"`
	Site     SiteSection     `json:"site"`
	Areas    AreasSection    `json:"areas"`
	Finish   FinishSection   `json:"finish"`
	Scope    ScopeSection    `json:"scope"`
	Special  SpecialSection  `json:"special"`
	Timeline TimelineSection `json:"timeline"`
}

type ProjectSection struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Uses        []string `json:"uses,omitempty"`
	Typology    *string  `json:"typology,omitempty"`
	Floors      *int     `json:"floors,omitempty"`
	Rooms       *int     `json:"rooms,omitempty"`
}

type TerrainSlope string

const (
	TerrainFlat     TerrainSlope = "plano"
	TerrainModerate TerrainSlope = "moderado"
	TerrainSteep    TerrainSlope = "ingreme"
)

type SiteSection struct {
	City     *string       `json:"city,omitempty"`
	State    *string       `json:"state,omitempty"`
	LandArea *float64      `json:"land_area,omitempty"`
	Slope    *TerrainSlope `json:"slope,omitempty"`
}

type AreasSection struct {
	ConstructedArea *float64 `json:"constructed_area,omitempty"`
}

type FinishSection struct {
	Standard *string  `json:"standard,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type ScopeSection struct {
	Complexity           *string  `json:"complexity,omitempty"`
	RequestedDisciplines []string `json:"requested_disciplines,omitempty"`
}

type SpecialSection struct {
	Pool                        *bool `json:"pool,omitempty"`
	Elevator                    *bool `json:"elevator,omitempty"`
	Basement                    *bool `json:"basement,omitempty"`
	HeritageListed              *bool `json:"heritage_listed,omitempty"`
	Automation                  *bool `json:"automation,omitempty"`
	SustainabilityCertification *bool `json:"sustainability_certification,omitempty"`
	AccessibilityCompliance     *bool `json:"accessibility_compliance,omitempty"`
}

// Answered reports whether any special-characteristic question was answered,
// including an explicit "no".
func (s SpecialSection) Answered() bool {
	return s.Pool != nil || s.Elevator != nil || s.Basement != nil || s.HeritageListed != nil ||
		s.Automation != nil || s.SustainabilityCertification != nil || s.AccessibilityCompliance != nil
}

type TimelineSection struct {
	DesiredDeadlineDays *int `json:"desired_deadline_days,omitempty"`
}
