package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (orçamento).
// Generation always creates a draft; later transitions belong to the
// proposal workflow.
type BudgetStatus string

const (
	BudgetStatusRascunho  BudgetStatus = "rascunho"
	BudgetStatusEnviado   BudgetStatus = "enviado"
	BudgetStatusAprovado  BudgetStatus = "aprovado"
	BudgetStatusRejeitado BudgetStatus = "rejeitado"
)

// CompositionItem is one line of a financial composition, by phase or by discipline.
type CompositionItem struct {
	Key        string      `json:"key"`
	Label      string      `json:"label"`
	Amount     Money       `json:"amount"`
	Percentage BasisPoints `json:"percentage"`
}

type ScheduleItem struct {
	Phase        PhaseCode `json:"phase"`
	Name         string    `json:"name"`
	DurationDays int       `json:"duration_days"`
	StartOffset  int       `json:"start_offset"`
}

type ProposalInstallment struct {
	Phase  PhaseCode `json:"phase"`
	Label  string    `json:"label"`
	Amount Money     `json:"amount"`
}

// Proposal is the draft commercial text generated alongside the numbers.
type Proposal struct {
	Title        string                `json:"title"`
	Summary      string                `json:"summary"`
	Scope        []string              `json:"scope"`
	Installments []ProposalInstallment `json:"installments"`
	ValidityDays int                   `json:"validity_days"`
}

// ComputedBudget is the calculator output.
//
// Invariants:
//   - PhaseComposition and DisciplineComposition percentages each sum to 10000
//     and their amounts each sum to Total.
//   - Schedule covers PhaseCatalog in order and its durations sum to TotalDurationDays.
type ComputedBudget struct {
	Typology              Typology          `json:"typology"`
	Standard              Standard          `json:"standard"`
	Complexity            Complexity        `json:"complexity"`
	ConstructedArea       float64           `json:"constructed_area"`
	Total                 Money             `json:"total"`
	ValuePerM2            Money             `json:"value_per_m2"`
	TotalDurationDays     int               `json:"total_duration_days"`
	PhaseComposition      []CompositionItem `json:"phase_composition"`
	DisciplineComposition []CompositionItem `json:"discipline_composition"`
	Schedule              []ScheduleItem    `json:"schedule"`
	Proposal              Proposal          `json:"proposal"`
	MinValuePerM2         Money             `json:"min_value_per_m2"`
	PricingSource         PricingSource     `json:"pricing_source"`
}

type ValidationOutcome string

const (
	ValidationPass     ValidationOutcome = "pass"
	ValidationAdjusted ValidationOutcome = "adjusted"
	ValidationFailed   ValidationOutcome = "failed"
)

// Validation is one audit-trail entry of a check performed on a budget.
type Validation struct {
	Check    string            `json:"check"`
	Outcome  ValidationOutcome `json:"outcome"`
	Message  string            `json:"message"`
	Original *float64          `json:"original,omitempty"`
	Adjusted *float64          `json:"adjusted,omitempty"`
}

type RiskSeverity string

const (
	RiskLow    RiskSeverity = "baixo"
	RiskMedium RiskSeverity = "medio"
	RiskHigh   RiskSeverity = "alto"
)

type RiskFinding struct {
	Tag      string       `json:"tag"`
	Severity RiskSeverity `json:"severity"`
	Message  string       `json:"message"`
}

type BenchmarkBand string

const (
	BandBelow  BenchmarkBand = "abaixo"
	BandWithin BenchmarkBand = "dentro"
	BandAbove  BenchmarkBand = "acima"
)

type BenchmarkPosition struct {
	Value        Money         `json:"value"`
	ReferenceP25 Money         `json:"reference_p25"`
	ReferenceP50 Money         `json:"reference_p50"`
	ReferenceP75 Money         `json:"reference_p75"`
	Percentile   float64       `json:"percentile"`
	Band         BenchmarkBand `json:"band"`
}

type Benchmarking struct {
	Region     string            `json:"region"`
	ValuePerM2 BenchmarkPosition `json:"value_per_m2"`
	Total      BenchmarkPosition `json:"total"`
}

// ValidatedBudget is the validator output. Any field the validator clamps is
// also recorded in Validations.
type ValidatedBudget struct {
	ComputedBudget
	Confidence         float64       `json:"confidence"`
	Benchmarking       Benchmarking  `json:"benchmarking"`
	RiskAnalysis       []RiskFinding `json:"risk_analysis"`
	Validations        []Validation  `json:"validations"`
	ProcessingDuration time.Duration `json:"processing_duration"`
}

// Budget is the persisted aggregate, created exactly once per briefing.
//
// Storage model:
//   - DynamoDB PK: id, plus a guard item "briefing#<tenant>#<briefing>" that
//     makes (tenant_id, briefing_id) unique
//   - SQLite partial unique index on (tenant_id, briefing_id) for live rows
type Budget struct {
	ValidatedBudget

	ID                 string       `json:"id"`
	Code               string       `json:"code"`
	TenantID           string       `json:"tenant_id"`
	BriefingID         string       `json:"briefing_id"`
	ClientID           string       `json:"client_id"`
	ResponsibleUserID  string       `json:"responsible_user_id"`
	Status             BudgetStatus `json:"status"`
	MethodologyVersion string       `json:"methodology_version"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
	DeletedAt          *time.Time   `json:"deleted_at,omitempty"`
}

func (b Budget) Deleted() bool {
	return b.DeletedAt != nil
}
