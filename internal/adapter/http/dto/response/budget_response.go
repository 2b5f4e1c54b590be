package response

import (
	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase"
	"time"
)

type CompositionItemResponse struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type ScheduleItemResponse struct {
	Phase        string `json:"phase"`
	Name         string `json:"name"`
	DurationDays int    `json:"duration_days"`
	StartOffset  int    `json:"start_offset"`
}

type InstallmentResponse struct {
	Phase  string  `json:"phase"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type ProposalResponse struct {
	Title        string                `json:"title"`
	Summary      string                `json:"summary"`
	Scope        []string              `json:"scope"`
	Installments []InstallmentResponse `json:"installments"`
	ValidityDays int                   `json:"validity_days"`
}

type BenchmarkPositionResponse struct {
	Value        float64 `json:"value"`
	ReferenceP25 float64 `json:"reference_p25"`
	ReferenceP50 float64 `json:"reference_p50"`
	ReferenceP75 float64 `json:"reference_p75"`
	Percentile   float64 `json:"percentile"`
	Band         string  `json:"band"`
}

type BenchmarkingResponse struct {
	Region     string                    `json:"region"`
	ValuePerM2 BenchmarkPositionResponse `json:"value_per_m2"`
	Total      BenchmarkPositionResponse `json:"total"`
}

type RiskResponse struct {
	Tag      string `json:"tag"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type ValidationResponse struct {
	Check    string   `json:"check"`
	Outcome  string   `json:"outcome"`
	Message  string   `json:"message"`
	Original *float64 `json:"original,omitempty"`
	Adjusted *float64 `json:"adjusted,omitempty"`
}

// BudgetResponse is the persisted budget as exposed over HTTP. Money is in
// reais and percentages in 0-100.
type BudgetResponse struct {
	ID                    string                    `json:"id"`
	Code                  string                    `json:"code"`
	BriefingID            string                    `json:"briefing_id"`
	ClientID              string                    `json:"client_id"`
	ResponsibleUserID     string                    `json:"responsible_user_id"`
	Status                string                    `json:"status"`
	Typology              string                    `json:"typology"`
	Standard              string                    `json:"standard"`
	Complexity            string                    `json:"complexity"`
	ConstructedArea       float64                   `json:"constructed_area"`
	Total                 float64                   `json:"total"`
	ValuePerM2            float64                   `json:"value_per_m2"`
	TotalDurationDays     int                       `json:"total_duration_days"`
	PhaseComposition      []CompositionItemResponse `json:"phase_composition"`
	DisciplineComposition []CompositionItemResponse `json:"discipline_composition"`
	Schedule              []ScheduleItemResponse    `json:"schedule"`
	Proposal              ProposalResponse          `json:"proposal"`
	Confidence            float64                   `json:"confidence"`
	Benchmarking          BenchmarkingResponse      `json:"benchmarking"`
	RiskAnalysis          []RiskResponse            `json:"risk_analysis"`
	Validations           []ValidationResponse      `json:"validations"`
	PricingSource         string                    `json:"pricing_source"`
	MethodologyVersion    string                    `json:"methodology_version"`
	CreatedAt             time.Time                 `json:"created_at"`
	UpdatedAt             time.Time                 `json:"updated_at"`
}

type FeaturesResponse struct {
	Typology               string   `json:"typology"`
	Standard               string   `json:"standard"`
	Complexity             string   `json:"complexity"`
	ConstructedArea        float64  `json:"constructed_area"`
	LandArea               float64  `json:"land_area,omitempty"`
	Disciplines            []string `json:"disciplines"`
	SpecialCharacteristics []string `json:"special_characteristics"`
	City                   string   `json:"city,omitempty"`
	State                  string   `json:"state,omitempty"`
	DesiredDeadlineDays    int      `json:"desired_deadline_days,omitempty"`
	Confidence             float64  `json:"confidence"`
	Defaulted              []string `json:"defaulted,omitempty"`
}

type AuditResponse struct {
	MethodologyVersion   string    `json:"methodology_version"`
	GeneratedAt          time.Time `json:"generated_at"`
	ProcessingDurationMs int64     `json:"processing_duration_ms"`
	ValidationCount      int       `json:"validation_count"`
}

type BudgetGenerationResponse struct {
	Budget   BudgetResponse   `json:"budget"`
	Features FeaturesResponse `json:"features"`
	Audit    AuditResponse    `json:"audit"`
}

func FromBudgetResult(res usecase.BudgetResult) BudgetGenerationResponse {
	return BudgetGenerationResponse{
		Budget:   FromBudget(res.Budget),
		Features: fromFeatures(res.Features),
		Audit: AuditResponse{
			MethodologyVersion:   res.Audit.MethodologyVersion,
			GeneratedAt:          res.Audit.GeneratedAt,
			ProcessingDurationMs: res.Audit.ProcessingDuration.Milliseconds(),
			ValidationCount:      len(res.Audit.Validations),
		},
	}
}

func FromBudget(b entities.Budget) BudgetResponse {
	out := BudgetResponse{
		ID:                    b.ID,
		Code:                  b.Code,
		BriefingID:            b.BriefingID,
		ClientID:              b.ClientID,
		ResponsibleUserID:     b.ResponsibleUserID,
		Status:                string(b.Status),
		Typology:              string(b.Typology),
		Standard:              string(b.Standard),
		Complexity:            string(b.Complexity),
		ConstructedArea:       b.ConstructedArea,
		Total:                 b.Total.Reais(),
		ValuePerM2:            b.ValuePerM2.Reais(),
		TotalDurationDays:     b.TotalDurationDays,
		PhaseComposition:      fromComposition(b.PhaseComposition),
		DisciplineComposition: fromComposition(b.DisciplineComposition),
		Schedule:              make([]ScheduleItemResponse, 0, len(b.Schedule)),
		Proposal:              fromProposal(b.Proposal),
		Confidence:            b.Confidence,
		Benchmarking: BenchmarkingResponse{
			Region:     b.Benchmarking.Region,
			ValuePerM2: fromPosition(b.Benchmarking.ValuePerM2),
			Total:      fromPosition(b.Benchmarking.Total),
		},
		RiskAnalysis:       make([]RiskResponse, 0, len(b.RiskAnalysis)),
		Validations:        make([]ValidationResponse, 0, len(b.Validations)),
		PricingSource:      string(b.PricingSource),
		MethodologyVersion: b.MethodologyVersion,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	for _, s := range b.Schedule {
		out.Schedule = append(out.Schedule, ScheduleItemResponse{
			Phase:        string(s.Phase),
			Name:         s.Name,
			DurationDays: s.DurationDays,
			StartOffset:  s.StartOffset,
		})
	}
	for _, r := range b.RiskAnalysis {
		out.RiskAnalysis = append(out.RiskAnalysis, RiskResponse{Tag: r.Tag, Severity: string(r.Severity), Message: r.Message})
	}
	for _, v := range b.Validations {
		out.Validations = append(out.Validations, ValidationResponse{
			Check:    v.Check,
			Outcome:  string(v.Outcome),
			Message:  v.Message,
			Original: v.Original,
			Adjusted: v.Adjusted,
		})
	}
	return out
}

func fromComposition(items []entities.CompositionItem) []CompositionItemResponse {
	out := make([]CompositionItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CompositionItemResponse{
			Key:        it.Key,
			Label:      it.Label,
			Amount:     it.Amount.Reais(),
			Percentage: it.Percentage.Percent(),
		})
	}
	return out
}

func fromProposal(p entities.Proposal) ProposalResponse {
	out := ProposalResponse{
		Title:        p.Title,
		Summary:      p.Summary,
		Scope:        append([]string{}, p.Scope...),
		Installments: make([]InstallmentResponse, 0, len(p.Installments)),
		ValidityDays: p.ValidityDays,
	}
	for _, in := range p.Installments {
		out.Installments = append(out.Installments, InstallmentResponse{Phase: string(in.Phase), Label: in.Label, Amount: in.Amount.Reais()})
	}
	return out
}

func fromPosition(p entities.BenchmarkPosition) BenchmarkPositionResponse {
	return BenchmarkPositionResponse{
		Value:        p.Value.Reais(),
		ReferenceP25: p.ReferenceP25.Reais(),
		ReferenceP50: p.ReferenceP50.Reais(),
		ReferenceP75: p.ReferenceP75.Reais(),
		Percentile:   p.Percentile,
		Band:         string(p.Band),
	}
}

func fromFeatures(fs entities.FeatureSet) FeaturesResponse {
	out := FeaturesResponse{
		Typology:               string(fs.Typology),
		Standard:               string(fs.Standard),
		Complexity:             string(fs.Complexity),
		ConstructedArea:        fs.ConstructedArea,
		LandArea:               fs.LandArea,
		Disciplines:            make([]string, 0, len(fs.Disciplines)),
		SpecialCharacteristics: make([]string, 0, len(fs.SpecialCharacteristics)),
		City:                   fs.Location.City,
		State:                  fs.Location.State,
		DesiredDeadlineDays:    fs.DesiredDeadlineDays,
		Confidence:             fs.Confidence,
		Defaulted:              fs.Defaulted,
	}
	for _, d := range fs.Disciplines {
		out.Disciplines = append(out.Disciplines, string(d))
	}
	for _, s := range fs.SpecialCharacteristics {
		out.SpecialCharacteristics = append(out.SpecialCharacteristics, string(s))
	}
	return out
}
