package response

import (
	"orcamento_arq/internal/domain/entities"
	"time"
)

type BriefingResponse struct {
	ID        string                   `json:"id"`
	ClientID  string                   `json:"client_id"`
	Status    string                   `json:"status"`
	Answers   entities.BriefingAnswers `json:"answers"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

type BriefingListResponse struct {
	Items []BriefingResponse `json:"items"`
	Total int                `json:"total"`
}

func FromBriefing(b entities.Briefing) BriefingResponse {
	return BriefingResponse{
		ID:        b.ID,
		ClientID:  b.ClientID,
		Status:    string(b.Status),
		Answers:   b.Answers,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func FromBriefings(items []entities.Briefing) BriefingListResponse {
	out := BriefingListResponse{Items: make([]BriefingResponse, 0, len(items)), Total: len(items)}
	for _, b := range items {
		out.Items = append(out.Items, FromBriefing(b))
	}
	return out
}
