package request

import (
	"errors"
	"math"
	"orcamento_arq/internal/domain/entities"
	"strings"
)

var (
	ErrInvalidArea     = errors.New("areas must be positive numbers")
	ErrInvalidDeadline = errors.New("desired deadline must be a positive number of days")
	ErrInvalidCount    = errors.New("floors and rooms must not be negative")
)

// CreateBriefingRequest is the intake payload. Every answer is optional.
type CreateBriefingRequest struct {
	ClientID string                   `json:"client_id" binding:"required"`
	Status   string                   `json:"status"`
	Answers  entities.BriefingAnswers `json:"answers"`
}

// Validate rejects answers that are present but cannot be meaningful.
func (r CreateBriefingRequest) Validate() error {
	a := r.Answers
	if !positiveOrNil(a.Areas.ConstructedArea) || !positiveOrNil(a.Site.LandArea) {
		return ErrInvalidArea
	}
	if d := a.Timeline.DesiredDeadlineDays; d != nil && *d <= 0 {
		return ErrInvalidDeadline
	}
	if n := a.Project.Floors; n != nil && *n < 0 {
		return ErrInvalidCount
	}
	if n := a.Project.Rooms; n != nil && *n < 0 {
		return ErrInvalidCount
	}
	return nil
}

func (r CreateBriefingRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

func (r CreateBriefingRequest) ResolveStatus() entities.BriefingStatus {
	return entities.BriefingStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

type UpdateBriefingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateBriefingStatusRequest) ResolveStatus() entities.BriefingStatus {
	return entities.BriefingStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

func positiveOrNil(v *float64) bool {
	if v == nil {
		return true
	}
	return *v > 0 && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
