package interfaces

import (
	"context"
	"errors"
	"orcamento_arq/internal/domain/entities"
)

var (
	// ErrDuplicateBudget is returned when the storage uniqueness constraint on
	// (tenant_id, briefing_id) rejects a write.
	ErrDuplicateBudget = errors.New("budget already exists for briefing")
	// ErrBriefingTransitionRejected is returned when the briefing is no longer
	// in an eligible status at commit time.
	ErrBriefingTransitionRejected = errors.New("briefing status transition rejected")
	// ErrDuplicateBudgetCode is returned when the generated budget code is
	// already taken by another budget.
	ErrDuplicateBudgetCode = errors.New("budget code already in use")
)

// IBudgetRepository abstracts persistence for Budget.
//
// CreateWithBriefingTransition is all-or-nothing: the budget is stored and the
// briefing moves to briefingStatus in one transaction, or nothing changes.

type IBudgetRepository interface {
	CreateWithBriefingTransition(ctx context.Context, b entities.Budget, briefingStatus entities.BriefingStatus) (entities.Budget, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Budget, error)
	GetActiveByBriefingID(ctx context.Context, tenantID, briefingID string) (entities.Budget, error)
}
