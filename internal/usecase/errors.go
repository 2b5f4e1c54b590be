package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrBriefingNotFound        = errors.New("briefing not found")
	ErrInvalidBriefingStatus   = errors.New("briefing status does not allow budget generation")
	ErrInvalidStatusTransition = errors.New("invalid briefing status transition")
	ErrInvalidBriefingID       = errors.New("invalid briefing id")
	ErrInvalidTenantID         = errors.New("invalid tenant id")
	ErrInvalidUserID           = errors.New("invalid user id")
	ErrInvalidBriefing         = errors.New("invalid briefing payload")
	ErrInvalidPricingConfig    = errors.New("invalid pricing configuration payload")
	ErrBudgetAlreadyExists     = errors.New("budget already exists")
	ErrBudgetNotFound          = errors.New("budget not found")
	ErrInvalidBudgetID         = errors.New("invalid budget id")
	ErrPersistence             = errors.New("persistence failure")
	ErrInternal                = errors.New("internal error")
)

// BudgetConflictError reports that the briefing already has a live budget.
// It matches ErrBudgetAlreadyExists with errors.Is and carries the existing
// budget identity when it could be resolved.
type BudgetConflictError struct {
	BudgetID string
	Code     string
}

func (e *BudgetConflictError) Error() string {
	if e.Code == "" {
		return ErrBudgetAlreadyExists.Error()
	}
	return fmt.Sprintf("%s: %s", ErrBudgetAlreadyExists, e.Code)
}

func (e *BudgetConflictError) Is(target error) bool {
	return target == ErrBudgetAlreadyExists
}

// PersistenceError wraps a storage failure. It matches ErrPersistence; the
// cause is kept for logs only.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence, e.Op, e.Err)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
