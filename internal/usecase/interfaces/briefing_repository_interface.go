package interfaces

import (
	"context"
	"orcamento_arq/internal/domain/entities"
)

// IBriefingRepository abstracts persistence for Briefing.
//
// Reads are tenant-scoped: a briefing owned by another tenant is reported the
// same way as a missing one (zero value, nil error).

type IBriefingRepository interface {
	Create(ctx context.Context, b entities.Briefing) (entities.Briefing, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Briefing, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.BriefingStatus) (entities.Briefing, error)
	ListAvailable(ctx context.Context, tenantID string) ([]entities.Briefing, error)
}
