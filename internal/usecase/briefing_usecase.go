package usecase

import (
	"context"
	"fmt"
	"log"
	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IBriefingUseCase covers briefing intake and lifecycle.
//
//   - orcamento_em_andamento is only reached through budget generation; a
//     manual transition to it is rejected.
//   - ListAvailable returns the tenant's briefings a budget can be generated for.

type IBriefingUseCase interface {
	Create(ctx context.Context, tenantID, clientID string, answers entities.BriefingAnswers, status entities.BriefingStatus) (entities.Briefing, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Briefing, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.BriefingStatus) (entities.Briefing, error)
	ListAvailable(ctx context.Context, tenantID string) ([]entities.Briefing, error)
}

type BriefingUseCase struct {
	repo           interfaces.IBriefingRepository
	storageTimeout time.Duration
	now            func() time.Time
	newID          func() string
}

var _ IBriefingUseCase = (*BriefingUseCase)(nil)

// allowedTransitions maps a status to the statuses a user may move it to.
var allowedTransitions = map[entities.BriefingStatus][]entities.BriefingStatus{
	entities.BriefingStatusRascunho:             {entities.BriefingStatusEmAndamento, entities.BriefingStatusArquivado},
	entities.BriefingStatusEmAndamento:          {entities.BriefingStatusRascunho, entities.BriefingStatusConcluido, entities.BriefingStatusArquivado},
	entities.BriefingStatusConcluido:            {entities.BriefingStatusEmAndamento, entities.BriefingStatusAprovado, entities.BriefingStatusArquivado},
	entities.BriefingStatusAprovado:             {entities.BriefingStatusEmAndamento, entities.BriefingStatusArquivado},
	entities.BriefingStatusOrcamentoEmAndamento: {entities.BriefingStatusArquivado},
}

func NewBriefingUseCase(repo interfaces.IBriefingRepository, storageTimeout time.Duration) *BriefingUseCase {
	if storageTimeout <= 0 {
		storageTimeout = defaultStorageTimeout
	}
	return &BriefingUseCase{repo: repo, storageTimeout: storageTimeout, now: time.Now, newID: uuid.NewString}
}

func (u *BriefingUseCase) Create(ctx context.Context, tenantID, clientID string, answers entities.BriefingAnswers, status entities.BriefingStatus) (entities.Briefing, error) {
	tenantID = strings.TrimSpace(tenantID)
	clientID = strings.TrimSpace(clientID)
	if tenantID == "" {
		return entities.Briefing{}, ErrInvalidTenantID
	}
	if clientID == "" {
		return entities.Briefing{}, fmt.Errorf("%w: client_id is required", ErrInvalidBriefing)
	}
	if status == "" {
		status = entities.BriefingStatusRascunho
	}
	if !status.Valid() || status == entities.BriefingStatusOrcamentoEmAndamento {
		return entities.Briefing{}, fmt.Errorf("%w: status %q", ErrInvalidBriefing, status)
	}

	now := u.now().UTC()
	b := entities.Briefing{
		ID:        u.newID(),
		TenantID:  tenantID,
		ClientID:  clientID,
		Answers:   answers,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(ctx, u.storageTimeout)
	defer cancel()
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[briefing][usecase] create failed tenant_id=%s err=%v", tenantID, err)
		return entities.Briefing{}, &PersistenceError{Op: "create briefing", Err: err}
	}
	log.Printf("[briefing][usecase] created briefing_id=%s tenant_id=%s status=%s", created.ID, tenantID, created.Status)
	return created, nil
}

func (u *BriefingUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Briefing, error) {
	tenantID = strings.TrimSpace(tenantID)
	id = strings.TrimSpace(id)
	if tenantID == "" {
		return entities.Briefing{}, ErrInvalidTenantID
	}
	if id == "" {
		return entities.Briefing{}, ErrInvalidBriefingID
	}

	ctx, cancel := context.WithTimeout(ctx, u.storageTimeout)
	defer cancel()
	b, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Briefing{}, &PersistenceError{Op: "fetch briefing", Err: err}
	}
	if b.ID == "" || b.Deleted() {
		return entities.Briefing{}, ErrBriefingNotFound
	}
	return b, nil
}

func (u *BriefingUseCase) UpdateStatus(ctx context.Context, tenantID, id string, status entities.BriefingStatus) (entities.Briefing, error) {
	current, err := u.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Briefing{}, err
	}
	if !status.Valid() {
		return entities.Briefing{}, fmt.Errorf("%w: unknown status %q", ErrInvalidStatusTransition, status)
	}
	if current.Status == status {
		return current, nil
	}
	if !transitionAllowed(current.Status, status) {
		log.Printf("[briefing][usecase] transition rejected briefing_id=%s from=%s to=%s", current.ID, current.Status, status)
		return entities.Briefing{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, status)
	}

	ctx, cancel := context.WithTimeout(ctx, u.storageTimeout)
	defer cancel()
	updated, err := u.repo.UpdateStatus(ctx, current.TenantID, current.ID, status)
	if err != nil {
		log.Printf("[briefing][usecase] status update failed briefing_id=%s err=%v", current.ID, err)
		return entities.Briefing{}, &PersistenceError{Op: "update briefing status", Err: err}
	}
	if updated.ID == "" {
		return entities.Briefing{}, ErrBriefingNotFound
	}
	log.Printf("[briefing][usecase] status updated briefing_id=%s from=%s to=%s", updated.ID, current.Status, updated.Status)
	return updated, nil
}

func (u *BriefingUseCase) ListAvailable(ctx context.Context, tenantID string) ([]entities.Briefing, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}

	ctx, cancel := context.WithTimeout(ctx, u.storageTimeout)
	defer cancel()
	items, err := u.repo.ListAvailable(ctx, tenantID)
	if err != nil {
		return nil, &PersistenceError{Op: "list available briefings", Err: err}
	}

	out := make([]entities.Briefing, 0, len(items))
	for _, b := range items {
		if b.Deleted() || !b.Status.EligibleForBudget() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func transitionAllowed(from, to entities.BriefingStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
