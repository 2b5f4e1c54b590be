package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"orcamento_arq/internal/domain/entities"
	mock_interfaces "orcamento_arq/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBriefingUseCase_Create(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewBriefingUseCase(nil, 0)
		if _, err := uc.Create(context.Background(), " ", "c", entities.BriefingAnswers{}, ""); !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "t", "", entities.BriefingAnswers{}, ""); !errors.Is(err, ErrInvalidBriefing) {
			t.Fatalf("expected ErrInvalidBriefing, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "t", "c", entities.BriefingAnswers{}, entities.BriefingStatusOrcamentoEmAndamento); !errors.Is(err, ErrInvalidBriefing) {
			t.Fatalf("expected ErrInvalidBriefing, got %v", err)
		}
	})

	t.Run("defaults to draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBriefingRepository(ctrl)
		uc := NewBriefingUseCase(repo, time.Second)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Briefing{})).DoAndReturn(
			func(_ context.Context, b entities.Briefing) (entities.Briefing, error) {
				if b.ID == "" || b.TenantID != "tenant-1" || b.ClientID != "client-1" || b.Status != entities.BriefingStatusRascunho {
					t.Fatalf("unexpected briefing: %+v", b)
				}
				if b.CreatedAt.IsZero() || !b.CreatedAt.Equal(b.UpdatedAt) {
					t.Fatalf("expected timestamps")
				}
				return b, nil
			},
		)

		b, err := uc.Create(context.Background(), "tenant-1", " client-1 ", entities.BriefingAnswers{}, "")
		if err != nil || b.Status != entities.BriefingStatusRascunho {
			t.Fatalf("unexpected result: %+v %v", b, err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBriefingRepository(ctrl)
		uc := NewBriefingUseCase(repo, time.Second)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Briefing{}, errors.New("db"))
		if _, err := uc.Create(context.Background(), "tenant-1", "client-1", entities.BriefingAnswers{}, entities.BriefingStatusConcluido); !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})
}

func TestBriefingUseCase_UpdateStatus(t *testing.T) {
	cases := []struct {
		name    string
		from    entities.BriefingStatus
		to      entities.BriefingStatus
		wantErr error
	}{
		{name: "draft to in progress", from: entities.BriefingStatusRascunho, to: entities.BriefingStatusEmAndamento},
		{name: "completed to approved", from: entities.BriefingStatusConcluido, to: entities.BriefingStatusAprovado},
		{name: "budgeting to archived", from: entities.BriefingStatusOrcamentoEmAndamento, to: entities.BriefingStatusArquivado},
		{name: "manual move to budgeting", from: entities.BriefingStatusConcluido, to: entities.BriefingStatusOrcamentoEmAndamento, wantErr: ErrInvalidStatusTransition},
		{name: "archived is final", from: entities.BriefingStatusArquivado, to: entities.BriefingStatusRascunho, wantErr: ErrInvalidStatusTransition},
		{name: "unknown status", from: entities.BriefingStatusRascunho, to: "pendente", wantErr: ErrInvalidStatusTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBriefingRepository(ctrl)
			uc := NewBriefingUseCase(repo, time.Second)

			repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "brief-1").
				Return(entities.Briefing{ID: "brief-1", TenantID: "tenant-1", Status: tc.from}, nil)
			if tc.wantErr == nil {
				repo.EXPECT().UpdateStatus(gomock.Any(), "tenant-1", "brief-1", tc.to).
					Return(entities.Briefing{ID: "brief-1", TenantID: "tenant-1", Status: tc.to}, nil)
			}

			b, err := uc.UpdateStatus(context.Background(), "tenant-1", "brief-1", tc.to)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil || b.Status != tc.to {
				t.Fatalf("unexpected result: %+v %v", b, err)
			}
		})
	}

	t.Run("same status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBriefingRepository(ctrl)
		uc := NewBriefingUseCase(repo, time.Second)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "brief-1").
			Return(entities.Briefing{ID: "brief-1", TenantID: "tenant-1", Status: entities.BriefingStatusConcluido}, nil)
		if _, err := uc.UpdateStatus(context.Background(), "tenant-1", "brief-1", entities.BriefingStatusConcluido); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBriefingRepository(ctrl)
		uc := NewBriefingUseCase(repo, time.Second)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "brief-1").Return(entities.Briefing{}, nil)
		if _, err := uc.UpdateStatus(context.Background(), "tenant-1", "brief-1", entities.BriefingStatusConcluido); !errors.Is(err, ErrBriefingNotFound) {
			t.Fatalf("expected ErrBriefingNotFound, got %v", err)
		}
	})
}

func TestBriefingUseCase_ListAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBriefingRepository(ctrl)
	uc := NewBriefingUseCase(repo, time.Second)

	deletedAt := time.Now()
	repo.EXPECT().ListAvailable(gomock.Any(), "tenant-1").Return([]entities.Briefing{
		{ID: "a", Status: entities.BriefingStatusConcluido},
		{ID: "b", Status: entities.BriefingStatusRascunho},
		{ID: "c", Status: entities.BriefingStatusAprovado, DeletedAt: &deletedAt},
		{ID: "d", Status: entities.BriefingStatusEmAndamento},
	}, nil)

	items, err := uc.ListAvailable(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "d" {
		t.Fatalf("unexpected items: %+v", items)
	}

	if _, err := uc.ListAvailable(context.Background(), ""); !errors.Is(err, ErrInvalidTenantID) {
		t.Fatalf("expected ErrInvalidTenantID, got %v", err)
	}
}
