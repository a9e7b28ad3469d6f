package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"styledecor/internal/domain/entities"
	"styledecor/internal/domain/policy"
	"styledecor/internal/usecase/interfaces"
	mock_interfaces "styledecor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	ownerActor     = policy.Actor{ID: "u-1", Email: "owner@example.com", Role: entities.RoleUser}
	adminActor     = policy.Actor{ID: "a-1", Email: "admin@example.com", Role: entities.RoleAdmin}
	decoratorActor = policy.Actor{ID: "d-1", Email: "deco@example.com", Role: entities.RoleDecorator}
	strangerActor  = policy.Actor{ID: "u-2", Email: "other@example.com", Role: entities.RoleUser}
)

func futureDate() time.Time {
	return time.Now().Add(48 * time.Hour)
}

func TestBookingUseCase_Create_Validations(t *testing.T) {
	t.Run("empty service id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, false)
		_, err := uc.Create(context.Background(), ownerActor, " ", futureDate(), "Dhaka", "", "Owner")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("past booking date", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, false)
		_, err := uc.Create(context.Background(), ownerActor, "svc-1", time.Now().Add(-time.Hour), "Dhaka", "", "Owner")
		if !errors.Is(err, ErrInvalidBookingDate) {
			t.Fatalf("expected ErrInvalidBookingDate, got %v", err)
		}
	})

	t.Run("service not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svcRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewBookingUseCase(nil, svcRepo, false)

		svcRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, nil)

		_, err := uc.Create(context.Background(), ownerActor, "svc-1", futureDate(), "Dhaka", "", "Owner")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestBookingUseCase_Create_DenormalizesFromCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingRepository(ctrl)
	svcRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
	uc := NewBookingUseCase(repo, svcRepo, false)

	svcRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{
		ID:   "svc-1",
		Name: "Wedding Stage",
		Cost: 50000,
	}, nil)

	var captured entities.Booking
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			captured = b
			return b, nil
		})

	b, err := uc.Create(context.Background(), ownerActor, "svc-1", futureDate(), "  Dhaka  ", "call first", "Owner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID == "" {
		t.Fatal("expected generated booking id")
	}
	if captured.ServiceName != "Wedding Stage" || captured.ServiceCost != 50000 {
		t.Fatalf("expected catalog name/cost, got %q/%v", captured.ServiceName, captured.ServiceCost)
	}
	if captured.Location != "Dhaka" {
		t.Fatalf("expected trimmed location, got %q", captured.Location)
	}
	if captured.Status != entities.BookingStatusPending {
		t.Fatalf("expected pending status, got %q", captured.Status)
	}
	if captured.PaymentStatus != entities.PaymentStatusUnpaid {
		t.Fatalf("expected unpaid status, got %q", captured.PaymentStatus)
	}
	if captured.UserEmail != ownerActor.Email || captured.UserID != ownerActor.ID {
		t.Fatalf("expected owner identity on booking, got %q/%q", captured.UserID, captured.UserEmail)
	}
}

func TestBookingUseCase_Cancel(t *testing.T) {
	pendingUnpaid := entities.Booking{
		ID:            "bk-1",
		UserID:        ownerActor.ID,
		UserEmail:     ownerActor.Email,
		Status:        entities.BookingStatusPending,
		PaymentStatus: entities.PaymentStatusUnpaid,
	}

	t.Run("owner cancels pending unpaid booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(pendingUnpaid, nil)
		cancelled := pendingUnpaid
		cancelled.Status = entities.BookingStatusCancelled
		repo.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusCancelled).Return(cancelled, nil)

		got, err := uc.Cancel(context.Background(), ownerActor, "bk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BookingStatusCancelled {
			t.Fatalf("expected cancelled, got %q", got.Status)
		}
	})

	t.Run("paid booking is not cancellable and is never mutated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		paid := pendingUnpaid
		paid.Status = entities.BookingStatusConfirmed
		paid.PaymentStatus = entities.PaymentStatusPaid
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(paid, nil)

		_, err := uc.Cancel(context.Background(), ownerActor, "bk-1")
		if !errors.Is(err, ErrBookingAlreadyPaid) {
			t.Fatalf("expected ErrBookingAlreadyPaid, got %v", err)
		}
	})

	t.Run("already cancelled booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		done := pendingUnpaid
		done.Status = entities.BookingStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(done, nil)

		_, err := uc.Cancel(context.Background(), ownerActor, "bk-1")
		if !errors.Is(err, ErrBookingNotCancellable) {
			t.Fatalf("expected ErrBookingNotCancellable, got %v", err)
		}
	})

	t.Run("stranger is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(pendingUnpaid, nil)

		_, err := uc.Cancel(context.Background(), strangerActor, "bk-1")
		if !errors.Is(err, ErrBookingAccessDenied) {
			t.Fatalf("expected ErrBookingAccessDenied, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Booking{}, nil)

		_, err := uc.Cancel(context.Background(), ownerActor, "missing")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("deleted between load and write maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(pendingUnpaid, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusCancelled).Return(entities.Booking{}, nil)

		_, err := uc.Cancel(context.Background(), ownerActor, "bk-1")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestBookingUseCase_AssignDecorator(t *testing.T) {
	paid := entities.Booking{
		ID:            "bk-1",
		UserID:        ownerActor.ID,
		UserEmail:     ownerActor.Email,
		Status:        entities.BookingStatusConfirmed,
		PaymentStatus: entities.PaymentStatusPaid,
	}
	ref := entities.DecoratorRef{ID: "d-1", Name: "Deco", Email: "deco@example.com"}

	t.Run("admin assigns decorator to paid booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(paid, nil)
		assigned := paid
		assigned.AssignedDecorator = &ref
		assigned.ProjectStatus = entities.ProjectStatusAssigned
		repo.EXPECT().AssignDecorator(gomock.Any(), "bk-1", ref).Return(assigned, nil)

		got, err := uc.AssignDecorator(context.Background(), adminActor, "bk-1", ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AssignedDecorator == nil || got.AssignedDecorator.Email != ref.Email {
			t.Fatalf("expected decorator assigned, got %+v", got.AssignedDecorator)
		}
		if got.ProjectStatus != entities.ProjectStatusAssigned {
			t.Fatalf("expected project status Assigned, got %q", got.ProjectStatus)
		}
	})

	t.Run("unpaid booking rejects assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		unpaid := paid
		unpaid.Status = entities.BookingStatusPending
		unpaid.PaymentStatus = entities.PaymentStatusUnpaid
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(unpaid, nil)

		_, err := uc.AssignDecorator(context.Background(), adminActor, "bk-1", ref)
		if !errors.Is(err, ErrBookingUnpaid) {
			t.Fatalf("expected ErrBookingUnpaid, got %v", err)
		}
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(paid, nil)

		_, err := uc.AssignDecorator(context.Background(), ownerActor, "bk-1", ref)
		if !errors.Is(err, ErrBookingAccessDenied) {
			t.Fatalf("expected ErrBookingAccessDenied, got %v", err)
		}
	})

	t.Run("blank decorator ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(paid, nil)

		_, err := uc.AssignDecorator(context.Background(), adminActor, "bk-1", entities.DecoratorRef{Name: "Deco"})
		if !errors.Is(err, ErrInvalidDecoratorRef) {
			t.Fatalf("expected ErrInvalidDecoratorRef, got %v", err)
		}
	})
}

func TestBookingUseCase_AdvanceProjectStatus(t *testing.T) {
	assigned := entities.Booking{
		ID:            "bk-1",
		UserID:        ownerActor.ID,
		UserEmail:     ownerActor.Email,
		Status:        entities.BookingStatusConfirmed,
		PaymentStatus: entities.PaymentStatusPaid,
		ProjectStatus: entities.ProjectStatusPlanningPhase,
		AssignedDecorator: &entities.DecoratorRef{
			ID: "d-1", Name: "Deco", Email: decoratorActor.Email,
		},
	}

	t.Run("invalid status never touches the repository", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, false)
		_, err := uc.AdvanceProjectStatus(context.Background(), decoratorActor, "bk-1", "Teleported")
		if !errors.Is(err, ErrInvalidProjectStatus) {
			t.Fatalf("expected ErrInvalidProjectStatus, got %v", err)
		}
	})

	t.Run("assigned decorator advances status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(assigned, nil)
		next := assigned
		next.ProjectStatus = entities.ProjectStatusMaterialsPrepared
		repo.EXPECT().UpdateProjectStatus(gomock.Any(), "bk-1", entities.ProjectStatusMaterialsPrepared).Return(next, nil)

		got, err := uc.AdvanceProjectStatus(context.Background(), decoratorActor, "bk-1", entities.ProjectStatusMaterialsPrepared)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProjectStatus != entities.ProjectStatusMaterialsPrepared {
			t.Fatalf("expected Materials Prepared, got %q", got.ProjectStatus)
		}
	})

	t.Run("unassigned booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		bare := assigned
		bare.AssignedDecorator = nil
		bare.ProjectStatus = ""
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(bare, nil)

		_, err := uc.AdvanceProjectStatus(context.Background(), decoratorActor, "bk-1", entities.ProjectStatusPlanningPhase)
		if !errors.Is(err, ErrBookingNotAssigned) {
			t.Fatalf("expected ErrBookingNotAssigned, got %v", err)
		}
	})

	t.Run("other decorator is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(assigned, nil)

		other := policy.Actor{ID: "d-9", Email: "someone@example.com", Role: entities.RoleDecorator}
		_, err := uc.AdvanceProjectStatus(context.Background(), other, "bk-1", entities.ProjectStatusMaterialsPrepared)
		if !errors.Is(err, ErrBookingAccessDenied) {
			t.Fatalf("expected ErrBookingAccessDenied, got %v", err)
		}
	})

	t.Run("strict order rejects rollback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, true)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(assigned, nil)

		_, err := uc.AdvanceProjectStatus(context.Background(), decoratorActor, "bk-1", entities.ProjectStatusAssigned)
		if !errors.Is(err, ErrProjectStatusRollback) {
			t.Fatalf("expected ErrProjectStatusRollback, got %v", err)
		}
	})

	t.Run("loose order allows re-setting an earlier status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(assigned, nil)
		back := assigned
		back.ProjectStatus = entities.ProjectStatusAssigned
		repo.EXPECT().UpdateProjectStatus(gomock.Any(), "bk-1", entities.ProjectStatusAssigned).Return(back, nil)

		got, err := uc.AdvanceProjectStatus(context.Background(), decoratorActor, "bk-1", entities.ProjectStatusAssigned)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProjectStatus != entities.ProjectStatusAssigned {
			t.Fatalf("expected Assigned, got %q", got.ProjectStatus)
		}
	})
}

func TestBookingUseCase_Get_AccessControl(t *testing.T) {
	b := entities.Booking{
		ID:        "bk-1",
		UserEmail: ownerActor.Email,
		AssignedDecorator: &entities.DecoratorRef{
			ID: "d-1", Email: decoratorActor.Email,
		},
	}

	cases := []struct {
		name    string
		actor   policy.Actor
		wantErr error
	}{
		{"owner can view", ownerActor, nil},
		{"assigned decorator can view", decoratorActor, nil},
		{"admin can view", adminActor, nil},
		{"stranger is denied", strangerActor, ErrBookingAccessDenied},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBookingRepository(ctrl)
			uc := NewBookingUseCase(repo, nil, false)

			repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(b, nil)

			_, err := uc.Get(context.Background(), tc.actor, "bk-1")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestBookingUseCase_ListAll_FilterValidation(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, false)
		_, _, err := uc.ListAll(context.Background(), interfaces.BookingFilter{Status: "done"}, interfaces.ListQuery{})
		if !errors.Is(err, ErrInvalidBookingFilter) {
			t.Fatalf("expected ErrInvalidBookingFilter, got %v", err)
		}
	})

	t.Run("invalid payment filter", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, false)
		_, _, err := uc.ListAll(context.Background(), interfaces.BookingFilter{PaymentStatus: "settled"}, interfaces.ListQuery{})
		if !errors.Is(err, ErrInvalidBookingFilter) {
			t.Fatalf("expected ErrInvalidBookingFilter, got %v", err)
		}
	})

	t.Run("defaults are normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, false)

		want := interfaces.ListQuery{Page: 1, Limit: 10, SortKey: "createdAt"}
		repo.EXPECT().List(gomock.Any(), interfaces.BookingFilter{}, want).Return(nil, 0, nil)

		_, _, err := uc.ListAll(context.Background(), interfaces.BookingFilter{}, interfaces.ListQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
