package usecase

import (
	"context"
	"errors"
	"testing"

	"styledecor/internal/domain/entities"
	"styledecor/internal/domain/policy"
	"styledecor/internal/usecase/interfaces"
	mock_interfaces "styledecor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_BeginPaymentIntent_Validations(t *testing.T) {
	t.Run("empty booking id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, "bdt")
		_, err := uc.BeginPaymentIntent(context.Background(), ownerActor, " ", 100)
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, "bdt")
		_, err := uc.BeginPaymentIntent(context.Background(), ownerActor, "bk-1", 0)
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, "bdt")
		_, err := uc.BeginPaymentIntent(context.Background(), ownerActor, "bk-1", 100)
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, bookingRepo, gateway, "bdt")

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{}, nil)

		_, err := uc.BeginPaymentIntent(context.Background(), ownerActor, "bk-1", 100)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("cancelled booking never reaches the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, bookingRepo, gateway, "bdt")

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{
			ID:     "bk-1",
			Status: entities.BookingStatusCancelled,
		}, nil)

		_, err := uc.BeginPaymentIntent(context.Background(), ownerActor, "bk-1", 100)
		if !errors.Is(err, ErrBookingNotPayable) {
			t.Fatalf("expected ErrBookingNotPayable, got %v", err)
		}
	})
}

func TestPaymentUseCase_BeginPaymentIntent(t *testing.T) {
	booking := entities.Booking{ID: "bk-1", UserID: ownerActor.ID, UserEmail: ownerActor.Email}

	t.Run("amount converts to minor units and metadata carries the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, bookingRepo, gateway, "bdt")

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(booking, nil)
		gateway.EXPECT().
			CreateIntent(gomock.Any(), int64(50000_00), "bdt", map[string]string{
				"bookingId": "bk-1",
				"userId":    ownerActor.ID,
				"userEmail": ownerActor.Email,
			}).
			Return(interfaces.PaymentIntent{IntentID: "pi_123", ClientSecret: "pi_123_secret"}, nil)

		intent, err := uc.BeginPaymentIntent(context.Background(), ownerActor, "bk-1", 50000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.IntentID != "pi_123" || intent.ClientSecret != "pi_123_secret" {
			t.Fatalf("unexpected intent: %+v", intent)
		}
	})

	t.Run("gateway failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, bookingRepo, gateway, "bdt")

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(booking, nil)
		gateway.EXPECT().
			CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.PaymentIntent{}, errors.New("provider down"))

		_, err := uc.BeginPaymentIntent(context.Background(), ownerActor, "bk-1", 100)
		if !errors.Is(err, ErrPaymentGateway) {
			t.Fatalf("expected ErrPaymentGateway, got %v", err)
		}
	})
}

func TestPaymentUseCase_ConfirmPayment(t *testing.T) {
	booking := entities.Booking{
		ID:            "bk-1",
		UserID:        ownerActor.ID,
		UserEmail:     ownerActor.Email,
		Status:        entities.BookingStatusPending,
		PaymentStatus: entities.PaymentStatusUnpaid,
	}

	t.Run("records exactly one payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewPaymentUseCase(repo, bookingRepo, nil, "bdt")

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(booking, nil)

		var captured entities.Payment
		repo.EXPECT().ConfirmBookingPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				captured = p
				return p, nil
			})

		got, err := uc.ConfirmPayment(context.Background(), ownerActor, "bk-1", "pi_123", 50000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Fatal("expected generated payment id")
		}
		if captured.TransactionID != "pi_123" {
			t.Fatalf("expected transaction id pi_123, got %q", captured.TransactionID)
		}
		if captured.Status != entities.TransactionStatusCompleted {
			t.Fatalf("expected completed status, got %q", captured.Status)
		}
		if captured.PaymentMethod != paymentMethodStripe {
			t.Fatalf("expected stripe method, got %q", captured.PaymentMethod)
		}
		if captured.Amount != 50000 {
			t.Fatalf("expected amount 50000, got %v", captured.Amount)
		}
	})

	t.Run("replayed intent resolves to the recorded payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewPaymentUseCase(repo, bookingRepo, nil, "bdt")

		paid := booking
		paid.Status = entities.BookingStatusConfirmed
		paid.PaymentStatus = entities.PaymentStatusPaid
		paid.PaymentIntentID = "pi_123"

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(paid, nil)
		repo.EXPECT().ConfirmBookingPayment(gomock.Any(), gomock.Any()).
			Return(entities.Payment{}, interfaces.ErrBookingPaymentRecorded)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(paid, nil)

		existing := entities.Payment{ID: "pay-1", BookingID: "bk-1", TransactionID: "pi_123", Amount: 50000}
		repo.EXPECT().GetByTransactionID(gomock.Any(), "pi_123").Return(existing, nil)

		got, err := uc.ConfirmPayment(context.Background(), ownerActor, "bk-1", "pi_123", 50000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "pay-1" {
			t.Fatalf("expected existing payment pay-1, got %q", got.ID)
		}
	})

	t.Run("different intent on a paid booking conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewPaymentUseCase(repo, bookingRepo, nil, "bdt")

		paid := booking
		paid.PaymentStatus = entities.PaymentStatusPaid
		paid.PaymentIntentID = "pi_other"

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(paid, nil)
		repo.EXPECT().ConfirmBookingPayment(gomock.Any(), gomock.Any()).
			Return(entities.Payment{}, interfaces.ErrBookingPaymentRecorded)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(paid, nil)

		_, err := uc.ConfirmPayment(context.Background(), ownerActor, "bk-1", "pi_123", 50000)
		if !errors.Is(err, ErrPaymentConflict) {
			t.Fatalf("expected ErrPaymentConflict, got %v", err)
		}
	})

	t.Run("cancelled booking is not resurrected to paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewPaymentUseCase(repo, bookingRepo, nil, "bdt")

		cancelled := booking
		cancelled.Status = entities.BookingStatusCancelled

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(cancelled, nil)

		_, err := uc.ConfirmPayment(context.Background(), ownerActor, "bk-1", "pi_123", 100)
		if !errors.Is(err, ErrBookingNotPayable) {
			t.Fatalf("expected ErrBookingNotPayable, got %v", err)
		}
	})

	t.Run("cancellation racing the confirm loses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewPaymentUseCase(repo, bookingRepo, nil, "bdt")

		cancelled := booking
		cancelled.Status = entities.BookingStatusCancelled

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(booking, nil)
		repo.EXPECT().ConfirmBookingPayment(gomock.Any(), gomock.Any()).
			Return(entities.Payment{}, interfaces.ErrBookingPaymentRecorded)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(cancelled, nil)

		_, err := uc.ConfirmPayment(context.Background(), ownerActor, "bk-1", "pi_123", 100)
		if !errors.Is(err, ErrBookingNotPayable) {
			t.Fatalf("expected ErrBookingNotPayable, got %v", err)
		}
	})

	t.Run("replayed intent with a different amount conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewPaymentUseCase(repo, bookingRepo, nil, "bdt")

		paid := booking
		paid.Status = entities.BookingStatusConfirmed
		paid.PaymentStatus = entities.PaymentStatusPaid
		paid.PaymentIntentID = "pi_123"

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(paid, nil)
		repo.EXPECT().ConfirmBookingPayment(gomock.Any(), gomock.Any()).
			Return(entities.Payment{}, interfaces.ErrBookingPaymentRecorded)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(paid, nil)
		repo.EXPECT().GetByTransactionID(gomock.Any(), "pi_123").
			Return(entities.Payment{ID: "pay-1", BookingID: "bk-1", TransactionID: "pi_123", Amount: 50000}, nil)

		_, err := uc.ConfirmPayment(context.Background(), ownerActor, "bk-1", "pi_123", 60000)
		if !errors.Is(err, ErrPaymentConflict) {
			t.Fatalf("expected ErrPaymentConflict, got %v", err)
		}
	})

	t.Run("validations", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, "bdt")

		if _, err := uc.ConfirmPayment(context.Background(), ownerActor, "", "pi_123", 100); !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
		if _, err := uc.ConfirmPayment(context.Background(), ownerActor, "bk-1", " ", 100); !errors.Is(err, ErrInvalidPaymentIntentRef) {
			t.Fatalf("expected ErrInvalidPaymentIntentRef, got %v", err)
		}
		if _, err := uc.ConfirmPayment(context.Background(), ownerActor, "bk-1", "pi_123", -5); !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewPaymentUseCase(nil, bookingRepo, nil, "bdt")

		bookingRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Booking{}, nil)

		_, err := uc.ConfirmPayment(context.Background(), ownerActor, "missing", "pi_123", 100)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_ListAll_SumsRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewPaymentUseCase(repo, nil, nil, "bdt")

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Payment{
		{ID: "pay-1", Amount: 1500},
		{ID: "pay-2", Amount: 2500},
		{ID: "pay-3", Amount: 1000},
	}, nil)

	payments, revenue, err := uc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(payments))
	}
	if revenue != 5000 {
		t.Fatalf("expected revenue 5000, got %v", revenue)
	}
}

func TestPaymentUseCase_History_UsesActorID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewPaymentUseCase(repo, nil, nil, "bdt")

	repo.EXPECT().ListByUserID(gomock.Any(), ownerActor.ID).Return([]entities.Payment{{ID: "pay-1"}}, nil)

	payments, err := uc.History(context.Background(), ownerActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 1 || payments[0].ID != "pay-1" {
		t.Fatalf("unexpected payments: %+v", payments)
	}
}

func TestPaymentUseCase_GetByID(t *testing.T) {
	payment := entities.Payment{ID: "pay-1", UserID: ownerActor.ID, Amount: 100}

	cases := []struct {
		name    string
		actor   policy.Actor
		wantErr error
	}{
		{"owner can view", ownerActor, nil},
		{"admin can view", adminActor, nil},
		{"stranger is denied", strangerActor, ErrPaymentAccessDenied},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
			uc := NewPaymentUseCase(repo, nil, nil, "bdt")

			repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(payment, nil)

			_, err := uc.GetByID(context.Background(), tc.actor, "pay-1")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, "bdt")

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), ownerActor, "missing")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, "bdt")
		_, err := uc.GetByID(context.Background(), ownerActor, " ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})
}
