package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"styledecor/internal/domain/entities"
	"styledecor/internal/domain/policy"
	"styledecor/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentAmount    = errors.New("invalid payment amount")
	ErrInvalidPaymentIntentRef = errors.New("invalid payment intent reference")
	ErrInvalidPaymentID        = errors.New("invalid payment id")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrPaymentAccessDenied     = errors.New("access to payment denied")
	ErrPaymentConflict         = errors.New("booking already paid with a different payment intent")
	ErrBookingNotPayable       = errors.New("cancelled booking cannot be paid")
	ErrPaymentGateway          = errors.New("payment gateway failure")
)

const paymentMethodStripe = "stripe"

// IPaymentUseCase owns payment reconciliation: issuing gateway intents
// and recording confirmed transactions against bookings.

type IPaymentUseCase interface {
	BeginPaymentIntent(ctx context.Context, actor policy.Actor, bookingID string, amount float64) (interfaces.PaymentIntent, error)
	ConfirmPayment(ctx context.Context, actor policy.Actor, bookingID, intentRef string, amount float64) (entities.Payment, error)
	History(ctx context.Context, actor policy.Actor) ([]entities.Payment, error)
	ListAll(ctx context.Context) ([]entities.Payment, float64, error)
	GetByID(ctx context.Context, actor policy.Actor, id string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	bookingRepo interfaces.IBookingRepository
	gateway     interfaces.IPaymentGateway
	currency    string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, bookingRepo interfaces.IBookingRepository, gateway interfaces.IPaymentGateway, currency string) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, bookingRepo: bookingRepo, gateway: gateway, currency: currency}
}

func (u *PaymentUseCase) BeginPaymentIntent(ctx context.Context, actor policy.Actor, bookingID string, amount float64) (interfaces.PaymentIntent, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return interfaces.PaymentIntent{}, ErrInvalidBookingID
	}
	if amount <= 0 {
		return interfaces.PaymentIntent{}, ErrInvalidPaymentAmount
	}
	if u.gateway == nil {
		return interfaces.PaymentIntent{}, errors.New("payment gateway not configured")
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return interfaces.PaymentIntent{}, err
	}
	if b.ID == "" {
		return interfaces.PaymentIntent{}, ErrBookingNotFound
	}
	if b.Status == entities.BookingStatusCancelled {
		return interfaces.PaymentIntent{}, ErrBookingNotPayable
	}

	log.Printf("[payment][usecase] creating intent booking_id=%s amount=%.2f currency=%s", bookingID, amount, u.currency)
	intent, err := u.gateway.CreateIntent(ctx, toMinorUnits(amount), u.currency, map[string]string{
		"bookingId": bookingID,
		"userId":    actor.ID,
		"userEmail": actor.Email,
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway intent failed booking_id=%s err=%v", bookingID, err)
		return interfaces.PaymentIntent{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	log.Printf("[payment][usecase] intent created booking_id=%s intent_id=%s", bookingID, intent.IntentID)
	return intent, nil
}

// ConfirmPayment records a client-confirmed payment intent. The payment
// insert and the booking's paid/confirmed flip happen in one
// transactional write; replaying the same intent ref returns the
// already-recorded payment instead of double-inserting.
func (u *PaymentUseCase) ConfirmPayment(ctx context.Context, actor policy.Actor, bookingID, intentRef string, amount float64) (entities.Payment, error) {
	bookingID = strings.TrimSpace(bookingID)
	intentRef = strings.TrimSpace(intentRef)
	if bookingID == "" {
		return entities.Payment{}, ErrInvalidBookingID
	}
	if intentRef == "" {
		return entities.Payment{}, ErrInvalidPaymentIntentRef
	}
	if amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Payment{}, err
	}
	if b.ID == "" {
		return entities.Payment{}, ErrBookingNotFound
	}
	// Cancelled is terminal: a confirmation must not resurrect the
	// booking to paid/confirmed. The repository write re-checks this
	// condition so a cancellation racing the confirm loses too.
	if b.Status == entities.BookingStatusCancelled {
		return entities.Payment{}, ErrBookingNotPayable
	}

	p := entities.Payment{
		ID:            uuid.NewString(),
		UserID:        actor.ID,
		UserEmail:     actor.Email,
		BookingID:     bookingID,
		Amount:        amount,
		TransactionID: intentRef,
		Status:        entities.TransactionStatusCompleted,
		PaymentMethod: paymentMethodStripe,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.repo.ConfirmBookingPayment(ctx, p)
	if err == nil {
		log.Printf("[payment][usecase] confirmed booking_id=%s transaction_id=%s amount=%.2f", bookingID, intentRef, amount)
		return created, nil
	}
	if !errors.Is(err, interfaces.ErrBookingPaymentRecorded) {
		return entities.Payment{}, err
	}

	// The transactional condition failed: either the booking already
	// carries a payment-intent ref (a replay) or it was cancelled
	// between the load above and the write.
	return u.resolveReplay(ctx, bookingID, intentRef, amount)
}

func (u *PaymentUseCase) resolveReplay(ctx context.Context, bookingID, intentRef string, amount float64) (entities.Payment, error) {
	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Payment{}, err
	}
	if b.Status == entities.BookingStatusCancelled && b.PaymentIntentID == "" {
		return entities.Payment{}, ErrBookingNotPayable
	}
	if b.PaymentIntentID != intentRef {
		return entities.Payment{}, ErrPaymentConflict
	}

	existing, err := u.repo.GetByTransactionID(ctx, intentRef)
	if err != nil {
		return entities.Payment{}, err
	}
	if existing.ID == "" {
		return entities.Payment{}, ErrPaymentConflict
	}
	if existing.Amount != amount {
		return entities.Payment{}, ErrPaymentConflict
	}
	log.Printf("[payment][usecase] replayed confirmation booking_id=%s transaction_id=%s", bookingID, intentRef)
	return existing, nil
}

func (u *PaymentUseCase) History(ctx context.Context, actor policy.Actor) ([]entities.Payment, error) {
	return u.repo.ListByUserID(ctx, actor.ID)
}

// ListAll returns every payment, newest first, plus the request-time
// revenue total.
func (u *PaymentUseCase) ListAll(ctx context.Context) ([]entities.Payment, float64, error) {
	payments, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	var revenue float64
	for _, p := range payments {
		revenue += p.Amount
	}
	return payments, revenue, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, actor policy.Actor, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if !policy.AllowPayment(actor, policy.ActionViewPayment, p) {
		return entities.Payment{}, ErrPaymentAccessDenied
	}
	return p, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
