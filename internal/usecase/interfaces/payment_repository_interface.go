package interfaces

import (
	"context"
	"errors"

	"styledecor/internal/domain/entities"
)

// ErrBookingPaymentRecorded reports that the booking already carries a
// payment-intent reference, i.e. a confirmation was recorded before.
// Callers resolve it by looking up the existing Payment.
var ErrBookingPaymentRecorded = errors.New("booking already has a recorded payment")

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// ConfirmBookingPayment atomically inserts the payment record and marks
// the referenced booking paid/confirmed in a single transactional write,
// conditioned on the booking not yet carrying a payment-intent ref. A
// replay fails with ErrBookingPaymentRecorded without writing anything.

type IPaymentRepository interface {
	ConfirmBookingPayment(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.Payment, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error)
	ListAll(ctx context.Context) ([]entities.Payment, error)
}
