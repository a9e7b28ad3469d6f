package entities

import "time"

// TransactionStatus is the outcome of a recorded payment transaction.
// Only completed transactions are persisted; there are no partial states.

type TransactionStatus string

const TransactionStatusCompleted TransactionStatus = "completed"

// Payment is the immutable record of a completed transaction against a
// booking. Created exactly once per booking, at confirmation of an
// externally verified payment intent; never mutated or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - GSI2 (transaction_id-index): transaction_id
type Payment struct {
	ID            string            `json:"_id"`
	UserID        string            `json:"userId"`
	UserEmail     string            `json:"userEmail"`
	BookingID     string            `json:"bookingId"`
	Amount        float64           `json:"amount"`
	TransactionID string            `json:"transactionId"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod string            `json:"paymentMethod"`
	CreatedAt     time.Time         `json:"createdAt"`
}
