package request

// CreatePaymentIntentRequest asks the gateway for a client-confirmable
// intent. Amount is in major currency units.
type CreatePaymentIntentRequest struct {
	BookingID string  `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// ConfirmPaymentRequest records a client-confirmed intent against its
// booking.
type ConfirmPaymentRequest struct {
	BookingID       string  `json:"bookingId" binding:"required"`
	PaymentIntentID string  `json:"paymentIntentId" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
}
