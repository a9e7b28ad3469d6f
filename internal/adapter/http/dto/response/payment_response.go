package response

import "styledecor/internal/domain/entities"

// PaymentIntentResponse hands the client what it needs to confirm the
// intent in the browser SDK.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	IntentID     string `json:"intentId"`
}

// PaymentListResponse is the admin revenue view: every payment plus the
// request-time totals.
type PaymentListResponse struct {
	Payments     []entities.Payment `json:"payments"`
	Count        int                `json:"count"`
	TotalRevenue float64            `json:"totalRevenue"`
}

func FromPayments(payments []entities.Payment, revenue float64) PaymentListResponse {
	if payments == nil {
		payments = []entities.Payment{}
	}
	return PaymentListResponse{Payments: payments, Count: len(payments), TotalRevenue: revenue}
}
