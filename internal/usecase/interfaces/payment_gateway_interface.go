package interfaces

import "context"

// PaymentIntent is the client-confirmable handle issued by the payment
// provider. The client secret is handed to the browser SDK; the intent
// id comes back on confirmation as the transaction reference.
type PaymentIntent struct {
	IntentID     string
	ClientSecret string
}

// IPaymentGateway abstracts the external payment provider (Stripe).
//
// Amounts are in the currency's minor unit, as the provider requires.
type IPaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (PaymentIntent, error)
}
