package payments

import (
	"context"
	"errors"
	"log"

	"styledecor/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeGateway issues payment intents via the Stripe API. The client
// secret goes to the browser SDK for confirmation; the intent id comes
// back as the transaction reference.
type StripeGateway struct {
	api *client.API
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	api := &client.API{}
	api.Init(secretKey, nil)
	log.Printf("[payment][gateway] Stripe client initialized")

	return &StripeGateway{api: api}, nil
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (interfaces.PaymentIntent, error) {
	log.Printf("[payment][gateway] create intent start amount=%d currency=%s", amountMinorUnits, currency)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		log.Printf("[payment][gateway] create intent failed err=%v", err)
		return interfaces.PaymentIntent{}, err
	}

	log.Printf("[payment][gateway] create intent success intent_id=%s", pi.ID)
	return interfaces.PaymentIntent{IntentID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
