package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App is the process configuration, loaded from the environment
// (godotenv autoload picks up a local .env in development).
type App struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"10080"`

	// Stripe
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	PaymentCurrency string `envconfig:"PAYMENT_CURRENCY" default:"bdt"`

	// Booking policy: enforce forward-only project-status progression.
	ProjectStatusStrict bool `envconfig:"PROJECT_STATUS_STRICT" default:"false"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
