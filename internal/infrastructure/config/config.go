package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds service-level settings. Table names stay with their repositories
// and AWS settings with the DynamoDB client; this struct only carries what the
// wiring in routes needs.
type App struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Role tokens are issued by the auth service; we only verify them.
	JWTSecret string `envconfig:"JWT_SECRET"`

	// Payment processor. WebhookSecret signs incoming processor events and is
	// required for the webhook route to be useful.
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	Currency            string `envconfig:"PAYMENT_CURRENCY" default:"usd"`

	// Notifications (optional; service runs without a broker).
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"tripmarket.bookings"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
