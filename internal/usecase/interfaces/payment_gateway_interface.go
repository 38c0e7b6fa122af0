package interfaces

import (
	"context"
	"errors"
)

var (
	// ErrCardDeclined is returned by gateway implementations when the
	// processor refuses the charge outright (no step-up possible).
	ErrCardDeclined = errors.New("card declined")
	// ErrForeignPaymentMethod means the payment method is not attached to the
	// requesting user's processor customer.
	ErrForeignPaymentMethod = errors.New("payment method does not belong to user")
	// ErrInvalidSignature is returned by webhook verifiers for payloads that
	// do not verify against the signing secret.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// PaymentIntentResult is the gateway-neutral outcome of creating or charging
// a payment intent. ClientSecret is what the browser needs to finish (or
// step-up) the confirmation; it is never persisted.
type PaymentIntentResult struct {
	IntentID       string
	ClientSecret   string
	Succeeded      bool
	RequiresAction bool
}

// IPaymentGateway abstracts the external card-payment processor (Stripe).
//
// CreateIntent starts the two-phase new-card flow: the intent is created
// server-side, confirmed client-side, finalized by webhook.
//
// ChargeSavedMethod attempts an immediate off-session charge against a stored
// payment method. It may come back Succeeded, RequiresAction (step-up
// authentication, secret included) or fail with the gateway's declined error;
// in the declined case the returned result still carries the intent id when
// the processor allocated one.
//
// VerifyMethodOwner rejects payment methods not attached to the given
// processor customer.

type IPaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (PaymentIntentResult, error)
	ChargeSavedMethod(ctx context.Context, amountMinor int64, currency, paymentMethodID, customerID string, metadata map[string]string) (PaymentIntentResult, error)
	VerifyMethodOwner(ctx context.Context, paymentMethodID, customerID string) error
}

// WebhookEvent is a verified, minimally-parsed processor event. IntentID is
// empty for event types that do not reference a payment intent.
type WebhookEvent struct {
	Type     string
	IntentID string
}

// IWebhookVerifier checks a raw webhook payload against the configured
// signing secret and extracts the event envelope. The payload must be the
// unparsed request body; verification happens before any JSON handling.
type IWebhookVerifier interface {
	VerifyAndParse(payload []byte, signatureHeader string) (WebhookEvent, error)
}
