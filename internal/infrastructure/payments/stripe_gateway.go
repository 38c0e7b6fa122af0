package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"tripmarket/internal/usecase/interfaces"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeGateway talks to Stripe's payment-intent API. The client is built
// once at startup and read-only afterwards.
type StripeGateway struct {
	api *client.API
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	api := client.New(secretKey, nil)
	log.Printf("[payment][gateway] Stripe client initialized")
	return &StripeGateway{api: api}, nil
}

// CreateIntent creates an unconfirmed payment intent. The returned client
// secret lets the browser confirm the payment directly with Stripe; the
// outcome arrives later through the webhook.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (interfaces.PaymentIntentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
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
		return interfaces.PaymentIntentResult{}, err
	}
	log.Printf("[payment][gateway] intent created intent_id=%s status=%s", pi.ID, pi.Status)

	return interfaces.PaymentIntentResult{IntentID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// ChargeSavedMethod confirms an off-session charge against a stored payment
// method in one call. authentication_required comes back as a RequiresAction
// result (with the step-up secret), card_declined as ErrCardDeclined; both
// keep the intent id the processor allocated.
func (g *StripeGateway) ChargeSavedMethod(ctx context.Context, amountMinor int64, currency, paymentMethodID, customerID string, metadata map[string]string) (interfaces.PaymentIntentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountMinor),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(paymentMethodID),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			res := interfaces.PaymentIntentResult{}
			if stripeErr.PaymentIntent != nil {
				res.IntentID = stripeErr.PaymentIntent.ID
				res.ClientSecret = stripeErr.PaymentIntent.ClientSecret
			}
			switch stripeErr.Code {
			case stripe.ErrorCodeAuthenticationRequired:
				log.Printf("[payment][gateway] off-session charge needs step-up intent_id=%s", res.IntentID)
				res.RequiresAction = true
				return res, nil
			case stripe.ErrorCodeCardDeclined:
				log.Printf("[payment][gateway] off-session charge declined intent_id=%s decline_code=%s", res.IntentID, stripeErr.DeclineCode)
				return res, interfaces.ErrCardDeclined
			}
		}
		log.Printf("[payment][gateway] off-session charge failed err=%v", err)
		return interfaces.PaymentIntentResult{}, err
	}

	res := interfaces.PaymentIntentResult{IntentID: pi.ID, ClientSecret: pi.ClientSecret}
	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		res.Succeeded = true
	case stripe.PaymentIntentStatusRequiresAction:
		res.RequiresAction = true
	}
	log.Printf("[payment][gateway] off-session charge done intent_id=%s status=%s", pi.ID, pi.Status)
	return res, nil
}

func (g *StripeGateway) VerifyMethodOwner(ctx context.Context, paymentMethodID, customerID string) error {
	params := &stripe.PaymentMethodParams{}
	params.Context = ctx
	pm, err := g.api.PaymentMethods.Get(paymentMethodID, params)
	if err != nil {
		log.Printf("[payment][gateway] payment method lookup failed pm=%s err=%v", paymentMethodID, err)
		return interfaces.ErrForeignPaymentMethod
	}
	if pm.Customer == nil || customerID == "" || pm.Customer.ID != customerID {
		return interfaces.ErrForeignPaymentMethod
	}
	return nil
}

// StripeWebhookVerifier validates processor events against the endpoint's
// signing secret. It must be handed the raw request body; any prior JSON
// parsing breaks signature verification.
type StripeWebhookVerifier struct {
	secret string
}

var _ interfaces.IWebhookVerifier = (*StripeWebhookVerifier)(nil)

func NewStripeWebhookVerifier(secret string) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: secret}
}

func (v *StripeWebhookVerifier) VerifyAndParse(payload []byte, signatureHeader string) (interfaces.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, v.secret)
	if err != nil {
		return interfaces.WebhookEvent{}, interfaces.ErrInvalidSignature
	}

	out := interfaces.WebhookEvent{Type: string(event.Type)}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err == nil {
		out.IntentID = pi.ID
	}
	return out, nil
}
