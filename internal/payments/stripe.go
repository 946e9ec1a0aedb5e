// Package payments wraps the Stripe SDK behind a small gateway interface so
// handlers can be tested against fakes.
package payments

import (
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// IntentParams carries the order context attached to a new payment intent.
// Intent metadata is the only place this context is persisted.
type IntentParams struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

// Gateway is the subset of payment-processor operations the handlers need.
type Gateway interface {
	CreateIntent(params IntentParams) (*stripe.PaymentIntent, error)
	RetrieveIntent(id string) (*stripe.PaymentIntent, error)
	LookupUnitAmount(priceID string) (int64, error)
}

// StripeGateway implements Gateway using the real Stripe SDK.
type StripeGateway struct {
	sc *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{sc: client.New(secretKey, nil)}
}

func (g *StripeGateway) CreateIntent(params IntentParams) (*stripe.PaymentIntent, error) {
	piParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.Amount),
		Currency: stripe.String(params.Currency),
	}
	for key, value := range params.Metadata {
		piParams.AddMetadata(key, value)
	}

	intent, err := g.sc.PaymentIntents.New(piParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent, nil
}

func (g *StripeGateway) RetrieveIntent(id string) (*stripe.PaymentIntent, error) {
	intent, err := g.sc.PaymentIntents.Get(id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent %s: %w", id, err)
	}
	return intent, nil
}

// LookupUnitAmount resolves the charge amount from the Stripe price catalog.
func (g *StripeGateway) LookupUnitAmount(priceID string) (int64, error) {
	price, err := g.sc.Prices.Get(priceID, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to retrieve price %s: %w", priceID, err)
	}
	return price.UnitAmount, nil
}

// VerifyWebhook checks the Stripe-Signature header against the signing
// secret and returns the parsed event. Signature verification is the sole
// authentication mechanism for the webhook endpoint.
func VerifyWebhook(payload []byte, sigHeader, secret string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, sigHeader, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}

// FormatAmount renders a minor-unit amount as a human-readable price,
// e.g. 399 -> "$3.99".
func FormatAmount(amount int64) string {
	return fmt.Sprintf("$%.2f", float64(amount)/100)
}
