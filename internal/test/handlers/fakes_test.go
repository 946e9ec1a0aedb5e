package handlers_test

import (
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"pdfmerge-backend/internal/config"
	"pdfmerge-backend/internal/email"
	"pdfmerge-backend/internal/payments"
	"pdfmerge-backend/internal/supabase"
)

func testConfig() *config.Config {
	return &config.Config{
		StripeSecretKey:      "sk_test_123",
		StripePublishableKey: "pk_test_123",
		StripeWebhookSecret:  "whsec_test_123",
		ProductID:            "pdf-merge",
		DefaultAmount:        399,
		DefaultCurrency:      "usd",
		SiteURL:              "https://merge.example.com",
	}
}

type fakeGateway struct {
	intents    map[string]*stripe.PaymentIntent
	unitAmount int64
	priceErr   error
	created    []payments.IntentParams
	createErr  error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{intents: make(map[string]*stripe.PaymentIntent)}
}

func (g *fakeGateway) CreateIntent(params payments.IntentParams) (*stripe.PaymentIntent, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.created = append(g.created, params)
	intent := &stripe.PaymentIntent{
		ID:           fmt.Sprintf("pi_fake_%d", len(g.created)),
		Amount:       params.Amount,
		Currency:     stripe.Currency(params.Currency),
		Status:       stripe.PaymentIntentStatusRequiresPaymentMethod,
		ClientSecret: fmt.Sprintf("pi_fake_%d_secret", len(g.created)),
		Metadata:     params.Metadata,
	}
	g.intents[intent.ID] = intent
	return intent, nil
}

func (g *fakeGateway) RetrieveIntent(id string) (*stripe.PaymentIntent, error) {
	intent, ok := g.intents[id]
	if !ok {
		return nil, fmt.Errorf("no such payment intent: %s", id)
	}
	return intent, nil
}

func (g *fakeGateway) LookupUnitAmount(priceID string) (int64, error) {
	if g.priceErr != nil {
		return 0, g.priceErr
	}
	return g.unitAmount, nil
}

type memStore struct {
	objects map[string][]byte
	metas   map[string]supabase.ArtifactMetadata
	putErr  error
}

func newMemStore() *memStore {
	return &memStore{
		objects: make(map[string][]byte),
		metas:   make(map[string]supabase.ArtifactMetadata),
	}
}

func (s *memStore) Put(id string, data []byte, meta supabase.ArtifactMetadata) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.objects[id] = data
	s.metas[id] = meta
	return nil
}

func (s *memStore) Get(id string) ([]byte, error) {
	data, ok := s.objects[id]
	if !ok {
		return nil, fmt.Errorf("object not found: %s", id)
	}
	return data, nil
}

type captureNotifier struct {
	sent []email.Confirmation
}

func (n *captureNotifier) Dispatch(c email.Confirmation) {
	n.sent = append(n.sent, c)
}

// failingSender always reports delivery failure, for asserting that email
// outcome never leaks into the finalize response.
type failingSender struct {
	attempts int
}

func (s *failingSender) Send(c email.Confirmation) bool {
	s.attempts++
	return false
}
