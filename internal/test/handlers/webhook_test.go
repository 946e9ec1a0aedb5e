package handlers_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"pdfmerge-backend/internal/handlers"
)

func webhookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewWebhookHandler(testConfig(), zap.NewNop())
	router.POST("/api/v1/webhooks/stripe", handler.HandleWebhook)
	return router
}

// signPayload produces a Stripe-Signature header value using Stripe's v1
// scheme: HMAC-SHA256 over "<timestamp>.<payload>".
func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func webhookRequest(body []byte, signature string) *http.Request {
	req, _ := http.NewRequest("POST", "/api/v1/webhooks/stripe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	return req
}

const succeededEvent = `{
	"id": "evt_test_1",
	"api_version": "2020-08-27",
	"type": "payment_intent.succeeded",
	"data": {
		"object": {
			"id": "pi_test_1",
			"amount": 399,
			"currency": "usd",
			"metadata": {"senderEmail": "user@example.com"}
		}
	}
}`

func TestWebhook_MissingSignature(t *testing.T) {
	router := webhookRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, webhookRequest([]byte(succeededEvent), ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing stripe-signature")
}

func TestWebhook_TamperedBody(t *testing.T) {
	router := webhookRouter()

	signature := signPayload([]byte(succeededEvent), testConfig().StripeWebhookSecret, time.Now())
	tampered := []byte(`{"id": "evt_evil", "type": "payment_intent.succeeded", "data": {"object": {}}}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, webhookRequest(tampered, signature))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid signature")
}

func TestWebhook_WrongSecret(t *testing.T) {
	router := webhookRouter()

	signature := signPayload([]byte(succeededEvent), "whsec_someone_else", time.Now())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, webhookRequest([]byte(succeededEvent), signature))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhook_ValidSucceededEvent(t *testing.T) {
	router := webhookRouter()

	signature := signPayload([]byte(succeededEvent), testConfig().StripeWebhookSecret, time.Now())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, webhookRequest([]byte(succeededEvent), signature))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())
}

func TestWebhook_AcknowledgesAnyVerifiedEventType(t *testing.T) {
	router := webhookRouter()

	body := []byte(`{"id": "evt_test_2", "api_version": "2020-08-27", "type": "charge.refunded", "data": {"object": {}}}`)
	signature := signPayload(body, testConfig().StripeWebhookSecret, time.Now())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, webhookRequest(body, signature))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())
}
