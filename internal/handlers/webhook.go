package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
	"pdfmerge-backend/internal/config"
	"pdfmerge-backend/internal/models"
	"pdfmerge-backend/internal/payments"
)

// Stripe sends events well under this; the cap keeps an attacker from
// streaming an arbitrarily large body into signature verification.
const webhookBodyLimit = 1 << 20

type WebhookHandler struct {
	config *config.Config
	logger *zap.Logger
}

func NewWebhookHandler(cfg *config.Config, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		config: cfg,
		logger: logger,
	}
}

// HandleWebhook godoc
// @Summary     Stripe webhook endpoint
// @Description Verifies the event signature against the shared signing secret and acknowledges receipt. payment_intent.succeeded events are logged for observability; no other event type has side effects.
// @Tags        webhooks
// @Accept      json
// @Produce     json
// @Param       Stripe-Signature header string true "Stripe signature header"
// @Success     200 {object} models.WebhookAckResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /webhooks/stripe [post]
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing stripe-signature header"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, webhookBodyLimit))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read request body",
			Message: err.Error(),
		})
		return
	}

	event, err := payments.VerifyWebhook(body, signature, h.config.StripeWebhookSecret)
	if err != nil {
		h.logger.Warn("webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid signature"})
		return
	}

	if event.Type == "payment_intent.succeeded" {
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			h.logger.Warn("failed to parse payment intent from event",
				zap.String("event_id", event.ID),
				zap.Error(err))
		} else {
			h.logger.Info("payment succeeded",
				zap.String("payment_intent_id", intent.ID),
				zap.Int64("amount", intent.Amount),
				zap.String("currency", string(intent.Currency)),
				zap.String("sender_email", intent.Metadata["senderEmail"]))
		}
	}

	// Verified events are always acknowledged; Stripe retries on non-2xx.
	c.JSON(http.StatusOK, models.WebhookAckResponse{Received: true})
}
