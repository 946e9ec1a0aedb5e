package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
	"pdfmerge-backend/internal/config"
	"pdfmerge-backend/internal/models"
	"pdfmerge-backend/internal/payments"
)

// SessionHandler backs the client's landing and success pages: price
// display before checkout, intent metadata readback after payment.
type SessionHandler struct {
	config  *config.Config
	gateway payments.Gateway
	logger  *zap.Logger
}

func NewSessionHandler(cfg *config.Config, gateway payments.Gateway, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		config:  cfg,
		gateway: gateway,
		logger:  logger,
	}
}

// GetPricing godoc
// @Summary     Publishable key and display price
// @Description Returns the Stripe publishable key and the human-readable price, resolved from the price catalog when configured.
// @Tags        checkout
// @Produce     json
// @Success     200 {object} models.PricingResponse
// @Router      /pricing [get]
func (h *SessionHandler) GetPricing(c *gin.Context) {
	amount := h.config.DefaultAmount
	if h.config.StripePriceID != "" {
		unitAmount, err := h.gateway.LookupUnitAmount(h.config.StripePriceID)
		if err != nil {
			// Display falls back to the default; checkout will surface the
			// misconfiguration if it persists.
			h.logger.Warn("price lookup failed, using default",
				zap.String("price_id", h.config.StripePriceID),
				zap.Error(err))
		} else {
			amount = unitAmount
		}
	}

	c.JSON(http.StatusOK, models.PricingResponse{
		PublishableKey: h.config.StripePublishableKey,
		PriceDisplay:   payments.FormatAmount(amount),
	})
}

// GetCheckoutStatus godoc
// @Summary     Order context for a completed payment
// @Description Verifies the referenced payment intent succeeded and returns the order context stored in its metadata.
// @Tags        checkout
// @Produce     json
// @Param       payment_intent query string true "Payment intent id"
// @Success     200 {object} models.CheckoutStatusResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /checkout/status [get]
func (h *SessionHandler) GetCheckoutStatus(c *gin.Context) {
	paymentIntentID := c.Query("payment_intent")
	if paymentIntentID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing payment_intent parameter"})
		return
	}

	intent, err := h.gateway.RetrieveIntent(paymentIntentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "payment verification failed",
			Message: err.Error(),
		})
		return
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "payment was not completed successfully"})
		return
	}

	c.JSON(http.StatusOK, models.CheckoutStatusResponse{
		SenderEmail: intent.Metadata["senderEmail"],
		FileCount:   intent.Metadata["fileCount"],
		TotalPages:  intent.Metadata["totalPages"],
	})
}
