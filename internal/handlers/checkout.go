package handlers

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pdfmerge-backend/internal/config"
	"pdfmerge-backend/internal/models"
	"pdfmerge-backend/internal/payments"
	"pdfmerge-backend/internal/validate"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CheckoutHandler struct {
	config  *config.Config
	gateway payments.Gateway
	logger  *zap.Logger
}

func NewCheckoutHandler(cfg *config.Config, gateway payments.Gateway, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		config:  cfg,
		gateway: gateway,
		logger:  logger,
	}
}

// CreateIntent godoc
// @Summary     Create a payment intent for a merge order
// @Description Validates the checkout request, resolves the charge amount from the Stripe price catalog (or the fixed default), and creates a payment intent whose metadata carries the full order context.
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Param       request body models.ChargeRequest true "Checkout request"
// @Success     200 {object} models.CheckoutResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /checkout [post]
func (h *CheckoutHandler) CreateIntent(c *gin.Context) {
	var req models.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.SenderEmail == "" || req.FileCount == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing required fields"})
		return
	}
	if !emailPattern.MatchString(req.SenderEmail) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid email address"})
		return
	}
	if err := validate.CheckCounts(req.FileCount, req.TotalPages); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid file counts",
			Message: err.Error(),
		})
		return
	}

	amount := h.config.DefaultAmount
	if h.config.StripePriceID != "" {
		unitAmount, err := h.gateway.LookupUnitAmount(h.config.StripePriceID)
		if err != nil {
			h.logger.Error("price lookup failed",
				zap.String("price_id", h.config.StripePriceID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "price not configured"})
			return
		}
		amount = unitAmount
	}

	metadata := map[string]string{
		"productId":   h.config.ProductID,
		"senderEmail": req.SenderEmail,
		"fileCount":   strconv.Itoa(req.FileCount),
		"totalPages":  strconv.Itoa(req.TotalPages),
	}
	if req.FaxNumber != "" {
		metadata["faxNumber"] = req.FaxNumber
	}
	if req.SenderName != "" {
		metadata["senderName"] = req.SenderName
	}

	intent, err := h.gateway.CreateIntent(payments.IntentParams{
		Amount:   amount,
		Currency: h.config.DefaultCurrency,
		Metadata: metadata,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create payment intent",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.CheckoutResponse{ClientSecret: intent.ClientSecret})
}
