package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
	"pdfmerge-backend/internal/config"
	"pdfmerge-backend/internal/email"
	"pdfmerge-backend/internal/logging"
	"pdfmerge-backend/internal/models"
	"pdfmerge-backend/internal/payments"
	"pdfmerge-backend/internal/supabase"
)

const maxUploadSize = 100 << 20 // 100 MiB

// ArtifactStore is the storage surface the finalize and download handlers
// need. Implemented by supabase.StorageClient.
type ArtifactStore interface {
	Put(id string, data []byte, meta supabase.ArtifactMetadata) error
	Get(id string) ([]byte, error)
}

// Notifier submits a confirmation email without blocking. Implemented by
// email.Dispatcher.
type Notifier interface {
	Dispatch(c email.Confirmation)
}

type FinalizeHandler struct {
	config   *config.Config
	gateway  payments.Gateway
	store    ArtifactStore
	notifier Notifier
	logger   *zap.Logger
}

func NewFinalizeHandler(cfg *config.Config, gateway payments.Gateway, store ArtifactStore, notifier Notifier, logger *zap.Logger) *FinalizeHandler {
	return &FinalizeHandler{
		config:   cfg,
		gateway:  gateway,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Finalize godoc
// @Summary     Store a merged PDF and deliver its download link
// @Description Accepts the client-merged PDF, re-verifies the referenced payment intent server-side, stores the artifact under a fresh opaque id, and dispatches the confirmation email. The response does not depend on the email outcome.
// @Tags        merged
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Merged PDF"
// @Param       paymentIntentId formData string true "Payment intent id"
// @Param       senderEmail formData string true "Recipient email"
// @Success     200 {object} models.FinalizeResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /merged [post]
func (h *FinalizeHandler) Finalize(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing file",
			Message: err.Error(),
		})
		return
	}
	paymentIntentID := strings.TrimSpace(c.PostForm("paymentIntentId"))
	senderEmail := strings.TrimSpace(c.PostForm("senderEmail"))
	if paymentIntentID == "" || senderEmail == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing paymentIntentId or senderEmail"})
		return
	}

	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "file too large (max 100 MB)"})
		return
	}
	if fileHeader.Header.Get("Content-Type") != "application/pdf" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "file must be a PDF"})
		return
	}

	// Payment is the sole delivery gate. The status is always re-fetched from
	// Stripe; a client-supplied status would be trivially forgeable.
	intent, err := h.gateway.RetrieveIntent(paymentIntentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "payment verification failed",
			Message: err.Error(),
		})
		return
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "payment not completed"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to open file",
			Message: err.Error(),
		})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read file",
			Message: err.Error(),
		})
		return
	}

	id := uuid.New().String()
	meta := supabase.ArtifactMetadata{
		UploadedAt:  time.Now().UTC(),
		SenderEmail: senderEmail,
	}
	if err := h.store.Put(id, data, meta); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store merged PDF",
			Message: err.Error(),
		})
		return
	}

	origin := h.config.SiteURL
	if origin == "" {
		origin = requestOrigin(c)
	}
	downloadURL := fmt.Sprintf("%s/download/%s", origin, id)

	h.logger.Info("merged PDF stored",
		logging.DownloadID(id),
		logging.PaymentIntentID(intent.ID),
		zap.Int("size", len(data)))

	h.notifier.Dispatch(email.Confirmation{
		Recipient:    senderEmail,
		DownloadLink: downloadURL,
		Price:        payments.FormatAmount(intent.Amount),
	})

	c.JSON(http.StatusOK, models.FinalizeResponse{
		DownloadID:  id,
		DownloadURL: downloadURL,
	})
}

func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}
