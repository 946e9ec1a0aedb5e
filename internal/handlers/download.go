package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pdfmerge-backend/internal/logging"
	"pdfmerge-backend/internal/models"
)

// Download ids are UUIDv4 strings. Anything else is rejected before it can
// reach a storage lookup.
var downloadIDPattern = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)

type DownloadHandler struct {
	store  ArtifactStore
	logger *zap.Logger
}

func NewDownloadHandler(store ArtifactStore, logger *zap.Logger) *DownloadHandler {
	return &DownloadHandler{
		store:  store,
		logger: logger,
	}
}

// Download godoc
// @Summary     Download a merged PDF by its opaque id
// @Description Streams the stored artifact with attachment disposition. A missing artifact answers 404 without distinguishing expired from never-existed.
// @Tags        download
// @Produce     application/pdf
// @Param       id path string true "Download id (UUID)"
// @Success     200 {file} binary
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /download/{id} [get]
func (h *DownloadHandler) Download(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "storage not configured"})
		return
	}

	id := c.Param("id")
	if !downloadIDPattern.MatchString(id) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid download ID"})
		return
	}

	data, err := h.store.Get(id)
	if err != nil {
		h.logger.Info("download miss", logging.DownloadID(id))
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "download link expired or not found"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="merged.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
