package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pdfmerge-backend/internal/models"
	"pdfmerge-backend/internal/validate"
)

type PrecheckHandler struct{}

func NewPrecheckHandler() *PrecheckHandler {
	return &PrecheckHandler{}
}

// Precheck godoc
// @Summary     Validate aggregate merge constraints
// @Description Checks the selected files against the combined limits (file count, total pages, total size) before the client is offered checkout.
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Param       request body models.PrecheckRequest true "Selected files"
// @Success     200 {object} models.PrecheckResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /precheck [post]
func (h *PrecheckHandler) Precheck(c *gin.Context) {
	var req models.PrecheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	files := make([]validate.FileStat, len(req.Files))
	for i, f := range req.Files {
		files[i] = validate.FileStat{
			Name:  f.Name,
			Size:  f.Size,
			Pages: f.Pages,
		}
	}

	violations := validate.Aggregate(files)
	c.JSON(http.StatusOK, models.PrecheckResponse{
		OK:         len(violations) == 0,
		Violations: violations,
	})
}
