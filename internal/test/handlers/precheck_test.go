package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"pdfmerge-backend/internal/handlers"
	"pdfmerge-backend/internal/models"
)

func precheckRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/precheck", handlers.NewPrecheckHandler().Precheck)
	return router
}

func TestPrecheck_OK(t *testing.T) {
	router := precheckRouter()

	w := postJSON(router, "/api/v1/precheck", models.PrecheckRequest{
		Files: []models.PrecheckFile{
			{Name: "a.pdf", Size: 1024, Pages: 1},
			{Name: "b.pdf", Size: 2048, Pages: 1},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.PrecheckResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Violations)
}

func TestPrecheck_Violations(t *testing.T) {
	router := precheckRouter()

	w := postJSON(router, "/api/v1/precheck", models.PrecheckRequest{
		Files: []models.PrecheckFile{
			{Name: "big.pdf", Size: 90 << 20, Pages: 300},
			{Name: "bigger.pdf", Size: 20 << 20, Pages: 300},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.PrecheckResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Len(t, resp.Violations, 2)
}
