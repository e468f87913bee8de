package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"supriplan/internal/importer"
)

// Import ingests an uploaded spreadsheet into the dataset and answers
// with the accepted/skipped counts.
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	uploaded, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arquivo não enviado"})
		return
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("supriplan_import_%d_%s", time.Now().UnixNano(), filepath.Base(uploaded.Filename)))
	if err := c.SaveUploadedFile(uploaded, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao salvar arquivo"})
		return
	}
	defer os.Remove(tempPath)

	coordinator := importer.NewCoordinator(h.store, h.history)
	report, err := coordinator.ImportFile(tempPath)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("falha na importação: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accepted": report.Accepted,
		"skipped":  report.Skipped,
		"report":   report,
	})
}

// ListImports returns the recorded import history.
// GET /api/imports
func (h *Handler) ListImports(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusOK, gin.H{"imports": []struct{}{}})
		return
	}

	entries, err := h.history.ListImports(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao consultar histórico"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imports": entries})
}
