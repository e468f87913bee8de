package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supriplan/internal/auth"
	"supriplan/internal/model"
)

// GetStatus reports dataset counts.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	records := h.store.Records()

	byStatus := map[model.Status]int{}
	imported := 0
	for _, rec := range records {
		byStatus[rec.Status]++
		if len(rec.ID) >= 4 && rec.ID[:4] == "imp_" {
			imported++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRecords":    len(records),
		"importedRecords": imported,
		"seededRecords":   len(records) - imported,
		"pending":         byStatus[model.StatusPending],
		"requested":       byStatus[model.StatusRequested],
		"approved":        byStatus[model.StatusApproved],
		"selectedTotal":   h.selection.Count(),
	})
}

// VerifyAdmin checks the admin password and returns the admin role.
// POST /api/auth/verify
func (h *Handler) VerifyAdmin(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !auth.VerifyAdminPassword(req.Password, h.adminPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "senha incorreta"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": model.RoleAdmin})
}

// ListRoutes returns the canonical route hierarchy.
// GET /api/routes
func (h *Handler) ListRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": h.routes})
}
