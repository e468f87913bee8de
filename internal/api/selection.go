package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSelection returns the selection snapshot plus the tri-state
// status of every route, for rendering the tri-state controls.
// GET /api/selection
func (h *Handler) GetSelection(c *gin.Context) {
	status := make(map[string]string, len(h.routes))
	for _, route := range h.routes {
		status[route.RouteName] = string(h.selection.StatusOf(route.RouteName, route.Comarcas))
	}

	c.JSON(http.StatusOK, gin.H{
		"selected": h.selection.Snapshot(),
		"status":   status,
		"total":    h.selection.Count(),
	})
}

// ToggleLocation flips one comarca's selection.
// POST /api/selection/location
func (h *Handler) ToggleLocation(c *gin.Context) {
	var req struct {
		Route   string `json:"route"`
		Comarca string `json:"comarca"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Route == "" || req.Comarca == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "route and comarca are required"})
		return
	}

	h.selection.ToggleLeaf(req.Route, req.Comarca)
	h.GetSelection(c)
}

// ToggleRoute selects or clears a whole route.
// POST /api/selection/route
func (h *Handler) ToggleRoute(c *gin.Context) {
	var req struct {
		Route string `json:"route"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Route == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "route is required"})
		return
	}

	for _, route := range h.routes {
		if route.RouteName == req.Route {
			h.selection.ToggleRoute(route.RouteName, route.Comarcas)
			h.GetSelection(c)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "rota desconhecida"})
}

// ClearSelection drops the whole selection.
// DELETE /api/selection
func (h *Handler) ClearSelection(c *gin.Context) {
	h.selection.Clear()
	c.JSON(http.StatusOK, gin.H{"total": 0})
}
