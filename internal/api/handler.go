// Package api exposes the dataset, selection and import pipeline over
// HTTP for the session UI.
package api

import (
	"github.com/gin-gonic/gin"

	"supriplan/internal/model"
	"supriplan/internal/selection"
	"supriplan/internal/store"
)

// Handler wires the HTTP surface to the stores.
type Handler struct {
	store         *store.MemoryStore
	selection     *selection.Store
	history       *store.HistoryStore
	routes        []model.LocationStructure
	adminPassword string
}

// NewHandler creates the API handler. history may be nil when the
// import log is disabled.
func NewHandler(dataset *store.MemoryStore, sel *selection.Store, history *store.HistoryStore, routes []model.LocationStructure, adminPassword string) *Handler {
	return &Handler{
		store:         dataset,
		selection:     sel,
		history:       history,
		routes:        routes,
		adminPassword: adminPassword,
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// System status
	router.GET("/status", h.GetStatus)
	router.POST("/auth/verify", h.VerifyAdmin)

	// Reference data
	router.GET("/routes", h.ListRoutes)

	// Dataset
	router.GET("/records", h.ListRecords)
	router.POST("/records", h.AddRecord)
	router.PATCH("/records/:id", h.UpdateRecord)
	router.POST("/records/delete", h.DeleteRecords)

	// Import
	router.POST("/import", h.Import)
	router.GET("/imports", h.ListImports)

	// Selection
	router.GET("/selection", h.GetSelection)
	router.POST("/selection/location", h.ToggleLocation)
	router.POST("/selection/route", h.ToggleRoute)
	router.DELETE("/selection", h.ClearSelection)

	// Consolidation and export
	router.GET("/consolidation", h.GetConsolidation)
	router.GET("/export/csv", h.ExportCSV)
	router.GET("/export/xlsx", h.ExportXLSX)
}

// roleFrom reads the caller's role from the X-Role header. Anything
// but an explicit admin claim is treated as the regional role; the
// store gates every write regardless.
func roleFrom(c *gin.Context) model.Role {
	if c.GetHeader("X-Role") == string(model.RoleAdmin) {
		return model.RoleAdmin
	}
	return model.RoleRegional
}
