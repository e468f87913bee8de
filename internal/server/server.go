package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"supriplan/internal/api"
	"supriplan/internal/config"
	"supriplan/internal/selection"
	"supriplan/internal/store"
)

// Server is the HTTP server over the session stores.
type Server struct {
	router  *gin.Engine
	store   *store.MemoryStore
	history *store.HistoryStore
}

// NewServer builds the stores and wires the API.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	routes, catalog, err := config.LoadReferenceData(cfg)
	if err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}

	dataset := store.NewMemoryStore()
	dataset.Seed(routes, catalog)

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	history, err := store.NewHistoryStore(filepath.Join(dataDir, "supriplan.db"))
	if err != nil {
		log.Fatalf("Failed to initialize import history: %v", err)
	}

	handler := api.NewHandler(dataset, selection.NewStore(), history, routes, cfg.Auth.AdminPassword)

	s := &Server{
		router:  gin.Default(),
		store:   dataset,
		history: history,
	}
	s.setupRoutes(handler)
	return s
}

func (s *Server) setupRoutes(handler *api.Handler) {
	// CORS for the session frontend
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Role")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	handler.RegisterRoutes(s.router.Group("/api"))
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the import history database.
func (s *Server) Close() error {
	return s.history.Close()
}

// GetStore exposes the dataset for tests.
func (s *Server) GetStore() *store.MemoryStore {
	return s.store
}
