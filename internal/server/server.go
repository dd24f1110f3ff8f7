package server

import (
	"embed"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rose307/ticket-analysis/internal/api"
	"github.com/rose307/ticket-analysis/internal/baseline"
	"github.com/rose307/ticket-analysis/internal/config"
	"github.com/rose307/ticket-analysis/internal/store"
)

//go:embed static
var staticFiles embed.FS

// Server is the HTTP server tying the store, baseline source and API
// handlers together.
type Server struct {
	router *gin.Engine
	store  *store.Store
	logger *zap.Logger
}

// New builds the server from configuration. The baseline source is expected
// to be loaded already; a store is created under the data directory.
func New(cfg *config.AppConfig, src *baseline.Source, logger *zap.Logger) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, err
	}

	st, err := store.New(filepath.Join(dataDir, "tables"))
	if err != nil {
		return nil, err
	}

	handlers := api.NewHandlers(st, src, filepath.Join(dataDir, "exports"), logger)

	s := &Server{
		router: gin.New(),
		store:  st,
		logger: logger,
	}
	s.router.Use(gin.Recovery())
	s.setupRoutes(handlers)
	return s, nil
}

func (s *Server) setupRoutes(handlers *api.Handlers) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		handlers.RegisterRoutes(apiGroup)
	}

	sub, _ := fs.Sub(staticFiles, "static")
	s.router.GET("/", func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
	s.router.NoRoute(func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Run starts listening on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
