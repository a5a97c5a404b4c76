package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sahabat-belanja/internal/app"
	"sahabat-belanja/internal/auth"
)

// Server is the HTTP surface over the application core.
type Server struct {
	app    *app.App
	auth   *auth.Service
	engine *gin.Engine
}

// NewServer builds the router with all routes registered.
func NewServer(a *app.App, authService *auth.Service) *Server {
	s := &Server{
		app:    a,
		auth:   authService,
		engine: gin.Default(),
	}
	s.registerRoutes()
	return s
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// Run starts the HTTP listener and blocks.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) registerRoutes() {
	s.engine.Use(cors.Default())

	s.engine.GET("/health", s.handleHealth)

	v1 := s.engine.Group("/api/v1")
	v1.POST("/auth/login", s.handleLogin)

	authed := v1.Group("")
	authed.Use(s.requireAuth())
	{
		authed.GET("/regions", s.handleRegions)
		authed.GET("/feasibility", s.handleFeasibility)

		authed.POST("/plans", s.handleGeneratePlan)
		authed.GET("/plans", s.handleHistory)
		authed.GET("/plans/:id", s.handleGetPlan)

		authed.GET("/ingredients", s.handleCommonIngredients)
		authed.POST("/prices", s.handleCorrectPrice)
		authed.GET("/prices/:city", s.handleRegionPrices)
		authed.GET("/prices/:city/reference", s.handleReferencePrices)

		authed.GET("/export/history.xlsx", s.handleExportHistory)
	}

	admin := authed.Group("/admin")
	admin.Use(s.requireAdmin())
	{
		admin.GET("/storage", s.handleStorageReport)
		admin.GET("/diagnostics", s.handleDiagnostics)
		admin.GET("/usage", s.handleDailyUsage)
		admin.GET("/export", s.handleExportDatabase)
		admin.POST("/harga/refresh", s.handleRefreshHarga)
	}
}
