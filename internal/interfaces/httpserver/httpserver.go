// Package httpserver assembles the gin router that serves the web tool API
// and the streamable MCP endpoint.
package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	domainsearch "searxng-bridge/internal/domain/search"
	"searxng-bridge/internal/infrastructure/config"
	"searxng-bridge/internal/interfaces/httpserver/middlewares"
	"searxng-bridge/internal/interfaces/httpserver/routes"
	"searxng-bridge/internal/interfaces/httpserver/routes/mcp"
)

type HTTPServer struct {
	router        *gin.Engine
	config        *config.Config
	searchService *domainsearch.SearchService
	toolsRoute    *routes.ToolsRoute
	mcpRoute      *mcp.MCPRoute
}

func NewHTTPServer(
	cfg *config.Config,
	searchService *domainsearch.SearchService,
	toolsRoute *routes.ToolsRoute,
	mcpRoute *mcp.MCPRoute,
) *HTTPServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.CORS())
	router.Use(middlewares.MetricsRecorder())

	return &HTTPServer{
		router:        router,
		config:        cfg,
		searchService: searchService,
		toolsRoute:    toolsRoute,
		mcpRoute:      mcpRoute,
	}
}

func (s *HTTPServer) setupRoutes() {
	// Service descriptor
	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "searxng-bridge",
			"version": "1.0.0",
			"endpoints": gin.H{
				"health":  "/health",
				"tools":   "/tools",
				"call":    "/tools/{name}",
				"mcp":     "/v1/mcp",
				"metrics": "/metrics",
			},
		})
	})

	// Health check endpoints
	s.router.GET("/health", func(c *gin.Context) {
		if err := s.searchService.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "backend": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": "reachable"})
	})

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "searxng-bridge"})
	})

	s.router.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": "searxng-bridge"})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Web tool API
	s.toolsRoute.RegisterRouter(s.router)

	// MCP over streamable HTTP
	v1 := s.router.Group("/v1")
	s.mcpRoute.RegisterRouter(v1)
}

func (s *HTTPServer) Run() error {
	s.setupRoutes()
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}
