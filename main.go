package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	domainsearch "searxng-bridge/internal/domain/search"
	"searxng-bridge/internal/infrastructure/config"
	"searxng-bridge/internal/infrastructure/logger"
	"searxng-bridge/internal/infrastructure/searxng"
	"searxng-bridge/internal/interfaces/httpserver"
	"searxng-bridge/internal/interfaces/httpserver/routes"
	"searxng-bridge/internal/interfaces/httpserver/routes/mcp"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger. On stdio transport stdout carries the protocol
	// stream, so logs go to stderr.
	stdioMode := strings.EqualFold(cfg.MCPTransport, "stdio")
	var logOut io.Writer = os.Stdout
	if stdioMode {
		logOut = os.Stderr
	}
	if _, err := logger.Init(cfg.LogLevel, cfg.LogFormat, logOut); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log.Info().
		Str("searxng_url", cfg.SearxngURL).
		Str("transport", cfg.MCPTransport).
		Str("log_level", cfg.LogLevel).
		Msg("Starting SearXNG bridge")

	// Initialize infrastructure
	backendClient := searxng.NewClient(searxng.ClientConfig{
		BaseURL: cfg.SearxngURL,
		Timeout: time.Duration(cfg.SearxngTimeout) * time.Second,
	})
	searchService := domainsearch.NewSearchService(backendClient, cfg.AdvancedMethod, cfg.MaxResults)

	// Initialize MCP routes
	searchMCP := mcp.NewSearchMCP(searchService)
	mcpRoute := mcp.NewMCPRoute(searchMCP)

	if stdioMode {
		log.Info().Msg("Serving MCP over stdio")
		if err := mcpserver.ServeStdio(mcpRoute.Server()); err != nil {
			log.Fatal().Err(err).Msg("Stdio server terminated")
		}
		return
	}

	// Setup HTTP server
	toolsRoute := routes.NewToolsRoute(searchService)
	server := httpserver.NewHTTPServer(cfg, searchService, toolsRoute, mcpRoute)

	log.Info().Str("port", cfg.Port).Msg("Server listening")
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
