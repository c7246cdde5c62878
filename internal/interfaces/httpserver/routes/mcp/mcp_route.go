package mcp

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"searxng-bridge/internal/interfaces/httpserver/responses"
	"searxng-bridge/internal/utils/platformerrors"
)

var allowedMCPMethods = map[string]bool{
	// Initialization / handshake
	"initialize":                true,
	"notifications/initialized": true,
	"ping":                      true,

	// Tools
	"tools/list": true,
	"tools/call": true,

	// Prompts / resources are served as empty lists
	"prompts/list":   true,
	"resources/list": true,
}

// MCPRoute exposes the MCP server over streamable HTTP.
type MCPRoute struct {
	searchMCP   *SearchMCP
	mcpServer   *mcpserver.MCPServer
	httpHandler http.Handler
}

// NewMCPRoute builds the MCP server and registers the search tools on it.
func NewMCPRoute(searchMCP *SearchMCP) *MCPRoute {
	server := mcpserver.NewMCPServer("searxng-bridge", "1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)

	searchMCP.RegisterTools(server)

	return &MCPRoute{
		searchMCP:   searchMCP,
		mcpServer:   server,
		httpHandler: mcpserver.NewStreamableHTTPServer(server, mcpserver.WithStateLess(true)),
	}
}

// Server returns the underlying MCP server, used for stdio transport.
func (route *MCPRoute) Server() *mcpserver.MCPServer {
	return route.mcpServer
}

// RegisterRouter attaches the MCP endpoint to the router group.
func (route *MCPRoute) RegisterRouter(router *gin.RouterGroup) {
	router.POST("/mcp",
		MCPMethodGuard(allowedMCPMethods),
		route.serveMCP,
	)
}

// serveMCP streams Model Context Protocol responses using the underlying MCP
// server. Requests are JSON-RPC 2.0 payloads; responses are SSE streams in
// stateless mode.
func (route *MCPRoute) serveMCP(reqCtx *gin.Context) {
	route.httpHandler.ServeHTTP(reqCtx.Writer, reqCtx.Request)
}

// MCPMethodGuard rejects MCP payloads whose method is not in the allow list
// before they reach the MCP server.
func MCPMethodGuard(allowedMethods map[string]bool) gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		bodyBytes, err := io.ReadAll(reqCtx.Request.Body)
		if err != nil {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeInternal, "failed to read MCP request body", "f3c8d216-7a95-4b0e-a1d4-6e2f9c5b8a37")
			return
		}
		_ = reqCtx.Request.Body.Close()

		if len(bodyBytes) == 0 {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "empty MCP request body", "c5e1f8a3-4d27-49b6-8e0c-2a7d5f9b1c64")
			return
		}

		reqCtx.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var payload struct {
			Method string `json:"method"`
		}

		if err := json.Unmarshal(bodyBytes, &payload); err != nil {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid MCP request payload", "8d4b2e9f-6c1a-4f5d-b3e8-0a9c7d2f4e16")
			return
		}

		if payload.Method == "" {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "missing method field in MCP request", "2a6f9d3c-8e5b-4c0a-9f7d-1b4e6a8c3d52")
			return
		}

		if !allowedMethods[payload.Method] {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "unsupported MCP method: "+payload.Method, "6b1d4f7a-3c9e-48b2-a0d6-5e8f2c7a9b41")
			return
		}

		reqCtx.Next()
	}
}
