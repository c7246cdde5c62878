package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainsearch "searxng-bridge/internal/domain/search"
	"searxng-bridge/internal/interfaces/httpserver/responses"
	"searxng-bridge/internal/utils/platformerrors"
)

// ToolsRoute exposes the search tools over plain HTTP: a catalog listing and
// a per-tool dispatch endpoint mirroring the MCP tools/call semantics.
type ToolsRoute struct {
	searchService *domainsearch.SearchService
}

// NewToolsRoute creates the web tool routes.
func NewToolsRoute(searchService *domainsearch.SearchService) *ToolsRoute {
	return &ToolsRoute{searchService: searchService}
}

// RegisterRouter attaches the tool endpoints to the router.
func (route *ToolsRoute) RegisterRouter(router *gin.Engine) {
	router.GET("/tools", route.listTools)
	router.POST("/tools/:name", route.callTool)
}

// listTools returns the tool catalog with names, descriptions, and input
// schemas. The payload matches what the MCP tools/list method reports.
func (route *ToolsRoute) listTools(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, gin.H{"tools": domainsearch.Catalog()})
}

// callTool executes one named tool. Unknown names are rejected before any
// backend request. The request body is the tool's arguments object; an empty
// body means no arguments.
func (route *ToolsRoute) callTool(reqCtx *gin.Context) {
	tool := domainsearch.Tool(reqCtx.Param("name"))
	if !tool.Valid() {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeNotFound,
			"unknown tool: "+string(tool), "9f2e6c1b-8a4d-4e7f-b0c5-3d6a9e2f5c81")
		return
	}

	args := map[string]any{}
	if reqCtx.Request.ContentLength > 0 {
		if err := reqCtx.ShouldBindJSON(&args); err != nil {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
				"invalid tool arguments payload", "b7d3a9f1-2e6c-4b8d-a5f0-1c4e7d9b3a62")
			return
		}
	}

	text, err := route.searchService.Execute(reqCtx.Request.Context(), tool, args)
	if err != nil {
		responses.HandleError(reqCtx, err, "tool execution failed")
		return
	}

	reqCtx.JSON(http.StatusOK, responses.NewToolResult(text))
}
