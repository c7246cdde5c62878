package mcp

import (
	"context"
	"encoding/json"
	"errors"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	domainsearch "searxng-bridge/internal/domain/search"
	"searxng-bridge/internal/utils/platformerrors"
)

// SearchMCP handles MCP tool registration for the search tooling.
type SearchMCP struct {
	searchService *domainsearch.SearchService
}

// NewSearchMCP creates a new search MCP handler.
func NewSearchMCP(searchService *domainsearch.SearchService) *SearchMCP {
	return &SearchMCP{searchService: searchService}
}

// RegisterTools registers every catalog tool with the MCP server. The input
// schemas are the same literal documents served on GET /tools.
func (s *SearchMCP) RegisterTools(server *mcpserver.MCPServer) {
	for _, spec := range domainsearch.Catalog() {
		schema, err := json.Marshal(spec.InputSchema)
		if err != nil {
			log.Error().Err(err).Str("tool", spec.Name).Msg("failed to encode tool schema")
			continue
		}

		tool := domainsearch.Tool(spec.Name)
		server.AddTool(
			mcpgo.NewToolWithRawSchema(spec.Name, spec.Description, schema),
			s.handler(tool),
		)
	}
}

func (s *SearchMCP) handler(tool domainsearch.Tool) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		args := req.GetArguments()

		text, err := s.searchService.Execute(ctx, tool, args)
		if err != nil {
			log.Error().Err(err).Str("tool", string(tool)).Msg("tool execution failed")

			var platformErr *platformerrors.PlatformError
			if errors.As(err, &platformErr) {
				return mcpgo.NewToolResultError(platformErr.Message), nil
			}
			return nil, err
		}

		return mcpgo.NewToolResultText(text), nil
	}
}
