package search

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"searxng-bridge/internal/infrastructure/metrics"
	"searxng-bridge/internal/utils/platformerrors"
)

const defaultMaxResults = 10

// BackendClient defines the SearXNG operations required by the domain layer.
// It is a narrow seam so the single outbound call can be replaced with a fake
// in tests.
type BackendClient interface {
	Search(ctx context.Context, params map[string]string, method string) (*SearchResponse, error)
	SearchRaw(ctx context.Context, params map[string]string) (string, error)
	Ping(ctx context.Context) error
}

// SearchService orchestrates one tool call: normalize the arguments, perform
// the backend request, truncate and format the results. It holds no state
// across requests.
type SearchService struct {
	client         BackendClient
	advancedMethod string
	maxResults     int
}

// NewSearchService creates a search service. advancedMethod selects the HTTP
// method used for the advanced_search tool (GET unless configured otherwise);
// maxResults is the default result cap when the caller does not pass one.
func NewSearchService(client BackendClient, advancedMethod string, maxResults int) *SearchService {
	if advancedMethod != http.MethodPost {
		advancedMethod = http.MethodGet
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &SearchService{
		client:         client,
		advancedMethod: advancedMethod,
		maxResults:     maxResults,
	}
}

// Execute dispatches a tool call by name and returns the formatted text
// block. Unknown tools are rejected before any backend call is made.
func (s *SearchService) Execute(ctx context.Context, tool Tool, args map[string]any) (string, error) {
	if !tool.Valid() {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("unknown tool: %s", tool), nil, "7c1f0a7e-4b2d-4a53-9b8e-2d9c3f5a6e10")
	}
	if args == nil {
		args = map[string]any{}
	}

	start := time.Now()
	status := "success"
	defer func() {
		metrics.RecordToolCall(string(tool), status, time.Since(start).Seconds())
	}()

	params := Normalize(tool, args)
	query := params["q"]

	log.Debug().
		Str("tool", string(tool)).
		Str("query", query).
		Str("categories", params["categories"]).
		Str("format", params["format"]).
		Msg("executing search tool")

	if format := Format(params["format"]); format != FormatJSON {
		body, err := s.client.SearchRaw(ctx, params)
		if err != nil {
			status = "error"
			return "", err
		}
		return FormatRaw(format, tool, query, body), nil
	}

	method := http.MethodGet
	if tool == ToolAdvancedSearch {
		method = s.advancedMethod
	}

	resp, err := s.client.Search(ctx, params, method)
	if err != nil {
		status = "error"
		return "", err
	}

	results := resp.Results
	max := s.maxResults
	if n, ok := IntArg(args, "max_results"); ok && n > 0 {
		max = n
	}
	if len(results) > max {
		results = results[:max]
	}

	log.Info().
		Str("tool", string(tool)).
		Str("query", query).
		Int("result_count", len(results)).
		Msg("search completed")

	return FormatResults(results, tool, query, resp), nil
}

// Ping checks backend reachability for the health endpoint.
func (s *SearchService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
