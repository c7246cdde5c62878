// Package searxng implements the outbound HTTP client for a SearXNG instance.
package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	domainsearch "searxng-bridge/internal/domain/search"
	"searxng-bridge/internal/infrastructure/metrics"
	"searxng-bridge/internal/utils/platformerrors"
)

const searchPath = "/search"

// ClientConfig captures the knobs exposed to operators for the backend client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration

	MaxConnsPerHost int
	MaxIdleConns    int
	IdleConnTimeout time.Duration
}

// Client performs search requests against one SearXNG instance. Every call is
// a single attempt; failures surface to the caller untouched.
type Client struct {
	http    *resty.Client
	baseURL string
}

var _ domainsearch.BackendClient = (*Client)(nil)

// NewClient wires a pooled HTTP client for the configured SearXNG base URL.
func NewClient(cfg ClientConfig) *Client {
	timeout := 30 * time.Second
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	maxIdleConns := cfg.MaxIdleConns
	if maxIdleConns == 0 {
		maxIdleConns = 100
	}
	maxConnsPerHost := cfg.MaxConnsPerHost
	if maxConnsPerHost == 0 {
		maxConnsPerHost = 50
	}
	idleConnTimeout := cfg.IdleConnTimeout
	if idleConnTimeout == 0 {
		idleConnTimeout = 90 * time.Second
	}
	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: 20,
		MaxConnsPerHost:     maxConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", "SearXNG-Bridge/1.0").
		SetTimeout(timeout).
		SetRetryCount(0).
		SetTransport(transport)

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
	}
}

// Search performs one search request and decodes the JSON body. method is GET
// or POST; POST sends the parameters as form data.
func (c *Client) Search(ctx context.Context, params map[string]string, method string) (*domainsearch.SearchResponse, error) {
	body, err := c.do(ctx, params, method)
	if err != nil {
		return nil, err
	}

	var result domainsearch.SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		log.Error().Err(err).Str("service", "searxng").Msg("failed to decode SearXNG response")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"invalid JSON from search backend", err, "3b6f8d21-9c4e-4f0a-8f7d-5e2a1c9b0d43")
	}

	return &result, nil
}

// SearchRaw performs one search request and returns the body verbatim. Used
// for non-JSON output formats (csv, rss).
func (c *Client) SearchRaw(ctx context.Context, params map[string]string) (string, error) {
	body, err := c.do(ctx, params, http.MethodGet)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Ping checks that the SearXNG instance answers at all.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/")
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"search backend unreachable", err, "e4a9c2d7-1f5b-4e8a-b3c6-7d0f9a2e5b18")
	}
	if resp.IsError() {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("search backend returned status %d", resp.StatusCode()), nil, "e4a9c2d7-1f5b-4e8a-b3c6-7d0f9a2e5b18")
	}
	return nil
}

func (c *Client) do(ctx context.Context, params map[string]string, method string) ([]byte, error) {
	startTime := time.Now()
	defer func() {
		metrics.RecordBackendLatency(time.Since(startTime).Seconds())
	}()

	req := c.http.R().SetContext(ctx)

	var (
		resp *resty.Response
		err  error
	)
	if method == http.MethodPost {
		resp, err = req.SetFormData(params).Post(searchPath)
	} else {
		resp, err = req.SetQueryParams(params).Get(searchPath)
	}

	if err != nil {
		log.Error().Err(err).Str("service", "searxng").Str("url", c.baseURL).Msg("failed to query SearXNG")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"search backend unreachable", err, "a1d4f7b2-6c3e-49d8-9e0a-4b8c2f5d7a91")
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("service", "searxng").Msg("SearXNG returned an error status")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("search backend returned status %d", resp.StatusCode()), nil, "a1d4f7b2-6c3e-49d8-9e0a-4b8c2f5d7a91")
	}

	return resp.Body(), nil
}
