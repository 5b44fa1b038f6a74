package tavily

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/leofalp/prospector/core/cost"
	"github.com/leofalp/prospector/internal/utils"
	"github.com/leofalp/prospector/providers/tool"
)

const (
	// DefaultBaseURL is the Tavily API endpoint.
	DefaultBaseURL = "https://api.tavily.com"

	// DefaultTimeout bounds a single search round-trip.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxResults is used when the caller does not set max_results.
	DefaultMaxResults = 5

	// MaxContentLength caps each result's content snippet.
	MaxContentLength = 1000

	// MaxAnswerLength caps the AI-generated answer summary.
	MaxAnswerLength = 500
)

// Client performs web searches against the Tavily Search API.
// The API credential is injected at construction time and never read from a
// package-level literal. A zero-value credential is reported as a structured
// missing_credential error on every call.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option customises a [Client].
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests to point the client
// at a stub server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a search client with the given API key.
func NewClient(apiKey string, options ...Option) *Client {
	client := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// NewSearchTool wraps the client's [Client.Search] in a [tool.Tool] so an
// agent runtime can dispatch it by name.
func NewSearchTool(client *Client) *tool.Tool[SearchInput, SearchResponse] {
	return tool.NewTool[SearchInput, SearchResponse](
		"WebSearch",
		func(ctx context.Context, input SearchInput) (SearchResponse, error) {
			return client.Search(ctx, input), nil
		},
		tool.WithDescription("Search the web using the Tavily API, optimized for LLM consumption. Works well for: finding people by role and company, current events, factual information, and general research queries. Returns ranked results with titles, URLs, content snippets, and an AI-generated answer summary. Every response carries a status field; on failure error_kind and error_message describe what went wrong."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.001,
			Currency:                "USD",
			CostDescription:         "per basic search query (1 API credit)",
			Accuracy:                0.92,
			AverageDurationInMillis: 800,
		}),
	)
}

// Search performs a single best-effort web search. It validates the input,
// calls the API with fixed sub-options, and normalises the response: each
// result keeps only title, url, content (capped at [MaxContentLength]), and
// score, in upstream ranking order; the answer is capped at
// [MaxAnswerLength].
//
// Search never returns a Go error: every failure - invalid input, missing
// credential, upstream HTTP error, timeout, network failure, malformed
// payload - is converted to a [SearchResponse] with [tool.StatusError], a
// non-empty error message, and a classifying error kind. There are no
// retries; the calling agent decides whether to re-invoke.
func (c *Client) Search(ctx context.Context, input SearchInput) SearchResponse {
	if input.Query == "" {
		return c.errorResponse(input.Query, tool.ErrorKindInvalidInput, "Query must be a non-empty string")
	}

	maxResults := DefaultMaxResults
	if input.MaxResults != nil {
		maxResults = int(*input.MaxResults)
	}
	if maxResults <= 0 {
		return c.errorResponse(input.Query, tool.ErrorKindInvalidInput, "max_results must be a positive integer")
	}

	searchDepth := input.SearchDepth
	switch searchDepth {
	case "":
		searchDepth = "basic"
	case "basic", "advanced":
		// valid as-is
	default:
		slog.Warn("invalid search_depth, using basic", "search_depth", searchDepth, "query", input.Query)
		searchDepth = "basic"
	}

	if c.apiKey == "" {
		return c.errorResponse(input.Query, tool.ErrorKindMissingCredential, "Tavily API key not configured")
	}

	// Fixed sub-options: general topic, two chunks per source, answer
	// included, raw content and images excluded, no time filtering beyond the
	// default 7-day window, no domain filters.
	reqBody := map[string]interface{}{
		"query":                      input.Query,
		"topic":                      "general",
		"search_depth":               searchDepth,
		"chunks_per_source":          2,
		"max_results":                maxResults,
		"time_range":                 nil,
		"days":                       7,
		"include_answer":             true,
		"include_raw_content":        false,
		"include_images":             false,
		"include_image_descriptions": false,
		"include_domains":            []string{},
		"exclude_domains":            []string{},
		"country":                    nil,
	}

	slog.Info("performing web search", "query", input.Query, "search_depth", searchDepth, "max_results", maxResults)

	statusCode, body, err := utils.DoPostSync(ctx, c.httpClient, c.baseURL+"/search", c.apiKey, reqBody)
	if err != nil {
		kind := tool.ClassifyError(err)
		return c.errorResponse(input.Query, kind, fmt.Sprintf("search request failed: %s", err.Error()))
	}

	if statusCode != http.StatusOK {
		message := fmt.Sprintf("API Error %d: %s", statusCode, upstreamErrorText(body))
		return c.errorResponse(input.Query, tool.ErrorKindUpstreamHTTP, message)
	}

	var apiResponse searchAPIResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return c.errorResponse(input.Query, tool.ErrorKindMalformedResponse,
			fmt.Sprintf("invalid JSON response: %s", err.Error()))
	}

	// Keep only the essential fields, preserving upstream ranking order.
	results := make([]SearchResult, 0, len(apiResponse.Results))
	for _, item := range apiResponse.Results {
		results = append(results, SearchResult{
			Title:   item.Title,
			URL:     item.URL,
			Content: utils.Truncate(item.Content, MaxContentLength),
			Score:   item.Score,
		})
	}

	return SearchResponse{
		Status:  tool.StatusSuccess,
		Query:   input.Query,
		Results: results,
		Answer:  utils.Truncate(apiResponse.Answer, MaxAnswerLength),
	}
}

// errorResponse builds the structured error shape and logs it with enough
// context for operator diagnosis.
func (c *Client) errorResponse(query string, kind tool.ErrorKind, message string) SearchResponse {
	slog.Error("web search failed", "query", query, "error_kind", string(kind), "error", message)
	return SearchResponse{
		Status:       tool.StatusError,
		ErrorKind:    kind,
		ErrorMessage: message,
	}
}

// upstreamErrorText extracts a human-readable error from a Tavily error body.
// The detail field may be a structured {"error": "..."} object or a plain
// string; unparseable bodies are returned verbatim.
func upstreamErrorText(body []byte) string {
	var parsed apiError
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Detail) > 0 {
		var structured struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(parsed.Detail, &structured); err == nil && structured.Error != "" {
			return structured.Error
		}

		var plain string
		if err := json.Unmarshal(parsed.Detail, &plain); err == nil && plain != "" {
			return plain
		}
	}
	return string(body)
}
