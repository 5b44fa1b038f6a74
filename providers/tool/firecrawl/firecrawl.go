package firecrawl

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
	// DefaultBaseURL is the Firecrawl API endpoint.
	DefaultBaseURL = "https://api.firecrawl.dev"

	// DefaultTimeout bounds the adapter's own request round-trip. It exceeds
	// the upstream render wait plus the upstream scrape timeout so that a slow
	// upstream is reported by Firecrawl itself rather than cut off locally.
	DefaultTimeout = 45 * time.Second

	// waitForMillis is how long Firecrawl waits for the page to render.
	waitForMillis = 5000

	// upstreamTimeoutMillis is the scrape timeout enforced by Firecrawl.
	upstreamTimeoutMillis = 30000

	// MaxContentLength caps the text and markdown fields, independently.
	MaxContentLength = 4000

	// MaxLinks caps the number of outbound links returned.
	MaxLinks = 5

	// missingValue fills metadata fields absent from the upstream payload.
	missingValue = "N/A"
)

// Client scrapes websites through the Firecrawl API.
// The API credential is injected at construction time; an empty credential is
// reported as a structured missing_credential error before any network call.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
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

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a scrape client with the given API key.
func NewClient(apiKey string, options ...Option) *Client {
	client := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		now:        time.Now,
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// NewScrapeTool wraps the client's [Client.Scrape] in a [tool.Tool] so an
// agent runtime can dispatch it by name.
func NewScrapeTool(client *Client) *tool.Tool[ScrapeInput, ScrapeResponse] {
	return tool.NewTool[ScrapeInput, ScrapeResponse](
		"ScrapeWebsite",
		func(ctx context.Context, input ScrapeInput) (ScrapeResponse, error) {
			return client.Scrape(ctx, input), nil
		},
		tool.WithDescription("Scrapes a website using the Firecrawl API and returns page metadata (title, description, language), content as text and markdown (each capped at 4000 characters), and up to 5 outbound links. Use it to read company pages, team pages, and leadership bios found via search. Every response carries a status field; on failure error_kind and error_message describe what went wrong."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.002,
			Currency:                "USD",
			CostDescription:         "per page scraped (1 API credit)",
			Accuracy:                0.90,
			AverageDurationInMillis: 6000,
		}),
	)
}

// Scrape performs a single best-effort scrape of websiteURL. It requests only
// the markdown format with a 5-second wait-for-render and a 30-second
// upstream timeout, then normalises the payload: metadata fields default to
// "N/A" when absent, text and markdown are independently capped at
// [MaxContentLength], and at most the first [MaxLinks] links are kept in
// upstream order. A generation timestamp is attached to every response.
//
// Scrape never returns a Go error. Failure cases are reported as structured
// error responses with distinct kinds and messages: invalid input, missing
// credential (no network call made), non-200 upstream status, HTTP 200 with
// the payload's own success flag false, timeout, network failure, malformed
// JSON, and a catch-all for anything else. There are no retries and no
// caching; each call is independent.
func (c *Client) Scrape(ctx context.Context, input ScrapeInput) ScrapeResponse {
	if input.WebsiteURL == "" {
		return c.errorResponse(input, tool.ErrorKindInvalidInput, "Invalid website URL provided")
	}

	if c.apiKey == "" {
		return c.errorResponse(input, tool.ErrorKindMissingCredential, "FIRECRAWL_API_KEY not found in configuration")
	}

	payload := map[string]interface{}{
		"url":     input.WebsiteURL,
		"formats": []string{"markdown"},
		"waitFor": waitForMillis,
		"timeout": upstreamTimeoutMillis,
	}

	slog.Info("scraping website", "url", input.WebsiteURL, "session_id", input.SessionID)

	statusCode, body, err := utils.DoPostSync(ctx, c.httpClient, c.baseURL+"/v1/scrape", c.apiKey, payload)
	if err != nil {
		return c.transportErrorResponse(input, err)
	}

	if statusCode != http.StatusOK {
		message := fmt.Sprintf("API Error %d: %s", statusCode, string(body))
		return c.errorResponse(input, tool.ErrorKindUpstreamHTTP, message)
	}

	var apiResponse scrapeAPIResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return c.errorResponse(input, tool.ErrorKindMalformedResponse,
			fmt.Sprintf("Invalid JSON response for %s: %s", input.WebsiteURL, err.Error()))
	}

	// HTTP 200 with success:false is a logical upstream failure, reported
	// distinctly from transport-level errors.
	if !apiResponse.Success {
		return c.errorResponse(input, tool.ErrorKindUpstreamFailure,
			"Failed to scrape website: API returned unsuccessful response")
	}

	document := apiResponse.Data

	links := document.Links
	if len(links) > MaxLinks {
		links = links[:MaxLinks]
	}

	slog.Info("successfully scraped website", "url", input.WebsiteURL, "links", len(links))

	return ScrapeResponse{
		Status: tool.StatusSuccess,
		WebsiteData: &WebsiteData{
			BasicInfo: BasicInfo{
				URL:         input.WebsiteURL,
				Title:       orMissing(document.Metadata.Title),
				Description: orMissing(document.Metadata.Description),
				Language:    orMissing(document.Metadata.Language),
			},
			Content: PageContent{
				Text:     utils.Truncate(orMissing(document.Content), MaxContentLength),
				Markdown: utils.Truncate(orMissing(document.Markdown), MaxContentLength),
			},
			Links: links,
		},
		URL:       input.WebsiteURL,
		Timestamp: c.timestamp(),
	}
}

// transportErrorResponse classifies a transport failure into the timeout,
// network, or unexpected kind, each with its own message text for operator
// diagnosis.
func (c *Client) transportErrorResponse(input ScrapeInput, err error) ScrapeResponse {
	kind := tool.ClassifyError(err)

	var message string
	switch kind {
	case tool.ErrorKindTimeout:
		message = fmt.Sprintf("Timeout while scraping website: %s", input.WebsiteURL)
	case tool.ErrorKindNetwork:
		message = fmt.Sprintf("Request failed for %s: %s", input.WebsiteURL, err.Error())
	default:
		message = fmt.Sprintf("Unexpected error scraping %s: %s", input.WebsiteURL, err.Error())
	}

	return c.errorResponse(input, kind, message)
}

// errorResponse builds the structured error shape and logs it with URL and
// session context.
func (c *Client) errorResponse(input ScrapeInput, kind tool.ErrorKind, message string) ScrapeResponse {
	slog.Error("website scrape failed", "url", input.WebsiteURL, "session_id", input.SessionID,
		"error_kind", string(kind), "error", message)
	return ScrapeResponse{
		Status:       tool.StatusError,
		URL:          input.WebsiteURL,
		Timestamp:    c.timestamp(),
		ErrorKind:    kind,
		ErrorMessage: message,
	}
}

func (c *Client) timestamp() string {
	return c.now().Format(time.RFC3339)
}

// orMissing substitutes "N/A" for fields absent from the upstream payload.
func orMissing(value string) string {
	if value == "" {
		return missingValue
	}
	return value
}
