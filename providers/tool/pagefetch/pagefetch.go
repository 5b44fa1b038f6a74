package pagefetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/prospector/core/cost"
	"github.com/leofalp/prospector/internal/utils"
	"github.com/leofalp/prospector/providers/tool"
)

const (
	// DefaultTimeout is the HTTP request timeout for a local fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent with every fetch.
	DefaultUserAgent = "prospector-pagefetch/1.0"

	// MaxBodySize caps the response body (10 MB).
	MaxBodySize = 10 * 1024 * 1024

	// MaxContentLength caps the text and markdown fields, independently.
	MaxContentLength = 4000

	// MaxLinks caps the number of outbound links returned.
	MaxLinks = 5

	// maxRedirects bounds redirect chains.
	maxRedirects = 10

	// missingValue fills metadata fields absent from the page.
	missingValue = "N/A"
)

// Client fetches pages directly, without any third-party scraping API. It is
// the credential-free fallback for the Firecrawl adapter: same response
// shape, no render wait, no JavaScript execution.
type Client struct {
	httpClient *http.Client
	userAgent  string
	now        func() time.Time
}

// Option customises a [Client].
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for fetches.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a local page-fetch client.
func NewClient(options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("too many redirects (>%d)", maxRedirects)
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
		now:       time.Now,
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// NewFetchTool wraps the client's [Client.Fetch] in a [tool.Tool] so an
// agent runtime can dispatch it by name.
func NewFetchTool(client *Client) *tool.Tool[FetchInput, FetchResponse] {
	return tool.NewTool[FetchInput, FetchResponse](
		"FetchPage",
		func(ctx context.Context, input FetchInput) (FetchResponse, error) {
			return client.Fetch(ctx, input), nil
		},
		tool.WithDescription("Fetches a web page directly and converts its HTML to Markdown, extracting the title, description, language, and up to 5 outbound links. Free and requires no API key, but does not execute JavaScript; prefer ScrapeWebsite for dynamic pages when it is available. Every response carries a status field; on failure error_kind and error_message describe what went wrong."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.0,
			Currency:                "USD",
			CostDescription:         "local HTTP request",
			Accuracy:                0.80,
			AverageDurationInMillis: 350,
		}),
	)
}

// Fetch retrieves the page at websiteURL and normalises it into the same
// bounded shape the scraping adapter produces: metadata defaults to "N/A",
// text and markdown are independently capped at [MaxContentLength], and at
// most the first [MaxLinks] links are kept in document order. Partial URLs
// are normalised by prepending "https://".
//
// Fetch never returns a Go error; every failure becomes a structured
// [FetchResponse] with an error kind and message.
func (c *Client) Fetch(ctx context.Context, input FetchInput) FetchResponse {
	rawURL := strings.TrimSpace(input.WebsiteURL)
	if rawURL == "" {
		return c.errorResponse(input, tool.ErrorKindInvalidInput, "Invalid website URL provided")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	slog.Info("fetching page", "url", rawURL, "session_id", input.SessionID)

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return c.errorResponse(input, tool.ErrorKindInvalidInput,
			fmt.Sprintf("Invalid website URL provided: %s", err.Error()))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportErrorResponse(input, err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return c.errorResponse(input, tool.ErrorKindUpstreamHTTP,
			fmt.Sprintf("HTTP Error %d: %s", resp.StatusCode, resp.Status))
	}

	htmlBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return c.transportErrorResponse(input, err)
	}

	markdown, err := htmltomarkdown.ConvertString(string(htmlBytes))
	if err != nil {
		return c.errorResponse(input, tool.ErrorKindUnexpected,
			fmt.Sprintf("Failed to convert HTML to Markdown: %s", err.Error()))
	}

	finalURL := resp.Request.URL
	meta := parseHTMLPage(string(htmlBytes), finalURL)

	links := meta.links
	if len(links) > MaxLinks {
		links = links[:MaxLinks]
	}

	slog.Info("successfully fetched page", "url", finalURL.String(), "links", len(links))

	return FetchResponse{
		Status: tool.StatusSuccess,
		WebsiteData: &WebsiteData{
			BasicInfo: BasicInfo{
				URL:         finalURL.String(),
				Title:       orMissing(meta.title),
				Description: orMissing(meta.description),
				Language:    orMissing(meta.language),
			},
			Content: PageContent{
				Text:     utils.Truncate(orMissing(meta.text), MaxContentLength),
				Markdown: utils.Truncate(orMissing(strings.TrimSpace(markdown)), MaxContentLength),
			},
			Links: links,
		},
		URL:       input.WebsiteURL,
		Timestamp: c.timestamp(),
	}
}

// transportErrorResponse classifies a transport failure into the timeout,
// network, or unexpected kind.
func (c *Client) transportErrorResponse(input FetchInput, err error) FetchResponse {
	kind := tool.ClassifyError(err)

	var message string
	switch kind {
	case tool.ErrorKindTimeout:
		message = fmt.Sprintf("Timeout while fetching page: %s", input.WebsiteURL)
	case tool.ErrorKindNetwork:
		message = fmt.Sprintf("Request failed for %s: %s", input.WebsiteURL, err.Error())
	default:
		message = fmt.Sprintf("Unexpected error fetching %s: %s", input.WebsiteURL, err.Error())
	}

	return c.errorResponse(input, kind, message)
}

// errorResponse builds the structured error shape and logs it with URL and
// session context.
func (c *Client) errorResponse(input FetchInput, kind tool.ErrorKind, message string) FetchResponse {
	slog.Error("page fetch failed", "url", input.WebsiteURL, "session_id", input.SessionID,
		"error_kind", string(kind), "error", message)
	return FetchResponse{
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

// orMissing substitutes "N/A" for fields absent from the page.
func orMissing(value string) string {
	if value == "" {
		return missingValue
	}
	return value
}
