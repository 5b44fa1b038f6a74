package firecrawl

import (
	"github.com/leofalp/prospector/providers/tool"
)

// ScrapeInput represents the input parameters for a scrape call.
// WebsiteURL is required; SessionID is an opaque passthrough label carried
// into logs, never used for routing.
type ScrapeInput struct {
	WebsiteURL string `json:"website_url" jsonschema:"description=The URL of the website to scrape,required"`
	SessionID  string `json:"session_id,omitempty" jsonschema:"description=Opaque session label echoed in logs for correlation"`
}

// BasicInfo carries page identity metadata. Fields missing upstream default
// to "N/A".
type BasicInfo struct {
	URL         string `json:"url" jsonschema:"description=The URL that was scraped"`
	Title       string `json:"title" jsonschema:"description=Page title"`
	Description string `json:"description" jsonschema:"description=Page meta description"`
	Language    string `json:"language" jsonschema:"description=Page language"`
}

// PageContent carries the scraped content. Each field is independently capped
// at 4000 characters with a truncation marker when cut.
type PageContent struct {
	Text     string `json:"text" jsonschema:"description=Plain text content (truncated to 4000 characters)"`
	Markdown string `json:"markdown" jsonschema:"description=Markdown content (truncated to 4000 characters)"`
}

// WebsiteData is the substantive payload of a successful scrape.
type WebsiteData struct {
	BasicInfo BasicInfo   `json:"basic_info" jsonschema:"description=Page identity metadata"`
	Content   PageContent `json:"content" jsonschema:"description=Truncated page content"`
	Links     []string    `json:"links" jsonschema:"description=At most the first 5 outbound links in upstream order"`
}

// ScrapeResponse is the structured result of a scrape call. Status is always
// set and Timestamp records the generation time; when Status is
// [tool.StatusError] the ErrorKind and ErrorMessage fields are populated and
// WebsiteData is nil.
type ScrapeResponse struct {
	Status       tool.Status    `json:"status" jsonschema:"description=success or error"`
	WebsiteData  *WebsiteData   `json:"website_data,omitempty" jsonschema:"description=Scraped page data when status is success"`
	URL          string         `json:"url,omitempty" jsonschema:"description=The requested URL"`
	Timestamp    string         `json:"timestamp" jsonschema:"description=ISO-8601 generation time of this response"`
	ErrorKind    tool.ErrorKind `json:"error_kind,omitempty" jsonschema:"description=Failure classification when status is error"`
	ErrorMessage string         `json:"error_message,omitempty" jsonschema:"description=Human-readable failure description when status is error"`
}

// === Internal API Response Types ===

// scrapeAPIResponse represents the raw Firecrawl scrape response envelope.
// Success reflects Firecrawl's own logical outcome, independent of the HTTP
// status code.
type scrapeAPIResponse struct {
	Success bool           `json:"success"`
	Data    scrapeDocument `json:"data"`
	Error   string         `json:"error,omitempty"`
}

// scrapeDocument is a reduced version of Firecrawl's Document type,
// sufficient for scrape responses.
type scrapeDocument struct {
	Content  string         `json:"content,omitempty"`
	Markdown string         `json:"markdown,omitempty"`
	Links    []string       `json:"links,omitempty"`
	Metadata scrapeMetadata `json:"metadata"`
}

// scrapeMetadata is a trimmed version of Firecrawl's metadata block.
type scrapeMetadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	SourceURL   string `json:"sourceURL,omitempty"`
	StatusCode  int    `json:"statusCode,omitempty"`
}
