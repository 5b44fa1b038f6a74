package pagefetch

import (
	"github.com/leofalp/prospector/providers/tool"
)

// FetchInput represents the input parameters for a local page fetch.
type FetchInput struct {
	WebsiteURL string `json:"website_url" jsonschema:"description=The URL of the web page to fetch (partial URLs like 'example.com' are normalised to https),required"`
	SessionID  string `json:"session_id,omitempty" jsonschema:"description=Opaque session label echoed in logs for correlation"`
}

// BasicInfo carries page identity metadata extracted from the HTML. Fields
// that cannot be determined default to "N/A".
type BasicInfo struct {
	URL         string `json:"url" jsonschema:"description=The final URL after redirects"`
	Title       string `json:"title" jsonschema:"description=Page title"`
	Description string `json:"description" jsonschema:"description=Page meta description"`
	Language    string `json:"language" jsonschema:"description=Page language from the html lang attribute"`
}

// PageContent carries the fetched content. Each field is independently capped
// at 4000 characters with a truncation marker when cut.
type PageContent struct {
	Text     string `json:"text" jsonschema:"description=Visible text content (truncated to 4000 characters)"`
	Markdown string `json:"markdown" jsonschema:"description=Markdown conversion of the page (truncated to 4000 characters)"`
}

// WebsiteData is the substantive payload of a successful fetch. The layout
// matches the scraping adapter so the agent can treat both interchangeably.
type WebsiteData struct {
	BasicInfo BasicInfo   `json:"basic_info" jsonschema:"description=Page identity metadata"`
	Content   PageContent `json:"content" jsonschema:"description=Truncated page content"`
	Links     []string    `json:"links" jsonschema:"description=At most the first 5 outbound links in document order"`
}

// FetchResponse is the structured result of a fetch call. Status is always
// set and Timestamp records the generation time; when Status is
// [tool.StatusError] the ErrorKind and ErrorMessage fields are populated and
// WebsiteData is nil.
type FetchResponse struct {
	Status       tool.Status    `json:"status" jsonschema:"description=success or error"`
	WebsiteData  *WebsiteData   `json:"website_data,omitempty" jsonschema:"description=Fetched page data when status is success"`
	URL          string         `json:"url,omitempty" jsonschema:"description=The requested URL"`
	Timestamp    string         `json:"timestamp" jsonschema:"description=ISO-8601 generation time of this response"`
	ErrorKind    tool.ErrorKind `json:"error_kind,omitempty" jsonschema:"description=Failure classification when status is error"`
	ErrorMessage string         `json:"error_message,omitempty" jsonschema:"description=Human-readable failure description when status is error"`
}
