package tavily

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/leofalp/prospector/providers/tool"
)

// FlexInt is an integer that also accepts a JSON string ("3") or a float
// (3.0) when unmarshalling. Language models occasionally quote numeric
// arguments; the adapter coerces instead of rejecting them.
type FlexInt int

// UnmarshalJSON implements lenient decoding for [FlexInt].
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*n = 0
		return nil
	}

	parsed, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as integer: %w", string(data), err)
	}
	*n = FlexInt(int(parsed))
	return nil
}

// MarshalJSON renders the value as a plain JSON number.
func (n FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(n))
}

// SearchInput represents the input parameters for a web search.
// Query is required; depth and result count have safe defaults.
type SearchInput struct {
	Query       string   `json:"query" jsonschema:"description=The search query to perform,required"`
	SearchDepth string   `json:"search_depth,omitempty" jsonschema:"description=Search depth: basic (faster) or advanced (more thorough),enum=basic,enum=advanced"`
	MaxResults  *FlexInt `json:"max_results,omitempty" jsonschema:"description=Maximum number of results to return (default: 5)"`
}

// SearchResult represents a single ranked search result. Content is capped at
// 1000 characters with a truncation marker when cut.
type SearchResult struct {
	Title   string  `json:"title" jsonschema:"description=Title of the result"`
	URL     string  `json:"url" jsonschema:"description=URL of the result"`
	Content string  `json:"content" jsonschema:"description=Content snippet from the result (truncated to 1000 characters)"`
	Score   float64 `json:"score" jsonschema:"description=Relevance score of the result"`
}

// SearchResponse is the structured result of a search call. Status is always
// set; when it is [tool.StatusError] the ErrorKind and ErrorMessage fields
// are populated and the payload fields are empty.
type SearchResponse struct {
	Status       tool.Status    `json:"status" jsonschema:"description=success or error"`
	Query        string         `json:"query,omitempty" jsonschema:"description=The original search query"`
	Results      []SearchResult `json:"results,omitempty" jsonschema:"description=Ranked search results in upstream order"`
	Answer       string         `json:"answer,omitempty" jsonschema:"description=AI-generated answer summary (truncated to 500 characters)"`
	ErrorKind    tool.ErrorKind `json:"error_kind,omitempty" jsonschema:"description=Failure classification when status is error"`
	ErrorMessage string         `json:"error_message,omitempty" jsonschema:"description=Human-readable failure description when status is error"`
}

// === Internal API Response Types ===

// searchAPIResponse represents the raw API response from Tavily Search.
type searchAPIResponse struct {
	Query        string                `json:"query"`
	Answer       string                `json:"answer,omitempty"`
	Results      []searchAPIResultItem `json:"results"`
	ResponseTime float64               `json:"response_time"`
	RequestID    string                `json:"request_id"`
}

// searchAPIResultItem represents a single result from the Tavily Search API.
type searchAPIResultItem struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// apiError represents an error response from the Tavily API. The detail field
// is sometimes a structured object and sometimes a plain string.
type apiError struct {
	Detail json.RawMessage `json:"detail"`
}
