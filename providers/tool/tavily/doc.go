// Package tavily implements the web-search adapter backed by the Tavily
// Search API. [Client.Search] validates its input, performs a single
// best-effort API call with fixed sub-options, and normalises the response
// into bounded, LLM-friendly results. Failures never propagate as Go errors:
// every call returns a [SearchResponse] whose status, error kind, and error
// message describe the outcome.
//
// The API credential is supplied through [NewClient]; use [NewSearchTool] to
// expose the adapter to an agent runtime.
package tavily
