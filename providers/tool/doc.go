// Package tool defines the agent-facing tool contract: typed tools with
// reflection-derived JSON schemas, a thread-safe catalog for registration and
// dispatch, and the shared status / error-kind vocabulary that every adapter
// response carries.
//
// Concrete adapters live in the subpackages: tavily (web search), firecrawl
// (web scraping), and pagefetch (credential-free local page fetch).
package tool
