// Package pagefetch implements a credential-free page-fetch tool: it
// retrieves a page with the standard HTTP client, converts the HTML to
// Markdown, and extracts identity metadata and outbound links locally. The
// response shape matches the firecrawl adapter so the agent can fall back to
// it when no scraping credential is configured.
package pagefetch
