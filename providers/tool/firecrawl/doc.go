// Package firecrawl implements the web-scraping adapter backed by the
// Firecrawl API. [Client.Scrape] requests the markdown rendering of a page,
// normalises metadata and content into bounded fields, and caps the outbound
// link list. Failures never propagate as Go errors: every call returns a
// [ScrapeResponse] whose status, error kind, and error message describe the
// outcome, with timeout, network, upstream, and decode failures reported as
// distinct kinds.
//
// The API credential is supplied through [NewClient]; use [NewScrapeTool] to
// expose the adapter to an agent runtime.
package firecrawl
