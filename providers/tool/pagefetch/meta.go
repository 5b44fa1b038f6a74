package pagefetch

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// pageMeta holds the identity metadata, visible text, and outbound links
// extracted from a parsed HTML document.
type pageMeta struct {
	title       string
	description string
	language    string
	text        string
	links       []string
}

// parseHTMLPage walks the HTML document once, collecting the title, the meta
// description, the html lang attribute, the visible text, and outbound anchor
// links resolved against baseURL. Script, style, and noscript subtrees are
// skipped.
func parseHTMLPage(htmlContent string, baseURL *url.URL) pageMeta {
	meta := pageMeta{}

	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return meta
	}

	var textBuilder strings.Builder
	var parseNode func(*html.Node)
	parseNode = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return

			case "html":
				for _, attr := range n.Attr {
					if attr.Key == "lang" && attr.Val != "" {
						meta.language = attr.Val
					}
				}

			case "title":
				if meta.title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					meta.title = strings.TrimSpace(n.FirstChild.Data)
				}
				return

			case "meta":
				name := ""
				content := ""
				for _, attr := range n.Attr {
					switch attr.Key {
					case "name", "property":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if content != "" && (name == "description" || name == "og:description") && meta.description == "" {
					meta.description = content
				}

			case "a":
				for _, attr := range n.Attr {
					if attr.Key == "href" {
						if resolved := resolveURL(attr.Val, baseURL); resolved != "" {
							meta.links = append(meta.links, resolved)
						}
					}
				}
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				textBuilder.WriteString(text)
				textBuilder.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parseNode(c)
		}
	}

	parseNode(doc)
	meta.text = strings.TrimSpace(textBuilder.String())

	return meta
}

// resolveURL converts a relative href to an absolute URL using the base URL.
// Fragment-only and non-http(s) hrefs are dropped.
func resolveURL(href string, baseURL *url.URL) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}

	if strings.HasPrefix(href, "//") && baseURL != nil {
		href = baseURL.Scheme + ":" + href
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	if baseURL != nil {
		parsed = baseURL.ResolveReference(parsed)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}

	return parsed.String()
}
