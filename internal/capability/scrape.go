package capability

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// WebScraper performs keyless web searches against the DuckDuckGo HTML
// endpoint and returns a context block suitable for prompt injection.
type WebScraper struct {
	baseURL string
	client  *http.Client
}

// NewWebScraper creates a scraper.
func NewWebScraper() *WebScraper {
	return &WebScraper{
		baseURL: "https://html.duckduckgo.com",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type scrapeResult struct {
	Title   string
	Snippet string
}

var (
	scrapeLinkRe    = regexp.MustCompile(`<a[^>]*class="result__a"[^>]*>([^<]*)</a>`)
	scrapeSnippetRe = regexp.MustCompile(`<a[^>]*class="result__snippet"[^>]*>([^<]*(?:<[^>]*>[^<]*)*)</a>`)
	scrapeTagRe     = regexp.MustCompile(`<[^>]+>`)
)

// Search fetches results for the query and formats them as a delimited
// context block for the answering model.
func (s *WebScraper) Search(ctx context.Context, query string) (string, error) {
	endpoint := fmt.Sprintf("%s/html/?q=%s",
		s.baseURL, strings.ReplaceAll(query, " ", "+"))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Aria/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("web search failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return "", fmt.Errorf("web search: failed to read response: %w", err)
	}

	return FormatResults(query, parseScrapeResults(string(body), 5)), nil
}

func parseScrapeResults(html string, max int) []scrapeResult {
	links := scrapeLinkRe.FindAllStringSubmatch(html, max)
	snippets := scrapeSnippetRe.FindAllStringSubmatch(html, max)

	var results []scrapeResult
	for i, link := range links {
		if i >= max {
			break
		}
		r := scrapeResult{Title: strings.TrimSpace(link[1])}
		if i < len(snippets) {
			r.Snippet = strings.TrimSpace(scrapeTagRe.ReplaceAllString(snippets[i][1], ""))
		}
		if r.Title != "" {
			results = append(results, r)
		}
	}
	return results
}

// FormatResults renders search results as the delimited context block the
// answering prompt expects.
func FormatResults(query string, results []scrapeResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The search results for '%s' are:\n[start]\n", query)
	for _, r := range results {
		fmt.Fprintf(&sb, "Title: %s\nDescription: %s\n\n", r.Title, r.Snippet)
	}
	sb.WriteString("[end]")
	return sb.String()
}
