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

// GoogleTrendsClient reports trending topics from the Google Trends daily RSS
// feed. No API key required.
type GoogleTrendsClient struct {
	geo     string
	baseURL string
	client  *http.Client
}

// NewGoogleTrendsClient creates a trending client. geo is a two-letter region
// code, defaulting to IN.
func NewGoogleTrendsClient(geo string) *GoogleTrendsClient {
	if geo == "" {
		geo = "IN"
	}
	return &GoogleTrendsClient{
		geo:     geo,
		baseURL: "https://trends.google.com",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var trendTitleRe = regexp.MustCompile(`<title>([^<]+)</title>`)

// Topics fetches the top trending searches, at most ten.
func (c *GoogleTrendsClient) Topics(ctx context.Context) (string, error) {
	endpoint := fmt.Sprintf("%s/trending/rss?geo=%s", c.baseURL, c.geo)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Aria/1.0)")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("trending request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("trending: HTTP %d from Google Trends", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return "", fmt.Errorf("trending: failed to read response: %w", err)
	}

	matches := trendTitleRe.FindAllStringSubmatch(string(body), -1)

	// The first <title> is the feed's own name.
	var topics []string
	for i, m := range matches {
		if i == 0 {
			continue
		}
		if len(topics) >= 10 {
			break
		}
		topics = append(topics, strings.TrimSpace(m[1]))
	}

	if len(topics) == 0 {
		return "I couldn't fetch trending topics right now.", nil
	}

	var sb strings.Builder
	sb.WriteString("Here's what's trending right now:\n")
	for i, topic := range topics {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, topic)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
