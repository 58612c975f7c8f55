package capability

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// CricAPIClient reports cricket match scores via the CricAPI currentMatches
// endpoint.
type CricAPIClient struct {
	key     string
	baseURL string
	client  *http.Client
}

// NewCricAPIClient creates a cricket client.
func NewCricAPIClient(key string) *CricAPIClient {
	return &CricAPIClient{
		key:     key,
		baseURL: "https://api.cricapi.com",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Scores fetches current matches. A non-empty query filters by match name;
// with no query the most recent finished match is preferred, then whatever
// match is listed first.
func (c *CricAPIClient) Scores(ctx context.Context, query string) (string, error) {
	if c.key == "" {
		return "", fmt.Errorf("cricket: missing CricAPI key")
	}

	endpoint := fmt.Sprintf(
		"%s/v1/currentMatches?apikey=%s&offset=0", c.baseURL, c.key,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cricket request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("cricket: failed to read response: %w", err)
	}

	doc := gjson.ParseBytes(body)
	if doc.Get("status").String() != "success" {
		return "", fmt.Errorf("cricket: CricAPI returned status %q", doc.Get("status").String())
	}

	matches := doc.Get("data").Array()
	if len(matches) == 0 {
		return "There are no cricket matches available right now.", nil
	}

	if query != "" {
		q := strings.ToLower(query)
		for _, m := range matches {
			if strings.Contains(strings.ToLower(m.Get("name").String()), q) {
				return formatMatch("Match", m), nil
			}
		}
		return fmt.Sprintf("I couldn't find a match for %s.", query), nil
	}

	for _, m := range matches {
		if matchEnded(m.Get("status").String()) {
			return formatMatch("Most Recent Finished Match", m), nil
		}
	}
	return formatMatch("Current Match", matches[0]), nil
}

func matchEnded(status string) bool {
	s := strings.ToLower(status)
	return strings.Contains(s, "won") || strings.Contains(s, "ended") || strings.Contains(s, "drawn")
}

func formatMatch(label string, m gjson.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\nStatus: %s", label, m.Get("name").String(), m.Get("status").String())

	scores := m.Get("score").Array()
	for _, s := range scores {
		fmt.Fprintf(&sb, "\n%s: %d/%d in %.1f overs",
			s.Get("inning").String(), s.Get("r").Int(), s.Get("w").Int(), s.Get("o").Float())
	}
	if len(scores) == 0 {
		sb.WriteString("\nScore data unavailable.")
	}

	return sb.String()
}
