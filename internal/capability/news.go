package capability

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// GNewsClient reports headlines via the GNews API.
type GNewsClient struct {
	key     string
	baseURL string
	client  *http.Client
}

// NewGNewsClient creates a news client.
func NewGNewsClient(key string) *GNewsClient {
	return &GNewsClient{
		key:     key,
		baseURL: "https://gnews.io",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Headlines fetches up to five headlines for the topic.
func (c *GNewsClient) Headlines(ctx context.Context, topic string) (string, error) {
	if c.key == "" {
		return "", fmt.Errorf("news: missing GNews API key")
	}
	if topic == "" {
		topic = "latest"
	}

	endpoint := fmt.Sprintf(
		"%s/api/v4/search?q=%s&token=%s&lang=en&max=5",
		c.baseURL, url.QueryEscape(topic), c.key,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("news request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("news: failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("news: HTTP %d from GNews", resp.StatusCode)
	}

	articles := gjson.GetBytes(body, "articles").Array()
	if len(articles) == 0 {
		return fmt.Sprintf("I couldn't find any news about %s.", topic), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are the latest headlines about %s:\n", topic)
	for i, article := range articles {
		if i >= 5 {
			break
		}
		title := article.Get("title").String()
		source := article.Get("source.name").String()
		fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, title, source)
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}
