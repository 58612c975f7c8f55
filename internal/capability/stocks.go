package capability

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// usdToINRFallback is used when the live exchange-rate lookup fails.
const usdToINRFallback = 83.5

// AlphaVantageClient reports stock quotes via the Alpha Vantage GLOBAL_QUOTE
// endpoint, converting USD prices to INR.
type AlphaVantageClient struct {
	key     string
	baseURL string
	client  *http.Client
}

// NewAlphaVantageClient creates a stocks client.
func NewAlphaVantageClient(key string) *AlphaVantageClient {
	return &AlphaVantageClient{
		key:     key,
		baseURL: "https://www.alphavantage.co",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Quote fetches the latest quote for the symbol and renders it in both USD
// and INR.
func (c *AlphaVantageClient) Quote(ctx context.Context, symbol string) (string, error) {
	if c.key == "" {
		return "", fmt.Errorf("stocks: missing Alpha Vantage API key")
	}

	endpoint := fmt.Sprintf(
		"%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		c.baseURL, url.QueryEscape(symbol), c.key,
	)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("stocks request failed: %w", err)
	}

	quote := gjson.GetBytes(body, "Global Quote")
	price := quote.Get("05\\. price").Float()
	if !quote.Exists() || price == 0 {
		return fmt.Sprintf("I couldn't find stock data for %s.", symbol), nil
	}

	change := quote.Get("09\\. change").Float()
	changePct := quote.Get("10\\. change percent").String()

	rate := c.usdToINR(ctx)

	return fmt.Sprintf(
		"%s is trading at $%.2f (₹%.2f), change %+.2f (%s).",
		symbol, price, price*rate, change, changePct,
	), nil
}

// usdToINR fetches the live USD→INR rate, falling back to a fixed rate on any
// failure.
func (c *AlphaVantageClient) usdToINR(ctx context.Context) float64 {
	endpoint := fmt.Sprintf(
		"%s/query?function=CURRENCY_EXCHANGE_RATE&from_currency=USD&to_currency=INR&apikey=%s",
		c.baseURL, c.key,
	)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return usdToINRFallback
	}

	rate := gjson.GetBytes(body, "Realtime Currency Exchange Rate.5\\. Exchange Rate").Float()
	if rate <= 0 {
		return usdToINRFallback
	}
	return rate
}

func (c *AlphaVantageClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from Alpha Vantage", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
