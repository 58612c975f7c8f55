package capability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultImageModel = "black-forest-labs/FLUX.1-schnell"

// imageTriggers are the request phrasings stripped from a raw decision entry
// before it becomes a generation prompt.
var imageTriggers = []string{
	"generate image", "generate an image", "create image", "create an image",
	"make image", "make an image", "generate", "image", "of",
}

// StripImageTriggers removes the request phrasing from a raw image entry,
// leaving only the prompt.
func StripImageTriggers(raw string) string {
	prompt := strings.ToLower(strings.TrimSpace(raw))
	for _, trigger := range imageTriggers {
		if strings.HasPrefix(prompt, trigger+" ") {
			prompt = strings.TrimSpace(prompt[len(trigger):])
		}
	}
	return prompt
}

// HFImageClient generates images with a Hugging Face inference model and
// saves them under the data directory.
type HFImageClient struct {
	token      string
	model      string
	baseURL    string
	dataDir    string
	handoffDir string
	client     *http.Client
	logger     *zap.Logger
}

// NewHFImageClient creates an image generation client. model may be empty to
// use the default FLUX.1-schnell.
func NewHFImageClient(token, model, dataDir, handoffDir string, logger *zap.Logger) *HFImageClient {
	if model == "" {
		model = defaultImageModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HFImageClient{
		token:      token,
		model:      model,
		baseURL:    "https://api-inference.huggingface.co",
		dataDir:    dataDir,
		handoffDir: handoffDir,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: logger,
	}
}

func (c *HFImageClient) statusPath() string {
	return filepath.Join(c.handoffDir, "imagegeneration.data")
}

// Generate strips the request phrasing from rawQuery, records the prompt in
// the hand-off file, generates the image, and saves it as img_<unix>.png.
// The prompt is read back from the hand-off file so external collaborators
// can observe and rewrite it mid-flight.
func (c *HFImageClient) Generate(ctx context.Context, rawQuery string) error {
	if c.token == "" {
		return fmt.Errorf("image: missing Hugging Face token")
	}

	prompt := StripImageTriggers(rawQuery)
	if prompt == "" {
		return fmt.Errorf("image: empty prompt after stripping %q", rawQuery)
	}

	if err := os.WriteFile(c.statusPath(), []byte(prompt+",True"), 0644); err != nil {
		return fmt.Errorf("image: failed to write hand-off file: %w", err)
	}
	data, err := os.ReadFile(c.statusPath())
	if err != nil {
		return fmt.Errorf("image: failed to read hand-off file: %w", err)
	}
	if fields := strings.SplitN(string(data), ",", 2); fields[0] != "" {
		prompt = fields[0]
	}

	png, err := c.generate(ctx, prompt)
	if err != nil {
		return err
	}

	outPath := filepath.Join(c.dataDir, fmt.Sprintf("img_%d.png", time.Now().Unix()))
	if err := os.WriteFile(outPath, png, 0644); err != nil {
		return fmt.Errorf("image: failed to save %s: %w", outPath, err)
	}

	// Mark the hand-off as done.
	if err := os.WriteFile(c.statusPath(), []byte("False,False"), 0644); err != nil {
		c.logger.Warn("image: failed to reset hand-off file", zap.Error(err))
	}

	c.logger.Info("image generated",
		zap.String("prompt", prompt), zap.String("path", outPath))
	return nil
}

func (c *HFImageClient) generate(ctx context.Context, prompt string) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{"inputs": prompt})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("image: Hugging Face rejected the token")
	case http.StatusServiceUnavailable:
		return nil, fmt.Errorf("image: model %s is still loading, try again shortly", c.model)
	default:
		return nil, fmt.Errorf("image: HTTP %d from Hugging Face", resp.StatusCode)
	}
}
