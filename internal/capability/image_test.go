package capability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestImageGenerate(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/black-forest-labs/FLUX.1-schnell", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		gotPrompt = gjson.GetBytes(body, "inputs").String()

		w.Write([]byte("PNGDATA"))
	}))
	defer srv.Close()

	dataDir := t.TempDir()
	handoffDir := t.TempDir()

	c := NewHFImageClient("tok", "", dataDir, handoffDir, nil)
	c.baseURL = srv.URL

	err := c.Generate(context.Background(), "generate image of a red car")
	require.NoError(t, err)
	assert.Equal(t, "a red car", gotPrompt, "request phrasing stripped from the prompt")

	// One img_<ts>.png lands in the data dir.
	images, err := filepath.Glob(filepath.Join(dataDir, "img_*.png"))
	require.NoError(t, err)
	require.Len(t, images, 1)
	data, err := os.ReadFile(images[0])
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(data))

	// The hand-off file is reset once the image is saved.
	status, err := os.ReadFile(filepath.Join(handoffDir, "imagegeneration.data"))
	require.NoError(t, err)
	assert.Equal(t, "False,False", string(status))
}

func TestImageGenerateRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHFImageClient("bad", "", t.TempDir(), t.TempDir(), nil)
	c.baseURL = srv.URL

	err := c.Generate(context.Background(), "image of a cat")
	assert.ErrorContains(t, err, "rejected the token")
}

func TestImageGenerateMissingToken(t *testing.T) {
	c := NewHFImageClient("", "", t.TempDir(), t.TempDir(), nil)
	err := c.Generate(context.Background(), "image of a cat")
	assert.Error(t, err)
}
