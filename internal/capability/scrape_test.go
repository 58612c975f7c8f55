package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResultsHTML = `
<div class="result">
  <a rel="nofollow" class="result__a" href="https://example.com/go">Go Programming Language</a>
  <a class="result__snippet" href="https://example.com/go">Go is an <b>open source</b> language.</a>
</div>
<div class="result">
  <a rel="nofollow" class="result__a" href="https://example.com/gopher">Gophers</a>
  <a class="result__snippet" href="https://example.com/gopher">All about gophers.</a>
</div>`

func TestParseScrapeResults(t *testing.T) {
	results := parseScrapeResults(sampleResultsHTML, 5)
	require.Len(t, results, 2)

	assert.Equal(t, "Go Programming Language", results[0].Title)
	assert.Equal(t, "Go is an open source language.", results[0].Snippet)
	assert.Equal(t, "Gophers", results[1].Title)

	// The cap applies even when more results exist.
	results = parseScrapeResults(sampleResultsHTML, 1)
	assert.Len(t, results, 1)
}

func TestFormatResults(t *testing.T) {
	block := FormatResults("golang", []scrapeResult{
		{Title: "Go", Snippet: "the language"},
	})

	assert.Contains(t, block, "The search results for 'golang' are:")
	assert.Contains(t, block, "[start]")
	assert.Contains(t, block, "Title: Go\nDescription: the language")
	assert.Contains(t, block, "[end]")
}
