package capability

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentMatchesJSON = `{
	"status": "success",
	"data": [
		{
			"name": "England vs New Zealand",
			"status": "Live",
			"score": [{"inning": "England Inning 1", "r": 120, "w": 3, "o": 25.4}]
		},
		{
			"name": "India vs Australia",
			"status": "India won by 5 wickets",
			"score": [{"inning": "India Inning 1", "r": 250, "w": 10, "o": 48.3}]
		}
	]
}`

func newCricketServer(t *testing.T, body string) (*CricAPIClient, func()) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/currentMatches", r.URL.Path)
		assert.Equal(t, "testkey", r.URL.Query().Get("apikey"))
		fmt.Fprint(w, body)
	}))

	c := NewCricAPIClient("testkey")
	c.baseURL = srv.URL
	return c, srv.Close
}

func TestCricketDefaultPrefersFinished(t *testing.T) {
	c, done := newCricketServer(t, currentMatchesJSON)
	defer done()

	got, err := c.Scores(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t,
		"Most Recent Finished Match: India vs Australia\nStatus: India won by 5 wickets\nIndia Inning 1: 250/10 in 48.3 overs",
		got)
}

func TestCricketQueryFilter(t *testing.T) {
	c, done := newCricketServer(t, currentMatchesJSON)
	defer done()

	got, err := c.Scores(context.Background(), "england")
	require.NoError(t, err)
	assert.Contains(t, got, "Match: England vs New Zealand")
	assert.Contains(t, got, "England Inning 1: 120/3 in 25.4 overs")

	got, err = c.Scores(context.Background(), "pakistan")
	require.NoError(t, err)
	assert.Equal(t, "I couldn't find a match for pakistan.", got)
}

func TestCricketNoMatches(t *testing.T) {
	c, done := newCricketServer(t, `{"status": "success", "data": []}`)
	defer done()

	got, err := c.Scores(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "There are no cricket matches available right now.", got)
}

func TestCricketAPIFailure(t *testing.T) {
	c, done := newCricketServer(t, `{"status": "failure"}`)
	defer done()

	_, err := c.Scores(context.Background(), "")
	assert.Error(t, err)
}

func TestMatchEnded(t *testing.T) {
	assert.True(t, matchEnded("India won by 5 wickets"))
	assert.True(t, matchEnded("Match ended in a draw"))
	assert.False(t, matchEnded("Live"))
	assert.False(t, matchEnded("Match not started"))
}
