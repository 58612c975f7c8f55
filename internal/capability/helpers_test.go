package capability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryModifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"how are you", "How are you?"},
		{"what is this?", "What is this?"},
		{"tell me a joke", "Tell me a joke."},
		{"open up.", "Open up."},
		{"OKAY, BYE!", "Okay, bye."},
		{"  padded  ", "Padded."},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QueryModifier(tt.in), "QueryModifier(%q)", tt.in)
	}
}

func TestAnswerModifier(t *testing.T) {
	in := "first line\n\n   \nsecond line\n"
	assert.Equal(t, "first line\nsecond line", AnswerModifier(in))

	assert.Equal(t, "", AnswerModifier("\n\n\n"))
	assert.Equal(t, "unchanged", AnswerModifier("unchanged"))
}

func TestStripImageTriggers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"generate image of a red car", "a red car"},
		{"image of a dragon", "a dragon"},
		{"create an image of the moon", "the moon"},
		{"a lonely lighthouse", "a lonely lighthouse"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripImageTriggers(tt.in), "StripImageTriggers(%q)", tt.in)
	}
}

func TestRealtimeInformation(t *testing.T) {
	now := time.Date(2026, time.August, 30, 14, 5, 9, 0, time.UTC)
	got := RealtimeInformation(now)

	assert.Contains(t, got, "Month: August")
	assert.Contains(t, got, "Year: 2026")
	assert.Contains(t, got, "Time: 14 hours, 05 minutes, 09 seconds.")
}
