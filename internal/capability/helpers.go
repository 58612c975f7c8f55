package capability

import (
	"fmt"
	"strings"
	"time"
)

var questionWords = []string{
	"how", "what", "who", "where", "when", "why", "which", "whose", "whom",
	"can you", "what's", "where's", "how's",
}

// QueryModifier normalizes an utterance before it reaches a capability:
// lowercased, trimmed, terminal punctuation set to "?" for questions and "."
// otherwise, first letter capitalized.
func QueryModifier(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}

	isQuestion := false
	for _, w := range questionWords {
		if strings.Contains(q, w) {
			isQuestion = true
			break
		}
	}

	if strings.HasSuffix(q, ".") || strings.HasSuffix(q, "?") || strings.HasSuffix(q, "!") {
		q = q[:len(q)-1]
	}
	if isQuestion {
		q += "?"
	} else {
		q += "."
	}

	return strings.ToUpper(q[:1]) + q[1:]
}

// RealtimeInformation renders the current date and time as a prompt block so
// the answering model never guesses at "today".
func RealtimeInformation(now time.Time) string {
	return fmt.Sprintf(
		"Use this real-time information if needed:\nDay: %s\nDate: %02d\nMonth: %s\nYear: %d\nTime: %02d hours, %02d minutes, %02d seconds.",
		now.Weekday(), now.Day(), now.Month(), now.Year(),
		now.Hour(), now.Minute(), now.Second(),
	)
}
