// Package intent classifies utterances onto the real-time data capabilities.
//
// Classification is regex-first: an ordered rule table keeps the common path
// deterministic and fast, and an LLM fallback is reserved for ambiguous
// real-time-sounding queries that evade the fixed keyword set.
package intent

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Tag names a real-time data capability.
type Tag string

const (
	TagWeather  Tag = "weather"
	TagNews     Tag = "news"
	TagCricket  Tag = "cricket"
	TagStocks   Tag = "stocks"
	TagTrending Tag = "trending"
	TagNone     Tag = "none"
)

// Intent is a normalized classification result.
type Intent struct {
	Tag       Tag
	Parameter string
}

// None is the empty classification.
var None = Intent{Tag: TagNone}

// Fallback resolves utterances the rule table cannot. Implementations may
// call out to an LLM; any error degrades to TagNone at the call site.
type Fallback interface {
	Classify(ctx context.Context, utterance string) (Intent, error)
}

var (
	weatherRe      = regexp.MustCompile(`(?:in|of|weather|temperature|climate)\s+([a-z\s]+)`)
	weatherStripRe = regexp.MustCompile(`^(?:in|of|the|is|at|for)\s+`)

	newsRe = regexp.MustCompile(`(?:about|on|for)\s+([a-z0-9\s]+)`)

	cricketRe      = regexp.MustCompile(`(?:of|between|for|score|last|result)\s+([a-z\s]+)`)
	cricketStripRe = regexp.MustCompile(`^(?:the|of|for|match|score|result)\s+`)

	stocksRe = regexp.MustCompile(`(?:of|for|price)\s+([a-z]+)`)
)

var stockStopWords = map[string]bool{
	"OF": true, "FOR": true, "THE": true, "PRICE": true,
}

// Classifier maps an utterance to an intent using the fixed precedence order:
// weather, news, cricket, stocks, trending, LLM fallback, none. The first
// matching rule wins; rules with empty captures fall through where documented.
type Classifier struct {
	fallback Fallback
	logger   *zap.Logger
}

// NewClassifier creates a classifier. fallback may be nil to disable the LLM
// escalation entirely.
func NewClassifier(fallback Fallback, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{fallback: fallback, logger: logger}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// Classify resolves the utterance to an intent. It never fails: classification
// problems, including fallback errors, degrade to TagNone.
func (c *Classifier) Classify(ctx context.Context, utterance string) Intent {
	prompt := strings.ToLower(utterance)

	// Weather. No captured location means no weather intent at all.
	if containsAny(prompt, "weather", "temperature", "climate") {
		if m := weatherRe.FindStringSubmatch(prompt); m != nil {
			city := strings.TrimSpace(m[1])
			city = weatherStripRe.ReplaceAllString(city, "")
			if city != "" {
				return Intent{Tag: TagWeather, Parameter: city}
			}
		}
	}

	// News always resolves; the topic defaults to "latest".
	if containsAny(prompt, "news", "headlines", "latest news") {
		topic := "latest"
		if m := newsRe.FindStringSubmatch(prompt); m != nil {
			topic = strings.TrimSpace(m[1])
		}
		return Intent{Tag: TagNews, Parameter: topic}
	}

	// Cricket tolerates an empty parameter.
	if containsAny(prompt, "cricket", "score", "match", "result", "last match") {
		if m := cricketRe.FindStringSubmatch(prompt); m != nil {
			query := strings.TrimSpace(m[1])
			query = cricketStripRe.ReplaceAllString(query, "")
			return Intent{Tag: TagCricket, Parameter: query}
		}
		return Intent{Tag: TagCricket}
	}

	// Stocks. A capture that is itself a trigger word ("price of the ...") is
	// skipped and the scan resumes one rune later, so "price of tcs" lands on
	// the symbol rather than the preposition.
	if containsAny(prompt, "stock", "price", "share") {
		rest := prompt
		for {
			loc := stocksRe.FindStringSubmatchIndex(rest)
			if loc == nil {
				break
			}
			candidate := strings.ToUpper(rest[loc[2]:loc[3]])
			if !stockStopWords[candidate] {
				return Intent{Tag: TagStocks, Parameter: candidate}
			}
			rest = rest[loc[0]+1:]
		}
	}

	if containsAny(prompt, "trending", "popular now", "what's trending") {
		return Intent{Tag: TagTrending}
	}

	// LLM fallback for real-time-sounding queries the keywords missed.
	if c.fallback != nil && containsAny(prompt, "happen", "world", "now", "live") {
		result, err := c.fallback.Classify(ctx, utterance)
		if err != nil {
			c.logger.Debug("intent fallback failed", zap.Error(err))
			return None
		}
		return result
	}

	return None
}
