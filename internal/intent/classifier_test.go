package intent

import (
	"context"
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(nil, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		utterance string
		want      Intent
	}{
		{
			name:      "weather with city",
			utterance: "what is the weather in Mumbai",
			want:      Intent{Tag: TagWeather, Parameter: "mumbai"},
		},
		{
			name:      "weather without city",
			utterance: "how is the climate",
			want:      None,
		},
		{
			name:      "news with topic",
			utterance: "news about technology",
			want:      Intent{Tag: TagNews, Parameter: "technology"},
		},
		{
			name:      "news default topic",
			utterance: "latest news",
			want:      Intent{Tag: TagNews, Parameter: "latest"},
		},
		{
			name:      "cricket with query",
			utterance: "what is the cricket score of india match",
			want:      Intent{Tag: TagCricket, Parameter: "india match"},
		},
		{
			name:      "cricket without query",
			utterance: "cricket score",
			want:      Intent{Tag: TagCricket},
		},
		{
			name:      "stocks skips trigger capture",
			utterance: "what is the price of TCS",
			want:      Intent{Tag: TagStocks, Parameter: "TCS"},
		},
		{
			name:      "stocks plain symbol",
			utterance: "stock price of aapl",
			want:      Intent{Tag: TagStocks, Parameter: "AAPL"},
		},
		{
			name:      "trending",
			utterance: "what is trending today",
			want:      Intent{Tag: TagTrending},
		},
		{
			name:      "no match without fallback",
			utterance: "tell me something interesting",
			want:      None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(ctx, tt.utterance)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.utterance, got, tt.want)
			}
		})
	}
}

type fakeFallback struct {
	result Intent
	err    error
	called bool
}

func (f *fakeFallback) Classify(ctx context.Context, utterance string) (Intent, error) {
	f.called = true
	return f.result, f.err
}

func TestClassify_Fallback(t *testing.T) {
	ctx := context.Background()

	// Real-time-sounding query escalates to the fallback.
	fb := &fakeFallback{result: Intent{Tag: TagNews, Parameter: "world"}}
	c := NewClassifier(fb, nil)

	got := c.Classify(ctx, "what is happening right now")
	if !fb.called {
		t.Fatal("fallback was not called")
	}
	if got != fb.result {
		t.Errorf("got %+v, want %+v", got, fb.result)
	}

	// A fallback failure degrades to none, never an error.
	fb = &fakeFallback{err: errors.New("provider down")}
	c = NewClassifier(fb, nil)

	got = c.Classify(ctx, "what is happening right now")
	if got != None {
		t.Errorf("got %+v, want None on fallback failure", got)
	}

	// Plain queries never reach the fallback.
	fb = &fakeFallback{result: Intent{Tag: TagNews}}
	c = NewClassifier(fb, nil)

	c.Classify(ctx, "tell me a story")
	if fb.called {
		t.Error("fallback called for a non-real-time query")
	}
}
