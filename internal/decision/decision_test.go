package decision

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    Decision
	}{
		{
			name:    "single general",
			entries: []string{"general tell me a joke"},
			want: Decision{
				Entries:     []string{"general tell me a joke"},
				General:     true,
				MergedQuery: "tell me a joke",
			},
		},
		{
			name:    "general and realtime merge in order",
			entries: []string{"realtime news today", "general thanks"},
			want: Decision{
				Entries:     []string{"realtime news today", "general thanks"},
				General:     true,
				Realtime:    true,
				MergedQuery: "news today and thanks",
			},
		},
		{
			name:    "image keeps the whole entry",
			entries: []string{"generate image of a cat"},
			want: Decision{
				Entries:    []string{"generate image of a cat"},
				HasImage:   true,
				ImageQuery: "generate image of a cat",
			},
		},
		{
			name:    "video strips the word video",
			entries: []string{"generate video of sunset"},
			want: Decision{
				Entries:    []string{"generate video of sunset"},
				HasVideo:   true,
				VideoQuery: "generate  of sunset",
			},
		},
		{
			name:    "automation captures the full list",
			entries: []string{"open chrome", "general hello"},
			want: Decision{
				Entries:         []string{"open chrome", "general hello"},
				General:         true,
				MergedQuery:     "hello",
				AutomationBatch: []string{"open chrome", "general hello"},
			},
		},
		{
			name:    "exit",
			entries: []string{"exit"},
			want: Decision{
				Entries: []string{"exit"},
				Exit:    true,
			},
		},
		{
			name:    "label with no payload",
			entries: []string{"general"},
			want: Decision{
				Entries:     []string{"general"},
				General:     true,
				MergedQuery: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.entries)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%v) = %+v, want %+v", tt.entries, got, tt.want)
			}
		})
	}
}

func TestPayload(t *testing.T) {
	tests := []struct {
		entry string
		want  string
	}{
		{"general tell me a joke", "tell me a joke"},
		{"realtime  spaced   out", "spaced out"},
		{"exit", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := payload(tt.entry); got != tt.want {
			t.Errorf("payload(%q) = %q, want %q", tt.entry, got, tt.want)
		}
	}
}

func TestParseEntries(t *testing.T) {
	text := "General tell me a joke, open chrome, bogus stuff, GENERATE IMAGE a cat"
	got := parseEntries(text)
	want := []string{"general tell me a joke", "open chrome", "generate image a cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseEntries(%q) = %v, want %v", text, got, want)
	}

	if entries := parseEntries("complete nonsense"); entries != nil {
		t.Errorf("parseEntries nonsense = %v, want nil", entries)
	}
}
