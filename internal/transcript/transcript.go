// Package transcript provides the flat-file chat log.
//
// The store is an ordered JSON array of role/content entries with
// read-modify-write semantics: every append reads the full existing sequence,
// adds the new entries, and writes the whole sequence back. Entries usually
// alternate user/assistant but the store does not enforce alternation;
// duplicate-role appends round-trip unchanged.
package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Entry is one logged message.
type Entry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Log is a file-backed transcript. Only the dispatcher's cycle writes it;
// the mutex guards against accidental concurrent use.
type Log struct {
	path string
	mu   sync.Mutex
}

// NewLog creates a transcript log bound to the given file path.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Read returns the full logged sequence. A missing or corrupt file reads as
// an empty log; data loss is accepted, not fatal.
func (l *Log) Read() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

func (l *Log) read() ([]Entry, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

// Append adds a user entry and an assistant entry in that order, preserving
// everything already logged byte for byte.
func (l *Log) Append(user, assistant string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, _ := l.read()
	entries = append(entries,
		Entry{Role: "user", Content: user},
		Entry{Role: "assistant", Content: assistant},
	)
	return l.write(entries)
}

func (l *Log) write(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create transcript dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

// Formatted renders the log as "<name>: <content>" lines for prompt
// integration, substituting the configured names for the stored roles.
func (l *Log) Formatted(username, assistant string) string {
	entries, _ := l.Read()

	var sb strings.Builder
	for _, e := range entries {
		switch e.Role {
		case "user":
			sb.WriteString(username + ": " + e.Content + "\n")
		case "assistant":
			sb.WriteString(assistant + ": " + e.Content + "\n")
		}
	}
	return sb.String()
}
