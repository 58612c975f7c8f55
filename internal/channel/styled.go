package channel

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Styled renders lines with lipgloss styling, keyed on the speaker prefix.
type Styled struct {
	out       io.Writer
	username  string
	assistant string
}

// NewStyled creates a styled renderer for the two conversation parties.
func NewStyled(out io.Writer, username, assistant string) *Styled {
	return &Styled{out: out, username: username, assistant: assistant}
}

// Render prints the text, styling the speaker prefix. Error lines from the
// dispatcher's trap are highlighted whole.
func (s *Styled) Render(ctx context.Context, text string) error {
	styled := text
	switch {
	case strings.Contains(text, "I encountered an error"):
		styled = errorStyle.Render(text)
	case strings.HasPrefix(text, s.assistant+":"):
		styled = assistantStyle.Render(s.assistant+":") +
			strings.TrimPrefix(text, s.assistant+":")
	case strings.HasPrefix(text, s.username+":"):
		styled = userStyle.Render(text)
	}

	_, err := fmt.Fprintln(s.out, styled)
	return err
}
