// Package tui provides the terminal status panel for aria.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ariahq/aria/internal/status"
)

// Colors
var (
	purple   = lipgloss.Color("#7C3AED")
	green    = lipgloss.Color("#10B981")
	red      = lipgloss.Color("#EF4444")
	gray     = lipgloss.Color("#6B7280")
	darkGray = lipgloss.Color("#374151")
	white    = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(white).
			Background(purple).
			Padding(0, 2).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(purple)

	statusErrorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(red)

	micOnStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	micOffStyle = lipgloss.NewStyle().
			Foreground(gray)

	conversationStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(darkGray).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(gray).
			Background(darkGray).
			Padding(0, 2)
)

// pollInterval is how often the panel re-reads the board. The board is
// last-write-wins, so missing intermediate states is expected.
const pollInterval = 200 * time.Millisecond

type tickMsg time.Time

// Model is the status panel: it polls the board and renders the assistant
// state, mic toggle, and conversation tail. Typed utterances are submitted
// to the scheduler's listener queue in place of captured speech.
type Model struct {
	board     *status.Board
	assistant string
	submit    func(string)

	snap  status.Snapshot
	lines []string

	width  int
	height int

	spinner  spinner.Model
	viewport viewport.Model
	input    textinput.Model
}

// New creates the status panel bound to a board. submit receives typed
// utterances and may be nil.
func New(board *status.Board, assistant string, submit func(string)) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(purple)

	vp := viewport.New(80, 20)

	in := textinput.New()
	in.Placeholder = "say something..."
	in.Prompt = "❯ "
	in.Focus()

	return Model{
		board:     board,
		assistant: assistant,
		submit:    submit,
		snap:      board.Snapshot(),
		spinner:   s,
		viewport:  vp,
		input:     in,
	}
}

// Init starts the spinner and the board poll.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab":
			m.board.ArmMic(!m.board.MicArmed())
			m.snap = m.board.Snapshot()
			return m, nil

		case "enter":
			utterance := strings.TrimSpace(m.input.Value())
			if utterance != "" && m.submit != nil {
				// Arm the mic so the scheduler picks the utterance up even if
				// the user toggled it off.
				m.board.ArmMic(true)
				m.submit(utterance)
				m.input.Reset()
				m.snap = m.board.Snapshot()
			}
			return m, nil

		case "up":
			m.viewport.ScrollUp(1)
			return m, nil

		case "down":
			m.viewport.ScrollDown(1)
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8

	case tickMsg:
		snap := m.board.Snapshot()
		if snap.LastText != m.snap.LastText && snap.LastText != "" {
			m.lines = append(m.lines, snap.LastText)
			m.viewport.SetContent(strings.Join(m.lines, "\n"))
			m.viewport.GotoBottom()
		}
		m.snap = snap
		cmds = append(cmds, tickCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the panel.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, logoStyle.Render("✦ "+m.assistant))
	sections = append(sections, m.renderStatus())
	sections = append(sections, conversationStyle.Width(m.width-2).Render(m.viewport.View()))
	sections = append(sections, m.input.View())
	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStatus() string {
	style := statusStyle
	if m.snap.State == status.StateError {
		style = statusErrorStyle
	}

	line := style.Render(m.snap.State.String())
	if m.snap.State != status.StateIdle {
		line = m.spinner.View() + " " + line
	}

	mic := micOffStyle.Render("○ mic off")
	if m.snap.MicArmed {
		mic = micOnStyle.Render("● mic on")
	}

	return fmt.Sprintf("%s    %s", line, mic)
}

func (m Model) renderHelp() string {
	return helpStyle.Width(m.width).Render("enter: send  •  tab: toggle mic  •  ↑/↓: scroll  •  ctrl+c: quit")
}
