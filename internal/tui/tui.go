// Package tui provides a Bubble Tea editor for courses-manager configuration files.
package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/handiism/courses-manager/internal/config"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Width(20)

	focusedLabelStyle = labelStyle.
				Bold(true).
				Foreground(lipgloss.Color("#F8B500"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateEditing State = iota
	StateSaving
	StateSaved
)

// Field indexes into the editor inputs.
type Field int

const (
	FieldCoursesFilePath Field = iota
	FieldNameLength
	FieldGradeLength
	FieldPointsLength
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldCoursesFilePath: "Courses file",
	FieldNameLength:      "Name width",
	FieldGradeLength:     "Grade width",
	FieldPointsLength:    "Points width",
}

// Model is the Bubble Tea model for the config editor.
type Model struct {
	state  State
	store  *config.Store
	path   string
	inputs [fieldCount]textinput.Model
	focus  Field
	err    error

	width  int
	height int
}

// NewModel creates an editor for cfg that saves back to path.
func NewModel(store *config.Store, path string, cfg *config.Configuration) Model {
	m := Model{
		state: StateEditing,
		store: store,
		path:  path,
	}

	values := [fieldCount]string{
		FieldCoursesFilePath: cfg.CoursesFilePath,
		FieldNameLength:      strconv.Itoa(cfg.NameLength),
		FieldGradeLength:     strconv.Itoa(cfg.GradeLength),
		FieldPointsLength:    strconv.Itoa(cfg.PointsLength),
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.CharLimit = 500
		ti.Width = 60
		if Field(i) != FieldCoursesFilePath {
			ti.CharLimit = 6
			ti.Width = 8
		}
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[FieldCoursesFilePath].Focus()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Message types
type (
	// SavedMsg is sent when a save attempt completes.
	SavedMsg struct {
		Path string
		Err  error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "q":
			if m.state == StateSaved {
				return m, tea.Quit
			}

		case "e":
			if m.state == StateSaved {
				m.state = StateEditing
				return m, m.setFocus(m.focus)
			}

		case "tab", "down":
			if m.state == StateEditing {
				return m, m.setFocus((m.focus + 1) % fieldCount)
			}

		case "shift+tab", "up":
			if m.state == StateEditing {
				return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			}

		case "enter":
			if m.state == StateEditing {
				if m.focus == fieldCount-1 {
					return m.save()
				}
				return m, m.setFocus(m.focus + 1)
			}

		case "ctrl+s":
			if m.state == StateEditing {
				return m.save()
			}
		}

	case SavedMsg:
		if msg.Err != nil {
			m.state = StateEditing
			m.err = msg.Err
			return m, nil
		}
		m.state = StateSaved
		m.err = nil
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		return m, nil
	}

	if m.state != StateEditing {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves keyboard focus to field f.
func (m *Model) setFocus(f Field) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if Field(i) == f {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

// Configuration builds a Configuration from the current input values.
func (m Model) Configuration() (*config.Configuration, error) {
	cfg := &config.Configuration{
		CoursesFilePath: strings.TrimSpace(m.inputs[FieldCoursesFilePath].Value()),
	}

	widths := []struct {
		field Field
		dst   *int
	}{
		{FieldNameLength, &cfg.NameLength},
		{FieldGradeLength, &cfg.GradeLength},
		{FieldPointsLength, &cfg.PointsLength},
	}
	for _, w := range widths {
		raw := strings.TrimSpace(m.inputs[w.field].Value())
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be a whole number, got %q", strings.ToLower(fieldLabels[w.field]), raw)
		}
		*w.dst = n
	}

	return cfg, nil
}

func (m Model) save() (tea.Model, tea.Cmd) {
	cfg, err := m.Configuration()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.state = StateSaving
	m.err = nil
	store, path := m.store, m.path
	return m, func() tea.Msg {
		return SavedMsg{Path: path, Err: store.Save(cfg, path)}
	}
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Err returns the last validation or save error.
func (m Model) Err() error {
	return m.err
}

// Focused returns the field with keyboard focus.
func (m Model) Focused() Field {
	return m.focus
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Courses Manager Configuration"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.path))
	b.WriteString("\n\n")

	switch m.state {
	case StateEditing, StateSaving:
		b.WriteString(m.viewEditing())
	case StateSaved:
		b.WriteString(m.viewSaved())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewEditing() string {
	var b strings.Builder

	for i := range m.inputs {
		style := labelStyle
		if Field(i) == m.focus {
			style = focusedLabelStyle
		}
		b.WriteString(style.Render(fieldLabels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewSaved() string {
	var b strings.Builder

	lines := make([]string, 0, fieldCount+2)
	lines = append(lines, successStyle.Render("✓ Saved"), "")
	for i := range m.inputs {
		lines = append(lines, fmt.Sprintf("%-14s %s", fieldLabels[i]+":", m.inputs[i].Value()))
	}
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateEditing:
		return "tab/shift+tab: move • ctrl+s: save • esc: quit"
	case StateSaving:
		return "saving…"
	case StateSaved:
		return "e: edit again • q: quit"
	}
	return ""
}

// LogLevel returns the log level to use while the editor owns the terminal:
// requested when set, otherwise "error".
func LogLevel(requested string) string {
	if requested == "" {
		return "error"
	}
	return requested
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}

// Run resolves the configuration at path through store and starts the editor.
//
// The editor takes over the terminal with the alternate screen. Log entries
// written to stderr while it runs land on top of the UI, so callers should
// keep the logger at error level or route it away from the terminal.
func Run(store *config.Store, path string) error {
	if !IsInteractive() {
		return fmt.Errorf("the editor needs an interactive terminal")
	}

	cfg, source, err := store.Resolve(path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(store, source, cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
