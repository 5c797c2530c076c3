// Package ui renders the todo widget and runs it as a terminal UI.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todos-go/internal/config"
	"github.com/nibzard/todos-go/internal/logging"
	"github.com/nibzard/todos-go/internal/todo"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	input  io.Reader
	output io.Writer
	logger *log.Logger
}

// WithIO runs the program on the given reader and writer instead of the
// terminal. The TTY check is skipped.
func WithIO(in io.Reader, out io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.input = in
		c.output = out
	}
}

// WithLogger sets the logger for TUI events.
func WithLogger(logger *log.Logger) TUIOption {
	return func(c *tuiConfig) {
		c.logger = logger
	}
}

// RunTUI runs the widget until the user quits or ctx is cancelled.
func RunTUI(ctx context.Context, cfg *config.Config, ctrl *Controller, opts ...TUIOption) error {
	c := &tuiConfig{logger: logging.Discard()}
	for _, opt := range opts {
		opt(c)
	}

	var programOpts []tea.ProgramOption
	if c.output == nil {
		if !IsTTY(os.Stdout) {
			return fmt.Errorf("tui requires a TTY")
		}
		if cfg.AltScreen {
			programOpts = append(programOpts, tea.WithAltScreen())
		}
	} else {
		programOpts = append(programOpts, tea.WithInput(c.input), tea.WithOutput(c.output))
	}
	programOpts = append(programOpts, tea.WithContext(ctx))

	model := newTUIModel(cfg, ctrl, c.logger)
	program := tea.NewProgram(model, programOpts...)
	c.logger.Info("tui started", "filter", ctrl.Filter(), "alt_screen", cfg.AltScreen)
	_, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	c.logger.Info("tui stopped", "tasks", len(ctrl.Tasks()), "items_left", ctrl.ItemsLeft())
	return nil
}

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

type tuiModel struct {
	ctrl     *Controller
	input    textinput.Model
	keys     KeyMap
	styles   Styles
	title    string
	focus    focusArea
	cursor   int
	showHelp bool
	logger   *log.Logger
}

func newTUIModel(cfg *config.Config, ctrl *Controller, logger *log.Logger) *tuiModel {
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = cfg.CharLimit
	ti.Width = 50
	ti.Prompt = ""
	ti.SetValue(ctrl.Input())
	ti.Focus()

	if logger == nil {
		logger = logging.Discard()
	}
	return &tuiModel{
		ctrl:   ctrl,
		input:  ti,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		title:  cfg.Title,
		focus:  focusInput,
		logger: logger,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if w := msg.Width - 10; w > 10 {
			m.input.Width = w
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		if m.focus == focusInput {
			cmd = m.updateInput(msg)
		} else {
			cmd = m.updateList(msg)
		}
		m.clampCursor()
		return m, cmd
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *tuiModel) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Commit):
		m.ctrl.SetInput(m.input.Value())
		if m.ctrl.Commit() {
			m.input.Reset()
		}
		return nil
	case key.Matches(msg, m.keys.ToggleAllInput):
		m.ctrl.ToggleAll()
		return nil
	case key.Matches(msg, m.keys.Blur):
		m.focus = focusList
		m.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetInput(m.input.Value())
	return cmd
}

func (m *tuiModel) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusInput
		return m.input.Focus()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.ctrl.Toggle(t.ID)
		}
	case key.Matches(msg, m.keys.Remove):
		if t, ok := m.selected(); ok {
			m.ctrl.Remove(t.ID)
		}
	case key.Matches(msg, m.keys.ToggleAll):
		m.ctrl.ToggleAll()
	case key.Matches(msg, m.keys.ClearCompleted):
		m.ctrl.ClearCompleted()
	case key.Matches(msg, m.keys.FilterAll):
		m.ctrl.SetFilter(todo.FilterAll)
	case key.Matches(msg, m.keys.FilterActive):
		m.ctrl.SetFilter(todo.FilterActive)
	case key.Matches(msg, m.keys.FilterCompleted):
		m.ctrl.SetFilter(todo.FilterCompleted)
	case key.Matches(msg, m.keys.NextFilter):
		m.ctrl.SetFilter(m.ctrl.Filter().Next())
	case key.Matches(msg, m.keys.PrevFilter):
		m.ctrl.SetFilter(m.ctrl.Filter().Prev())
	}
	return nil
}

func (m *tuiModel) selected() (todo.Task, bool) {
	visible := m.ctrl.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return todo.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *tuiModel) clampCursor() {
	n := len(m.ctrl.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) View() string {
	rs := RenderState{
		Title:  m.title,
		Entry:  m.input.View(),
		Cursor: -1,
	}
	if m.focus == focusList {
		rs.Cursor = m.cursor
	}
	if m.showHelp {
		if m.focus == focusInput {
			rs.Help = m.keys.InputHelp()
		} else {
			rs.Help = m.keys.ListHelp()
		}
	}

	view := Render(m.ctrl, m.styles, rs)
	if !m.showHelp {
		view += m.styles.Help.Render(m.hint()) + "\n"
	}
	return view
}

func (m *tuiModel) hint() string {
	if m.focus == focusInput {
		return "enter add • ctrl+a toggle all • tab list • ctrl+c quit"
	}
	return "space toggle • d remove • 1/2/3 filter • c clear • tab new • ? help • q quit"
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
