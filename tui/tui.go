package tui

import (
	"context"

	"guestevents/services/gateway"
	"guestevents/services/session"
	"guestevents/views"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options configures a Model.
type Options struct {
	Gateway  gateway.Gateway
	Opener   session.URLOpener
	Logger   *zap.Logger
	Selector views.Selector
	// Context bounds every gateway call. Defaults to context.Background.
	Context context.Context
}

// Model is the main Bubbletea model
type Model struct {
	state    session.State
	selector views.Selector

	ctx     context.Context
	gateway gateway.Gateway
	opener  session.URLOpener
	logger  *zap.Logger

	input   textinput.Model
	spinner spinner.Model
	cursor  int
	pending int
	width   int
	height  int
}

// New creates a Model in the initial sign-in state.
func New(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	ti := textinput.New()
	ti.Placeholder = "Enter Mobile Number"
	ti.CharLimit = 20
	ti.Width = 30
	ti.Focus()

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		state:    session.NewState(),
		selector: opts.Selector,
		ctx:      ctx,
		gateway:  opts.Gateway,
		opener:   opts.Opener,
		logger:   logger,
		input:    ti,
		spinner:  s,
	}
}

// State returns the session state the model is showing.
func (m Model) State() session.State {
	return m.state
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resultMsg:
		if m.pending > 0 {
			m.pending--
		}
		session.LogOutcome(m.logger, msg.event)
		return m.transition(msg.event)
	}

	if m.onSignIn() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// transition applies ev and adjusts widgets when the screen changes.
func (m Model) transition(ev session.Event) (tea.Model, tea.Cmd) {
	before := m.state.Screen()
	m, cmd := m.apply(ev)
	after := m.state.Screen()

	if before != after {
		switch after {
		case session.ScreenOTPSent:
			m.input.SetValue("")
			m.input.Placeholder = "Enter OTP"
			m.input.CharLimit = 8
		case session.ScreenList:
			m.input.Blur()
		}
	}
	if n := len(m.state.Events); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	return m, cmd
}

func (m Model) onSignIn() bool {
	screen := m.state.Screen()
	return screen == session.ScreenNoOTP || screen == session.ScreenOTPSent
}

// handleKeyPress processes keyboard input based on current screen
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state.Screen() {
	case session.ScreenNoOTP, session.ScreenOTPSent:
		return m.handleSignInKey(msg)
	case session.ScreenList:
		return m.handleListKey(msg)
	case session.ScreenDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) handleSignInKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		if m.state.Screen() == session.ScreenNoOTP {
			return m.transition(session.SendOTPPressed{})
		}
		return m.transition(session.VerifyOTPPressed{})
	}

	// Pass other keys to text input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	var edit session.Event = session.MobileChanged{Value: m.input.Value()}
	if m.state.Screen() == session.ScreenOTPSent {
		edit = session.CodeChanged{Value: m.input.Value()}
	}
	m.state, _ = session.Reduce(m.state, edit)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.state.Events)-1 {
			m.cursor++
		}

	case "enter":
		if m.cursor < len(m.state.Events) {
			return m.transition(session.EventSelected{EventID: m.state.Events[m.cursor].ID})
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b", "backspace":
		return m.transition(session.BackPressed{})
	case "m":
		return m.transition(session.MapPressed{})
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	busy := ""
	if m.pending > 0 {
		busy = m.spinner.View()
	}

	switch v := m.selector.Select(m.state).(type) {
	case views.SignIn:
		return RenderSignIn(v, m.input, busy)
	case views.List:
		return RenderList(v, m.cursor, m.width, busy)
	case views.Detail:
		return RenderDetail(v, m.width)
	}
	return ""
}
