package tui

import (
	"guestevents/services/session"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// resultMsg carries a gateway outcome back into Update.
type resultMsg struct {
	event session.Event
}

// apply runs ev through the reducer and converts the effects into commands.
func (m Model) apply(ev session.Event) (Model, tea.Cmd) {
	var effects []session.Effect
	m.state, effects = session.Reduce(m.state, ev)

	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case session.ReportEffect:
			session.LogDiagnostic(m.logger, eff.Diagnostic)
		case session.OpenURLEffect:
			cmds = append(cmds, m.openURL(eff.URL))
		default:
			m.pending++
			cmds = append(cmds, m.perform(eff))
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	if m.pending > 0 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// perform returns a command that runs a gateway effect.
func (m Model) perform(eff session.Effect) tea.Cmd {
	ctx, gw := m.ctx, m.gateway
	return func() tea.Msg {
		return resultMsg{event: session.Perform(ctx, gw, eff)}
	}
}

func (m Model) openURL(url string) tea.Cmd {
	opener, logger := m.opener, m.logger
	return func() tea.Msg {
		if opener == nil {
			return nil
		}
		if err := opener.Open(url); err != nil {
			logger.Warn("Failed to open link", zap.String("url", url), zap.Error(err))
		}
		return nil
	}
}
