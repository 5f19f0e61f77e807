package tui

import (
	"MyStorage/internal/state"
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionFeed reports token changes.
type SessionFeed interface {
	Subscribe(fn func(token string)) func()
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, m *Model, sessions SessionFeed) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx))
	// Send blocks until the loop reads, and callers may be inside Update.
	m.send = func(msg tea.Msg) { go p.Send(msg) }

	unsubscribe := sessions.Subscribe(func(token string) {
		if token == "" {
			m.send(state.SessionEndedMsg{})
		}
	})
	defer unsubscribe()
	defer m.stopSync()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
