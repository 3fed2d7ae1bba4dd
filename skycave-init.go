package skycave

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Init performs application initialization: loads the persisted guest list
// and any in-progress report rows, and starts the header clock.
//
// Provides compatibility with tea.Model.
func (m SkyCave) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			guests, err := m.db.Guests()
			if err != nil {
				// Boundary failures degrade to an empty state; the session
				// starts fresh instead of refusing to run.
				m.l.Warn("failed to load guests, starting empty", slog.String("error", err.Error()))
				guests = nil
			}
			return guestsLoadedMsg{guests: guests}
		},
		func() tea.Msg {
			rows, err := m.db.ReportRows()
			if err != nil {
				m.l.Warn("failed to load report rows, starting empty", slog.String("error", err.Error()))
				rows = nil
			}
			return reportRowsLoadedMsg{rows: rows}
		},
		m.clock.start(),
	)
}
