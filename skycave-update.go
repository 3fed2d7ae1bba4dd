package skycave

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robscovell-cx/skycave-management-system/tm30"
)

// Update model state based on the incoming message.
//
// Provides compatibility with tea.Model.
func (m SkyCave) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var commands []tea.Cmd
	switch msg := message.(type) {
	case guestsLoadedMsg:
		m.state.guests = msg.guests
		m.state.ready = true
	case reportRowsLoadedMsg:
		m.state.reportRows = msg.rows
	case guestCheckedInMsg:
		m.state.guests = msg.guests
		m.state.screen = screenMenu
		m.state.status = "CHECK-IN COMPLETE"
	case guestCheckedOutMsg:
		m.state.guests = nil
		m.state.reportRows = nil
		m.state.screen = screenMenu
		m.state.status = "CHECK-OUT COMPLETE"
	case reportSubmittedMsg:
		m.state.reportRows = nil
		m.state.screen = screenMenu
		m.state.status = "TM30 REPORT FILED: " + msg.path
	case tea.WindowSizeMsg:
		m.state.screenWidth = msg.Width
		m.state.screenHeight = msg.Height
		m.state.viewWidth = msg.Width - styleWindow.GetHorizontalFrameSize()
		m.state.viewHeight = msg.Height - styleWindow.GetVerticalFrameSize()
		m.help.Width = m.state.viewWidth
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.state.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		switch m.state.screen {
		case screenMenu:
			m, cmd = m.updateMenu(msg)
		case screenCheckIn:
			m, cmd = m.updateCheckIn(msg)
		case screenCheckOut:
			m, cmd = m.updateCheckOut(msg)
		case screenGuests:
			m, cmd = m.updateGuests(msg)
		case screenReport:
			m, cmd = m.updateReport(msg)
		}
		if cmd != nil {
			commands = append(commands, cmd)
		}
	}
	var cmd tea.Cmd
	if m.clock, cmd = m.clock.update(message); cmd != nil {
		commands = append(commands, cmd)
	}
	return m, tea.Batch(commands...)
}

func (m SkyCave) updateMenu(msg tea.KeyMsg) (SkyCave, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.state.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.menuCheckIn):
		m.state.screen = screenCheckIn
		m.state.status = ""
		var cmd tea.Cmd
		m.checkin, cmd = m.checkin.reset()
		return m, cmd
	case key.Matches(msg, m.keys.menuCheckOut):
		m.state.screen = screenCheckOut
		m.state.status = ""
		m.checkout = checkoutPrompt{}
	case key.Matches(msg, m.keys.menuGuests):
		m.state.screen = screenGuests
		m.state.status = ""
	case key.Matches(msg, m.keys.menuReport):
		return m.enterReport()
	}
	return m, nil
}

// enterReport opens the TM30 report screen. Rows are derived from the guest
// list only when no session rows exist yet; re-entry with rows present
// resumes the session so in-flight edits survive.
func (m SkyCave) enterReport() (SkyCave, tea.Cmd) {
	m.state.screen = screenReport
	m.state.status = ""
	m.editor = m.editor.reset()
	if len(m.state.reportRows) > 0 {
		return m, nil
	}
	m.state.reportRows = DeriveRows(m.state.guests)
	if len(m.state.reportRows) == 0 {
		return m, nil
	}
	return m, m.persistReportRows(m.state.reportRows)
}

func (m SkyCave) updateCheckIn(msg tea.KeyMsg) (SkyCave, tea.Cmd) {
	var (
		event checkinEvent
		cmd   tea.Cmd
	)
	m.checkin, event, cmd = m.checkin.update(msg)
	switch event {
	case checkinCancel:
		m.state.screen = screenMenu
		return m, nil
	case checkinSubmit:
		guests := append(m.state.guests, m.checkin.guest())
		return m, m.persistGuests(guests)
	}
	return m, cmd
}

func (m SkyCave) updateCheckOut(msg tea.KeyMsg) (SkyCave, tea.Cmd) {
	// Without a guest the screen is informational only; any key returns.
	if m.currentGuest() == nil {
		m.state.screen = screenMenu
		return m, nil
	}
	var event checkoutEvent
	m.checkout, event = m.checkout.update(msg)
	switch event {
	case checkoutCancel:
		m.state.screen = screenMenu
	case checkoutConfirm:
		return m, m.completeCheckOut()
	}
	return m, nil
}

func (m SkyCave) updateGuests(msg tea.KeyMsg) (SkyCave, tea.Cmd) {
	if key.Matches(msg, m.keys.back) {
		m.state.screen = screenMenu
	}
	return m, nil
}

func (m SkyCave) updateReport(msg tea.KeyMsg) (SkyCave, tea.Cmd) {
	var (
		event editorEvent
		cmd   tea.Cmd
	)
	m.editor, event, cmd = m.editor.handleKey(msg, m.rowStore())
	switch event {
	case editorExit:
		m.state.screen = screenMenu
		return m, nil
	case editorCommitted:
		return m, tea.Batch(cmd, m.persistReportRows(m.state.reportRows))
	case editorSubmit:
		return m, m.submitReport()
	}
	return m, cmd
}

// persistGuests stores the given guest list and reports the new list back as
// a completed check-in.
func (m SkyCave) persistGuests(guests []Guest) tea.Cmd {
	return func() tea.Msg {
		if err := m.db.SaveGuests(guests); err != nil {
			m.l.Error("failed to save guests", slog.String("error", err.Error()))
		}
		return guestCheckedInMsg{guests: guests}
	}
}

// persistReportRows stores the current report rows. Failures are logged and
// otherwise invisible; the in-memory rows stay authoritative for the session.
func (m SkyCave) persistReportRows(rows []ReportRow) tea.Cmd {
	return func() tea.Msg {
		if err := m.db.SaveReportRows(rows); err != nil {
			m.l.Error("failed to save report rows", slog.String("error", err.Error()))
		}
		return nil
	}
}

// completeCheckOut clears the guest list and any in-progress report session.
func (m SkyCave) completeCheckOut() tea.Cmd {
	return func() tea.Msg {
		if err := m.db.SaveGuests(nil); err != nil {
			m.l.Error("failed to clear guests", slog.String("error", err.Error()))
		}
		if err := m.db.ClearReportRows(); err != nil {
			m.l.Error("failed to clear report rows", slog.String("error", err.Error()))
		}
		return guestCheckedOutMsg{}
	}
}

// submitReport renders the printable TM30 form into the output directory and
// ends the report session. If writing the form fails, the session is kept so
// submission can be retried.
func (m SkyCave) submitReport() tea.Cmd {
	rows := m.state.reportRows
	bookings := bookingIndex(m.state.guests)
	return func() tea.Msg {
		people := make([]tm30.Person, 0, len(rows))
		for _, row := range rows {
			var period string
			if b, ok := bookings[row.BookingID]; ok {
				period = tm30.FormatPeriod(b.CheckInDate, b.NumberOfNights)
			}
			people = append(people, tm30.Person{
				NameAndSurname: row.NameAndSurname,
				Nationality:    row.Nationality,
				PassportNumber: row.PassportNumber,
				TypeOfVisa:     row.TypeOfVisa,
				DateOfArrival:  row.DateOfArrival,
				ExpiryDate:     row.ExpiryDate,
				PointOfEntry:   row.PointOfEntry,
				PeriodOfStay:   period,
				Relationship:   row.Relationship,
			})
		}
		path := filepath.Join(m.outputDir, "tm30-"+time.Now().Format("20060102-150405")+".html")
		f, err := os.Create(path)
		if err != nil {
			m.l.Error("failed to create report file", slog.String("error", err.Error()))
			return nil
		}
		defer func() { _ = f.Close() }()
		if err = tm30.Render(f, people, m.form); err != nil {
			m.l.Error("failed to render report", slog.String("error", err.Error()))
			return nil
		}
		if err = m.db.ClearReportRows(); err != nil {
			m.l.Error("failed to clear report rows", slog.String("error", err.Error()))
		}
		m.l.Info("TM30 report submitted", slog.String("path", path), slog.Int("persons", len(people)))
		return reportSubmittedMsg{path: path}
	}
}
