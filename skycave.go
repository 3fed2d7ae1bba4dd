// Package skycave contains the implementation of a bubbletea application for
// running a small short-stay property from a terminal: guest check-in and
// check-out, guest details, and a Thai immigration TM30 report with a
// keyboard-driven field editor and a printable form.
//
// New returns the application model that is ready to be passed into a new
// bubbletea program; Run wraps that for the common case.
package skycave

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"

	"github.com/robscovell-cx/skycave-management-system/tm30"
)

// Option defines a function that configures the application. Use with New or
// Run.
type Option func(app *SkyCave)

// UseLogger sets the logger for the application. If nil, a logger based on
// slog.DiscardHandler is used as default.
func UseLogger(l *slog.Logger) Option {
	return func(app *SkyCave) {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		app.l = l
	}
}

// UseFormOptions sets the layout options for the printable TM30 form.
func UseFormOptions(opts tm30.FormOptions) Option {
	return func(app *SkyCave) {
		app.form = opts
	}
}

// UseOutputDir sets the directory where submitted TM30 forms are written.
func UseOutputDir(dir string) Option {
	return func(app *SkyCave) {
		app.outputDir = dir
	}
}

// screen identifies the active view.
type screen int

const (
	screenMenu screen = iota
	screenCheckIn
	screenCheckOut
	screenGuests
	screenReport
)

type state struct {
	screenWidth  int
	screenHeight int
	viewWidth    int
	viewHeight   int
	screen       screen
	ready        bool
	quitting     bool
	status       string
	// authoritative data, loaded from and persisted to the database.
	guests     []Guest
	reportRows []ReportRow
}

// SkyCave is the management system application model. Keeps track of the
// whole application state and implements tea.Model.
type SkyCave struct {
	db        Database
	l         *slog.Logger
	keys      keymap
	help      help.Model
	state     state
	clock     clock
	checkin   checkinForm
	checkout  checkoutPrompt
	editor    editor
	form      tm30.FormOptions
	outputDir string
}

// New returns an initialized SkyCave model that can be passed into a
// bubbletea program.
//
// db must be some working implementation of Database. Reference
// implementations can be found under the database sub-package.
func New(db Database, options ...Option) SkyCave {
	h := help.New()
	h.Styles = styleHelp
	app := SkyCave{
		db:        db,
		l:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		keys:      newKeymap(),
		help:      h,
		clock:     newClock(time.Second),
		checkin:   newCheckinForm(),
		editor:    newEditor(),
		form:      tm30.FormOptions{PadRows: true},
		outputDir: ".",
	}
	for _, opt := range options {
		opt(&app)
	}
	return app
}

// currentGuest returns the guest currently checked in, or nil when the
// property is empty. One party at a time, so it is always the first entry.
func (m SkyCave) currentGuest() *Guest {
	if len(m.state.guests) == 0 {
		return nil
	}
	return &m.state.guests[0]
}

// rowStore exposes the authoritative report rows to the editor.
func (m *SkyCave) rowStore() RowStore {
	return rowListStore{rows: &m.state.reportRows}
}

func incMax(v, max int) int {
	if v >= max {
		return max
	}
	return v + 1
}

func decMin(v, min int) int {
	if v <= min {
		return min
	}
	return v - 1
}
