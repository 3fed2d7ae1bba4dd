package skycave

import "time"

// guestsLoadedMsg delivers the stored guest list during init.
type guestsLoadedMsg struct {
	guests []Guest
}

// reportRowsLoadedMsg delivers any stored in-progress report rows during init.
type reportRowsLoadedMsg struct {
	rows []ReportRow
}

// guestCheckedInMsg is sent when a completed check-in has been persisted.
type guestCheckedInMsg struct {
	guests []Guest
}

// guestCheckedOutMsg is sent when a confirmed check-out has been persisted.
type guestCheckedOutMsg struct{}

// reportSubmittedMsg is sent when a confirmed TM30 report has been rendered
// and the session rows cleared.
type reportSubmittedMsg struct {
	path string
}

// clockStartMsg starts the header clock.
type clockStartMsg struct {
	now time.Time
}

// clockTickMsg is sent on every clock tick.
type clockTickMsg struct {
	tag int
}
