package skycave

// Database is the persistence boundary of the application: a handful of
// documents read at startup and rewritten whenever the authoritative guest
// list or report-row list changes.
//
// Implementations serialize records as structured text; date fields must
// survive the round trip, including the dates nested in bookings and in the
// identification expiration. A value that fails to deserialize degrades to
// the empty state instead of surfacing an error.
type Database interface {
	// Guests returns the stored guest list. Empty slice when nothing is stored.
	Guests() ([]Guest, error)
	// SaveGuests replaces the stored guest list.
	SaveGuests(guests []Guest) error
	// ReportRows returns the in-progress TM30 report rows, if any.
	ReportRows() ([]ReportRow, error)
	// SaveReportRows replaces the stored report rows.
	SaveReportRows(rows []ReportRow) error
	// ClearReportRows removes any stored report rows.
	ClearReportRows() error
}
