package badgerdb

import (
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	skycave "github.com/robscovell-cx/skycave-management-system"
)

func openTestDB(t *testing.T) *BadgerDB {
	t.Helper()
	db, err := New(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil), nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testGuest() skycave.Guest {
	return skycave.Guest{
		GuestID:     "GT-1",
		FirstName:   "Maija",
		LastName:    "Meikäläinen",
		Nationality: "FINNISH",
		Contact:     skycave.ContactInfo{Email: "maija@example.com", Phone: "+358401234567"},
		Identification: skycave.Identification{
			Type:           "passport",
			Number:         "FI1234567",
			IssuingCountry: "FINLAND",
			ExpirationDate: time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		Bookings: []skycave.Booking{{
			BookingID:      "BK-123456",
			CheckInDate:    time.Date(2024, 1, 30, 14, 0, 0, 0, time.UTC),
			NumberOfNights: 3,
			Adults:         2,
			Children:       1,
			Status:         skycave.BookingConfirmed,
			PaymentStatus:  skycave.PaymentPending,
			Currency:       "USD",
			DateMade:       time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC),
		}},
		AccountCreated: time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC),
		VisitCount:     1,
	}
}

func TestBadgerDB_guestRoundTrip(t *testing.T) {
	db := openTestDB(t)
	// a store that has never been written reads as the empty state.
	guests, err := db.Guests()
	if err != nil {
		t.Fatalf("Guests() error: %v", err)
	}
	if len(guests) != 0 {
		t.Fatalf("fresh store returned %d guests", len(guests))
	}
	want := testGuest()
	if err = db.SaveGuests([]skycave.Guest{want}); err != nil {
		t.Fatalf("SaveGuests() error: %v", err)
	}
	if guests, err = db.Guests(); err != nil {
		t.Fatalf("Guests() error: %v", err)
	}
	if len(guests) != 1 {
		t.Fatalf("Guests() returned %d guests, want 1", len(guests))
	}
	got := guests[0]
	if got.FullName() != want.FullName() {
		t.Errorf("name = %q, want %q", got.FullName(), want.FullName())
	}
	// every nested date must survive the JSON round-trip.
	if !got.Identification.ExpirationDate.Equal(want.Identification.ExpirationDate) {
		t.Errorf("identification expiration = %v, want %v", got.Identification.ExpirationDate, want.Identification.ExpirationDate)
	}
	if len(got.Bookings) != 1 {
		t.Fatalf("bookings = %d, want 1", len(got.Bookings))
	}
	if !got.Bookings[0].CheckInDate.Equal(want.Bookings[0].CheckInDate) {
		t.Errorf("check-in date = %v, want %v", got.Bookings[0].CheckInDate, want.Bookings[0].CheckInDate)
	}
	if !got.Bookings[0].DateMade.Equal(want.Bookings[0].DateMade) {
		t.Errorf("date made = %v, want %v", got.Bookings[0].DateMade, want.Bookings[0].DateMade)
	}
}

func TestBadgerDB_reportRows(t *testing.T) {
	db := openTestDB(t)
	rows := []skycave.ReportRow{
		{BookingID: "BK-123456", NameAndSurname: "Maija Meikäläinen", Relationship: "PRIMARY"},
		{BookingID: "BK-123456", NameAndSurname: "CHILD 1", Relationship: "CHILD"},
	}
	if err := db.SaveReportRows(rows); err != nil {
		t.Fatalf("SaveReportRows() error: %v", err)
	}
	got, err := db.ReportRows()
	if err != nil {
		t.Fatalf("ReportRows() error: %v", err)
	}
	if len(got) != 2 || got[0] != rows[0] || got[1] != rows[1] {
		t.Errorf("ReportRows() = %+v, want %+v", got, rows)
	}
	// saving again replaces, not appends.
	if err = db.SaveReportRows(rows[:1]); err != nil {
		t.Fatalf("SaveReportRows() error: %v", err)
	}
	if got, err = db.ReportRows(); err != nil || len(got) != 1 {
		t.Fatalf("ReportRows() after replace = %d rows (%v), want 1", len(got), err)
	}
	if err = db.ClearReportRows(); err != nil {
		t.Fatalf("ClearReportRows() error: %v", err)
	}
	if got, err = db.ReportRows(); err != nil || len(got) != 0 {
		t.Errorf("ReportRows() after clear = %d rows (%v), want 0", len(got), err)
	}
}

func TestBadgerDB_clearWithoutRowsIsFine(t *testing.T) {
	db := openTestDB(t)
	if err := db.ClearReportRows(); err != nil {
		t.Errorf("ClearReportRows() on empty store: %v", err)
	}
}

func TestBadgerDB_undecodableValueDegradesToEmpty(t *testing.T) {
	db := openTestDB(t)
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyGuests), []byte("{definitely not json"))
	})
	if err != nil {
		t.Fatalf("seeding garbage failed: %v", err)
	}
	guests, err := db.Guests()
	if err != nil {
		t.Fatalf("Guests() error on garbage value: %v", err)
	}
	if len(guests) != 0 {
		t.Errorf("Guests() = %d entries from garbage, want empty state", len(guests))
	}
}
