package skycave

import (
	"testing"
	"time"
)

func testGuest(first, last string, adults, children int) Guest {
	return Guest{
		FirstName:   first,
		LastName:    last,
		Nationality: "FINNISH",
		Identification: Identification{
			Type:   "passport",
			Number: "FI1234567",
		},
		Bookings: []Booking{{
			BookingID:      "BK-123456",
			CheckInDate:    time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
			NumberOfNights: 3,
			Adults:         adults,
			Children:       children,
			Status:         BookingConfirmed,
		}},
	}
}

func TestDeriveRows(t *testing.T) {
	tests := []struct {
		name          string
		guests        []Guest
		wantNames     []string
		wantRelations []string
	}{
		{
			name:          "single adult no children",
			guests:        []Guest{testGuest("Maija", "Meikäläinen", 1, 0)},
			wantNames:     []string{"Maija Meikäläinen"},
			wantRelations: []string{RelationPrimary},
		},
		{
			name:      "party of three adults and two children",
			guests:    []Guest{testGuest("Matti", "Meikäläinen", 3, 2)},
			wantNames: []string{"Matti Meikäläinen", "ADULT 1", "ADULT 2", "CHILD 1", "CHILD 2"},
			wantRelations: []string{
				RelationPrimary,
				RelationAccompanying, RelationAccompanying,
				RelationChild, RelationChild,
			},
		},
		{
			name:          "guest without last name is skipped",
			guests:        []Guest{testGuest("Matti", "", 3, 2)},
			wantNames:     nil,
			wantRelations: nil,
		},
		{
			name:          "guest without first name is skipped",
			guests:        []Guest{testGuest("", "Meikäläinen", 2, 0)},
			wantNames:     nil,
			wantRelations: nil,
		},
		{
			name: "skipped guest does not break ordering",
			guests: []Guest{
				testGuest("", "Nameless", 4, 4),
				testGuest("Maija", "Meikäläinen", 2, 1),
			},
			wantNames:     []string{"Maija Meikäläinen", "ADULT 1", "CHILD 1"},
			wantRelations: []string{RelationPrimary, RelationAccompanying, RelationChild},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := DeriveRows(tt.guests)
			if len(rows) != len(tt.wantNames) {
				t.Fatalf("DeriveRows() returned %d rows, want %d", len(rows), len(tt.wantNames))
			}
			for i, row := range rows {
				if row.NameAndSurname != tt.wantNames[i] {
					t.Errorf("row %d name = %q, want %q", i, row.NameAndSurname, tt.wantNames[i])
				}
				if row.Relationship != tt.wantRelations[i] {
					t.Errorf("row %d relationship = %q, want %q", i, row.Relationship, tt.wantRelations[i])
				}
			}
		})
	}
}

func TestDeriveRows_primaryRowDetails(t *testing.T) {
	rows := DeriveRows([]Guest{testGuest("Maija", "Meikäläinen", 2, 1)})
	if len(rows) != 3 {
		t.Fatalf("DeriveRows() returned %d rows, want 3", len(rows))
	}
	primary := rows[0]
	if primary.BookingID != "BK-123456" {
		t.Errorf("primary booking id = %q, want %q", primary.BookingID, "BK-123456")
	}
	if primary.Nationality != "FINNISH" {
		t.Errorf("primary nationality = %q, want %q", primary.Nationality, "FINNISH")
	}
	if primary.PassportNumber != "FI1234567" {
		t.Errorf("primary passport = %q, want %q", primary.PassportNumber, "FI1234567")
	}
	// accompanying rows carry the booking id but are otherwise blank.
	for _, row := range rows[1:] {
		if row.BookingID != "BK-123456" {
			t.Errorf("row booking id = %q, want %q", row.BookingID, "BK-123456")
		}
		if row.Nationality != "" || row.PassportNumber != "" {
			t.Errorf("accompanying row not blank: %+v", row)
		}
	}
}

func TestReportRow_Complete(t *testing.T) {
	full := ReportRow{
		BookingID:      "BK-1",
		NameAndSurname: "Maija Meikäläinen",
		Nationality:    "FINNISH",
		PassportNumber: "FI1234567",
		TypeOfVisa:     "TOURIST",
		DateOfArrival:  "2024-01-30",
		ExpiryDate:     "2024-03-01",
		PointOfEntry:   "BKK",
		Relationship:   RelationPrimary,
	}
	tests := []struct {
		name   string
		modify func(r *ReportRow)
		want   bool
	}{
		{name: "all fields set", modify: func(*ReportRow) {}, want: true},
		{name: "missing booking id is still complete", modify: func(r *ReportRow) { r.BookingID = "" }, want: true},
		{name: "empty nationality", modify: func(r *ReportRow) { r.Nationality = "" }, want: false},
		{name: "whitespace-only visa", modify: func(r *ReportRow) { r.TypeOfVisa = "   " }, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := full
			tt.modify(&row)
			if got := row.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReportRow_SetField_readOnlyBookingID(t *testing.T) {
	row := ReportRow{BookingID: "BK-1"}
	row.SetField(FieldBookingID, "BK-2")
	if row.BookingID != "BK-1" {
		t.Errorf("booking id changed to %q, want unchanged", row.BookingID)
	}
}
