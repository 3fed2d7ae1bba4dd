package skycave

import (
	"strconv"
	"strings"
)

// FieldKey identifies one column of a report row.
type FieldKey string

// Report row fields. The order they appear in on screen and in traversal is
// fixed by reportFieldOrder.
const (
	FieldBookingID   FieldKey = "bookingId"
	FieldName        FieldKey = "nameAndSurname"
	FieldNationality FieldKey = "nationality"
	FieldPassport    FieldKey = "passportNumber"
	FieldVisa        FieldKey = "typeOfVisa"
	FieldArrival     FieldKey = "dateOfArrivalInThailand"
	FieldExpiry      FieldKey = "expiryDateOfStay"
	FieldEntryPoint  FieldKey = "pointOfEntry"
	FieldRelation    FieldKey = "relationship"
)

// reportFieldOrder is the single source of truth for column order. Both the
// grid rendering and the Tab traversal consume this list.
var reportFieldOrder = []FieldKey{
	FieldBookingID,
	FieldName,
	FieldNationality,
	FieldPassport,
	FieldVisa,
	FieldArrival,
	FieldExpiry,
	FieldEntryPoint,
	FieldRelation,
}

// editableReportFields is reportFieldOrder without the read-only booking id.
var editableReportFields = reportFieldOrder[1:]

// Relationship values for report rows.
const (
	RelationPrimary      = "PRIMARY"
	RelationAccompanying = "ACCOMPANYING"
	RelationChild        = "CHILD"
)

// ReportRow is one reportable person on the TM30 form. All fields except the
// booking id are free text and edited independently.
type ReportRow struct {
	BookingID      string `json:"bookingId"`
	NameAndSurname string `json:"nameAndSurname"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passportNumber"`
	TypeOfVisa     string `json:"typeOfVisa"`
	DateOfArrival  string `json:"dateOfArrivalInThailand"`
	ExpiryDate     string `json:"expiryDateOfStay"`
	PointOfEntry   string `json:"pointOfEntry"`
	Relationship   string `json:"relationship"`
}

// Field returns the value of the named field.
func (r ReportRow) Field(key FieldKey) string {
	switch key {
	case FieldBookingID:
		return r.BookingID
	case FieldName:
		return r.NameAndSurname
	case FieldNationality:
		return r.Nationality
	case FieldPassport:
		return r.PassportNumber
	case FieldVisa:
		return r.TypeOfVisa
	case FieldArrival:
		return r.DateOfArrival
	case FieldExpiry:
		return r.ExpiryDate
	case FieldEntryPoint:
		return r.PointOfEntry
	case FieldRelation:
		return r.Relationship
	}
	return ""
}

// SetField writes value into the named field. The booking id is read-only
// once derived; writes to it are dropped.
func (r *ReportRow) SetField(key FieldKey, value string) {
	switch key {
	case FieldName:
		r.NameAndSurname = value
	case FieldNationality:
		r.Nationality = value
	case FieldPassport:
		r.PassportNumber = value
	case FieldVisa:
		r.TypeOfVisa = value
	case FieldArrival:
		r.DateOfArrival = value
	case FieldExpiry:
		r.ExpiryDate = value
	case FieldEntryPoint:
		r.PointOfEntry = value
	case FieldRelation:
		r.Relationship = value
	}
}

// Complete reports whether every editable field holds a non-blank value.
func (r ReportRow) Complete() bool {
	for _, key := range editableReportFields {
		if strings.TrimSpace(r.Field(key)) == "" {
			return false
		}
	}
	return true
}

// DeriveRows flattens guests into the ordered list of reportable persons.
//
// Each guest with both names present contributes a PRIMARY row, then one
// ACCOMPANYING row per adult beyond the first, then one CHILD row per child,
// all tagged with the guest's booking id. Guests missing either name are
// skipped without error.
//
// Callers must not re-derive into a session that already has rows: the result
// replaces whatever edits were in flight.
func DeriveRows(guests []Guest) []ReportRow {
	var rows []ReportRow
	for _, guest := range guests {
		if guest.FirstName == "" || guest.LastName == "" {
			continue
		}
		booking := guest.CurrentBooking()
		var bookingID string
		adults, children := 1, 0
		if booking != nil {
			bookingID = booking.BookingID
			adults, children = booking.Adults, booking.Children
		}
		rows = append(rows, ReportRow{
			BookingID:      bookingID,
			NameAndSurname: guest.FullName(),
			Nationality:    guest.Nationality,
			PassportNumber: guest.Identification.Number,
			Relationship:   RelationPrimary,
		})
		for i := 1; i < adults; i++ {
			rows = append(rows, ReportRow{
				BookingID:      bookingID,
				NameAndSurname: "ADULT " + strconv.Itoa(i),
				Relationship:   RelationAccompanying,
			})
		}
		for i := 1; i <= children; i++ {
			rows = append(rows, ReportRow{
				BookingID:      bookingID,
				NameAndSurname: "CHILD " + strconv.Itoa(i),
				Relationship:   RelationChild,
			})
		}
	}
	return rows
}
