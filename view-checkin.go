package skycave

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// checkinEvent tells the host how a key affected the check-in form.
type checkinEvent int

const (
	checkinNone checkinEvent = iota
	checkinCancel
	checkinSubmit
)

type checkinField struct {
	label   string
	limit   int
	numeric bool
	// min is the fallback for numeric fields: unparsable or below-minimum
	// input resolves to this value on submit.
	min int
}

// Check-in form fields, in entry order.
var checkinFields = []checkinField{
	{label: "FIRST NAME", limit: 20},
	{label: "LAST NAME", limit: 20},
	{label: "EMAIL", limit: 30},
	{label: "PHONE", limit: 15},
	{label: "NATIONALITY", limit: 20},
	{label: "PASSPORT NUMBER", limit: 15},
	{label: "NUMBER OF NIGHTS", limit: 3, numeric: true, min: 1},
	{label: "ADULT GUESTS", limit: 2, numeric: true, min: 1},
	{label: "CHILD GUESTS", limit: 2, numeric: true, min: 0},
}

const (
	ciFirstName = iota
	ciLastName
	ciEmail
	ciPhone
	ciNationality
	ciPassport
	ciNights
	ciAdults
	ciChildren
)

// checkinForm is the sequential guest-entry form of the check-in screen.
type checkinForm struct {
	bookingID string
	inputs    []textinput.Model
	focus     int
}

func newCheckinForm() checkinForm {
	inputs := make([]textinput.Model, len(checkinFields))
	for i, field := range checkinFields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = field.limit
		in.Width = field.limit + 1
		in.TextStyle = styleValue
		inputs[i] = in
	}
	return checkinForm{inputs: inputs}
}

// reset clears all fields, assigns a fresh booking id and focuses the first
// input.
func (f checkinForm) reset() (checkinForm, tea.Cmd) {
	f.bookingID = NewBookingID()
	f.focus = 0
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	return f, f.inputs[0].Focus()
}

func (f checkinForm) update(msg tea.KeyMsg) (checkinForm, checkinEvent, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyF3:
		return f, checkinCancel, nil
	case tea.KeyEnter:
		if f.focus == len(f.inputs)-1 {
			return f, checkinSubmit, nil
		}
		return f.moveFocus(f.focus + 1)
	case tea.KeyTab:
		next := f.focus + 1
		if next >= len(f.inputs) {
			next = 0
		}
		return f.moveFocus(next)
	case tea.KeyShiftTab:
		return f.moveFocus(decMin(f.focus, 0))
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, checkinNone, cmd
}

func (f checkinForm) moveFocus(next int) (checkinForm, checkinEvent, tea.Cmd) {
	f.inputs[f.focus].Blur()
	f.focus = next
	return f, checkinNone, f.inputs[f.focus].Focus()
}

// guest builds the Guest record from the entered values. Numeric fields are
// coerced on this edge so no unparsed count ever reaches a Booking.
func (f checkinForm) guest() Guest {
	now := time.Now()
	return Guest{
		GuestID:     "GT-" + strconv.FormatInt(now.Unix(), 10),
		FirstName:   strings.TrimSpace(f.inputs[ciFirstName].Value()),
		LastName:    strings.TrimSpace(f.inputs[ciLastName].Value()),
		Nationality: strings.TrimSpace(f.inputs[ciNationality].Value()),
		Contact: ContactInfo{
			Email: strings.TrimSpace(f.inputs[ciEmail].Value()),
			Phone: strings.TrimSpace(f.inputs[ciPhone].Value()),
		},
		Identification: Identification{
			Type:   "passport",
			Number: strings.TrimSpace(f.inputs[ciPassport].Value()),
		},
		Bookings: []Booking{{
			BookingID:      f.bookingID,
			CheckInDate:    now,
			NumberOfNights: parseCount(f.inputs[ciNights].Value(), checkinFields[ciNights].min),
			Adults:         parseCount(f.inputs[ciAdults].Value(), checkinFields[ciAdults].min),
			Children:       parseCount(f.inputs[ciChildren].Value(), checkinFields[ciChildren].min),
			Status:         BookingConfirmed,
			PaymentStatus:  PaymentPending,
			Currency:       "USD",
			DateMade:       now,
		}},
		AccountCreated:    now,
		PreferredLanguage: "en",
		VisitCount:        1,
	}
}

// parseCount coerces free-text count input to a base-10 integer, falling
// back to min when the input does not parse or is below it.
func parseCount(s string, min int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < min {
		return min
	}
	return n
}

func (m SkyCave) renderCheckIn() string {
	var doc strings.Builder
	doc.WriteString(stylePanelT.Render("GUEST INFORMATION"))
	doc.WriteString("\n")
	doc.WriteString(styleLabel.Render("BOOKING:"))
	doc.WriteString(styleValue.Render(m.checkin.bookingID))
	doc.WriteString("\n\n")
	for i, field := range checkinFields {
		doc.WriteString(styleLabel.Render(field.label + ":"))
		doc.WriteString(m.checkin.inputs[i].View())
		doc.WriteString("\n")
	}
	if m.checkin.focus == len(m.checkin.inputs)-1 {
		doc.WriteString(styleStatus.Render("PRESS ENTER TO COMPLETE CHECK-IN"))
	} else {
		doc.WriteString(styleStatus.Render("ENTER GUEST DETAILS"))
	}
	return stylePanel.Width(max(50, m.state.viewWidth-2)).Render(doc.String())
}
