package skycave

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func (m SkyCave) renderGuests() string {
	var doc strings.Builder
	doc.WriteString(stylePanelT.Render("CURRENT GUEST"))
	doc.WriteString("\n")
	guest := m.currentGuest()
	if guest == nil {
		doc.WriteString("\n")
		doc.WriteString(styleValue.Render("NO GUEST CURRENTLY CHECKED IN"))
		return stylePanel.Width(max(50, m.state.viewWidth-2)).Render(doc.String())
	}
	row := func(label, value string) {
		doc.WriteString(styleLabel.Render(label + ":"))
		if value == "" {
			value = "N/A"
		}
		doc.WriteString(styleValue.Render(value))
		doc.WriteString("\n")
	}
	doc.WriteString(styleSection.Render("PERSONAL INFORMATION"))
	doc.WriteString("\n")
	row("NAME", guest.FullName())
	row("NATIONALITY", guest.Nationality)
	doc.WriteString(styleSection.Render("CONTACT INFORMATION"))
	doc.WriteString("\n")
	row("EMAIL", guest.Contact.Email)
	row("PHONE", guest.Contact.Phone)
	doc.WriteString(styleSection.Render("IDENTIFICATION"))
	doc.WriteString("\n")
	row("ID TYPE", strings.ToUpper(guest.Identification.Type))
	row("ID NUMBER", guest.Identification.Number)
	row("ISSUING COUNTRY", guest.Identification.IssuingCountry)
	doc.WriteString(styleSection.Render("BOOKING DETAILS"))
	doc.WriteString("\n")
	doc.WriteString(renderBookingTable(guest.Bookings))
	return stylePanel.Width(max(50, m.state.viewWidth-2)).Render(doc.String())
}

func renderBookingTable(bookings []Booking) string {
	if len(bookings) == 0 {
		return styleValue.Render("NO BOOKING INFORMATION AVAILABLE")
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDimGreen)).
		Headers("BOOKING", "CHECK-IN", "NIGHTS", "GUESTS", "STATUS", "PAYMENT").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleGridHead
			}
			return styleCell
		})
	for _, b := range bookings {
		tbl = tbl.Row(
			b.BookingID,
			b.CheckInDate.Format(time.DateOnly),
			strconv.Itoa(b.NumberOfNights),
			strconv.Itoa(b.Adults)+" ADULTS / "+strconv.Itoa(b.Children)+" CHILDREN",
			strings.ToUpper(b.Status),
			strings.ToUpper(b.PaymentStatus),
		)
	}
	return tbl.Render()
}
