package skycave

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// checkoutEvent tells the host how a key affected the check-out prompt.
type checkoutEvent int

const (
	checkoutNone checkoutEvent = iota
	checkoutCancel
	checkoutConfirm
)

// checkoutPrompt is the Y/N confirmation of the check-out screen.
type checkoutPrompt struct {
	choice confirmChoice
}

func (p checkoutPrompt) update(msg tea.KeyMsg) (checkoutPrompt, checkoutEvent) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyF3:
		return p, checkoutCancel
	case tea.KeyEnter:
		switch p.choice {
		case choiceYes:
			return p, checkoutConfirm
		case choiceNo:
			return p, checkoutCancel
		}
		return p, checkoutNone
	}
	switch strings.ToLower(msg.String()) {
	case "y":
		p.choice = choiceYes
	case "n":
		p.choice = choiceNo
	}
	return p, checkoutNone
}

func (m SkyCave) renderCheckOut() string {
	var doc strings.Builder
	doc.WriteString(stylePanelT.Render("CHECK-OUT CONFIRMATION"))
	doc.WriteString("\n\n")
	guest := m.currentGuest()
	if guest == nil {
		doc.WriteString(styleValue.Render("NO GUEST IS CURRENTLY CHECKED IN"))
		doc.WriteString("\n\n")
		doc.WriteString(styleStatus.Render("PRESS ANY KEY TO RETURN"))
		return stylePanel.Width(max(50, m.state.viewWidth-2)).Render(doc.String())
	}
	doc.WriteString(styleValue.Render("ARE YOU SURE YOU WANT TO CHECK OUT:"))
	doc.WriteString("\n\n")
	doc.WriteString(styleLabel.Render("GUEST:"))
	doc.WriteString(styleValue.Bold(true).Render(guest.FullName()))
	doc.WriteString("\n")
	doc.WriteString(styleLabel.Render("BOOKING:"))
	if b := guest.CurrentBooking(); b != nil {
		doc.WriteString(styleValue.Render(b.BookingID))
	} else {
		doc.WriteString(styleValue.Render("UNKNOWN"))
	}
	doc.WriteString("\n\n")
	doc.WriteString(styleLabel.Render("ENTER CHOICE (Y/N):"))
	switch m.checkout.choice {
	case choiceYes:
		doc.WriteString(styleValue.Render("Y"))
	case choiceNo:
		doc.WriteString(styleValue.Render("N"))
	default:
		doc.WriteString(styleValue.Render("_"))
	}
	doc.WriteString("\n")
	if m.checkout.choice == choiceUnset {
		doc.WriteString(styleStatus.Render("ENTER Y FOR YES, N FOR NO"))
	} else {
		doc.WriteString(styleStatus.Render("PRESS ENTER TO CONFIRM"))
	}
	return stylePanel.Width(max(50, m.state.viewWidth-2)).Render(doc.String())
}
