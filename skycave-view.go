package skycave

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state.
//
// Provides compatibility with tea.Model.
func (m SkyCave) View() string {
	if m.state.quitting {
		return ""
	}
	if !m.state.ready {
		return styleWindow.Render("LOADING ...")
	}
	var (
		title, screenID, body, funcKeys string
	)
	switch m.state.screen {
	case screenCheckIn:
		title, screenID = "GUEST CHECK-IN", "CHK001"
		body = m.renderCheckIn()
		funcKeys = m.renderFunctionKeys(m.keys.back, m.keys.nextField, m.keys.confirm)
	case screenCheckOut:
		title, screenID = "GUEST CHECK-OUT", "CHK002"
		body = m.renderCheckOut()
		funcKeys = m.renderFunctionKeys(m.keys.back, m.keys.confirm)
	case screenGuests:
		title, screenID = "GUEST DETAILS", "GST001"
		body = m.renderGuests()
		funcKeys = m.renderFunctionKeys(m.keys.back)
	case screenReport:
		title, screenID = "TM30 FOREIGN GUEST REPORT", "RPT001"
		body = m.renderReport()
		funcKeys = m.renderFunctionKeys(m.keys.back, m.keys.confirm, m.keys.nextField, m.keys.prevField, m.keys.navigate)
	default:
		title, screenID = "SKYCAVE MANAGEMENT SYSTEM", "MNU001"
		body = m.renderMenu()
		funcKeys = m.renderFunctionKeys(m.keys.menuCheckIn, m.keys.menuCheckOut, m.keys.menuGuests, m.keys.menuReport, m.keys.quit)
	}
	var doc strings.Builder
	doc.WriteString(m.renderHeader(title, screenID))
	doc.WriteString("\n")
	doc.WriteString(body)
	doc.WriteString("\n")
	doc.WriteString(funcKeys)
	return styleWindow.Render(doc.String())
}

// renderHeader draws the top bar: screen title on the left, live date/time
// and screen id on the right.
func (m SkyCave) renderHeader(title, screenID string) string {
	datetime := styleDateTime.Render(strings.TrimSpace(m.clock.date() + " " + m.clock.time()))
	id := styleScreenID.Render(screenID)
	left := styleHeader.Render(title)
	right := lipgloss.JoinHorizontal(lipgloss.Center, datetime, "  ", id)
	gap := m.state.viewWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, strings.Repeat(" ", gap), right)
}

func (m SkyCave) renderMenu() string {
	var doc strings.Builder
	doc.WriteString(stylePanelT.Render("MAIN MENU"))
	doc.WriteString("\n\n")
	items := []struct {
		binding key.Binding
		label   string
	}{
		{m.keys.menuCheckIn, "GUEST CHECK-IN"},
		{m.keys.menuCheckOut, "GUEST CHECK-OUT"},
		{m.keys.menuGuests, "VIEW GUEST DETAILS"},
		{m.keys.menuReport, "TM30 IMMIGRATION REPORT"},
	}
	for _, item := range items {
		doc.WriteString(styleMenuItem.Render(item.binding.Help().Key + "  " + item.label))
		doc.WriteString("\n")
	}
	doc.WriteString("\n")
	doc.WriteString(styleLabel.Render("OCCUPANCY:"))
	if g := m.currentGuest(); g != nil {
		doc.WriteString(styleValue.Render(g.FullName()))
	} else {
		doc.WriteString(styleValue.Render("VACANT"))
	}
	doc.WriteString("\n")
	doc.WriteString(styleLabel.Render("STATUS:"))
	if m.state.status != "" {
		doc.WriteString(styleValue.Render(m.state.status))
	} else {
		doc.WriteString(styleValue.Render("READY"))
	}
	return stylePanel.Width(max(40, m.state.viewWidth-2)).Render(doc.String())
}

// renderFunctionKeys draws the bottom bar listing the keys active on the
// current screen.
func (m SkyCave) renderFunctionKeys(bindings ...key.Binding) string {
	return styleFuncKey.Width(max(20, m.state.viewWidth-2)).Render(m.help.ShortHelpView(bindings))
}
