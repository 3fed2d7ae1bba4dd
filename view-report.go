package skycave

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// reportColumns pairs each field with its on-screen heading and width. Order
// comes from reportFieldOrder so the grid and the traversal can never drift
// apart.
var reportColumnHeads = map[FieldKey]struct {
	label string
	width int
}{
	FieldBookingID:   {label: "BOOKING", width: 11},
	FieldName:        {label: "NAME & SURNAME", width: 22},
	FieldNationality: {label: "NATIONALITY", width: 13},
	FieldPassport:    {label: "PASSPORT NO.", width: 14},
	FieldVisa:        {label: "VISA TYPE", width: 11},
	FieldArrival:     {label: "ARRIVAL DATE", width: 14},
	FieldExpiry:      {label: "EXPIRY DATE", width: 13},
	FieldEntryPoint:  {label: "ENTRY POINT", width: 13},
	FieldRelation:    {label: "RELATIONSHIP", width: 14},
}

func (m SkyCave) renderReport() string {
	var doc strings.Builder
	doc.WriteString(stylePanelT.Render("GUEST REPORTING DATA"))
	doc.WriteString("\n\n")
	if len(m.state.reportRows) == 0 {
		doc.WriteString(styleValue.Render("NO GUESTS CURRENTLY CHECKED IN"))
		doc.WriteString("\n\n")
		doc.WriteString(styleStatus.Render("PRESS ESC TO RETURN"))
		return stylePanel.Width(max(60, m.state.viewWidth-2)).Render(doc.String())
	}
	doc.WriteString(m.renderReportGrid())
	doc.WriteString("\n")
	switch m.editor.mode {
	case editorConfirming:
		doc.WriteString(m.renderReportConfirmation())
	case editorEditing:
		doc.WriteString(styleStatus.Render("EDITING FIELD - PRESS ENTER TO CONFIRM, ESC TO CANCEL"))
	default:
		if allRowsComplete(rowListStore{rows: &m.state.reportRows}) {
			doc.WriteString(styleStatus.Render("ALL RECORDS COMPLETE - PRESS ENTER TO FILE REPORT"))
		} else {
			doc.WriteString(styleStatus.Render("SELECT A FIELD TO EDIT - PRESS ESC TO RETURN"))
		}
	}
	return stylePanel.Width(max(60, m.state.viewWidth-2)).Render(doc.String())
}

func (m SkyCave) renderReportGrid() string {
	var doc strings.Builder
	var heads []string
	for _, field := range reportFieldOrder {
		col := reportColumnHeads[field]
		heads = append(heads, styleGridHead.Width(col.width).Render(col.label))
	}
	doc.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, heads...))
	doc.WriteString("\n")
	for i, row := range m.state.reportRows {
		var cells []string
		for _, field := range reportFieldOrder {
			cells = append(cells, m.renderReportCell(i, field, row))
		}
		doc.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		doc.WriteString("\n")
	}
	return doc.String()
}

func (m SkyCave) renderReportCell(row int, field FieldKey, data ReportRow) string {
	width := reportColumnHeads[field].width
	if m.editor.editing(row, field) {
		return styleCellEditing.Width(width).MaxWidth(width).Render(m.editor.input.View())
	}
	value := data.Field(field)
	if value == "" {
		value = "-"
	}
	style := styleCell
	if field == FieldBookingID {
		// Navigable but read-only, rendered dimmed.
		style = styleCellDim
	}
	if row == m.editor.row {
		style = style.Inherit(styleRowActive)
	}
	return style.Width(width).MaxWidth(width).Render(value)
}

func (m SkyCave) renderReportConfirmation() string {
	var doc strings.Builder
	doc.WriteString(styleValue.Bold(true).Render("ALL RECORDS COMPLETE - FILE TM30 REPORT?"))
	doc.WriteString("\n")
	doc.WriteString(styleLabel.Render("ENTER CHOICE (Y/N):"))
	switch m.editor.choice {
	case choiceYes:
		doc.WriteString(styleValue.Render("Y"))
	case choiceNo:
		doc.WriteString(styleValue.Render("N"))
	default:
		doc.WriteString(styleValue.Render("_"))
	}
	doc.WriteString("\n")
	if m.editor.choice == choiceUnset {
		doc.WriteString(styleStatus.Render("ENTER Y FOR YES, N FOR NO - ESC TO CANCEL"))
	} else {
		doc.WriteString(styleStatus.Render("PRESS ENTER TO CONFIRM"))
	}
	return doc.String()
}
