package skycave

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// The palette imitates a green-phosphor terminal: bright green on black with
// a dimmer green for chrome.
var (
	colorGreen     = lipgloss.AdaptiveColor{Light: "22", Dark: "40"}
	colorDimGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "28"}
	colorBrightBG  = lipgloss.AdaptiveColor{Light: "120", Dark: "22"}
	styleWindow    = lipgloss.NewStyle().Padding(0, 1)
	styleHeader    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Padding(0, 1).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(colorDimGreen)
	styleScreenID  = lipgloss.NewStyle().Foreground(colorDimGreen)
	styleDateTime  = lipgloss.NewStyle().Foreground(colorGreen)
	stylePanel     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorDimGreen).Padding(1, 2)
	stylePanelT    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleSection   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true).MarginTop(1)
	styleLabel     = lipgloss.NewStyle().Foreground(colorDimGreen).Width(22).Align(lipgloss.Right).MarginRight(1)
	styleValue     = lipgloss.NewStyle().Foreground(colorGreen)
	styleStatus    = lipgloss.NewStyle().Foreground(colorGreen).Blink(false).MarginTop(1)
	styleFuncKey   = lipgloss.NewStyle().Foreground(colorDimGreen).Padding(0, 1).Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(colorDimGreen)
	styleMenuItem  = lipgloss.NewStyle().Foreground(colorGreen).Padding(0, 2)
	styleGridHead  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Padding(0, 1).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(colorDimGreen)
	styleCell      = lipgloss.NewStyle().Foreground(colorGreen).Padding(0, 1)
	styleCellDim   = lipgloss.NewStyle().Foreground(colorDimGreen).Padding(0, 1)
	styleRowActive = lipgloss.NewStyle().Background(colorBrightBG)
	styleCellEditing = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).Background(colorGreen)
	styleHelp        = help.Styles{
		Ellipsis:       lipgloss.NewStyle().Foreground(colorDimGreen),
		ShortKey:       lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		ShortDesc:      lipgloss.NewStyle().Foreground(colorDimGreen),
		ShortSeparator: lipgloss.NewStyle().Foreground(colorDimGreen),
		FullKey:        lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		FullDesc:       lipgloss.NewStyle().Foreground(colorDimGreen),
		FullSeparator:  lipgloss.NewStyle().Foreground(colorDimGreen),
	}
)
