package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Terminal palette. Limit colors mirror the status colors so a counter
	// reads the same as the message that reports it.
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}  // Green
	ColorError     = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}  // Red
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}  // Magenta
	ColorInfo      = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}  // Cyan
	ColorMuted     = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}  // Gray
	ColorWarning   = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}  // Yellow
	ColorAccent    = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}  // Blue
	ColorDefault   = lipgloss.AdaptiveColor{Light: "0", Dark: "7"}  // Foreground
	ColorSponsored = lipgloss.AdaptiveColor{Light: "0", Dark: "15"} // Ad label
	ColorAtLimit   = ColorWarning
	ColorOverLimit = ColorError

	// Status styles
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StylePrimary lipgloss.Style
	StyleInfo    lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleAccent  lipgloss.Style

	// Character counters
	StyleWithinLimit lipgloss.Style
	StyleAtLimit     lipgloss.Style
	StyleOverLimit   lipgloss.Style

	// Preview card
	StyleSponsored    lipgloss.Style
	StyleCardDomain   lipgloss.Style
	StyleCardHeadline lipgloss.Style
	StyleCardFrame    lipgloss.Style

	// Layout
	StyleTitle       lipgloss.Style
	StyleHeader      lipgloss.Style
	StyleSubtle      lipgloss.Style
	StyleBold        lipgloss.Style
	StyleTableHeader lipgloss.Style
	StyleTableRow    lipgloss.Style
	StyleTableRowAlt lipgloss.Style
	StyleTableBorder lipgloss.Style

	IconSuccess = "✔"
	IconError   = "✘"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconRocket  = "🚀"
	IconDomain  = "◉"
	IconBatch   = "▤"
	IconShuffle = "⇄"
	IconExport  = "⇩"
)

func init() {
	SetTheme("auto")
}

// SetTheme applies the color theme ("auto", "dark", "light") and rebuilds every style
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleError = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleInfo = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)

	StyleWithinLimit = StyleMuted
	StyleAtLimit = lipgloss.NewStyle().Foreground(ColorAtLimit).Bold(true)
	StyleOverLimit = lipgloss.NewStyle().Foreground(ColorOverLimit).Bold(true).Reverse(true)

	StyleSponsored = lipgloss.NewStyle().Foreground(ColorSponsored).Bold(true)
	StyleCardDomain = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleCardHeadline = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleCardFrame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)

	StyleTitle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSubtle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	StyleBold = lipgloss.NewStyle().Bold(true)

	StyleTableHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleTableRow = lipgloss.NewStyle().Foreground(ColorDefault)
	StyleTableRowAlt = lipgloss.NewStyle().Foreground(ColorDefault).Faint(true)
	StyleTableBorder = lipgloss.NewStyle().Foreground(ColorMuted)
}

// LimitStyle picks the counter style for count characters out of limit
func LimitStyle(count, limit int) lipgloss.Style {
	switch {
	case count > limit:
		return StyleOverLimit
	case count == limit:
		return StyleAtLimit
	default:
		return StyleWithinLimit
	}
}

// FormatSuccess returns a success message with icon
func FormatSuccess(msg string) string {
	return StyleSuccess.Render(IconSuccess + " " + msg)
}

// FormatError returns an error message with icon
func FormatError(msg string) string {
	return StyleError.Render(IconError + " " + msg)
}

// FormatInfo returns an info message with icon
func FormatInfo(msg string) string {
	return StyleInfo.Render(IconInfo + " " + msg)
}

// FormatWarning returns a warning message with icon
func FormatWarning(msg string) string {
	return StyleWarning.Render(IconWarning + " " + msg)
}

// FormatRocket returns a rocket message (for exciting actions)
func FormatRocket(msg string) string {
	return StylePrimary.Render(IconRocket + " " + msg)
}

// FormatBatch reports a change to the export batch
func FormatBatch(msg string) string {
	return StylePrimary.Render(IconBatch + " " + msg)
}

// FormatExport reports a delivered CSV payload
func FormatExport(msg string) string {
	return StyleSuccess.Render(IconExport + " " + msg)
}

// FormatTitle returns a formatted title
func FormatTitle(title string) string {
	return StyleTitle.Render(title)
}

// FormatMuted returns muted/subtle text
func FormatMuted(text string) string {
	return StyleMuted.Render(text)
}
