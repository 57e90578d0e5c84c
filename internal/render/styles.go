// ABOUTME: Shared lipgloss styles for report output
// ABOUTME: Defines colors and text styles used across commands

package render

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary = lipgloss.Color("#7C3AED") // Purple
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Danger  = lipgloss.Color("#EF4444") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted)

	Header = lipgloss.NewStyle().
		Bold(true).
		Underline(true)

	// Risk labels
	RiskWeak = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	RiskBorderline = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	RiskStrong = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)
)

// RiskStyle returns the style for a risk bucket label.
func RiskStyle(risk string) lipgloss.Style {
	switch risk {
	case "Weak":
		return RiskWeak
	case "Borderline":
		return RiskBorderline
	default:
		return RiskStrong
	}
}
