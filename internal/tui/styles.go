package tui

import "github.com/charmbracelet/lipgloss"

// Bedrock Color Palette
var (
	ColorSlate = lipgloss.Color("#A3B9CC") // Blue-grey for accents
	ColorDeep  = lipgloss.Color("#596E79") // Muted blue/grey for secondary text
	ColorText  = lipgloss.Color("#E0E0E0") // Primary text
	ColorAlert = lipgloss.Color("#FF6B6B") // Red for errors / Windows drives
	ColorGood  = lipgloss.Color("#4ECDC4") // Green for safe drives
	ColorWarn  = lipgloss.Color("#FFE66D") // Yellow for warnings
	ColorMuted = lipgloss.Color("#6c757d") // Muted text
)

// Styles
var (
	StyleBase = lipgloss.NewStyle().Foreground(ColorText)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorSlate).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorDeep).
			Padding(0, 1)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorSlate).
			Bold(true)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorDeep).
			Italic(true)

	// Status Indicators
	StyleStatusGood = lipgloss.NewStyle().Foreground(ColorGood).Bold(true)
	StyleStatusBad  = lipgloss.NewStyle().Foreground(ColorAlert).Bold(true)
	StyleStatusWarn = lipgloss.NewStyle().Foreground(ColorWarn).Bold(true)

	// Table Styles
	StyleTableHeader = lipgloss.NewStyle().
				Foreground(ColorDeep).
				Bold(true).
				Padding(0, 1)

	StyleTableRow = lipgloss.NewStyle().
			Padding(0, 1)

	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
)
