package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for headings and warnings
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorStatusBg = "62"  // Status bar background
	ColorStatusFg = "230" // Status bar foreground
	ColorError    = "196" // Red for errors
	ColorBrand    = "205" // Pink for the title
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorNormal)).
				Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	ColonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive))

	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorStatusBg)).
			Foreground(lipgloss.Color(ColorStatusFg)).
			Padding(0, 1)

	ErrorStatusStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorError)).
				Foreground(lipgloss.Color(ColorWhite)).
				Padding(0, 1)

	// Help border style (always inactive looking)
	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive))
)
