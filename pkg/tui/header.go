package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Version is shown in the header; set from the cmd package
var Version = "dev"

func renderHeader(width int, title, detail string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	logo := logoStyle.Render("gcodeview " + Version)

	left := titleStyle.Render(title)
	if detail != "" {
		left += " " + DescriptionStyle.Render(detail)
	}

	// Title on the left, logo on the right
	contentWidth := width - 2
	gap := contentWidth - lipgloss.Width(left) - lipgloss.Width(logo)
	if gap < 1 {
		gap = 1
	}

	return headerPadding.Render(left + strings.Repeat(" ", gap) + logo)
}

// renderHeading draws "TITLE ::::::" spanning width
func renderHeading(width int, heading string) string {
	remaining := width - lipgloss.Width(heading) - 5
	if remaining < 0 {
		remaining = 0
	}
	return HeaderStyle.Render(heading) + " " + ColonStyle.Render(strings.Repeat(":", remaining))
}

// formatHelpText joins key hints into one line
func formatHelpText(help []string) string {
	return DescriptionStyle.Render(strings.Join(help, "  •  "))
}

// renderHelp draws the bordered help pane used at the bottom of every view
func renderHelp(width int, help []string) string {
	helpBorderStyle := HelpBorderStyle.
		Width(width - 4). // Account for left/right padding (2) and borders (2)
		Padding(0, 1)
	return ContentPaddingStyle.Render(helpBorderStyle.Render(formatHelpText(help)))
}
