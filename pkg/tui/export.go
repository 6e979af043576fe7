package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/gcodeview/pkg/files"
	"github.com/pluqqy/gcodeview/pkg/models"
	"github.com/pluqqy/gcodeview/pkg/report"
)

// ExportModel asks for the path of the text export
type ExportModel struct {
	width int
	input textinput.Model
}

func NewExportModel() *ExportModel {
	ti := textinput.New()
	ti.Placeholder = "path/to/settings.txt"
	ti.CharLimit = 0
	ti.Width = 60
	return &ExportModel{input: ti}
}

// Start prefills the input and focuses it
func (m *ExportModel) Start(path string) tea.Cmd {
	m.input.SetValue(path)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Value returns the entered path
func (m *ExportModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m *ExportModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *ExportModel) SetSize(width int) {
	m.width = width
	if width > 12 {
		m.input.Width = width - 12
	}
}

func (m *ExportModel) View() string {
	var s strings.Builder

	s.WriteString(renderHeader(m.width, "SAVE AS TXT", ""))
	s.WriteString("\n\n")

	var pane strings.Builder
	pane.WriteString(renderHeading(m.width-8, "EXPORT PATH"))
	pane.WriteString("\n\n")
	pane.WriteString(InputStyle.Render(m.input.View()))
	pane.WriteString("\n\n")
	pane.WriteString(DescriptionStyle.Render("A .txt extension is added when the name has none."))

	s.WriteString(ContentPaddingStyle.Render(ActiveBorderStyle.Width(m.width - 4).Padding(0, 1).Render(pane.String())))
	s.WriteString("\n")
	s.WriteString(renderHelp(m.width, []string{"enter save", "esc cancel", "ctrl+c quit"}))

	return s.String()
}

// exportReport writes the text export of r to path
func exportReport(r *models.Report, path string) tea.Cmd {
	return func() tea.Msg {
		if r == nil {
			return exportFailedMsg{err: report.ErrNoDataLoaded}
		}
		written, err := files.WriteExport(path, report.FormatText(r))
		if err != nil {
			return exportFailedMsg{err: err}
		}
		return exportDoneMsg{path: written}
	}
}
