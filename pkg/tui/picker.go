package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/gcodeview/pkg/models"
)

// FilePickerModel lets the user browse to a G-code file
type FilePickerModel struct {
	width  int
	height int
	picker filepicker.Model
	exts   []string
}

func NewFilePickerModel(settings *models.Settings) *FilePickerModel {
	fp := filepicker.New()
	fp.AllowedTypes = settings.UI.Extensions
	fp.ShowHidden = settings.UI.ShowHidden
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false
	fp.Height = 20

	dir := settings.UI.StartDir
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	fp.CurrentDirectory = dir

	return &FilePickerModel{
		picker: fp,
		exts:   settings.UI.Extensions,
	}
}

// Init reads the current directory
func (m *FilePickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update forwards msg to the picker. It returns the chosen path, if any.
func (m *FilePickerModel) Update(msg tea.Msg) (string, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		return path, cmd
	}
	return "", cmd
}

// Dir returns the directory being browsed
func (m *FilePickerModel) Dir() string {
	return m.picker.CurrentDirectory
}

func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	h := height - 12 // Header, heading, help pane and spacing
	if h < 5 {
		h = 5
	}
	m.picker.Height = h
}

func (m *FilePickerModel) View(hasReport bool) string {
	var s strings.Builder

	s.WriteString(renderHeader(m.width, "OPEN G-CODE FILE", "("+strings.Join(m.exts, " ")+")"))
	s.WriteString("\n\n")

	var pane strings.Builder
	pane.WriteString(ContentPaddingStyle.Render(renderHeading(m.width-4, m.Dir())))
	pane.WriteString("\n\n")
	pane.WriteString(ContentPaddingStyle.Render(m.picker.View()))

	body := ActiveBorderStyle.
		Width(m.width - 4).
		Render(pane.String())
	s.WriteString(ContentPaddingStyle.Render(body))
	s.WriteString("\n")

	help := []string{
		"↑/↓ move",
		"→/enter open",
		"←/backspace up",
	}
	if hasReport {
		help = append(help, "ctrl+b back to settings", "ctrl+s save")
	}
	help = append(help, "q quit")
	s.WriteString(renderHelp(m.width, help))

	return s.String()
}
