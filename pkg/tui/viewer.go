package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/gcodeview/internal/cli"
	"github.com/pluqqy/gcodeview/pkg/models"
	"github.com/pluqqy/gcodeview/pkg/report"
)

const maxNameWidth = 40

// SettingsViewerModel shows one tab per active category
type SettingsViewerModel struct {
	width     int
	height    int
	report    *models.Report
	size      int64
	activeTab int
	wrap      bool

	viewport viewport.Model
}

func NewSettingsViewerModel(wrap bool) *SettingsViewerModel {
	return &SettingsViewerModel{
		viewport: viewport.New(80, 20), // Default size until the first WindowSizeMsg
		wrap:     wrap,
	}
}

// SetReport replaces the displayed report and selects the first tab
func (m *SettingsViewerModel) SetReport(r *models.Report, size int64) {
	m.report = r
	m.size = size
	m.activeTab = 0
	m.refreshContent()
}

// Clear drops the displayed report
func (m *SettingsViewerModel) Clear() {
	m.report = nil
	m.size = 0
	m.activeTab = 0
	m.viewport.SetContent("")
}

// Tabs returns the tab labels in display order
func (m *SettingsViewerModel) Tabs() []models.Category {
	return m.report.Categories()
}

// ActiveCategory returns the category of the selected tab
func (m *SettingsViewerModel) ActiveCategory() (models.Category, bool) {
	if m.report.IsEmpty() {
		return "", false
	}
	return m.report.Sections[m.activeTab].Category, true
}

func (m *SettingsViewerModel) NextTab() {
	if n := len(m.Tabs()); n > 0 {
		m.activeTab = (m.activeTab + 1) % n
		m.refreshContent()
	}
}

func (m *SettingsViewerModel) PrevTab() {
	if n := len(m.Tabs()); n > 0 {
		m.activeTab = (m.activeTab - 1 + n) % n
		m.refreshContent()
	}
}

func (m *SettingsViewerModel) Update(msg tea.Msg) (*SettingsViewerModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l":
			m.NextTab()
			return m, nil
		case "shift+tab", "left", "h":
			m.PrevTab()
			return m, nil
		case "home", "g":
			m.viewport.GotoTop()
			return m, nil
		case "end", "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	// Scrolling keys and mouse wheel go to the viewport
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *SettingsViewerModel) View() string {
	if m.report == nil {
		return "No G-code file loaded.\n\nPress 'o' to open one."
	}

	var s strings.Builder

	name := cli.TruncateString(filepath.Base(m.report.Source), maxNameWidth)
	detail := fmt.Sprintf("(%s, %s)", name, cli.Summary(m.report, m.size))
	s.WriteString(renderHeader(m.width, "G-CODE SETTINGS", detail))
	s.WriteString("\n\n")

	contentWidth := m.width - 4
	contentHeight := m.contentHeight()

	var pane strings.Builder
	if m.report.IsEmpty() {
		pane.WriteString(ContentPaddingStyle.Render(DescriptionStyle.Render("No settings found in this file.")))
	} else {
		pane.WriteString(ContentPaddingStyle.Render(m.renderTabs()))
		pane.WriteString("\n\n")
		cat, _ := m.ActiveCategory()
		heading := strings.ToUpper(string(cat))
		pane.WriteString(ContentPaddingStyle.Render(renderHeading(contentWidth, heading)))
		pane.WriteString("\n\n")
		pane.WriteString(ContentPaddingStyle.Render(m.viewport.View()))
	}

	body := ActiveBorderStyle.
		Width(contentWidth).
		Height(contentHeight).
		Render(pane.String())
	s.WriteString(ContentPaddingStyle.Render(body))
	s.WriteString("\n")

	help := []string{
		"tab/→ next",
		"shift+tab/← prev",
		"↑/↓ scroll",
		"o open",
		"s save",
		"y copy",
		"q quit",
	}
	s.WriteString(renderHelp(m.width, help))

	return s.String()
}

func (m *SettingsViewerModel) renderTabs() string {
	tabs := make([]string, 0, len(m.report.Sections))
	for i, sec := range m.report.Sections {
		label := fmt.Sprintf("%s (%d)", sec.Category, len(sec.Settings))
		if i == m.activeTab {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.width > 8 {
		row = wordwrap.String(row, m.width-8)
	}
	return row
}

func (m *SettingsViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateViewportSize()
	m.refreshContent()
}

func (m *SettingsViewerModel) contentHeight() int {
	h := m.height - 10 // Reserve space for header, help pane and spacing
	if h < 8 {
		h = 8
	}
	return h
}

func (m *SettingsViewerModel) updateViewportSize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// Borders, outer and inner padding
	m.viewport.Width = m.width - 8
	// Tabs, heading and spacing
	m.viewport.Height = m.contentHeight() - 5
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
}

// refreshContent renders the active section into the viewport
func (m *SettingsViewerModel) refreshContent() {
	cat, ok := m.ActiveCategory()
	if !ok {
		m.viewport.SetContent("")
		return
	}
	sec, _ := m.report.Section(cat)
	content := report.FormatSection(sec)
	if m.wrap && m.viewport.Width > 0 {
		content = wordwrap.String(content, m.viewport.Width)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// Content returns the text currently shown in the viewport, before wrapping
func (m *SettingsViewerModel) Content() string {
	cat, ok := m.ActiveCategory()
	if !ok {
		return ""
	}
	sec, _ := m.report.Section(cat)
	return report.FormatSection(sec)
}
