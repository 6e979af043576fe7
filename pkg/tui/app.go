package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/phuslu/log"

	"github.com/pluqqy/gcodeview/pkg/diag"
	"github.com/pluqqy/gcodeview/pkg/extractor"
	"github.com/pluqqy/gcodeview/pkg/files"
	"github.com/pluqqy/gcodeview/pkg/models"
	"github.com/pluqqy/gcodeview/pkg/report"
)

type sessionState int

const (
	pickerView sessionState = iota
	settingsView
	exportView
)

const statusTimeout = 4 * time.Second

type App struct {
	state     sessionState
	prevState sessionState
	settings  *models.Settings
	logger    *log.Logger
	extractor *extractor.Extractor

	picker   *FilePickerModel
	viewer   *SettingsViewerModel
	exporter *ExportModel

	// report is the current extraction result. It is set only by a
	// successful load and cleared before each new one.
	report      *models.Report
	loadID      int
	loading     string
	initialPath string

	width     int
	height    int
	statusMsg string
	statusErr bool
	statusID  int

	copyToClipboard func(string) error
}

// NewApp creates the TUI. When initialPath is set the file is loaded on start.
func NewApp(settings *models.Settings, logger *log.Logger, initialPath string) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	if logger == nil {
		logger = diag.Discard()
	}
	return &App{
		state:           pickerView,
		settings:        settings,
		logger:          logger,
		extractor:       extractor.New(extractor.WithLogger(logger)),
		picker:          NewFilePickerModel(settings),
		viewer:          NewSettingsViewerModel(settings.UI.Wrap),
		exporter:        NewExportModel(),
		initialPath:     initialPath,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Report returns the currently loaded report, or nil
func (a *App) Report() *models.Report {
	return a.report
}

func (a *App) Init() tea.Cmd {
	if a.initialPath != "" {
		return a.startLoad(a.initialPath)
	}
	return a.picker.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Pass window size to all sub-models
		a.picker.SetSize(msg.Width, msg.Height)
		a.viewer.SetSize(msg.Width, msg.Height)
		a.exporter.SetSize(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case StatusMsg:
		return a, a.setStatus(string(msg), false)

	case clearStatusMsg:
		if msg.id == a.statusID {
			a.statusMsg = ""
			a.statusErr = false
		}
		return a, nil

	case reportLoadedMsg:
		if msg.id != a.loadID {
			// A newer load superseded this one
			return a, nil
		}
		a.loading = ""
		a.report = msg.report
		a.viewer.SetReport(msg.report, msg.size)
		a.state = settingsView
		a.logger.Info().Str("path", msg.report.Source).Int("settings", msg.report.Len()).Msg("report loaded")
		return a, a.setStatus(fmt.Sprintf("Loaded %d settings from %s", msg.report.Len(), msg.report.Source), false)

	case reportFailedMsg:
		if msg.id != a.loadID {
			return a, nil
		}
		a.loading = ""
		a.state = pickerView
		a.logger.Error().Err(msg.err).Str("path", msg.path).Msg("extraction failed")
		return a, tea.Batch(a.picker.Init(), a.setStatus("Error: "+msg.err.Error(), true))

	case exportDoneMsg:
		a.state = settingsView
		return a, a.setStatus("Settings exported to "+msg.path, false)

	case exportFailedMsg:
		if errors.Is(msg.err, report.ErrNoDataLoaded) {
			return a, a.setStatus("No Data: Load a G-code file first.", true)
		}
		a.logger.Error().Err(msg.err).Msg("export failed")
		return a, a.setStatus("Error: "+msg.err.Error(), true)
	}

	// Route remaining messages to the active view
	var cmd tea.Cmd
	switch a.state {
	case pickerView:
		var selected string
		selected, cmd = a.picker.Update(msg)
		if selected != "" {
			return a, tea.Batch(cmd, a.startLoad(selected))
		}
	case settingsView:
		a.viewer, cmd = a.viewer.Update(msg)
	case exportView:
		cmd = a.exporter.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case pickerView:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "ctrl+b":
			return a, a.switchView(settingsView)
		case "ctrl+s":
			return a, a.switchView(exportView)
		}
		selected, cmd := a.picker.Update(msg)
		if selected != "" {
			return a, tea.Batch(cmd, a.startLoad(selected))
		}
		return a, cmd

	case settingsView:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "o":
			return a, a.switchView(pickerView)
		case "s":
			return a, a.beginExport()
		case "y":
			return a, a.copyReport()
		}
		var cmd tea.Cmd
		a.viewer, cmd = a.viewer.Update(msg)
		return a, cmd

	case exportView:
		switch msg.Type {
		case tea.KeyEsc:
			a.state = a.prevState
			return a, nil
		case tea.KeyEnter:
			path := a.exporter.Value()
			if path == "" {
				return a, a.setStatus("Enter a file name to save to", true)
			}
			return a, exportReport(a.report, path)
		}
		return a, a.exporter.Update(msg)
	}
	return a, nil
}

// startLoad clears the current report and extracts path in the background
func (a *App) startLoad(path string) tea.Cmd {
	a.report = nil
	a.viewer.Clear()
	a.loadID++
	a.loading = path
	id := a.loadID
	ext := a.extractor

	a.logger.Debug().Str("path", path).Int("load_id", id).Msg("loading G-code file")

	return func() tea.Msg {
		r, size, err := ext.LoadFile(path)
		if err != nil {
			return reportFailedMsg{id: id, path: path, err: err}
		}
		return reportLoadedMsg{id: id, report: r, size: size}
	}
}

// beginExport opens the save-as prompt, or reports that nothing is loaded
func (a *App) beginExport() tea.Cmd {
	if a.report == nil {
		return a.setStatus("No Data: Load a G-code file first.", true)
	}
	a.prevState = a.state
	a.state = exportView
	out := a.settings.Output
	return a.exporter.Start(files.DefaultExportPath(a.report.Source, out.ExportPath, out.DefaultFilename))
}

func (a *App) copyReport() tea.Cmd {
	if a.report == nil {
		return a.setStatus("No Data: Load a G-code file first.", true)
	}
	if err := a.copyToClipboard(report.FormatText(a.report)); err != nil {
		a.logger.Warn().Err(err).Msg("clipboard copy failed")
		return a.setStatus("Failed to copy to clipboard: "+err.Error(), true)
	}
	return a.setStatus(fmt.Sprintf("✓ Copied %d settings to clipboard", a.report.Len()), false)
}

func (a *App) switchView(view sessionState) tea.Cmd {
	switch view {
	case pickerView:
		a.state = pickerView
		return a.picker.Init()
	case settingsView:
		if a.report != nil {
			a.state = settingsView
		}
	case exportView:
		return a.beginExport()
	}
	return nil
}

// setStatus shows msg and schedules it to clear
func (a *App) setStatus(msg string, isErr bool) tea.Cmd {
	a.statusMsg = msg
	a.statusErr = isErr
	a.statusID++
	id := a.statusID
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch {
	case a.loading != "":
		content = renderHeader(a.width, "LOADING", a.loading)
	case a.state == pickerView:
		content = a.picker.View(a.report != nil)
	case a.state == settingsView:
		content = a.viewer.View()
	case a.state == exportView:
		content = a.exporter.View()
	default:
		content = "Unknown view"
	}

	// Add status bar if there's a message
	if a.statusMsg != "" {
		style := StatusStyle
		if a.statusErr {
			style = ErrorStatusStyle
		}
		content = lipgloss.JoinVertical(lipgloss.Top, content, style.Render(a.statusMsg))
	}

	return content
}

// Messages for communication between views
type StatusMsg string

type clearStatusMsg struct {
	id int
}

type reportLoadedMsg struct {
	id     int
	report *models.Report
	size   int64
}

type reportFailedMsg struct {
	id   int
	path string
	err  error
}

type exportDoneMsg struct {
	path string
}

type exportFailedMsg struct {
	err error
}
