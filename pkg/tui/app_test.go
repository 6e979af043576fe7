package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/gcodeview/pkg/models"
	"github.com/pluqqy/gcodeview/pkg/report"
)

const sampleGcode = `; generated by PrusaSlicer
G28
G1 Z5 F5000
; bed_temperature = 60
; infill_density = 20%
; filament_type = \
; PLA
; start_gcode = G28\nG1 Z5
`

func writeGcode(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	settings := models.DefaultSettings()
	settings.UI.StartDir = t.TempDir()
	settings.Output.ExportPath = t.TempDir()
	app := NewApp(settings, nil, "")
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// load runs the extraction command synchronously and feeds its result back
func load(t *testing.T, app *App, path string) {
	t.Helper()
	msg := app.startLoad(path)()
	app.Update(msg)
}

func TestAppLoadsReport(t *testing.T) {
	app := newTestApp(t)
	path := writeGcode(t, "benchy.gcode", sampleGcode)

	load(t, app, path)

	require.NotNil(t, app.Report())
	assert.Equal(t, settingsView, app.state)
	assert.Equal(t, []models.Category{
		models.CategoryTemperature,
		models.CategoryFilament,
		models.CategoryInfill,
		models.CategoryUncategorized,
	}, app.viewer.Tabs())
	assert.Contains(t, app.statusMsg, "Loaded 4 settings")

	view := app.View()
	assert.Contains(t, view, "Temperature (1)")
	assert.Contains(t, view, "benchy.gcode")
}

func TestAppInitLoadsInitialPath(t *testing.T) {
	path := writeGcode(t, "cube.gcode", "; wall_loops = 3\n")
	app := NewApp(models.DefaultSettings(), nil, path)

	cmd := app.Init()
	require.NotNil(t, cmd)
	app.Update(cmd())

	v, ok := app.Report().Lookup(models.CategoryWalls, "wall_loops")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestAppIgnoresSupersededLoad(t *testing.T) {
	app := newTestApp(t)
	first := writeGcode(t, "first.gcode", "; bed_temperature = 60\n")
	second := writeGcode(t, "second.gcode", "; infill_density = 10%\n")

	firstCmd := app.startLoad(first)
	secondCmd := app.startLoad(second)

	app.Update(firstCmd())
	assert.Nil(t, app.Report(), "stale result must not become the current report")

	app.Update(secondCmd())
	require.NotNil(t, app.Report())
	assert.Equal(t, second, app.Report().Source)
}

func TestAppLoadClearsPreviousReport(t *testing.T) {
	app := newTestApp(t)
	load(t, app, writeGcode(t, "a.gcode", "; bed_temperature = 60\n"))
	require.NotNil(t, app.Report())

	cmd := app.startLoad(filepath.Join(t.TempDir(), "missing.gcode"))
	assert.Nil(t, app.Report())

	app.Update(cmd())
	assert.Nil(t, app.Report())
	assert.Equal(t, pickerView, app.state)
	assert.True(t, app.statusErr)
	assert.Contains(t, app.statusMsg, "failed to parse G-code")
}

func TestAppExportWithoutReport(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, pickerView, app.state)
	assert.True(t, app.statusErr)
	assert.Equal(t, "No Data: Load a G-code file first.", app.statusMsg)

	msg := exportReport(nil, filepath.Join(t.TempDir(), "out.txt"))()
	failed, ok := msg.(exportFailedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, failed.err, report.ErrNoDataLoaded)
}

func TestAppExportFlow(t *testing.T) {
	app := newTestApp(t)
	path := writeGcode(t, "benchy.gcode", sampleGcode)
	load(t, app, path)

	app.Update(keyRunes("s"))
	require.Equal(t, exportView, app.state)
	assert.True(t, strings.HasSuffix(app.exporter.Value(), "benchy_settings.txt"), app.exporter.Value())

	target := filepath.Join(t.TempDir(), "exports", "benchy")
	app.exporter.input.SetValue(target)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, settingsView, app.state)
	assert.Equal(t, "Settings exported to "+target+".txt", app.statusMsg)

	content, err := os.ReadFile(target + ".txt")
	require.NoError(t, err)
	assert.Equal(t, report.FormatText(app.Report()), string(content))
	assert.Contains(t, string(content), "=== Filament ===\n- Filament type: PLA\n")
	assert.Contains(t, string(content), "- Start gcode:\n  G28\n  G1 Z5\n")
}

func TestAppExportCancel(t *testing.T) {
	app := newTestApp(t)
	load(t, app, writeGcode(t, "a.gcode", "; bed_temperature = 60\n"))

	app.Update(keyRunes("s"))
	require.Equal(t, exportView, app.state)

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, settingsView, app.state)
}

func TestAppTabNavigation(t *testing.T) {
	app := newTestApp(t)
	load(t, app, writeGcode(t, "benchy.gcode", sampleGcode))

	cat, _ := app.viewer.ActiveCategory()
	assert.Equal(t, models.CategoryTemperature, cat)
	assert.Contains(t, app.viewer.Content(), "=== Temperature ===\n\n- Bed temperature: 60\n")

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	cat, _ = app.viewer.ActiveCategory()
	assert.Equal(t, models.CategoryFilament, cat)

	app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	cat, _ = app.viewer.ActiveCategory()
	assert.Equal(t, models.CategoryUncategorized, cat)
}

func TestAppCopyToClipboard(t *testing.T) {
	app := newTestApp(t)
	var copied string
	app.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	load(t, app, writeGcode(t, "a.gcode", "; bed_temperature = 60\n"))
	app.Update(keyRunes("y"))

	assert.Equal(t, "\n=== Temperature ===\n- Bed temperature: 60\n", copied)
	assert.Contains(t, app.statusMsg, "Copied 1 settings")

	app.copyToClipboard = func(string) error { return errors.New("no clipboard") }
	app.Update(keyRunes("y"))
	assert.True(t, app.statusErr)
	assert.Contains(t, app.statusMsg, "no clipboard")
}

func TestAppStatusMessages(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(StatusMsg("Test status message"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "Test status message", app.statusMsg)
	staleID := app.statusID

	app.Update(StatusMsg("Newer message"))
	app.Update(clearStatusMsg{id: staleID})
	assert.Equal(t, "Newer message", app.statusMsg)

	app.Update(clearStatusMsg{id: app.statusID})
	assert.Empty(t, app.statusMsg)
}

func TestAppViewBeforeResize(t *testing.T) {
	app := NewApp(nil, nil, "")
	assert.Equal(t, "Loading...", app.View())
}

func TestAppEmptyFile(t *testing.T) {
	app := newTestApp(t)
	load(t, app, writeGcode(t, "empty.gcode", ""))

	require.NotNil(t, app.Report())
	assert.True(t, app.Report().IsEmpty())
	assert.Contains(t, app.View(), "No settings found in this file.")
}
