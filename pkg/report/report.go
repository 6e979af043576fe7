// Package report renders extracted settings for people: the flat text
// export, the per-tab display text and structured encodings.
//
// The text format is presentational. Keys are rewritten for display and
// multi-line values are re-indented, so an export cannot be parsed back into
// the report it came from.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/gcodeview/pkg/models"
)

// ErrNoDataLoaded is returned when an export is requested before any
// successful extraction.
var ErrNoDataLoaded = errors.New("no G-code data loaded")

// Format names an output encoding
type Format string

const (
	FormatPlain Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// DisplayKey turns a setting key into a label: underscores become spaces,
// the first character is upper-cased and the rest lower-cased.
func DisplayKey(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// writeEntry writes one "- Key: value" entry; multi-line values go one
// trimmed line per row, indented by two spaces.
func writeEntry(sb *strings.Builder, s models.Setting) {
	label := DisplayKey(s.Key)
	if !strings.Contains(s.Value, "\n") {
		fmt.Fprintf(sb, "- %s: %s\n", label, s.Value)
		return
	}
	fmt.Fprintf(sb, "- %s:\n", label)
	for _, line := range strings.Split(s.Value, "\n") {
		fmt.Fprintf(sb, "  %s\n", strings.TrimSpace(line))
	}
}

// FormatText renders the full export report
func FormatText(r *models.Report) string {
	var sb strings.Builder
	if r == nil {
		return ""
	}
	for _, sec := range r.Sections {
		if len(sec.Settings) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n=== %s ===\n", sec.Category)
		for _, s := range sec.Settings {
			writeEntry(&sb, s)
		}
	}
	return sb.String()
}

// FormatSection renders a single category for on-screen display
func FormatSection(sec models.Section) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s ===\n\n", sec.Category)
	for _, s := range sec.Settings {
		writeEntry(&sb, s)
	}
	sb.WriteString("\n")
	return sb.String()
}

// WriteText writes the export report to w
func WriteText(w io.Writer, r *models.Report) error {
	if r == nil {
		return ErrNoDataLoaded
	}
	_, err := io.WriteString(w, FormatText(r))
	return err
}

// Encode writes r to w in the requested format
func Encode(w io.Writer, format Format, r *models.Report) error {
	if r == nil {
		return ErrNoDataLoaded
	}

	switch format {
	case FormatPlain, "":
		return WriteText(w, r)

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return err
		}
		return encoder.Close()

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPlain, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatPlain, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}
