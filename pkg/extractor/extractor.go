// Package extractor pulls slicer settings out of the comment lines of a
// G-code file and sorts them into categories.
package extractor

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/phuslu/log"
	"golang.org/x/text/transform"

	"github.com/pluqqy/gcodeview/pkg/diag"
	"github.com/pluqqy/gcodeview/pkg/files"
	"github.com/pluqqy/gcodeview/pkg/models"
)

const commentMarker = ";"

// Extractor turns G-code comment lines into a Report. It holds no state
// between calls, so one value may serve any number of extractions.
type Extractor struct {
	rules  Rules
	logger *log.Logger
}

// Option configures an Extractor
type Option func(*Extractor)

// WithRules replaces the classification table
func WithRules(rules Rules) Option {
	return func(e *Extractor) {
		e.rules = rules
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *log.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Extractor using DefaultRules unless overridden
func New(opts ...Option) *Extractor {
	e := &Extractor{
		rules:  DefaultRules(),
		logger: diag.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract reads r with the default rules
func Extract(r io.Reader) (*models.Report, error) {
	return New().Extract(r)
}

// ExtractFile opens path and extracts it with the default rules
func ExtractFile(path string) (*models.Report, error) {
	return New().ExtractFile(path)
}

// ExtractFile opens path, extracts its settings and closes it again
func (e *Extractor) ExtractFile(path string) (*models.Report, error) {
	report, _, err := e.LoadFile(path)
	return report, err
}

// LoadFile is ExtractFile that also returns the size of the source in bytes
func (e *Extractor) LoadFile(path string) (*models.Report, int64, error) {
	f, size, err := files.OpenGcode(path)
	if err != nil {
		return nil, 0, &ParseError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	report, err := e.Extract(f)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, 0, err
	}
	report.Source = path
	return report, size, nil
}

// Extract consumes r in a single pass and returns the categorized settings
func (e *Extractor) Extract(r io.Reader) (*models.Report, error) {
	reader := bufio.NewReader(transform.NewReader(r, newDecoder()))
	b := newBuilder()
	var joiner lineJoiner
	lines, dropped := 0, 0

	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, &ParseError{Op: "read", Err: readErr}
		}
		if raw != "" {
			lines++
			if !e.consume(b, &joiner, raw) {
				dropped++
			}
		}
		if readErr == io.EOF {
			break
		}
	}

	if pending := joiner.Pending(); pending != "" {
		e.logger.Debug().Str("fragment", pending).Msg("discarding unterminated continuation at end of input")
	}

	report := b.Report()
	e.logger.Debug().
		Int("lines", lines).
		Int("dropped", dropped).
		Int("settings", report.Len()).
		Int("categories", len(report.Sections)).
		Msg("extracted settings")
	return report, nil
}

// consume handles one physical line. It returns false when a complete
// logical line carried no setting.
func (e *Extractor) consume(b *builder, joiner *lineJoiner, raw string) bool {
	clean := cleanLine(raw)
	if clean == "" {
		return true
	}

	logical, complete := joiner.Feed(clean)
	if !complete {
		return true
	}

	logical = strings.ReplaceAll(logical, `\n`, "\n")
	key, value, found := strings.Cut(logical, "=")
	if !found {
		return false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	b.Add(e.rules.Classify(key), key, value)
	return true
}

// cleanLine trims whitespace around a single leading comment marker
func cleanLine(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, commentMarker)
	return strings.TrimSpace(clean)
}
