package extractor

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable matches every ParseError via errors.Is.
var ErrSourceUnavailable = errors.New("source unavailable")

// ParseError reports that the G-code source could not be opened or read.
// No partial report accompanies it.
type ParseError struct {
	Op   string // "open" or "read"
	Path string // empty for plain readers
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse G-code: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to parse G-code: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrSourceUnavailable
}
