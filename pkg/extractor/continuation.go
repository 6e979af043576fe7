package extractor

import "strings"

type bufferState int

const (
	stateIdle bufferState = iota
	stateAccumulating
)

// lineJoiner rebuilds logical lines from physical lines that end in a
// continuation marker. It holds at most one pending fragment.
type lineJoiner struct {
	state   bufferState
	pending strings.Builder
}

// isContinuation reports whether a cleaned line continues on the next one
func isContinuation(clean string) bool {
	return strings.HasSuffix(clean, `\`) || strings.HasSuffix(clean, "=")
}

// Feed consumes one cleaned, non-empty line. It returns the completed
// logical line and true, or "" and false while still accumulating.
func (j *lineJoiner) Feed(clean string) (string, bool) {
	if isContinuation(clean) {
		j.pending.WriteString(strings.TrimRight(clean, `\`))
		j.pending.WriteByte(' ')
		j.state = stateAccumulating
		return "", false
	}

	if j.state == stateAccumulating {
		clean = j.pending.String() + clean
		j.reset()
	}
	return clean, true
}

// Pending returns the unterminated fragment, if any
func (j *lineJoiner) Pending() string {
	return j.pending.String()
}

func (j *lineJoiner) reset() {
	j.pending.Reset()
	j.state = stateIdle
}
