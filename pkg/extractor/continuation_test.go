package extractor

import "testing"

func TestLineJoiner(t *testing.T) {
	var j lineJoiner

	if line, ok := j.Feed("bed_temperature = 60"); !ok || line != "bed_temperature = 60" {
		t.Fatalf("idle feed = %q, %v", line, ok)
	}
	if j.state != stateIdle {
		t.Fatalf("expected idle state")
	}

	if _, ok := j.Feed(`filament_type = \`); ok {
		t.Fatalf("continuation line should not complete")
	}
	if j.state != stateAccumulating {
		t.Fatalf("expected accumulating state")
	}
	if got := j.Pending(); got != "filament_type =  " {
		t.Errorf("pending = %q", got)
	}

	line, ok := j.Feed("PLA")
	if !ok {
		t.Fatal("expected completed line")
	}
	if line != "filament_type =  PLA" {
		t.Errorf("joined = %q", line)
	}
	if j.state != stateIdle || j.Pending() != "" {
		t.Errorf("joiner should be reset after flush, state=%v pending=%q", j.state, j.Pending())
	}
}

func TestIsContinuation(t *testing.T) {
	tests := map[string]bool{
		`a = \`:      true,
		"a =":        true,
		`\\`:         true,
		"a = b":      false,
		"a \\ b":     false,
		"note: text": false,
	}
	for in, want := range tests {
		if got := isContinuation(in); got != want {
			t.Errorf("isContinuation(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCleanLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"; bed_temperature = 60\n", "bed_temperature = 60"},
		{"   ;  infill = 20%  \r\n", "infill = 20%"},
		{";;double", ";double"},
		{"G1 X0", "G1 X0"},
		{";", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := cleanLine(tt.in); got != tt.want {
			t.Errorf("cleanLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
