package version

import (
	"errors"
	"strings"
	"testing"
)

func TestParseError_Message(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			"1,1",
			"Unable to parse '1,1' to a version number: expected the separator '.', but got ','",
		},
		{
			"1",
			"Unable to parse '1' to a version number: expected the separator '.', but got end of input",
		},
		{
			"1.",
			"Unable to parse '1.' to a version number: expected a numeric token (0-9), but got end of input",
		},
		{
			"a.b",
			"Unable to parse 'a.b' to a version number: expected a numeric token (0-9), but got 'a'",
		},
		{
			"1.2.3.4",
			"Unable to parse '1.2.3.4' to a version number: expected end of input, but got: '.4'",
		},
		{
			"01.0",
			"Unable to parse '01.0' to a version number: a number component may not start with a leading zero, unless the complete component is '0'",
		},
		{
			"18446744073709551616.0",
			"Unable to parse '18446744073709551616.0' to a version number: number component would be larger than the maximum supported number (max=18446744073709551615)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestParseError_Offset(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1,1", 1},       // the ',' byte
		{"1", 1},         // separator expected at the end of the input
		{"1.2.3.4", 5},   // first trailing byte
		{"x", 0},         // digit expected at the very start
		{"01.0", -1},     // numeric faults carry no single position
		{"1.18446744073709551616", -1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
			if perr.Offset != tt.want {
				t.Errorf("Offset = %d, want %d", perr.Offset, tt.want)
			}
			if perr.Input != tt.input {
				t.Errorf("Input = %q, want %q", perr.Input, tt.input)
			}
		})
	}
}

func TestUnderline(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		offset int
		want   string
	}{
		{"start", "x.2", 0, "x.2\n^~~"},
		{"middle", "1,2.3", 1, "1,2.3\n ^~~~"},
		{"last byte", "1.2x", 3, "1.2x\n   ^"},
		{"end of input", "1.", 2, "1.\n  ^"},
		{"past the end", "1.", 9, "1.\n  ^"},
		{"empty input", "", 0, "\n^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := underline(tt.s, tt.offset)
			if got != tt.want {
				t.Errorf("underline(%q, %d) = %q, want %q", tt.s, tt.offset, got, tt.want)
			}
		})
	}
}

func TestParseError_Annotation(t *testing.T) {
	_, err := Parse("1.2.3.4")
	if err == nil {
		t.Fatal("Parse(\"1.2.3.4\") succeeded, want error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}

	want := "1.2.3.4\n     ^~"
	if got := perr.Annotation(); got != want {
		t.Errorf("Annotation() = %q, want %q", got, want)
	}

	// Faults without an offset render no annotation.
	_, err = Parse("01.0")
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if got := perr.Annotation(); got != "" {
		t.Errorf("Annotation() = %q, want empty", got)
	}
}

func TestReason_String(t *testing.T) {
	reasons := []Reason{
		ExpectedNumericToken,
		LeadingZeroNotAllowed,
		Overflow,
		ExpectedSeparator,
		ExpectedEndOfInput,
	}

	seen := make(map[string]bool)
	for _, r := range reasons {
		s := r.String()
		if s == "" || s == "unknown" {
			t.Errorf("Reason(%d).String() = %q", int(r), s)
		}
		if seen[s] {
			t.Errorf("duplicate Reason string %q", s)
		}
		seen[s] = true
	}

	if got := Reason(99).String(); got != "unknown" {
		t.Errorf("Reason(99).String() = %q, want \"unknown\"", got)
	}
}

func TestParseError_ExtraOnlyForTrailingInput(t *testing.T) {
	_, err := Parse("1,1")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if perr.Extra() != "" {
		t.Errorf("Extra() = %q, want empty for %v", perr.Extra(), perr.Reason)
	}
}

func TestParseError_MessageAndAnnotationAlign(t *testing.T) {
	// The annotation is rendered relative to the bare input, not the
	// message prefix, so the two stay decoupled.
	_, err := Parse("7.7.7.7")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	lines := strings.Split(perr.Annotation(), "\n")
	if len(lines) != 2 {
		t.Fatalf("annotation has %d lines, want 2", len(lines))
	}
	if lines[0] != perr.Input {
		t.Errorf("first line = %q, want the input %q", lines[0], perr.Input)
	}
	if caret := strings.IndexByte(lines[1], '^'); caret != perr.Offset {
		t.Errorf("caret at column %d, want %d", caret, perr.Offset)
	}
}
