package version

import (
	"fmt"
	"strings"
)

// Reason identifies why an input was rejected by the parser.
// It is a closed set: callers can branch on it programmatically
// instead of matching error strings.
type Reason int

const (
	// ExpectedNumericToken means a version component was expected, but the
	// next byte (or the end of the input) was not an ASCII digit.
	ExpectedNumericToken Reason = iota
	// LeadingZeroNotAllowed means a component had more than one digit and
	// began with '0'. A component must be the literal value 0, or start
	// with a digit 1-9.
	LeadingZeroNotAllowed
	// Overflow means a component's value would exceed the maximum
	// unsigned 64-bit integer.
	Overflow
	// ExpectedSeparator means a '.' was required, but a different byte, or
	// the end of the input, was found.
	ExpectedSeparator
	// ExpectedEndOfInput means trailing bytes remained after a complete
	// two- or three-component version was recognized.
	ExpectedEndOfInput
)

// String returns the reason as a short identifier.
func (r Reason) String() string {
	switch r {
	case ExpectedNumericToken:
		return "expected numeric token"
	case LeadingZeroNotAllowed:
		return "leading zero not allowed"
	case Overflow:
		return "overflow"
	case ExpectedSeparator:
		return "expected separator"
	case ExpectedEndOfInput:
		return "expected end of input"
	default:
		return "unknown"
	}
}

// ParseError describes a failure to parse a version number.
// It records the complete input, the reason the input was rejected, and,
// when a single byte position can be blamed, the offset of that position.
type ParseError struct {
	Input  string // copy of the full input that failed to parse
	Offset int    // byte offset of the failure, or -1 when no single position applies
	Reason Reason
	Got    byte // the offending byte; only meaningful when GotEOI is false
	GotEOI bool // true when the end of the input was reached where a byte was expected
}

// Error renders the diagnostic as a single human-readable line.
func (e *ParseError) Error() string {
	return fmt.Sprintf("Unable to parse '%s' to a version number: %s", e.Input, e.detail())
}

// Extra returns the unconsumed tail of the input for ExpectedEndOfInput
// errors, and "" for every other reason.
func (e *ParseError) Extra() string {
	if e.Reason != ExpectedEndOfInput || e.Offset < 0 || e.Offset > len(e.Input) {
		return ""
	}
	return e.Input[e.Offset:]
}

// Annotation renders a two-line marker block: the input on the first line,
// and on the second a caret under the failure offset followed by a
// squiggle covering the rest of the input. It returns "" when the error
// carries no offset.
func (e *ParseError) Annotation() string {
	if e.Offset < 0 {
		return ""
	}
	return underline(e.Input, e.Offset)
}

func (e *ParseError) detail() string {
	switch e.Reason {
	case ExpectedNumericToken:
		return fmt.Sprintf("expected a numeric token (0-9), but got %s", e.gotToken())
	case LeadingZeroNotAllowed:
		return "a number component may not start with a leading zero, unless the complete component is '0'"
	case Overflow:
		return fmt.Sprintf("number component would be larger than the maximum supported number (max=%d)", maxComponent)
	case ExpectedSeparator:
		return fmt.Sprintf("expected the separator '.', but got %s", e.gotToken())
	case ExpectedEndOfInput:
		return fmt.Sprintf("expected end of input, but got: '%s'", e.Extra())
	default:
		return e.Reason.String()
	}
}

func (e *ParseError) gotToken() string {
	if e.GotEOI {
		return "end of input"
	}
	return fmt.Sprintf("'%c'", e.Got)
}

// underline draws s and, on a second line, offset spaces followed by a
// caret and a squiggle over whatever remains of s. An offset at or past
// the end of s yields a lone caret past the last byte.
func underline(s string, offset int) string {
	if offset > len(s) {
		offset = len(s)
	}
	var b strings.Builder
	b.WriteString(s)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", offset))
	b.WriteByte('^')
	if rest := len(s) - offset - 1; rest > 0 {
		b.WriteString(strings.Repeat("~", rest))
	}
	return b.String()
}

func errNumericToken(input string, offset int, got byte, eoi bool) *ParseError {
	return &ParseError{Input: input, Offset: offset, Reason: ExpectedNumericToken, Got: got, GotEOI: eoi}
}

// Leading-zero and overflow faults concern a whole digit run rather than
// a single byte, so they carry no offset.
func errLeadingZero(input string) *ParseError {
	return &ParseError{Input: input, Offset: -1, Reason: LeadingZeroNotAllowed}
}

func errOverflow(input string) *ParseError {
	return &ParseError{Input: input, Offset: -1, Reason: Overflow}
}

func errSeparator(input string, offset int, got byte, eoi bool) *ParseError {
	return &ParseError{Input: input, Offset: offset, Reason: ExpectedSeparator, Got: got, GotEOI: eoi}
}

func errTrailingInput(input string, offset int) *ParseError {
	return &ParseError{Input: input, Offset: offset, Reason: ExpectedEndOfInput}
}
