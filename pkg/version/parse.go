package version

import "strings"

// Parse parses a strict two- or three-component version number.
//
// The grammar is component, '.', component, optionally followed by '.',
// component, and then the end of the input. Whether the result is a two-
// or three-component version is decided by a single-byte peek for a
// second separator after the minor component. The first fault stops the
// parse and is returned as a *ParseError.
func Parse(input string) (Version, error) {
	major, cursor, perr := scanComponent(input, 0)
	if perr != nil {
		return Version{}, perr
	}
	cursor, perr = parseDot(input, cursor)
	if perr != nil {
		return Version{}, perr
	}
	minor, cursor, perr := scanComponent(input, cursor)
	if perr != nil {
		return Version{}, perr
	}

	// The two-vs-three decision: a second separator means a patch
	// component follows, anything else must be the end of the input.
	// Deciding on the peek keeps this function in exact agreement with
	// Parser.Parse on every input.
	if !peekDot(input, cursor) {
		if perr := expectEOI(input, cursor); perr != nil {
			return Version{}, perr
		}
		return FromBase(Base{Major: major, Minor: minor}), nil
	}

	cursor, perr = parseDot(input, cursor)
	if perr != nil {
		return Version{}, perr
	}
	patch, cursor, perr := scanComponent(input, cursor)
	if perr != nil {
		return Version{}, perr
	}
	if perr := expectEOI(input, cursor); perr != nil {
		return Version{}, perr
	}

	return FromFull(Full{Major: major, Minor: minor, Patch: patch}), nil
}

// ParseBase parses exactly a two-component version. A third component is
// rejected as trailing input.
func ParseBase(input string) (Base, error) {
	p, err := NewParser(input).ParseBase()
	if err != nil {
		return Base{}, err
	}
	return p.FinishBase()
}

// ParseFull parses exactly a three-component version. A two-component
// input is rejected at the missing second separator.
func ParseFull(input string) (Full, error) {
	p, err := NewParser(input).ParseFull()
	if err != nil {
		return Full{}, err
	}
	return p.FinishFull()
}

// ParseOptional parses a version string, returning nil for an empty
// string. Useful for optional flag values.
func ParseOptional(s string) (*Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
