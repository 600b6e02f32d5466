package version

// Parser parses a version number incrementally. Each stage is a distinct
// type, so a caller can stop after the major and minor components or
// continue to the patch component without re-scanning from the start:
//
//	p, err := version.NewParser("1.2.3").ParseBase()
//	// inspect p.Version() here, then
//	v, err := p.ParsePatchOrFinish()
//
// Every transition method supersedes its receiver: after ParseBase the
// Parser must not be used again, and after ParsePatch the BaseParser
// must not be used again. Reusing a stale stage would re-parse bytes the
// next stage already consumed.
//
// For any given input, the Parse method produces the same value, or a
// ParseError with the same reason, as the package-level Parse function.
type Parser struct {
	input  string
	cursor int
}

// NewParser returns an incremental parser over input.
func NewParser(input string) *Parser {
	return &Parser{input: input}
}

// ParseBase consumes the major component, a separator, and the minor
// component. No end-of-input check takes place: given "1.2rest", the
// returned BaseParser holds 1.2 while "rest" remains unconsumed, and the
// caller decides whether to finish or continue.
func (p *Parser) ParseBase() (*BaseParser, error) {
	major, cursor, perr := scanComponent(p.input, p.cursor)
	if perr != nil {
		return nil, perr
	}
	cursor, perr = parseDot(p.input, cursor)
	if perr != nil {
		return nil, perr
	}
	minor, cursor, perr := scanComponent(p.input, cursor)
	if perr != nil {
		return nil, perr
	}

	return &BaseParser{
		input:   p.input,
		cursor:  cursor,
		version: Base{Major: major, Minor: minor},
	}, nil
}

// ParseFull consumes major, separator, minor, separator and patch. A two-
// component input is rejected at the missing second separator.
func (p *Parser) ParseFull() (*FullParser, error) {
	base, err := p.ParseBase()
	if err != nil {
		return nil, err
	}
	return base.ParsePatch()
}

// Parse consumes either a two- or three-component version followed by the
// end of the input, deciding the shape by peeking for a second separator
// after the minor component.
func (p *Parser) Parse() (Version, error) {
	base, err := p.ParseBase()
	if err != nil {
		return Version{}, err
	}
	return base.ParsePatchOrFinish()
}

// BaseParser is the parser stage reached once a two-component version has
// been recognized. No end-of-input check has taken place yet.
type BaseParser struct {
	input   string
	cursor  int
	version Base
}

// ParsePatch consumes a separator and the patch component.
func (p *BaseParser) ParsePatch() (*FullParser, error) {
	cursor, perr := parseDot(p.input, p.cursor)
	if perr != nil {
		return nil, perr
	}
	patch, cursor, perr := scanComponent(p.input, cursor)
	if perr != nil {
		return nil, perr
	}

	return &FullParser{
		input:   p.input,
		cursor:  cursor,
		version: Full{Major: p.version.Major, Minor: p.version.Minor, Patch: patch},
	}, nil
}

// ParsePatchOrFinish peeks, without consuming input, whether a separator
// follows. If so it parses the patch component and finishes as a
// three-component version; otherwise it finishes as a two-component
// version.
func (p *BaseParser) ParsePatchOrFinish() (Version, error) {
	if !peekDot(p.input, p.cursor) {
		return p.Finish()
	}
	full, err := p.ParsePatch()
	if err != nil {
		return Version{}, err
	}
	return full.Finish()
}

// Finish checks that no input remains and wraps the parsed components as
// a two-component Version.
func (p *BaseParser) Finish() (Version, error) {
	b, err := p.FinishBase()
	if err != nil {
		return Version{}, err
	}
	return FromBase(b), nil
}

// FinishBase checks that no input remains and returns the parsed Base.
func (p *BaseParser) FinishBase() (Base, error) {
	if perr := expectEOI(p.input, p.cursor); perr != nil {
		return Base{}, perr
	}
	return p.version, nil
}

// Version returns the components parsed so far. Until a finish method has
// confirmed the end of the input, the value may not cover the whole
// input.
func (p *BaseParser) Version() Base {
	return p.version
}

// FullParser is the parser stage reached once a three-component version
// has been recognized. No end-of-input check has taken place yet.
type FullParser struct {
	input   string
	cursor  int
	version Full
}

// Finish checks that no input remains and wraps the parsed components as
// a three-component Version.
func (p *FullParser) Finish() (Version, error) {
	f, err := p.FinishFull()
	if err != nil {
		return Version{}, err
	}
	return FromFull(f), nil
}

// FinishFull checks that no input remains and returns the parsed Full.
func (p *FullParser) FinishFull() (Full, error) {
	if perr := expectEOI(p.input, p.cursor); perr != nil {
		return Full{}, perr
	}
	return p.version, nil
}

// Version returns the components parsed so far. Until Finish or
// FinishFull has confirmed the end of the input, the value may not cover
// the whole input.
func (p *FullParser) Version() Full {
	return p.version
}
