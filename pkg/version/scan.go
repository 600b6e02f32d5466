package version

// Bounds used to detect uint64 overflow while accumulating digits.
const (
	maxComponent      = ^uint64(0)        // largest value a single component may hold
	maxComponentDiv10 = maxComponent / 10 // maxComponent / 10
	maxComponentMod10 = maxComponent % 10 // maxComponent % 10
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// scanComponent consumes the maximal run of ASCII digits starting at
// cursor and returns the accumulated value plus the cursor past the run.
//
// A run of zero digits fails with ExpectedNumericToken. A multi-digit run
// starting with '0' fails with LeadingZeroNotAllowed. A run whose value
// would not fit in 64 bits fails with Overflow. The two digit guards are
// independent so the failure attribution stays unambiguous.
func scanComponent(input string, cursor int) (uint64, int, *ParseError) {
	start := cursor
	var value uint64

	for cursor < len(input) && isDigit(input[cursor]) {
		d := uint64(input[cursor] - '0')

		if cursor > start && value == 0 {
			return 0, cursor, errLeadingZero(input)
		}
		if value > maxComponentDiv10 || (value == maxComponentDiv10 && d > maxComponentMod10) {
			return 0, cursor, errOverflow(input)
		}

		value = value*10 + d
		cursor++
	}

	if cursor == start {
		if cursor < len(input) {
			return 0, cursor, errNumericToken(input, cursor, input[cursor], false)
		}
		return 0, cursor, errNumericToken(input, cursor, 0, true)
	}

	return value, cursor, nil
}

// parseDot consumes exactly one '.' at cursor. On any other byte, or at
// the end of the input, it fails without advancing.
func parseDot(input string, cursor int) (int, *ParseError) {
	if cursor >= len(input) {
		return cursor, errSeparator(input, cursor, 0, true)
	}
	if input[cursor] != '.' {
		return cursor, errSeparator(input, cursor, input[cursor], false)
	}
	return cursor + 1, nil
}

// peekDot reports whether the byte at cursor is a '.'. It never consumes
// input.
func peekDot(input string, cursor int) bool {
	return cursor < len(input) && input[cursor] == '.'
}

// expectEOI fails with ExpectedEndOfInput when bytes remain at cursor.
func expectEOI(input string, cursor int) *ParseError {
	if cursor < len(input) {
		return errTrailingInput(input, cursor)
	}
	return nil
}
