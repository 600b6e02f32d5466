package version

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare returns -1 if b < other, 0 if b == other, 1 if b > other.
func (b Base) Compare(other Base) int {
	if c := compareUint64(b.Major, other.Major); c != 0 {
		return c
	}
	return compareUint64(b.Minor, other.Minor)
}

// LessThan returns true if b < other.
func (b Base) LessThan(other Base) bool {
	return b.Compare(other) < 0
}

// GreaterThanOrEqual returns true if b >= other.
func (b Base) GreaterThanOrEqual(other Base) bool {
	return b.Compare(other) >= 0
}

// Compare returns -1 if f < other, 0 if f == other, 1 if f > other.
func (f Full) Compare(other Full) int {
	if c := compareUint64(f.Major, other.Major); c != 0 {
		return c
	}
	if c := compareUint64(f.Minor, other.Minor); c != 0 {
		return c
	}
	return compareUint64(f.Patch, other.Patch)
}

// LessThan returns true if f < other.
func (f Full) LessThan(other Full) bool {
	return f.Compare(other) < 0
}

// GreaterThanOrEqual returns true if f >= other.
func (f Full) GreaterThanOrEqual(other Full) bool {
	return f.Compare(other) >= 0
}

// Compare orders two versions regardless of shape: a missing patch
// component compares as 0, so 1.2 and 1.2.0 are considered equal here
// even though Equal distinguishes them.
func (v Version) Compare(other Version) int {
	return v.Full().Compare(other.Full())
}

// LessThan returns true if v < other, with a missing patch comparing as 0.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// GreaterThanOrEqual returns true if v >= other, with a missing patch
// comparing as 0.
func (v Version) GreaterThanOrEqual(other Version) bool {
	return v.Compare(other) >= 0
}
