package version

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyRange is returned when a range's end does not lie strictly
// after its begin.
var ErrEmptyRange = errors.New("version range must not be empty")

// ErrRangeOverlap is returned when a range added to a RangeMap overlaps
// a range already present.
var ErrRangeOverlap = errors.New("version range overlaps an existing range")

// Range is a half-open interval [Begin, End) over two-component
// versions. A Range is never empty: End lies strictly after Begin.
type Range struct {
	begin Base
	end   Base
}

// NewRange returns the interval [begin, end), or ErrEmptyRange when the
// interval would contain no versions.
func NewRange(begin, end Base) (Range, error) {
	if !begin.LessThan(end) {
		return Range{}, ErrEmptyRange
	}
	return Range{begin: begin, end: end}, nil
}

// Begin returns the inclusive lower bound.
func (r Range) Begin() Base {
	return r.begin
}

// End returns the exclusive upper bound.
func (r Range) End() Base {
	return r.end
}

// Contains reports whether v lies within the interval.
func (r Range) Contains(v Base) bool {
	return v.GreaterThanOrEqual(r.begin) && v.LessThan(r.end)
}

// String renders the interval as "[begin, end)".
func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.begin, r.end)
}

// RangeMap maps non-overlapping version ranges to values, answering
// "which value applies to this version" lookups. The zero value is an
// empty map ready for use.
type RangeMap[V any] struct {
	ranges []Range
	values []V
}

// Add inserts a range and its value. Ranges may touch (one's End equal
// to the next one's Begin) but not overlap; an overlapping range is
// rejected with ErrRangeOverlap and the map is left unchanged.
func (m *RangeMap[V]) Add(r Range, value V) error {
	// First existing range ending after the new one begins; ranges are
	// disjoint and sorted, so this is the only candidate for overlap.
	i := sort.Search(len(m.ranges), func(i int) bool {
		return r.begin.LessThan(m.ranges[i].end)
	})
	if i < len(m.ranges) && m.ranges[i].begin.LessThan(r.end) {
		return ErrRangeOverlap
	}

	m.ranges = append(m.ranges, Range{})
	copy(m.ranges[i+1:], m.ranges[i:])
	m.ranges[i] = r

	m.values = append(m.values, *new(V))
	copy(m.values[i+1:], m.values[i:])
	m.values[i] = value

	return nil
}

// Lookup returns the value whose range contains v.
func (m *RangeMap[V]) Lookup(v Base) (V, bool) {
	if i, ok := m.find(v); ok {
		return m.values[i], true
	}
	var zero V
	return zero, false
}

// RangeOf returns the range that contains v.
func (m *RangeMap[V]) RangeOf(v Base) (Range, bool) {
	if i, ok := m.find(v); ok {
		return m.ranges[i], true
	}
	return Range{}, false
}

// Len returns the number of ranges in the map.
func (m *RangeMap[V]) Len() int {
	return len(m.ranges)
}

func (m *RangeMap[V]) find(v Base) (int, bool) {
	i := sort.Search(len(m.ranges), func(i int) bool {
		return v.LessThan(m.ranges[i].end)
	})
	if i < len(m.ranges) && m.ranges[i].Contains(v) {
		return i, true
	}
	return 0, false
}
