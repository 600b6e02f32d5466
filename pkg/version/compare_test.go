package version

import "testing"

func TestBase_Compare(t *testing.T) {
	tests := []struct {
		a, b Base
		want int
	}{
		{Base{0, 0}, Base{0, 0}, 0},
		{Base{1, 2}, Base{1, 2}, 0},
		{Base{1, 0}, Base{2, 0}, -1},
		{Base{2, 0}, Base{1, 0}, 1},
		{Base{1, 0}, Base{1, 1}, -1},
		{Base{1, 1}, Base{1, 0}, 1},
		{Base{1, ^uint64(0)}, Base{2, 0}, -1},
	}

	for _, tt := range tests {
		got := tt.a.Compare(tt.b)
		if got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFull_Compare(t *testing.T) {
	tests := []struct {
		a, b Full
		want int
	}{
		{Full{0, 0, 0}, Full{0, 0, 0}, 0},
		{Full{1, 2, 3}, Full{1, 2, 3}, 0},
		{Full{1, 0, 0}, Full{2, 0, 0}, -1},
		{Full{2, 0, 0}, Full{1, 0, 0}, 1},
		{Full{1, 0, 0}, Full{1, 1, 0}, -1},
		{Full{1, 1, 0}, Full{1, 0, 0}, 1},
		{Full{1, 0, 0}, Full{1, 0, 1}, -1},
		{Full{1, 0, 1}, Full{1, 0, 0}, 1},
		{Full{1, 0, ^uint64(0)}, Full{1, 1, 0}, -1},
	}

	for _, tt := range tests {
		got := tt.a.Compare(tt.b)
		if got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBase_LessThan_GreaterThanOrEqual(t *testing.T) {
	a := Base{1, 0}
	b := Base{1, 1}

	if !a.LessThan(b) {
		t.Errorf("%v.LessThan(%v) = false, want true", a, b)
	}
	if a.GreaterThanOrEqual(b) {
		t.Errorf("%v.GreaterThanOrEqual(%v) = true, want false", a, b)
	}
	if !b.GreaterThanOrEqual(a) {
		t.Errorf("%v.GreaterThanOrEqual(%v) = false, want true", b, a)
	}
	if !a.GreaterThanOrEqual(a) {
		t.Errorf("%v.GreaterThanOrEqual(%v) = false, want true", a, a)
	}
}

func TestFull_LessThan_GreaterThanOrEqual(t *testing.T) {
	a := Full{1, 0, 0}
	b := Full{1, 0, 1}

	if !a.LessThan(b) {
		t.Errorf("%v.LessThan(%v) = false, want true", a, b)
	}
	if a.GreaterThanOrEqual(b) {
		t.Errorf("%v.GreaterThanOrEqual(%v) = true, want false", a, b)
	}
	if !b.GreaterThanOrEqual(a) {
		t.Errorf("%v.GreaterThanOrEqual(%v) = false, want true", b, a)
	}
}

func TestVersion_Compare_AcrossShapes(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{FromBase(Base{1, 2}), FromFull(Full{1, 2, 0}), 0},
		{FromBase(Base{1, 2}), FromFull(Full{1, 2, 1}), -1},
		{FromFull(Full{1, 2, 1}), FromBase(Base{1, 2}), 1},
		{FromBase(Base{1, 2}), FromBase(Base{1, 3}), -1},
		{FromFull(Full{2, 0, 0}), FromFull(Full{1, 9, 9}), 1},
	}

	for _, tt := range tests {
		got := tt.a.Compare(tt.b)
		if got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
