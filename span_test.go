package splicer

import "testing"

func TestSpanContains(t *testing.T) {
	s := Span{3, 7}
	if s.Len() != 4 {
		t.Errorf("expected length 4, is %d", s.Len())
	}
	if !s.Contains(3) || !s.Contains(6) {
		t.Errorf("expected %v to contain 3 and 6", s)
	}
	if s.Contains(7) || s.Contains(2) {
		t.Errorf("expected %v not to contain 2 and 7", s)
	}
	if !s.Covers(Span{3, 7}) || !s.Covers(Span{4, 5}) || s.Covers(Span{2, 5}) {
		t.Errorf("coverage of %v broken", s)
	}
}

func TestSpanArithmetic(t *testing.T) {
	s := Span{3, 7}
	if s.Shift(-3) != (Span{0, 4}) {
		t.Errorf("expected (0…4), have %v", s.Shift(-3))
	}
	if e := s.Extend(Span{1, 4}); e != (Span{1, 7}) {
		t.Errorf("expected (1…7), have %v", e)
	}
	if !(Span{}).IsNull() || s.IsNull() {
		t.Errorf("null span not detected")
	}
	if s.String() != "(3…7)" {
		t.Errorf("unexpected string representation %s", s)
	}
}
