package seq

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseRoundTrip(t *testing.T) {
	s, err := Parse([]byte("gaCTgacatac"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []int{2, 0, 1, 3, 2, 0, 1, 0, 3, 0, 1}
	got := s.Ints()
	if len(got) != len(want) {
		t.Fatalf("len=%d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pos %d: got %d want %d", i, got[i], want[i])
		}
	}
	if s.String() != "GACTGACATAC" {
		t.Fatalf("String()=%q", s.String())
	}
}

func TestParseRejectsAmbiguity(t *testing.T) {
	for _, in := range []string{"ACGN", "ACGU", "AC-G", "R"} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("%q: want ErrInvalidSymbol, got %v", in, err)
		}
	}
}

func TestFromIntsValidation(t *testing.T) {
	if _, err := FromInts([]int{0, 1, 2, 3}); err != nil {
		t.Fatalf("valid ints rejected: %v", err)
	}
	for _, bad := range [][]int{{4}, {-1}, {0, 1, 5}} {
		if _, err := FromInts(bad); !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("%v: want ErrInvalidSymbol, got %v", bad, err)
		}
	}
	if _, err := FromSymbols([]Symbol{A, 7}); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("FromSymbols: want ErrInvalidSymbol, got %v", err)
	}
}

func TestEmptyIsValid(t *testing.T) {
	s, err := Parse(nil)
	if err != nil || s.Len() != 0 {
		t.Fatalf("empty parse: len=%d err=%v", s.Len(), err)
	}
}

func TestWindowAndEqual(t *testing.T) {
	s := MustParse("ACGTACG")
	if !Equal(s.Window(0, 3), s.Window(4, 3)) {
		t.Fatalf("ACG windows should be equal")
	}
	if Equal(s.Window(0, 3), s.Window(1, 3)) {
		t.Fatalf("ACG vs CGT should differ")
	}
	if Equal(s.Window(0, 3), s.Window(0, 2)) {
		t.Fatalf("different lengths must not be equal")
	}
}
