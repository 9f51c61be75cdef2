package position

import (
	"errors"
	"testing"
)

func TestNextWraps(t *testing.T) {
	tests := []struct {
		in, want Position
	}{
		{Left, Right},
		{Right, Top},
		{Top, Bottom},
		{Bottom, Left},
	}
	for _, tt := range tests {
		got, err := NextPosition(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("NextPosition(%s) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}

	got, err := NextAlignment(Top, AlignCenter)
	if err != nil || got != AlignLeft {
		t.Errorf("NextAlignment(top, center) = %s, %v; want left", got, err)
	}
	got, err = NextAlignment(Right, AlignTop)
	if err != nil || got != AlignBottom {
		t.Errorf("NextAlignment(right, top) = %s, %v; want bottom", got, err)
	}
}

func TestNextRejectsUnknownItems(t *testing.T) {
	if _, err := NextPosition(Auto); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NextPosition(auto) err = %v", err)
	}
	if _, err := NextAlignment(Top, AlignTop); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NextAlignment(top, top) err = %v", err)
	}
	if _, err := NextAlignment(Auto, AlignLeft); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NextAlignment(auto, left) err = %v", err)
	}
	if _, err := Next(3, []int{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Next on empty sequence err = %v", err)
	}
}

func TestValidAlignmentsReturnsCopy(t *testing.T) {
	seq, err := ValidAlignments(Bottom)
	if err != nil {
		t.Fatal(err)
	}
	seq[0] = AlignCenter
	again, _ := ValidAlignments(Bottom)
	if again[0] != AlignLeft {
		t.Error("ValidAlignments exposed its backing array")
	}
}

func TestTriedPositions(t *testing.T) {
	tried := TriedPositions{}
	tried.Add(Bottom, AlignLeft)
	tried.Add(Bottom, AlignLeft)
	tried.Add(Bottom, AlignRight)
	if tried.Exhausted(Bottom) {
		t.Fatal("bottom exhausted after two alignments")
	}
	tried.Add(Bottom, AlignCenter)
	if !tried.Exhausted(Bottom) {
		t.Fatal("bottom not exhausted after three alignments")
	}
	if len(tried[Bottom]) != 3 {
		t.Errorf("tried[bottom] = %v, repeats must be ignored", tried[Bottom])
	}
	if tried.AllExhausted() {
		t.Fatal("all exhausted with one position tried")
	}

	for _, p := range []Position{Left, Right, Top} {
		seq, _ := ValidAlignments(p)
		for _, a := range seq {
			tried.Add(p, a)
		}
	}
	if !tried.AllExhausted() {
		t.Error("expected every position exhausted")
	}

	tried.Reset()
	if len(tried) != 0 || tried.Exhausted(Bottom) {
		t.Error("Reset left state behind")
	}
}
