package overlap

import (
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestSpanOverlap(t *testing.T) {
	a := Span{ID: ulid.Make(), Start: 10, End: 30}
	b := Span{ID: ulid.Make(), Start: 20, End: 50}
	c := Span{ID: ulid.Make(), Start: 30, End: 40}

	if got := a.Overlap(b); got != 10 {
		t.Errorf("a∩b %v != 10", got)
	}
	if got := b.Overlap(a); got != 10 {
		t.Errorf("b∩a %v != 10", got)
	}
	// touching spans do not overlap
	if got := a.Overlap(c); got != 0 {
		t.Errorf("a∩c %v != 0", got)
	}
}

func TestFixedMargin(t *testing.T) {
	// [80,120] vs [90,130]
	if got := FixedMargin([]uint64{100}, []uint64{110}, 20); got != 30 {
		t.Errorf("out %v != 30", got)
	}
	// symmetric
	if got := FixedMargin([]uint64{110}, []uint64{100}, 20); got != 30 {
		t.Errorf("out %v != 30", got)
	}
	// disjoint
	if got := FixedMargin([]uint64{100}, []uint64{100000}, 20); got != 0 {
		t.Errorf("out %v != 0", got)
	}
}

func TestFixedMarginMultiple(t *testing.T) {
	// windows [5,15] and [25,35] vs [7,17]: shared [7,15]
	if got := FixedMargin([]uint64{10, 30}, []uint64{12}, 5); got != 8 {
		t.Errorf("out %v != 8", got)
	}
}

func TestFixedMarginClamp(t *testing.T) {
	// t < margin clamps the window start to 0: [0,15] vs [0,10]
	if got := FixedMargin([]uint64{5}, []uint64{0}, 10); got != 10 {
		t.Errorf("out %v != 10", got)
	}
}

func TestFixedMarginEmpty(t *testing.T) {
	if got := FixedMargin(nil, []uint64{5}, 10); got != 0 {
		t.Errorf("out %v != 0", got)
	}
}

func TestSeriesOverlap(t *testing.T) {
	a := Series{ID: ulid.Make(), Times: []uint64{100}}
	b := Series{ID: ulid.Make(), Times: []uint64{110}}
	if got := a.Overlap(b, 20); got != 30 {
		t.Errorf("out %v != 30", got)
	}
}

func TestConversions(t *testing.T) {
	if got := SecondsOf(1_500_000_000); got != 1.5 {
		t.Errorf("SecondsOf %v != 1.5", got)
	}
	if got := Nanos(0.01); got != 10_000_000 {
		t.Errorf("Nanos %v != 10000000", got)
	}
}
