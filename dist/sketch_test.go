package dist

import (
	"errors"
	"math"
	"testing"
)

func TestSketchCheck(t *testing.T) {
	table := map[uint64]map[uint64]float64{
		1: {2: 5, 3: 12},
		4: {5: 7},
	}

	rep, e := SketchCheck(table, 4, 100)
	if e != nil {
		t.Fatal(e)
	}
	if rep.Cells != 3 {
		t.Errorf("Cells %v != 3", rep.Cells)
	}
	if rep.Depth != 4 || rep.Width != 100 {
		t.Errorf("got d %v w %v", rep.Depth, rep.Width)
	}
	if rep.SketchBytes <= 0 {
		t.Errorf("SketchBytes %v <= 0", rep.SketchBytes)
	}
	// a count-min sketch never underestimates
	if rep.MeanErrPct < 0 {
		t.Errorf("MeanErrPct %v < 0", rep.MeanErrPct)
	}
}

func TestSketchCheckZeroExact(t *testing.T) {
	// 0.5 truncates to an exact count of 0; a width-1 sketch forces every
	// key onto one counter, so its estimate collides up to 5
	table := map[uint64]map[uint64]float64{
		1: {2: 0.5, 3: 5},
	}

	rep, e := SketchCheck(table, 1, 1)
	if e != nil {
		t.Fatal(e)
	}
	if rep.Cells != 2 {
		t.Errorf("Cells %v != 2", rep.Cells)
	}
	if rep.Wrong != 1 {
		t.Errorf("Wrong %v != 1", rep.Wrong)
	}
	if math.IsInf(rep.MeanErrPct, 0) || math.IsNaN(rep.MeanErrPct) {
		t.Errorf("MeanErrPct %v not finite", rep.MeanErrPct)
	}
	if rep.MeanErrPct != 0 {
		t.Errorf("MeanErrPct %v != 0", rep.MeanErrPct)
	}
}

func TestSketchCheckEmpty(t *testing.T) {
	_, e := SketchCheck(map[uint64]map[uint64]float64{}, 4, 100)
	if !errors.Is(e, ErrEmptyInput) {
		t.Errorf("err %v != ErrEmptyInput", e)
	}
}
