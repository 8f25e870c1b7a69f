package dist

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	s, e := Summarize([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if e != nil {
		t.Fatal(e)
	}

	if s.Count != 10 {
		t.Errorf("Count %v != 10", s.Count)
	}
	if s.Min != 1 {
		t.Errorf("Min %v != 1", s.Min)
	}
	if s.Max != 10 {
		t.Errorf("Max %v != 10", s.Max)
	}
	if math.Abs(s.Mean-5.5) > tol {
		t.Errorf("Mean %v != 5.5", s.Mean)
	}
	if math.Abs(s.Median-5.5) > tol {
		t.Errorf("Median %v != 5.5", s.Median)
	}
	if math.Abs(s.StdDev-math.Sqrt(8.25)) > tol {
		t.Errorf("StdDev %v != %v", s.StdDev, math.Sqrt(8.25))
	}
	// rank 9 lands on a whole index, so the 90th percentile is exact
	if s.P90 != 9 {
		t.Errorf("P90 %v != 9", s.P90)
	}
	// rank 9.9 is fractional; adjacent elements are averaged
	if math.Abs(s.P99-9.5) > tol {
		t.Errorf("P99 %v != 9.5", s.P99)
	}
}

func TestSummarizeFractionalRank(t *testing.T) {
	s, e := Summarize([]float64{1, 2, 3, 4})
	if e != nil {
		t.Fatal(e)
	}
	// rank 3.6 truncates to 3 and averages the 3rd and 4th elements
	if math.Abs(s.P90-3.5) > tol {
		t.Errorf("P90 %v != 3.5", s.P90)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, e := Summarize(nil)
	if !errors.Is(e, ErrEmptyInput) {
		t.Errorf("err %v != ErrEmptyInput", e)
	}
}

func TestSummaryString(t *testing.T) {
	s, e := Summarize([]float64{5})
	if e != nil {
		t.Fatal(e)
	}
	out := s.String()
	if !strings.Contains(out, "Count: 1") || !strings.Contains(out, "Mean: 5") {
		t.Errorf("out %v missing fields", out)
	}
}
