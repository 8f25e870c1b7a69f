package dist

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes the flattened overlap multiset.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
	P90    float64
	P99    float64
}

// Summarize computes summary statistics over a flattened multiset.
func Summarize(vals []float64) (Summary, error) {
	h := handle("Summarize: %w")
	var s Summary
	if len(vals) == 0 {
		return s, h(ErrEmptyInput)
	}
	s.Count = len(vals)

	var e error
	if s.Min, e = stats.Min(vals); e != nil {
		return s, h(e)
	}
	if s.Max, e = stats.Max(vals); e != nil {
		return s, h(e)
	}
	if s.Mean, e = stats.Mean(vals); e != nil {
		return s, h(e)
	}
	if s.Median, e = stats.Median(vals); e != nil {
		return s, h(e)
	}
	if s.StdDev, e = stats.StandardDeviation(vals); e != nil {
		return s, h(e)
	}
	if s.P90, e = stats.Percentile(vals, 90); e != nil {
		return s, h(e)
	}
	if s.P99, e = stats.Percentile(vals, 99); e != nil {
		return s, h(e)
	}
	return s, nil
}

func (s Summary) String() string {
	return fmt.Sprintf(`overlap statistics:
	Count: %d
	Min: %v
	Max: %v
	Mean: %v
	Median: %v
	StdDev: %v
	P90: %v
	P99: %v`,
		s.Count, s.Min, s.Max, s.Mean, s.Median, s.StdDev, s.P90, s.P99)
}
