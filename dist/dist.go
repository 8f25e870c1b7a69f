// Package dist turns a nested co-occurrence mapping into a frequency
// distribution and a cumulative distribution function.
package dist

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

var ErrEmptyInput = errors.New("no overlap values to aggregate")
var ErrInvalidValue = errors.New("invalid overlap value")

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

// Distribution holds one row per distinct overlap value, sorted ascending.
// Freqs[i] is the number of times Values[i] occurred; CumProbs[i] is the
// probability that a sample is <= Values[i].
type Distribution struct {
	Values   []float64
	Freqs    []int64
	CumProbs []float64
}

// Total returns the size of the flattened multiset the distribution was
// built from.
func (d *Distribution) Total() int64 {
	var n int64
	for _, f := range d.Freqs {
		n += f
	}
	return n
}

// Flatten concatenates every inner mapping's values into one multiset,
// duplicates retained. Negative or NaN values are rejected.
func Flatten(table map[uint64]map[uint64]float64) ([]float64, error) {
	h := handle("Flatten: %w")
	var out []float64
	for _, inner := range table {
		for _, v := range inner {
			if math.IsNaN(v) || v < 0 {
				return nil, h(fmt.Errorf("value %v: %w", v, ErrInvalidValue))
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// Aggregate flattens the table, counts occurrences of each distinct value,
// and derives the normalized cumulative distribution.
func Aggregate(table map[uint64]map[uint64]float64) (*Distribution, error) {
	vals, e := Flatten(table)
	if e != nil {
		return nil, e
	}
	return AggregateValues(vals)
}

// AggregateValues builds the distribution from an already flattened
// multiset.
func AggregateValues(vals []float64) (*Distribution, error) {
	h := handle("AggregateValues: %w")
	if len(vals) == 0 {
		return nil, h(ErrEmptyInput)
	}

	counts := make(map[float64]int64, len(vals))
	for _, v := range vals {
		if math.IsNaN(v) || v < 0 {
			return nil, h(fmt.Errorf("value %v: %w", v, ErrInvalidValue))
		}
		counts[v]++
	}

	d := &Distribution{
		Values: make([]float64, 0, len(counts)),
		Freqs:  make([]int64, 0, len(counts)),
	}
	for v := range counts {
		d.Values = append(d.Values, v)
	}
	sort.Float64s(d.Values)

	cum := make([]float64, len(d.Values))
	for i, v := range d.Values {
		d.Freqs = append(d.Freqs, counts[v])
		cum[i] = float64(counts[v])
	}
	floats.CumSum(cum, cum)
	total := cum[len(cum)-1]
	floats.Scale(1/total, cum)
	d.CumProbs = cum

	return d, nil
}
