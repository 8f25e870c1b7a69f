package dist

import (
	"math"
	"testing"
)

func TestFitTail(t *testing.T) {
	// exact power law: freq = 10^4 * value^-1
	d := &Distribution{
		Values:   []float64{10, 100, 1000},
		Freqs:    []int64{1000, 100, 10},
		CumProbs: []float64{1000.0 / 1110, 1100.0 / 1110, 1},
	}

	tf, e := FitTail(d, 0)
	if e != nil {
		t.Fatal(e)
	}
	if tf.Bins != 3 {
		t.Errorf("Bins %v != 3", tf.Bins)
	}
	if math.Abs(tf.Slope-(-1)) > 1e-6 {
		t.Errorf("Slope %v != -1", tf.Slope)
	}
	if math.Abs(tf.Intercept-4) > 1e-6 {
		t.Errorf("Intercept %v != 4", tf.Intercept)
	}
	if math.Abs(tf.R2-1) > 1e-6 {
		t.Errorf("R2 %v != 1", tf.R2)
	}
}

func TestFitTailCutoff(t *testing.T) {
	d := &Distribution{
		Values:   []float64{1, 10, 100, 1000},
		Freqs:    []int64{7, 1000, 100, 10},
		CumProbs: []float64{0.1, 0.5, 0.9, 1},
	}

	tf, e := FitTail(d, 10)
	if e != nil {
		t.Fatal(e)
	}
	if tf.Bins != 3 {
		t.Errorf("Bins %v != 3", tf.Bins)
	}
}

func TestFitTailTooFew(t *testing.T) {
	d := &Distribution{
		Values:   []float64{7},
		Freqs:    []int64{3},
		CumProbs: []float64{1},
	}
	if _, e := FitTail(d, 0); e == nil {
		t.Errorf("expected error for single bin")
	}
}
