package dist

import (
	"fmt"
	"math"

	"github.com/sajari/regression"
)

// TailFit is a least-squares line through log10(frequency) as a function
// of log10(value), fitted over the bins at or above a cutoff value.
type TailFit struct {
	Slope     float64
	Intercept float64
	R2        float64
	Bins      int
}

// FitTail fits a log-log line to the frequency table over values >=
// minValue. Bins with value <= 0 cannot be log-scaled and are skipped.
func FitTail(d *Distribution, minValue float64) (TailFit, error) {
	h := handle("FitTail: %w")
	var tf TailFit

	var pts regression.DataPoints
	for i, v := range d.Values {
		if v <= 0 || v < minValue {
			continue
		}
		pts = append(pts, regression.DataPoint(
			math.Log10(float64(d.Freqs[i])),
			[]float64{math.Log10(v)},
		))
	}
	if len(pts) < 2 {
		return tf, h(fmt.Errorf("need at least 2 bins at or above %v, got %v", minValue, len(pts)))
	}

	r := new(regression.Regression)
	r.SetObserved("log10 frequency")
	r.SetVar(0, "log10 overlap")
	r.Train(pts...)
	if e := r.Run(); e != nil {
		return tf, h(e)
	}

	tf.Intercept = r.Coeff(0)
	tf.Slope = r.Coeff(1)
	tf.R2 = r.R2
	tf.Bins = len(pts)
	return tf, nil
}
