package dist

import (
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/iter"
)

// Bin is one row of the frequency table.
type Bin struct {
	Value   float64
	Freq    int64
	CumProb float64
}

// Bins iterates the distribution in ascending value order.
func (d *Distribution) Bins() *iter.Iterator[Bin] {
	return &iter.Iterator[Bin]{Iteratef: func(yield func(Bin) error) error {
		for i, v := range d.Values {
			if e := yield(Bin{Value: v, Freq: d.Freqs[i], CumProb: d.CumProbs[i]}); e != nil {
				return e
			}
		}
		return nil
	}}
}

// WriteTable writes the frequency table as headered TSV.
func WriteTable(w io.Writer, d *Distribution) error {
	h := handle("WriteTable: %w")
	if _, e := fmt.Fprintf(w, "value\tfrequency\tcum_prob\n"); e != nil {
		return h(e)
	}
	return d.Bins().Iterate(func(b Bin) error {
		_, e := fmt.Fprintf(w, "%v\t%v\t%v\n", b.Value, b.Freq, b.CumProb)
		return e
	})
}

// WriteTablePath writes the frequency table to a possibly gzipped path.
func WriteTablePath(path string, d *Distribution) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()

	return WriteTable(w, d)
}
