package dist

import (
	"bytes"
	"fmt"

	"github.com/shenwei356/countminsketch"
)

// SketchReport compares exact overlap values against count-min sketch
// estimates of the same table.
type SketchReport struct {
	Depth       uint
	Width       uint
	Cells       int
	Wrong       int
	MeanErrPct  float64
	SketchBytes int64
}

// SketchCheck replays every table cell into a count-min sketch of the
// given depth (hash functions) and width (counters per hash), then
// measures how far the estimates drift from the exact values. The sketch
// occupies a fixed 8*depth*width bytes no matter how many sessions the
// table holds.
func SketchCheck(table map[uint64]map[uint64]float64, depth, width uint) (SketchReport, error) {
	h := handle("SketchCheck: %w")
	rep := SketchReport{Depth: depth, Width: width}

	s, e := countminsketch.New(depth, width)
	if e != nil {
		return rep, h(e)
	}

	for i, inner := range table {
		for j, v := range inner {
			s.UpdateString(fmt.Sprintf("%d-%d", i, j), uint64(v))
			rep.Cells++
		}
	}
	if rep.Cells == 0 {
		return rep, h(ErrEmptyInput)
	}

	var totalErr float64
	pctCells := 0
	for i, inner := range table {
		for j, v := range inner {
			exact := uint64(v)
			est := s.EstimateString(fmt.Sprintf("%d-%d", i, j))
			if est != exact {
				rep.Wrong++
				// cells that truncate to 0 have no defined error percentage
				if exact > 0 {
					totalErr += float64(est-exact) / float64(exact) * 100
					pctCells++
				}
			}
		}
	}
	if pctCells > 0 {
		rep.MeanErrPct = totalErr / float64(pctCells)
	}

	var buf bytes.Buffer
	n, e := s.WriteTo(&buf)
	if e != nil {
		return rep, h(e)
	}
	rep.SketchBytes = n

	return rep, nil
}
