package cooc

import (
	"bufio"
	"io"
	"sort"
	"strconv"

	"coocviz/overlap"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fasttsv"
	"github.com/jgbaldwinbrown/lscan/pkg"
)

// ReadTimes parses timestamp records, one line per record:
// session id, then one or more timestamps in nanoseconds, tab separated.
// Lines for the same session accumulate.
func ReadTimes(r io.Reader) (map[SessionID][]uint64, error) {
	h := handle("ReadTimes: %w")
	out := make(map[SessionID][]uint64)

	s := fasttsv.NewScanner(r)
	for s.Scan() {
		line := s.Line()
		if len(line) < 1 || line[0] == "" {
			continue
		}
		sid := SessionID(line[0])
		for _, field := range line[1:] {
			if field == "" {
				continue
			}
			t, e := strconv.ParseUint(field, 10, 64)
			if e != nil {
				return nil, h(e)
			}
			out[sid] = append(out[sid], t)
		}
	}
	return out, nil
}

// ReadTimesPath reads timestamp records from a possibly gzipped path.
func ReadTimesPath(path string) (map[SessionID][]uint64, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, e
	}
	defer r.Close()

	return ReadTimes(r)
}

// Build computes the fixed-margin overlap for every session pair and
// records the non-zero ones. Every session is interned even when all of
// its overlaps are zero.
func Build(times map[SessionID][]uint64, margin uint64) *Table {
	sids := make([]SessionID, 0, len(times))
	for sid := range times {
		sids = append(sids, sid)
	}
	sort.Slice(sids, func(i, j int) bool {
		return sids[i].Compare(sids[j]) < 0
	})

	t := NewTable()
	for _, sid := range sids {
		t.Touch(sid)
	}
	for i := 0; i < len(sids); i++ {
		for j := i + 1; j < len(sids); j++ {
			ov := overlap.FixedMargin(times[sids[i]], times[sids[j]], margin)
			t.Add(sids[i], sids[j], float64(ov))
		}
	}
	return t
}

var listSplit = lscan.ByByte('\t')

// ReadSessionList parses a session subset file, one session id per line
// (first tab field; blank lines skipped).
func ReadSessionList(r io.Reader) (map[SessionID]bool, error) {
	keep := make(map[SessionID]bool)

	s := bufio.NewScanner(r)
	var line []string
	for s.Scan() {
		line = lscan.SplitByFunc(line, s.Text(), listSplit)
		if len(line) < 1 || line[0] == "" {
			continue
		}
		keep[SessionID(line[0])] = true
	}
	return keep, s.Err()
}

// ReadSessionListPath reads a session subset file from a possibly
// gzipped path.
func ReadSessionListPath(path string) (map[SessionID]bool, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, e
	}
	defer r.Close()

	return ReadSessionList(r)
}
