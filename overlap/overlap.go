// Package overlap computes pairwise co-occurrence overlap between
// sessions, in nanoseconds.
package overlap

import (
	"sort"

	"github.com/oklog/ulid/v2"
)

const NanosPerSec = 1e9

// SecondsOf converts a nanosecond overlap to seconds.
func SecondsOf(ns uint64) float64 {
	return float64(ns) / NanosPerSec
}

// Nanos converts seconds to nanoseconds.
func Nanos(sec float64) uint64 {
	return uint64(sec * NanosPerSec)
}

// Span is an active interval [Start, End) in nanoseconds.
type Span struct {
	ID    ulid.ULID
	Start uint64
	End   uint64
}

// Overlap returns the length of the intersection of two spans, 0 when
// they do not intersect.
func (s Span) Overlap(o Span) uint64 {
	minEnd := min(s.End, o.End)
	maxStart := max(s.Start, o.Start)
	if minEnd <= maxStart {
		return 0
	}
	return minEnd - maxStart
}

// Series is one session's event timestamps in nanoseconds.
type Series struct {
	ID    ulid.ULID
	Times []uint64
}

// Overlap returns the fixed-margin overlap between two series.
func (s Series) Overlap(o Series, margin uint64) uint64 {
	return FixedMargin(s.Times, o.Times, margin)
}

// FixedMargin widens every timestamp to a ±margin window and returns the
// total time during which both series have an active window, by sweep
// line over the window edges. Windows starting before 0 are clamped.
func FixedMargin(times1, times2 []uint64, margin uint64) uint64 {
	type event struct {
		at   uint64
		kind uint8 // 1 start, 2 end
		list uint8 // 1 for times1, 2 for times2
	}

	events := make([]event, 0, 2*(len(times1)+len(times2)))
	add := func(times []uint64, list uint8) {
		for _, t := range times {
			start := uint64(0)
			if t > margin {
				start = t - margin
			}
			events = append(events,
				event{at: start, kind: 1, list: list},
				event{at: t + margin, kind: 2, list: list})
		}
	}
	add(times1, 1)
	add(times2, 2)

	sort.Slice(events, func(i, j int) bool {
		if events[i].at == events[j].at {
			if events[i].kind == events[j].kind {
				return events[i].list < events[j].list
			}
			return events[i].kind < events[j].kind
		}
		return events[i].at < events[j].at
	})

	var total uint64
	active1, active2 := 0, 0
	last := uint64(0)
	for _, e := range events {
		if active1 > 0 && active2 > 0 {
			total += e.at - last
		}
		switch {
		case e.kind == 1 && e.list == 1:
			active1++
		case e.kind == 1:
			active2++
		case e.list == 1:
			active1--
		default:
			active2--
		}
		last = e.at
	}
	return total
}
