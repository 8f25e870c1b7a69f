// Package cooc stores pairwise co-occurrence overlap values between
// sessions, with session ids interned to dense internal ids.
package cooc

import (
	"fmt"
	"unsafe"
)

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

type SessionID string

// Compare returns -1 if s < other, 0 if s == other, and 1 if s > other.
func (s SessionID) Compare(other SessionID) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}

// Table is a sparse half matrix of overlap values. Each pair is stored
// once, under the internal id of the lower session id; self pairs and
// zero overlaps are never recorded.
type Table struct {
	overlaps map[uint64]map[uint64]float64
	ids      map[SessionID]uint64
	next     uint64
}

func NewTable() *Table {
	return &Table{
		overlaps: make(map[uint64]map[uint64]float64),
		ids:      make(map[SessionID]uint64),
		next:     1, // 0 is never used as an id
	}
}

func (t *Table) intern(s SessionID) uint64 {
	id, ok := t.ids[s]
	if !ok {
		id = t.next
		t.ids[s] = id
		t.next++
	}
	return id
}

// Touch interns a session id without recording any overlap.
func (t *Table) Touch(s SessionID) {
	t.intern(s)
}

// Add records the overlap between two sessions. Self pairs and zero
// overlaps are dropped.
func (t *Table) Add(a, b SessionID, overlap float64) {
	if a.Compare(b) == 0 {
		return
	}
	if overlap == 0 {
		return
	}

	outer, inner := t.intern(a), t.intern(b)
	if a.Compare(b) > 0 {
		outer, inner = inner, outer
	}

	m, ok := t.overlaps[outer]
	if !ok {
		m = make(map[uint64]float64)
		t.overlaps[outer] = m
	}
	m[inner] = overlap
}

// Get returns the recorded overlap for a pair in either order, 0 when
// the pair was never recorded.
func (t *Table) Get(a, b SessionID) float64 {
	ca, cb := t.intern(a), t.intern(b)
	if a.Compare(b) < 0 {
		return t.overlaps[ca][cb]
	}
	return t.overlaps[cb][ca]
}

// Overlaps exposes the nested mapping for aggregation. Callers must not
// mutate it.
func (t *Table) Overlaps() map[uint64]map[uint64]float64 {
	return t.overlaps
}

// NonZero returns every recorded overlap value, duplicates retained.
func (t *Table) NonZero() []float64 {
	out := make([]float64, 0)
	for _, inner := range t.overlaps {
		for _, v := range inner {
			out = append(out, v)
		}
	}
	return out
}

// Sessions returns the session id to internal id mapping.
func (t *Table) Sessions() map[SessionID]uint64 {
	return t.ids
}

// Len returns the number of recorded pairs.
func (t *Table) Len() int {
	n := 0
	for _, inner := range t.overlaps {
		n += len(inner)
	}
	return n
}

// Subset returns a new table holding only the pairs where both sessions
// are in keep.
func (t *Table) Subset(keep map[SessionID]bool) *Table {
	rev := make(map[uint64]SessionID, len(t.ids))
	for sid, cid := range t.ids {
		rev[cid] = sid
	}

	out := NewTable()
	for outer, inner := range t.overlaps {
		osid, ok := rev[outer]
		if !ok || !keep[osid] {
			continue
		}
		for cid, v := range inner {
			isid, ok := rev[cid]
			if !ok || !keep[isid] {
				continue
			}
			out.Add(osid, isid, v)
		}
	}
	return out
}

// MemorySize reports the bytes held by the overlap matrix and by the id
// mapping. A full matrix over N sessions costs about 16*N^2 bytes; the
// sparse form only pays for recorded pairs.
func (t *Table) MemorySize() (dataSize, idSize uint64) {
	if t == nil {
		return 0, 0
	}
	for outer, inner := range t.overlaps {
		dataSize += uint64(unsafe.Sizeof(outer))
		for cid, v := range inner {
			dataSize += uint64(unsafe.Sizeof(cid))
			dataSize += uint64(unsafe.Sizeof(v))
		}
	}
	for sid, cid := range t.ids {
		idSize += uint64(len(sid))
		idSize += uint64(unsafe.Sizeof(cid))
	}
	return dataSize, idSize
}
