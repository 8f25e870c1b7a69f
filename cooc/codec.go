package cooc

import (
	"encoding/json"
	"io"

	"github.com/jgbaldwinbrown/csvh"
)

// The wire shape keeps the nested layout of the in-memory table: one
// record per outer id, plus the session id mapping.

type innerRec struct {
	Cid     uint64  `json:"cid"`
	Overlap float64 `json:"overlap"`
}

type outerRec struct {
	Cid   uint64     `json:"cid"`
	Inner []innerRec `json:"inner"`
}

type sessionRec struct {
	Sid string `json:"sid"`
	Cid uint64 `json:"cid"`
}

type tableFile struct {
	Overlaps []outerRec   `json:"overlaps"`
	Sessions []sessionRec `json:"sessions"`
}

// Write serializes the table as JSON.
func (t *Table) Write(w io.Writer) error {
	h := handle("Write: %w")

	var tf tableFile
	for cid, inner := range t.overlaps {
		o := outerRec{Cid: cid}
		for icid, v := range inner {
			o.Inner = append(o.Inner, innerRec{Cid: icid, Overlap: v})
		}
		tf.Overlaps = append(tf.Overlaps, o)
	}
	for sid, cid := range t.ids {
		tf.Sessions = append(tf.Sessions, sessionRec{Sid: string(sid), Cid: cid})
	}

	if e := json.NewEncoder(w).Encode(tf); e != nil {
		return h(e)
	}
	return nil
}

// Read replaces the table's contents with the serialized table from r.
func (t *Table) Read(r io.Reader) error {
	h := handle("Read: %w")

	var tf tableFile
	if e := json.NewDecoder(r).Decode(&tf); e != nil {
		return h(e)
	}

	t.overlaps = make(map[uint64]map[uint64]float64, len(tf.Overlaps))
	for _, o := range tf.Overlaps {
		inner := make(map[uint64]float64, len(o.Inner))
		for _, in := range o.Inner {
			inner[in.Cid] = in.Overlap
		}
		t.overlaps[o.Cid] = inner
	}

	t.ids = make(map[SessionID]uint64, len(tf.Sessions))
	t.next = 1
	for _, s := range tf.Sessions {
		t.ids[SessionID(s.Sid)] = s.Cid
		if s.Cid >= t.next {
			t.next = s.Cid + 1
		}
	}
	return nil
}

// Save writes the table to a possibly gzipped path.
func (t *Table) Save(path string) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()

	return t.Write(w)
}

// Load reads a table from a possibly gzipped path.
func Load(path string) (*Table, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, e
	}
	defer r.Close()

	t := NewTable()
	if e := t.Read(r); e != nil {
		return nil, e
	}
	return t, nil
}
