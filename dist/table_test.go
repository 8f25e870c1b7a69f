package dist

import (
	"errors"
	"strings"
	"testing"
)

const tableExpect = `value	frequency	cum_prob
3	2	0.6666666666666666
5	1	1
`

func TestWriteTable(t *testing.T) {
	d, e := Aggregate(map[uint64]map[uint64]float64{
		1: {2: 3, 3: 3},
		4: {5: 5},
	})
	if e != nil {
		t.Fatal(e)
	}

	var b strings.Builder
	if e := WriteTable(&b, d); e != nil {
		t.Fatal(e)
	}
	out := b.String()
	if out != tableExpect {
		t.Errorf("out %v != expect %v", out, tableExpect)
	}
}

func TestBinsEarlyStop(t *testing.T) {
	d, e := Aggregate(map[uint64]map[uint64]float64{
		1: {2: 1, 3: 2, 4: 3},
	})
	if e != nil {
		t.Fatal(e)
	}

	n := 0
	stop := errors.New("stop")
	err := d.Bins().Iterate(func(b Bin) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("err %v != stop", err)
	}
	if n != 2 {
		t.Errorf("n %v != 2", n)
	}
}
