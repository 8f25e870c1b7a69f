package viz

import (
	"flag"
	"fmt"
	"log"
	"os"

	"coocviz/cooc"
	"coocviz/dist"
	"coocviz/overlap"
)

type TimesFlags struct {
	Infile  string
	Outfile string
	Margin  float64
	Stats   bool
}

func GetTimesFlags() TimesFlags {
	var f TimesFlags
	flag.StringVar(&f.Infile, "f", "", "Timestamp records to ingest (required; .gz ok).")
	flag.StringVar(&f.Outfile, "o", "", "Output co-occurrence table path (required; .gz ok).")
	flag.Float64Var(&f.Margin, "m", 0.01, "Fixed margin in seconds around each timestamp.")
	flag.BoolVar(&f.Stats, "stats", false, "Print summary statistics of the recorded overlaps.")
	flag.Parse()
	return f
}

// RunTimes ingests timestamp records, builds the co-occurrence table,
// and saves it.
func RunTimes(f TimesFlags) (*cooc.Table, error) {
	h := handle("RunTimes: %w")

	times, e := cooc.ReadTimesPath(f.Infile)
	if e != nil {
		return nil, h(e)
	}
	t := cooc.Build(times, overlap.Nanos(f.Margin))
	if e := t.Save(f.Outfile); e != nil {
		return nil, h(e)
	}
	return t, nil
}

// FullTimes is the cooctimes entry point.
func FullTimes() {
	f := GetTimesFlags()
	if f.Infile == "" || f.Outfile == "" {
		fmt.Fprintln(os.Stderr, "arguments -f and -o are required")
		os.Exit(1)
	}

	t, e := RunTimes(f)
	Must(e)

	dataSize, idSize := t.MemorySize()
	log.Printf("co-occurrence memory size: data=%d ids=%d total=%d bytes",
		dataSize, idSize, dataSize+idSize)

	if f.Stats {
		s, e := dist.Summarize(t.NonZero())
		Must(e)
		fmt.Println(s)
	}
}
