package viz

import (
	"flag"
	"fmt"
	"log"
	"os"

	"coocviz/cooc"
	"coocviz/dist"
)

type SketchFlags struct {
	Infile string
	Depth  uint
	Width  uint
}

func GetSketchFlags() SketchFlags {
	var f SketchFlags
	flag.StringVar(&f.Infile, "f", "", "Co-occurrence table to check (required).")
	flag.UintVar(&f.Depth, "d", 12, "Sketch depth (number of hash functions).")
	flag.UintVar(&f.Width, "w", 1000, "Sketch width (counters per hash function).")
	flag.Parse()
	return f
}

// FullSketch is the coocsketch entry point.
func FullSketch() {
	f := GetSketchFlags()
	if f.Infile == "" {
		fmt.Fprintln(os.Stderr, "argument -f not provided (needed to load cooccurrence data)")
		os.Exit(1)
	}

	t, e := cooc.Load(f.Infile)
	Must(e)

	dataSize, idSize := t.MemorySize()
	log.Printf("co-occurrence memory size: data=%d ids=%d total=%d bytes",
		dataSize, idSize, dataSize+idSize)

	rep, e := dist.SketchCheck(t.Overlaps(), f.Depth, f.Width)
	Must(e)

	fmt.Printf("d: %d, w: %d\n", rep.Depth, rep.Width)
	fmt.Printf("Total: %d, Wrong: %d, AvgErr: %.2f%%\n", rep.Cells, rep.Wrong, rep.MeanErrPct)
	log.Printf("count-min sketch size: %d bytes", rep.SketchBytes)
}
