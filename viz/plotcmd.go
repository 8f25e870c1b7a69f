package viz

import (
	"context"
	"flag"
	"fmt"
	"os"

	"coocviz/cooc"
	"coocviz/dist"
	"coocviz/render"
)

type PlotFlags struct {
	Infile  string
	Outfile string
	Table   string
	Keep    string
	Stats   bool
	Tail    bool
	TailMin float64
	Jobs    string
	Threads int
}

func GetPlotFlags() PlotFlags {
	var f PlotFlags
	flag.StringVar(&f.Infile, "f", "", "Co-occurrence table to plot (required unless -jobs is given).")
	flag.StringVar(&f.Outfile, "o", "freq.png", "Output image path.")
	flag.StringVar(&f.Table, "table", "", "Also write the frequency table as TSV to this path (.gz ok).")
	flag.StringVar(&f.Keep, "keep", "", "File listing session ids to keep, one per line (.gz ok).")
	flag.BoolVar(&f.Stats, "stats", false, "Print summary statistics of the overlap values.")
	flag.BoolVar(&f.Tail, "tail", false, "Fit a log-log line to the frequency tail and print it.")
	flag.Float64Var(&f.TailMin, "tailmin", 0, "Smallest overlap value included in the tail fit.")
	flag.StringVar(&f.Jobs, "jobs", "", "JSON job list to run instead of -f ('-' for stdin).")
	flag.IntVar(&f.Threads, "t", -1, "Concurrent jobs (default unlimited).")
	flag.Parse()
	return f
}

// RunPlot loads one table, aggregates it, and writes the figure plus any
// requested extras.
func RunPlot(j Job) error {
	h := handle("RunPlot: %w")

	t, e := cooc.Load(j.Inpath)
	if e != nil {
		return h(e)
	}
	if j.Keep != "" {
		keep, e := cooc.ReadSessionListPath(j.Keep)
		if e != nil {
			return h(e)
		}
		t = t.Subset(keep)
	}

	vals, e := dist.Flatten(t.Overlaps())
	if e != nil {
		return h(e)
	}
	d, e := dist.AggregateValues(vals)
	if e != nil {
		return h(e)
	}

	if j.Stats {
		s, e := dist.Summarize(vals)
		if e != nil {
			return h(e)
		}
		fmt.Println(s)
	}
	if j.Tail {
		tf, e := dist.FitTail(d, j.TailMin)
		if e != nil {
			return h(e)
		}
		fmt.Printf("tail fit: slope %v intercept %v r2 %v bins %v\n",
			tf.Slope, tf.Intercept, tf.R2, tf.Bins)
	}
	if j.Table != "" {
		if e := dist.WriteTablePath(j.Table, d); e != nil {
			return h(e)
		}
	}

	return render.Render(d, j.Outpath, render.DefaultConfig())
}

// FullPlot is the coocplot entry point.
func FullPlot() {
	f := GetPlotFlags()

	if f.Jobs != "" {
		jobs, e := ReadJobsPath(f.Jobs)
		Must(e)
		Must(PlotMulti(context.Background(), f.Threads, jobs...))
		return
	}

	if f.Infile == "" {
		fmt.Fprintln(os.Stderr, "argument -f not provided (needed to load cooccurrence data)")
		os.Exit(1)
	}

	Must(RunPlot(Job{
		Inpath:  f.Infile,
		Outpath: f.Outfile,
		Table:   f.Table,
		Keep:    f.Keep,
		Stats:   f.Stats,
		Tail:    f.Tail,
		TailMin: f.TailMin,
	}))
}
