package viz

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/jgbaldwinbrown/csvh"
	"golang.org/x/sync/errgroup"
)

// Job is one plotting run: input table to output image, plus the
// optional extras.
type Job struct {
	Inpath  string
	Outpath string
	Table   string
	Keep    string
	Stats   bool
	Tail    bool
	TailMin float64
}

// ReadJobs decodes a stream of Job JSON objects.
func ReadJobs(r io.Reader) ([]Job, error) {
	h := handle("ReadJobs: %w")

	dec := json.NewDecoder(r)
	var jobs []Job
	var j Job
	for e := dec.Decode(&j); e != io.EOF; e = dec.Decode(&j) {
		if e != nil {
			return nil, h(e)
		}
		jobs = append(jobs, j)
		j = Job{}
	}
	return jobs, nil
}

// ReadJobsPath reads a job list from a possibly gzipped path, or from
// stdin when path is "-".
func ReadJobsPath(path string) ([]Job, error) {
	if path == "-" {
		return ReadJobs(os.Stdin)
	}
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, e
	}
	defer r.Close()

	return ReadJobs(r)
}

// PlotMulti runs jobs concurrently, at most threads at a time when
// threads > 0.
func PlotMulti(ctx context.Context, threads int, jobs ...Job) error {
	g, _ := errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			return RunPlot(job)
		})
	}
	return g.Wait()
}
