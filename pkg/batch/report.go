package batch

import (
	"time"

	"github.com/matzehuels/dotsweep/pkg/render"
)

// Report summarizes one Run.
type Report struct {
	Dir            string
	StaleRemoved   []string        // images deleted before rendering
	Results        []render.Result // one per source, in listing order
	SourcesRemoved []string        // graph-description files deleted afterwards
	Duration       time.Duration
}

// Rendered returns the number of sources that produced an image,
// including cache hits.
func (r *Report) Rendered() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of sources whose render failed.
func (r *Report) Failed() int {
	return len(r.Results) - r.Rendered()
}

// Cached returns the number of images served from the render cache.
func (r *Report) Cached() int {
	n := 0
	for _, res := range r.Results {
		if res.Cached {
			n++
		}
	}
	return n
}

// Failures returns the failed results.
func (r *Report) Failures() []render.Result {
	var out []render.Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}
