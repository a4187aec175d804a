package render

import (
	"context"
	"time"

	"github.com/matzehuels/dotsweep/pkg/errors"
)

// Renderer kinds accepted by [New].
const (
	KindExec     = "exec"     // external tool, one process per file
	KindGraphviz = "graphviz" // in-process go-graphviz
)

const (
	// DefaultTool is the external program used by [ExecRenderer].
	DefaultTool = "dot"

	// DefaultFormat is the output format passed as -T<format>.
	DefaultFormat = "png"
)

// Renderer converts a single graph-description file into an image.
type Renderer interface {
	// Name identifies the renderer in logs and cache keys.
	Name() string

	// Format returns the output format, which is also the output file extension.
	Format() string

	// Render converts src into dst. It blocks until the conversion finishes
	// and never panics on bad input; failures are reported in the Result.
	Render(ctx context.Context, src, dst string) Result
}

// Result describes the outcome of rendering one file.
type Result struct {
	Source   string        // graph-description file
	Output   string        // image file the renderer was asked to produce
	Err      error         // nil on success
	Stderr   string        // captured diagnostic output, if any
	Duration time.Duration // wall time spent rendering
	Cached   bool          // output was served from the render cache
}

// OK reports whether the render succeeded.
func (r Result) OK() bool { return r.Err == nil }

// New returns a renderer of the given kind. tool is only used by
// [KindExec]; empty values fall back to [DefaultTool] and [DefaultFormat].
func New(kind, tool, format string) (Renderer, error) {
	if format == "" {
		format = DefaultFormat
	}
	if err := errors.ValidateFormat(format); err != nil {
		return nil, err
	}

	switch kind {
	case KindExec, "":
		if tool == "" {
			tool = DefaultTool
		}
		return NewExecRenderer(tool, format), nil
	case KindGraphviz:
		return NewGraphvizRenderer(format), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown renderer %q (must be %q or %q)", kind, KindExec, KindGraphviz)
	}
}
