package render

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/dotsweep/pkg/errors"
)

// executor abstracts process execution so tests can stand in for dot.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stderr io.Writer) error
}

type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(ctx context.Context, name string, args []string, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = stderr
	return cmd.Run()
}

// ExecRenderer renders by running an external Graphviz-compatible tool.
type ExecRenderer struct {
	// Tool is the program name or path, e.g. "dot".
	Tool string

	// Timeout bounds a single invocation. Zero means wait indefinitely.
	Timeout time.Duration

	format string
	exec   executor
}

// NewExecRenderer creates a renderer that runs tool with -T<format>.
func NewExecRenderer(tool, format string) *ExecRenderer {
	return &ExecRenderer{Tool: tool, format: format, exec: osExecutor{}}
}

// Name returns the tool name.
func (r *ExecRenderer) Name() string { return r.Tool }

// Format returns the output format.
func (r *ExecRenderer) Format() string { return r.format }

// Args returns the argument list passed to the tool for one file.
func (r *ExecRenderer) Args(src, dst string) []string {
	return []string{"-T" + r.format, operand(src), "-o", operand(dst)}
}

// operand keeps a file name that starts with "-" from being parsed as a
// flag. filepath.Join(".", "-x.gv") yields a bare "-x.gv".
func operand(path string) string {
	if strings.HasPrefix(path, "-") {
		return "." + string(filepath.Separator) + path
	}
	return path
}

// Render runs "<tool> -T<format> src -o dst" and waits for it to exit.
// A non-zero exit, a missing tool, or a timeout is reported in the Result
// together with whatever the tool wrote to stderr.
func (r *ExecRenderer) Render(ctx context.Context, src, dst string) Result {
	start := time.Now()
	res := Result{Source: src, Output: dst}

	path, err := r.exec.LookPath(r.Tool)
	if err != nil {
		res.Err = errors.Wrap(errors.ErrCodeToolNotFound, err, "rendering tool %q", r.Tool)
		res.Duration = time.Since(start)
		return res
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	err = r.exec.Run(ctx, path, r.Args(src, dst), &stderr)
	res.Duration = time.Since(start)
	res.Stderr = strings.TrimSpace(stderr.String())

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		res.Err = errors.Wrap(errors.ErrCodeRenderFailed, err, "%s %s", r.Tool, src)
	}
	return res
}

var _ Renderer = (*ExecRenderer)(nil)
