package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dotsweep/pkg/errors"
)

// GraphvizRenderer renders in-process with go-graphviz. The Graphviz
// instance is created on first use and reused until Close.
type GraphvizRenderer struct {
	// Layout selects the layout engine (dot, neato, circo, ...).
	// Empty means dot.
	Layout string

	format string
	gv     *graphviz.Graphviz
}

// NewGraphvizRenderer creates an in-process renderer for format.
func NewGraphvizRenderer(format string) *GraphvizRenderer {
	return &GraphvizRenderer{format: format}
}

// Name returns "graphviz", qualified by the layout engine when it is not
// dot so that cached images never cross layouts.
func (r *GraphvizRenderer) Name() string {
	if r.Layout == "" || r.Layout == "dot" {
		return KindGraphviz
	}
	return KindGraphviz + "/" + r.Layout
}

// Format returns the output format.
func (r *GraphvizRenderer) Format() string { return r.format }

// Render parses src as DOT and writes the rendered image to dst.
func (r *GraphvizRenderer) Render(ctx context.Context, src, dst string) Result {
	start := time.Now()
	res := Result{Source: src, Output: dst}

	data, err := r.render(ctx, src)
	if err == nil {
		err = os.WriteFile(dst, data, 0o644)
	}
	if err != nil {
		res.Err = errors.Wrap(errors.ErrCodeRenderFailed, err, "graphviz %s", src)
	}
	res.Duration = time.Since(start)
	return res
}

func (r *GraphvizRenderer) render(ctx context.Context, src string) ([]byte, error) {
	dot, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}

	gv, err := r.instance(ctx)
	if err != nil {
		return nil, err
	}

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.Format(r.format), &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *GraphvizRenderer) instance(ctx context.Context) (*graphviz.Graphviz, error) {
	if r.gv != nil {
		return r.gv, nil
	}
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	if r.Layout != "" {
		gv.SetLayout(graphviz.Layout(r.Layout))
	}
	r.gv = gv
	return gv, nil
}

// Close releases the Graphviz instance, if one was created.
func (r *GraphvizRenderer) Close() error {
	if r.gv == nil {
		return nil
	}
	err := r.gv.Close()
	r.gv = nil
	return err
}

var _ Renderer = (*GraphvizRenderer)(nil)
