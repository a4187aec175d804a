// Package render turns Graphviz graph-description files into images.
//
// # Overview
//
// A [Renderer] converts one source file into one output file and reports
// the outcome as a [Result] instead of failing the caller. The batch
// converter decides what to do with a failed result; the renderer only
// describes it.
//
// Two renderers are provided:
//
//   - [ExecRenderer] runs an external tool (dot by default) as
//     "<tool> -T<format> <src> -o <dst>". Arguments are passed as a list,
//     never through a shell, so file names with spaces or quotes are safe.
//   - [GraphvizRenderer] renders in-process with go-graphviz and needs no
//     binary on PATH.
//
// Use [New] to select one by name:
//
//	r, err := render.New(render.KindExec, "dot", "png")
//	res := r.Render(ctx, "plan.gv", "plan.png")
//	if !res.OK() {
//	    log.Warn("render failed", "err", res.Err, "stderr", res.Stderr)
//	}
//
// # Dependencies
//
// [GraphvizRenderer] uses [github.com/goccy/go-graphviz], which runs the
// Graphviz C library compiled to WebAssembly.
package render
