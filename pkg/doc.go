// Package pkg provides the libraries behind dotsweep.
//
// # Overview
//
// dotsweep cleans up after tools that dump Graphviz files into a working
// directory: it renders every graph file to an image, prints the image
// names, and removes the graph files. The pkg directory is organized as:
//
//  1. [batch] - the directory sweep (stale cleanup, render loop, final cleanup)
//  2. [render] - renderers: the external dot tool or in-process go-graphviz
//  3. [cache] - optional content-addressed cache of rendered images
//  4. [observability] - hooks for run, render, and cleanup events
//  5. [errors] - coded errors and input validation
//  6. [buildinfo] - version information injected at build time
//
// # Data Flow
//
//	directory listing
//	       ↓
//	[batch] selects files containing the marker (".gv")
//	       ↓
//	[cache] hit? ──yes──→ write cached image
//	       ↓ no
//	[render] dot -Tpng a.gv -o a.png
//	       ↓
//	remove *.gv
//
// # Quick Start
//
//	r, err := render.New(render.KindExec, "dot", "png")
//	if err != nil {
//	    return err
//	}
//	report, err := batch.New("out", r).Run(ctx)
//
// [batch]: github.com/matzehuels/dotsweep/pkg/batch
// [render]: github.com/matzehuels/dotsweep/pkg/render
// [cache]: github.com/matzehuels/dotsweep/pkg/cache
// [observability]: github.com/matzehuels/dotsweep/pkg/observability
// [errors]: github.com/matzehuels/dotsweep/pkg/errors
// [buildinfo]: github.com/matzehuels/dotsweep/pkg/buildinfo
package pkg
