// Package batch converts every graph-description file in a directory into
// an image and removes the sources afterwards.
//
// # Run
//
// [Converter.Run] performs four sequential steps against a single target
// directory:
//
//  1. Remove stale images matching "*.<format>".
//  2. Snapshot the directory listing. Files created later are not visited.
//  3. For each regular file whose name contains the marker (".gv" by
//     default), derive the output name with [OutputName], render it, and
//     print the output name to the converter's writer.
//  4. Remove every file matching "*<marker>", whether or not it rendered.
//
// Rendering is best-effort: failures are recorded in the returned [Report]
// and processing continues. Only a directory that cannot be listed aborts
// a run. Callers that prefer to stop on the first failure and keep their
// sources use [WithStrict].
//
// # Example
//
//	r, _ := render.New(render.KindExec, "dot", "png")
//	c := batch.New("out", r, batch.WithLogger(logger))
//	report, err := c.Run(ctx)
package batch
