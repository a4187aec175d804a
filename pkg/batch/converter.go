package batch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotsweep/pkg/cache"
	"github.com/matzehuels/dotsweep/pkg/errors"
	"github.com/matzehuels/dotsweep/pkg/observability"
	"github.com/matzehuels/dotsweep/pkg/render"
)

// Converter renders the graph-description files of one directory.
// A Converter is not safe for concurrent use.
type Converter struct {
	dir      string
	renderer render.Renderer
	marker   string
	out      io.Writer
	logger   *log.Logger
	cache    cache.Cache
	cacheTTL time.Duration
	cacheOn  bool
	strict   bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithMarker sets the substring that identifies graph-description files.
// Empty values are ignored.
func WithMarker(marker string) Option {
	return func(c *Converter) {
		if marker != "" {
			c.marker = marker
		}
	}
}

// WithOutput sets where output file names are printed (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *Converter) { c.out = w }
}

// WithLogger sets the logger for diagnostics (default log.Default()).
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCache enables the render cache. Images are stored for ttl; zero
// keeps them until the cache is cleared.
func WithCache(ch cache.Cache, ttl time.Duration) Option {
	return func(c *Converter) {
		if ch != nil {
			c.cache, c.cacheTTL, c.cacheOn = ch, ttl, true
		}
	}
}

// WithStrict makes Run stop at the first failed render. The final cleanup
// is skipped so the sources stay on disk.
func WithStrict(strict bool) Option {
	return func(c *Converter) { c.strict = strict }
}

// New creates a Converter for dir using renderer r.
func New(dir string, r render.Renderer, opts ...Option) *Converter {
	c := &Converter{
		dir:      dir,
		renderer: r,
		marker:   DefaultMarker,
		out:      os.Stdout,
		logger:   log.Default(),
		cache:    cache.NewNullCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the target directory.
func (c *Converter) Dir() string { return c.dir }

// Run converts every graph-description file in the target directory.
//
// The returned error is non-nil only when the directory cannot be listed,
// the context is cancelled, or a render fails in strict mode. The report is
// always returned and reflects the work done before any error.
func (c *Converter) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	hooks := observability.Convert()
	hooks.OnRunStart(ctx, c.dir)

	report := &Report{Dir: c.dir}
	err := c.run(ctx, report)
	report.Duration = time.Since(start)

	hooks.OnRunComplete(ctx, c.dir, report.Rendered(), report.Failed(), report.Duration, err)
	return report, err
}

func (c *Converter) run(ctx context.Context, report *Report) error {
	format := c.renderer.Format()

	stale, err := c.removeMatching(ctx, "."+format)
	report.StaleRemoved = stale
	if err != nil {
		return err
	}

	entries, err := readDir(c.dir)
	if err != nil {
		return err
	}
	c.logger.Debug("Listed directory", "dir", c.dir, "entries", len(entries))

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.IsDir() {
			continue
		}
		src, ok := newSource(e.Name(), c.marker, format)
		if !ok {
			continue
		}

		res := c.convert(ctx, src)
		report.Results = append(report.Results, res)
		fmt.Fprintln(c.out, src.Output)

		if res.OK() {
			c.logger.Debug("Rendered", "file", src.Name, "output", src.Output, "cached", res.Cached, "took", res.Duration.Round(time.Millisecond))
			continue
		}
		c.logger.Warn("Render failed", "file", src.Name, "err", errors.UserMessage(res.Err), "stderr", res.Stderr)
		if c.strict {
			return errors.Wrap(errors.ErrCodeRenderFailed, res.Err, "stopped at %s", src.Name)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	removed, err := c.removeMatching(ctx, c.marker)
	report.SourcesRemoved = removed
	return err
}

// convert renders one source, consulting the cache first when enabled.
func (c *Converter) convert(ctx context.Context, src Source) render.Result {
	srcPath := filepath.Join(c.dir, src.Name)
	dstPath := filepath.Join(c.dir, src.Output)

	key := c.cacheKey(srcPath)
	if key != "" {
		if res, ok := c.fromCache(ctx, key, srcPath, dstPath); ok {
			observability.Convert().OnRender(ctx, srcPath, dstPath, true, res.Duration, nil)
			return res
		}
	}

	res := c.renderer.Render(ctx, srcPath, dstPath)
	if res.OK() && key != "" {
		c.store(ctx, key, dstPath)
	}
	observability.Convert().OnRender(ctx, srcPath, dstPath, false, res.Duration, res.Err)
	return res
}

func (c *Converter) cacheKey(srcPath string) string {
	if !c.cacheOn {
		return ""
	}
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return ""
	}
	return cache.RenderKey(c.renderer.Format(), c.renderer.Name(), data)
}

func (c *Converter) fromCache(ctx context.Context, key, srcPath, dstPath string) (render.Result, bool) {
	start := time.Now()
	img, hit, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Debug("Cache read failed", "err", err)
		return render.Result{}, false
	}
	if !hit {
		return render.Result{}, false
	}
	if err := os.WriteFile(dstPath, img, 0o644); err != nil {
		c.logger.Debug("Cache write-out failed", "output", dstPath, "err", err)
		return render.Result{}, false
	}
	return render.Result{
		Source:   srcPath,
		Output:   dstPath,
		Duration: time.Since(start),
		Cached:   true,
	}, true
}

func (c *Converter) store(ctx context.Context, key, dstPath string) {
	img, err := os.ReadFile(dstPath)
	if err != nil {
		c.logger.Debug("Rendered output unreadable, not caching", "output", dstPath, "err", err)
		return
	}
	if err := c.cache.Set(ctx, key, img, c.cacheTTL); err != nil {
		c.logger.Debug("Cache store failed", "err", err)
	}
}

// removeMatching deletes regular files in the target directory whose name
// ends with suffix. Individual removal failures are logged and skipped;
// only a listing failure is returned.
func (c *Converter) removeMatching(ctx context.Context, suffix string) ([]string, error) {
	entries, err := readDir(c.dir)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		path := filepath.Join(c.dir, e.Name())
		if err := os.Remove(path); err != nil {
			c.logger.Warn("Could not remove file", "file", path, "err", err)
			continue
		}
		removed = append(removed, e.Name())
	}

	pattern := "*" + suffix
	c.logger.Debug("Cleaned up", "pattern", pattern, "removed", len(removed))
	observability.Convert().OnCleanup(ctx, pattern, len(removed))
	return removed, nil
}

// readDir lists dir in lexical order, mapping failures to coded errors.
func readDir(dir string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err == nil {
		return entries, nil
	}
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeDirNotFound, err, "directory %s", dir)
	}
	return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "list %s", dir)
}
