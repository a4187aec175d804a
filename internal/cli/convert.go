package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/dotsweep/pkg/batch"
	"github.com/matzehuels/dotsweep/pkg/cache"
	"github.com/matzehuels/dotsweep/pkg/observability"
)

// convertFlags holds the command-line flags for the convert command.
// Only flags the user actually set override the config file.
type convertFlags struct {
	config   string        // path to a TOML config file
	marker   string        // substring identifying graph files
	format   string        // output format and extension
	renderer string        // "exec" or "graphviz"
	tool     string        // external rendering program
	layout   string        // go-graphviz layout engine
	strict   bool          // stop at the first failed render and keep sources
	timeout  time.Duration // per-file limit for the external tool
	cache    bool          // reuse images for unchanged graph files
	cacheTTL time.Duration // lifetime of cached images
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert [dir]",
		Short: "Render every graph file in a directory and remove the sources",
		Long: `Convert renders each file whose name contains the marker (".gv" by default)
into an image next to it, printing the image name to stdout as it goes.

Before rendering, images left over from a previous run ("*.png") are removed
from the directory. Afterwards all graph files ("*.gv") are removed, even
those that failed to render, unless --strict is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.config)
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &cfg)
			if len(args) == 1 {
				cfg.Dir = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runConvert(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.config, "config", "c", "", "config file (default ./"+defaultConfigFile+" if present)")
	f.StringVarP(&flags.marker, "marker", "m", "", "substring identifying graph files (default \".gv\")")
	f.StringVarP(&flags.format, "format", "T", "", "output format passed as -T<format> (default \"png\")")
	f.StringVar(&flags.renderer, "renderer", "", "renderer: exec (default), graphviz (in-process)")
	f.StringVar(&flags.tool, "tool", "", "rendering program for the exec renderer (default \"dot\")")
	f.StringVar(&flags.layout, "layout", "", "layout engine for the graphviz renderer (default dot)")
	f.BoolVar(&flags.strict, "strict", false, "stop at the first failed render and keep all graph files")
	f.DurationVar(&flags.timeout, "timeout", 0, "per-file timeout for the rendering tool (0 = none)")
	f.BoolVar(&flags.cache, "cache", false, "reuse images for graph files rendered before")
	f.DurationVar(&flags.cacheTTL, "cache-ttl", 0, "lifetime of cached images (0 = until cleared)")

	return cmd
}

// apply copies every flag the user set onto cfg.
func (f *convertFlags) apply(fs *pflag.FlagSet, cfg *Config) {
	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "marker":
			cfg.Marker = f.marker
		case "format":
			cfg.Format = f.format
		case "renderer":
			cfg.Renderer = f.renderer
		case "tool":
			cfg.Tool = f.tool
		case "layout":
			cfg.Layout = f.layout
		case "strict":
			cfg.Strict = f.strict
		case "timeout":
			cfg.Timeout.Duration = f.timeout
		case "cache":
			cfg.Cache = f.cache
		case "cache-ttl":
			cfg.CacheTTL.Duration = f.cacheTTL
		}
	})
}

// runConvert builds the renderer and converter described by cfg and runs it.
// Image names go to stdout; the summary goes to stderr.
func runConvert(ctx context.Context, cfg Config, stdout, stderr io.Writer) error {
	logger := loggerFromContext(ctx).With("run", uuid.NewString()[:8])

	r, err := cfg.newRenderer()
	if err != nil {
		return err
	}
	if closer, ok := r.(io.Closer); ok {
		defer closer.Close()
	}

	opts := []batch.Option{
		batch.WithMarker(cfg.Marker),
		batch.WithOutput(stdout),
		batch.WithLogger(logger),
		batch.WithStrict(cfg.Strict),
	}
	if cfg.Cache {
		ch, err := openCache()
		if err != nil {
			logger.Warn("Render cache unavailable, continuing without it", "err", err)
		} else {
			defer ch.Close()
			opts = append(opts, batch.WithCache(ch, cfg.CacheTTL.Duration))
		}
	}

	stats := newRenderStats()
	observability.SetConvertHooks(stats)
	defer observability.Reset()

	logger.Info("Converting graphs", "dir", cfg.Dir, "renderer", r.Name(), "format", r.Format())
	prog := newProgress(logger)

	report, err := batch.New(cfg.Dir, r, opts...).Run(ctx)
	stats.logTo(logger)
	if report != nil && (err == nil || len(report.Results) > 0) {
		printSummary(stderr, report)
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Converted %d of %d graph(s)", report.Rendered(), len(report.Results)))
	return nil
}

// openCache opens the file cache in the user's cache directory.
func openCache() (*cache.FileCache, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}
