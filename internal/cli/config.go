package cli

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dotsweep/pkg/batch"
	"github.com/matzehuels/dotsweep/pkg/errors"
	"github.com/matzehuels/dotsweep/pkg/render"
)

// Config holds the settings for a convert run. Values come from the
// defaults, then an optional TOML file, then command-line flags.
//
//	dir      = "out"
//	marker   = ".gv"
//	format   = "png"
//	renderer = "exec"   # or "graphviz"
//	tool     = "dot"
//	timeout  = "30s"
//	cache    = true
type Config struct {
	Dir      string   `toml:"dir"`
	Marker   string   `toml:"marker"`
	Format   string   `toml:"format"`
	Renderer string   `toml:"renderer"`
	Tool     string   `toml:"tool"`
	Layout   string   `toml:"layout"`
	Strict   bool     `toml:"strict"`
	Timeout  Duration `toml:"timeout"`
	Cache    bool     `toml:"cache"`
	CacheTTL Duration `toml:"cache_ttl"`
}

// Duration is a time.Duration that decodes from strings like "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func defaultConfig() Config {
	return Config{
		Dir:      ".",
		Marker:   batch.DefaultMarker,
		Format:   render.DefaultFormat,
		Renderer: render.KindExec,
		Tool:     render.DefaultTool,
	}
}

// loadConfig reads path over the defaults. An empty path means
// defaultConfigFile in the working directory, which may be absent.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown key(s) in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks that the settings describe a run that cannot destroy
// its own output.
func (c Config) Validate() error {
	if c.Dir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "directory must not be empty")
	}
	if err := errors.ValidateMarker(c.Marker); err != nil {
		return err
	}
	if err := errors.ValidateFormat(c.Format); err != nil {
		return err
	}
	if c.Renderer != render.KindExec && c.Renderer != render.KindGraphviz {
		return errors.New(errors.ErrCodeInvalidInput, "unknown renderer %q (must be %q or %q)", c.Renderer, render.KindExec, render.KindGraphviz)
	}
	if c.Renderer == render.KindExec && c.Tool == "" {
		return errors.New(errors.ErrCodeInvalidInput, "tool must not be empty")
	}
	// Outputs whose names contain the marker would be swept up with the sources.
	if strings.Contains("."+c.Format, c.Marker) {
		return errors.New(errors.ErrCodeInvalidInput, "format %q would produce files matching marker %q", c.Format, c.Marker)
	}
	if c.Timeout.Duration < 0 || c.CacheTTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "durations must not be negative")
	}
	return nil
}

// newRenderer builds the renderer described by c.
func (c Config) newRenderer() (render.Renderer, error) {
	r, err := render.New(c.Renderer, c.Tool, c.Format)
	if err != nil {
		return nil, err
	}
	switch r := r.(type) {
	case *render.ExecRenderer:
		r.Timeout = c.Timeout.Duration
	case *render.GraphvizRenderer:
		r.Layout = c.Layout
	}
	return r, nil
}
