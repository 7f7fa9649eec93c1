package cli

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/trovekit/trove/pkg/errors"
	"github.com/trovekit/trove/pkg/upstream"
)

// defaultOutput is where generate writes the table, relative to the
// repository root.
const defaultOutput = "pkg/trove/table_gen.go"

const defaultCacheTTL = 24 * time.Hour

// config holds the trovegen settings, optionally loaded from a trovegen.toml
// file. Flags override file values; file values override defaults.
type config struct {
	ListURL    string   `toml:"list_url"`    // classifier list endpoint
	VersionURL string   `toml:"version_url"` // trove-classifiers JSON endpoint
	Output     string   `toml:"output"`      // generated file path
	CacheDir   string   `toml:"cache_dir"`   // "" = ~/.cache/trovegen
	CacheTTL   duration `toml:"cache_ttl"`   // e.g. "24h"
}

// duration lets TOML carry values like "24h" or "90m".
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

func defaultConfig() config {
	return config{
		ListURL:    upstream.DefaultListURL,
		VersionURL: upstream.DefaultVersionURL,
		Output:     defaultOutput,
		CacheTTL:   duration(defaultCacheTTL),
	}
}

// loadConfig reads a TOML config file on top of the defaults. An empty path
// returns the defaults; a missing file at an explicit path is an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if cfg.ListURL == "" || cfg.VersionURL == "" {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "upstream URLs cannot be empty")
	}
	if cfg.Output == "" {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "output path cannot be empty")
	}
	return cfg, nil
}
