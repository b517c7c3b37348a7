// Package config holds the dashboard configuration and its loading order:
// defaults, then an optional YAML file, then FITDASH_-prefixed env vars.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SamplesDir holds the bundled .fit sample files offered on the landing page.
	SamplesDir string `koanf:"samples_dir"`

	// StaticDir is served under /static/.
	StaticDir string `koanf:"static_dir"`

	// LogDir receives the append-only app log.
	LogDir string `koanf:"log_dir"`

	// HistogramBins sets the bin count of the distribution chart.
	HistogramBins int `koanf:"histogram_bins"`

	// MaxUploadBytes caps the size of an uploaded FIT file.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// OpenBrowser opens the dashboard in the default browser on startup.
	OpenBrowser bool `koanf:"open_browser"`
}

func Default() *Config {
	return &Config{
		Addr:           ":8080",
		SamplesDir:     "samples",
		StaticDir:      "static",
		LogDir:         "logs",
		HistogramBins:  20,
		MaxUploadBytes: 32 << 20,
		OpenBrowser:    true,
	}
}

// Load layers an optional YAML file (FITDASH_CONFIG path) and FITDASH_ env
// vars over the defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("FITDASH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// FITDASH_HISTOGRAM_BINS -> histogram_bins and so on.
	envProvider := env.Provider("FITDASH_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "fitdash_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.HistogramBins < 1 {
		return nil, errors.New("histogram_bins must be at least 1")
	}
	return &cfg, nil
}
