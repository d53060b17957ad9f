package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"quoter/internal/diag"
	"quoter/internal/quote"
)

// Config mirrors quoter.toml. Every key is optional; flags given on the
// command line win over the file.
type Config struct {
	Quote  QuoteConfig  `toml:"quote"`
	Parse  ParseConfig  `toml:"parse"`
	Driver DriverConfig `toml:"driver"`
}

type QuoteConfig struct {
	Mode     string `toml:"mode"`
	Quotes   string `toml:"quotes"`
	MaxDepth int    `toml:"max_depth"`
	Indent   int    `toml:"indent"`
}

type ParseConfig struct {
	Defines []string `toml:"defines"`
}

type DriverConfig struct {
	Jobs  int   `toml:"jobs"`
	Cache *bool `toml:"cache"` // nil — по умолчанию включён
}

// Manifest is a loaded quoter.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// LoadConfig decodes quoter.toml and validates the values it sets.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s %s: failed to parse TOML: %w", diag.IOConfigError.ID(), path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s %s: unknown keys: %s", diag.IOConfigError.ID(), path, strings.Join(keys, ", "))
	}
	if _, err := cfg.Settings(); err != nil {
		return Config{}, fmt.Errorf("%s %s: %w", diag.IOConfigError.ID(), path, err)
	}
	if cfg.Quote.MaxDepth < 0 || cfg.Quote.Indent < 0 || cfg.Driver.Jobs < 0 {
		return Config{}, fmt.Errorf("%s %s: max_depth, indent and jobs must not be negative", diag.IOConfigError.ID(), path)
	}
	return cfg, nil
}

// LoadManifest finds quoter.toml above startDir and loads it. ok is false
// when there is none.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// Settings converts the [quote] table; zero values keep the defaults.
func (c Config) Settings() (quote.Settings, error) {
	s := quote.DefaultSettings()
	var err error
	if s.Mode, err = quote.ParseTriviaMode(c.Quote.Mode); err != nil {
		return s, err
	}
	if s.Quotes, err = quote.ParseQuoteStyle(c.Quote.Quotes); err != nil {
		return s, err
	}
	if c.Quote.MaxDepth > 0 {
		s.MaxDepth = c.Quote.MaxDepth
	}
	if c.Quote.Indent > 0 {
		s.Indent = c.Quote.Indent
	}
	return s, nil
}

// CacheEnabled reports the [driver].cache value, true when unset.
func (c Config) CacheEnabled() bool {
	return c.Driver.Cache == nil || *c.Driver.Cache
}
