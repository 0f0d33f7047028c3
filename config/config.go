// Package config loads nojs-ssr configuration from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vcrobe/nojs-ssr/hydrate"
	"github.com/vcrobe/nojs-ssr/render"
)

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level nojs-ssr configuration.
type Config struct {
	Addr      string         `yaml:"addr"`
	Component string         `yaml:"component"`
	Document  DocumentConfig `yaml:"document"`
	Hydrate   HydrateConfig  `yaml:"hydrate"`
	Log       LogConfig      `yaml:"log"`
}

// DocumentConfig controls the document shell.
type DocumentConfig struct {
	Title      string `yaml:"title"`
	StylingURL string `yaml:"styling_url"`
	RootID     string `yaml:"root_id"`
	Lang       string `yaml:"lang"`
}

// HydrateConfig controls handler recovery.
type HydrateConfig struct {
	Strategy string `yaml:"strategy"`  // source | declared
	Tag      string `yaml:"tag"`       // element kind paired with recovered handlers
	IDPrefix string `yaml:"id_prefix"` // prefix of generated element ids
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // json | text
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the YAML file at path (skipped when path is empty), fills in
// defaults, applies environment overrides read through getenv and
// validates the result.
func Load(path string, getenv func(string) string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if getenv != nil {
		cfg.applyEnv(getenv)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	opts := render.DefaultOptions()
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Component == "" {
		c.Component = "counter"
	}
	if c.Document.Title == "" {
		c.Document.Title = opts.Title
	}
	if c.Document.StylingURL == "" {
		c.Document.StylingURL = opts.StylingURL
	}
	if c.Document.RootID == "" {
		c.Document.RootID = opts.RootID
	}
	if c.Hydrate.Strategy == "" {
		c.Hydrate.Strategy = string(opts.Strategy)
	}
	if c.Hydrate.Tag == "" {
		c.Hydrate.Tag = opts.Tag
	}
	if c.Hydrate.IDPrefix == "" {
		c.Hydrate.IDPrefix = hydrate.DefaultIDPrefix
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

func (c *Config) applyEnv(getenv func(string) string) {
	if port := getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if addr := getenv("NOJS_ADDR"); addr != "" {
		c.Addr = addr
	}
	if component := getenv("NOJS_COMPONENT"); component != "" {
		c.Component = component
	}
	if strategy := getenv("NOJS_STRATEGY"); strategy != "" {
		c.Hydrate.Strategy = strategy
	}
	if level := getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if format := getenv("LOG_FORMAT"); format != "" {
		c.Log.Format = format
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := render.ParseStrategy(c.Hydrate.Strategy); err != nil {
		return fmt.Errorf("%w: hydrate.strategy: %v", ErrInvalidConfig, err)
	}
	if strings.ContainsAny(c.Hydrate.Tag, " \t\n<>/\"'=") {
		return fmt.Errorf("%w: hydrate.tag %q is not a tag name", ErrInvalidConfig, c.Hydrate.Tag)
	}
	if strings.ContainsAny(c.Hydrate.IDPrefix, " \t\n\"'<>&") {
		return fmt.Errorf("%w: hydrate.id_prefix %q is not usable in an id attribute", ErrInvalidConfig, c.Hydrate.IDPrefix)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log.format %q (want json or text)", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// RenderOptions returns the render pipeline options described by c.
func (c *Config) RenderOptions() render.Options {
	// Validate has already accepted the strategy.
	strategy, _ := render.ParseStrategy(c.Hydrate.Strategy)
	return render.Options{
		Title:      c.Document.Title,
		StylingURL: c.Document.StylingURL,
		RootID:     c.Document.RootID,
		Lang:       c.Document.Lang,
		Tag:        c.Hydrate.Tag,
		Strategy:   strategy,
	}
}

// NewLogger builds the process logger writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := parseLevel(c.Log.Level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.Log.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
}
