package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/SuperMag99/FootPrintX/internal/dork"
	"github.com/SuperMag99/FootPrintX/internal/searchurl"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type AIConfig struct {
	Provider string `yaml:"provider"` // "gemini", "claude" or "openai"
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// EngineConfig overrides the search URL template per engine. Each template
// needs exactly one %s for the escaped query.
type EngineConfig struct {
	Google string `yaml:"google,omitempty"`
	Bing   string `yaml:"bing,omitempty"`
	Yandex string `yaml:"yandex,omitempty"`
}

// Defaults are the starting values of the generator forms and CLI flags.
type Defaults struct {
	Variations    bool   `yaml:"variations"`
	Transliterate bool   `yaml:"transliterate"`
	Format        string `yaml:"format"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

type Config struct {
	CheckUpdates bool         `yaml:"check_updates"`
	Defaults     Defaults     `yaml:"defaults"`
	Engines      EngineConfig `yaml:"engines"`
	Log          LogConfig    `yaml:"log"`
	AI           *AIConfig    `yaml:"ai,omitempty"`
}

// AIEnabled returns true if AI is configured with a usable API key.
func (c *Config) AIEnabled() bool {
	return c.AI != nil && c.AIKey() != ""
}

// AIKey returns the resolved API key: config first, then FOOTPRINTX_AI_KEY,
// then API_KEY.
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	if key := os.Getenv("FOOTPRINTX_AI_KEY"); key != "" {
		return key
	}
	return os.Getenv("API_KEY")
}

// SearchTemplates returns the built-in engine templates with config overrides applied.
func (c *Config) SearchTemplates() searchurl.Templates {
	return searchurl.Defaults().Merge(searchurl.Templates{
		dork.Google: c.Engines.Google,
		dork.Bing:   c.Engines.Bing,
		dork.Yandex: c.Engines.Yandex,
	})
}

// PersonOptions returns the configured starting options for person dorks.
func (c *Config) PersonOptions() dork.PersonOptions {
	return dork.PersonOptions{
		Variations:    c.Defaults.Variations,
		Transliterate: c.Defaults.Transliterate,
	}
}

// GetFormat returns the default output format, defaulting to "text".
func (c *Config) GetFormat() string {
	if c.Defaults.Format == "" {
		return "text"
	}
	return c.Defaults.Format
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "footprintx", "config.yaml")
}

// LogPath returns the configured log file, or one under the XDG state dir.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(xdg.StateHome, "footprintx", "footprintx.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the default path) over the embedded
// defaults. A missing file is created from the defaults on first run.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: embedded defaults still apply if the write fails.
			_ = writeDefaults(path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

var (
	validProviders = map[string]bool{"gemini": true, "claude": true, "openai": true}
	validFormats   = map[string]bool{"text": true, "json": true, "yaml": true, "table": true}
	validLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

func validate(cfg *Config) error {
	if cfg.AI != nil && cfg.AI.Provider != "" && !validProviders[cfg.AI.Provider] {
		return fmt.Errorf("ai: unknown provider %q (valid: gemini, claude, openai)", cfg.AI.Provider)
	}
	for name, tmpl := range map[string]string{
		"google": cfg.Engines.Google,
		"bing":   cfg.Engines.Bing,
		"yandex": cfg.Engines.Yandex,
	} {
		if tmpl == "" {
			continue
		}
		if err := searchurl.Validate(tmpl); err != nil {
			return fmt.Errorf("engines.%s: %w", name, err)
		}
	}
	if cfg.Defaults.Format != "" && !validFormats[cfg.Defaults.Format] {
		return fmt.Errorf("defaults.format: unknown format %q (valid: text, json, yaml, table)", cfg.Defaults.Format)
	}
	if cfg.Log.Level != "" && !validLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level: unknown level %q (valid: debug, info, warn, error)", cfg.Log.Level)
	}
	return nil
}
