// Package config loads CLI and repl settings from an optional TOML file
// with environment-variable overrides.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/xyproto/env/v2"
)

const (
	defaultPrompt   = "gint> "
	defaultMaxDepth = 512
)

// Config controls the CLI and repl. Precedence, lowest to highest:
// built-in defaults, config file, environment, command-line flags
// (applied by the caller).
type Config struct {
	Prompt   string `toml:"prompt"`
	Color    bool   `toml:"color"`
	MaxDepth int    `toml:"max_depth"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Prompt:   defaultPrompt,
		Color:    true,
		MaxDepth: defaultMaxDepth,
	}
}

// Path returns the config file location: $GINT_CONFIG if set, otherwise
// gint/config.toml under the user configuration directory.
func Path() string {
	if p := env.Str("GINT_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gint", "config.toml")
}

// Load reads the configuration file at path and applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Default(), err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values from the environment: GINT_PROMPT,
// GINT_MAXDEPTH, and the conventional NO_COLOR switch.
func (c *Config) applyEnv() {
	if p := env.Str("GINT_PROMPT"); p != "" {
		c.Prompt = p
	}
	if env.Has("GINT_MAXDEPTH") {
		c.MaxDepth = env.Int("GINT_MAXDEPTH", c.MaxDepth)
	}
	if env.Has("NO_COLOR") {
		c.Color = false
	}
}
