// Package config loads nitro tool settings from an optional nitro.toml.
// Command-line flags override file values and defaults fill the rest.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nitro-lang/nitro/internal/logging"
	nitroerrors "github.com/nitro-lang/nitro/pkgs/errors"
	"github.com/nitro-lang/nitro/pkgs/lexer"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = "nitro.toml"

// Defaults
const (
	DefaultLogLevel = "warn"
	DefaultFormat   = "tree"
)

var (
	logLevels = []string{"debug", "info", "warn", "error"}
	formats   = []string{"tree", "yaml"}
)

// Config holds the settings shared by all nitro commands. Zero fields are
// unset.
type Config struct {
	TabWidth int    `toml:"tab_width"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	Format   string `toml:"format"`
}

// Load reads the TOML file at path. An empty path tries DefaultFile and
// yields an empty Config when it does not exist; an explicit path must exist.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, nitroerrors.Wrap(nitroerrors.ErrFileNotFound, fmt.Sprintf("config file '%s' not found", path), err).
			WithContext("path", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, nitroerrors.Wrap(nitroerrors.ErrConfig, fmt.Sprintf("failed to parse '%s'", path), err).
			WithContext("path", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, nitroerrors.New(nitroerrors.ErrConfig, fmt.Sprintf("unknown keys in '%s': %s", path, strings.Join(keys, ", "))).
			WithContext("path", path)
	}

	return &cfg, nil
}

// Resolve loads the file at path, fills its unset fields with defaults,
// lets the set fields of flags override it and validates the result. Keys
// named in explicit are taken from flags even when zero.
func Resolve(path string, flags Config, explicit ...string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	cfg.Merge(flags, explicit...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge copies every set field of other into c, along with the fields whose
// TOML keys are listed in explicit
func (c *Config) Merge(other Config, explicit ...string) {
	set := func(key string, zero bool) bool {
		return !zero || slices.Contains(explicit, key)
	}

	if set("tab_width", other.TabWidth == 0) {
		c.TabWidth = other.TabWidth
	}
	if set("log_level", other.LogLevel == "") {
		c.LogLevel = other.LogLevel
	}
	if set("log_file", other.LogFile == "") {
		c.LogFile = other.LogFile
	}
	if set("format", other.Format == "") {
		c.Format = other.Format
	}
}

// ApplyDefaults fills the unset fields
func (c *Config) ApplyDefaults() {
	if c.TabWidth == 0 {
		c.TabWidth = lexer.DefaultTabWidth
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
}

// Validate checks the resolved values
func (c *Config) Validate() error {
	if c.TabWidth < 1 {
		return nitroerrors.New(nitroerrors.ErrConfig, fmt.Sprintf("tab_width must be positive, got %d", c.TabWidth))
	}
	// Spelling variants the logger understands are accepted too
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return nitroerrors.New(nitroerrors.ErrConfig,
			fmt.Sprintf("log_level must be one of %s, got '%s'", strings.Join(logLevels, ", "), c.LogLevel))
	}
	if !slices.Contains(formats, c.Format) {
		return nitroerrors.New(nitroerrors.ErrConfig,
			fmt.Sprintf("format must be one of %s, got '%s'", strings.Join(formats, ", "), c.Format))
	}
	return nil
}
