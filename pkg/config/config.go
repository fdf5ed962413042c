// Package config holds runtime settings for the interpreter and loads them
// from TOML.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EnvVar names a config file used when --config is not given.
const EnvVar = "KHWARIZMI_CONFIG"

// Config holds all parameters for a program run.
type Config struct {
	UnassignedPlaceholder string `toml:"unassigned_placeholder"`
	SymbolicLabel         string `toml:"symbolic_label"`
	MaxFreeVars           int    `toml:"max_free_vars"`
	InputPrompt           string `toml:"input_prompt"`
	LogLevel              string `toml:"log_level"`
	LogFormat             string `toml:"log_format"` // "text" or "json"
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UnassignedPlaceholder: "<unassigned>",
		SymbolicLabel:         "eq",
		MaxFreeVars:           2,
		InputPrompt:           "> ",
		LogLevel:              "warn",
		LogFormat:             "text",
	}
}

// Load overlays the TOML file at path onto cfg. Keys absent from the file
// keep their current values.
func Load(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return nil
}

// Resolve returns the defaults overlaid with the file named by path, or by
// $KHWARIZMI_CONFIG when path is empty. A missing file named by the
// environment is skipped; a missing file named by path is an error.
func Resolve(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(EnvVar)
		if path == "" {
			return cfg, nil
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			logrus.Debugf("config file %s from $%s does not exist, using defaults", path, EnvVar)
			return cfg, nil
		}
	}
	if err := Load(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var logFormats = map[string]bool{"text": true, "json": true}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, errors.Errorf("log_level: %q is not a valid level", c.LogLevel))
	}
	if !logFormats[c.LogFormat] {
		result = multierror.Append(result, errors.Errorf("log_format: %q must be text or json", c.LogFormat))
	}
	if c.MaxFreeVars < 1 {
		result = multierror.Append(result, errors.Errorf("max_free_vars: %d must be at least 1", c.MaxFreeVars))
	}
	if c.SymbolicLabel == "" {
		result = multierror.Append(result, errors.New("symbolic_label: must not be empty"))
	}
	return result.ErrorOrNil()
}

// Formatter returns the logrus formatter named by LogFormat.
func (c Config) Formatter() logrus.Formatter {
	if c.LogFormat == "json" {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{DisableTimestamp: true}
}
