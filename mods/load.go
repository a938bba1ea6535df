// Package mods loads the optional per-project configuration file.
package mods

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml"

	"pycheck/common"
	"pycheck/report"
)

// tomlConfig represents a pycheck project configuration as it is encoded in
// TOML.
type tomlConfig struct {
	Check tomlCheckConfig `toml:"check"`
}

type tomlCheckConfig struct {
	LogLevel           string `toml:"loglevel"`
	WarnShadowBuiltins bool   `toml:"warn-shadow-builtins"`
	Requires           string `toml:"requires"`
}

// Config holds the validated configuration for a check run.
type Config struct {
	// LogLevel is one of the report log levels.  It is -1 when the config
	// file does not specify one, in which case the CLI selection applies.
	LogLevel int

	// WarnShadowBuiltins enables the warning for module-level bindings that
	// shadow a built-in symbol.
	WarnShadowBuiltins bool
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{LogLevel: -1}
}

// LoadConfig loads and validates the `pycheck.toml` file in the given
// directory.  A missing file is not an error: defaults are returned.
func LoadConfig(dir string) (*Config, error) {
	buff, err := os.ReadFile(filepath.Join(dir, common.ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}

		return nil, fmt.Errorf("unable to read config file: %s", err)
	}

	tomlCfg := &tomlConfig{}
	if err := toml.Unmarshal(buff, tomlCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %s", err)
	}

	return validateConfig(tomlCfg)
}

// validateConfig converts the raw TOML configuration into a validated
// Config.
func validateConfig(tomlCfg *tomlConfig) (*Config, error) {
	cfg := DefaultConfig()
	cfg.WarnShadowBuiltins = tomlCfg.Check.WarnShadowBuiltins

	switch tomlCfg.Check.LogLevel {
	case "":
		// Keep the CLI selection.
	case "silent":
		cfg.LogLevel = report.LogLevelSilent
	case "error":
		cfg.LogLevel = report.LogLevelError
	case "warn":
		cfg.LogLevel = report.LogLevelWarn
	case "verbose":
		cfg.LogLevel = report.LogLevelVerbose
	default:
		return nil, fmt.Errorf("invalid log level: `%s`", tomlCfg.Check.LogLevel)
	}

	if tomlCfg.Check.Requires != "" {
		constraint, err := semver.NewConstraint(tomlCfg.Check.Requires)
		if err != nil {
			return nil, fmt.Errorf("invalid version constraint `%s`: %s", tomlCfg.Check.Requires, err)
		}

		if !constraint.Check(semver.MustParse(common.PycheckVersion)) {
			return nil, fmt.Errorf(
				"pycheck v%s does not satisfy the required version constraint `%s`",
				common.PycheckVersion,
				tomlCfg.Check.Requires,
			)
		}
	}

	return cfg, nil
}
