// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads regex-extractor settings from defaults, an optional
// YAML file, REGEX_EXTRACTOR_* environment variables and bound CLI flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/regex-extractor/pkg/types"
)

const (
	// FileName is the config file base name searched in the config paths.
	FileName = "regex-extractor"

	// EnvPrefix prefixes environment overrides, e.g. REGEX_EXTRACTOR_OUTPUT_DIR.
	EnvPrefix = "REGEX_EXTRACTOR"

	allCategories = "all"
)

// Defaults returns the configuration used when nothing overrides it.
func Defaults() types.Config {
	return types.Config{
		Patterns: types.PatternConfig{
			Categories:       []string{allCategories},
			CreditCardPolicy: types.PolicyIssuer,
		},
		Output: types.OutputConfig{
			Dir:    ".",
			Format: types.FormatText,
		},
		Logging: types.LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads configuration into v and returns the validated result. When
// path is empty, regex-extractor.yaml is searched in the working directory
// and in ~/.config/regex-extractor/; a missing file is not an error.
// Flags must be bound to v before calling Load.
func Load(v *viper.Viper, path string) (types.Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v, Defaults())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Patterns.Categories = splitList(cfg.Patterns.Categories)

	if err := Validate(cfg); err != nil {
		return types.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d types.Config) {
	v.SetDefault("patterns.categories", d.Patterns.Categories)
	v.SetDefault("patterns.credit_card_policy", string(d.Patterns.CreditCardPolicy))
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.format", string(d.Output.Format))
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// splitList flattens comma-separated entries, as produced by environment
// variables like REGEX_EXTRACTOR_PATTERNS_CATEGORIES=emails,urls.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate reports the first invalid setting in cfg.
func Validate(cfg types.Config) error {
	if len(cfg.Patterns.Categories) == 0 {
		return fmt.Errorf("no categories enabled")
	}
	for _, name := range cfg.Patterns.Categories {
		if strings.EqualFold(name, allCategories) {
			continue
		}
		if _, err := types.ParseCategory(name); err != nil {
			return err
		}
	}

	switch cfg.Patterns.CreditCardPolicy {
	case types.PolicyIssuer, types.PolicyLength:
	default:
		return fmt.Errorf("invalid credit card policy: %q (must be issuer or length)", cfg.Patterns.CreditCardPolicy)
	}

	if cfg.Output.Dir == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	switch cfg.Output.Format {
	case types.FormatText, types.FormatJSON, types.FormatYAML:
	default:
		return fmt.Errorf("invalid output format: %q (must be text, json, or yaml)", cfg.Output.Format)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %q (must be json or console)", cfg.Logging.Format)
	}
	return nil
}
