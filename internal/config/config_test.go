// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/regex-extractor/pkg/types"
)

// isolate keeps the user's real config directory out of the search path.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regex-extractor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
patterns:
  categories: [emails, phone numbers]
  credit_card_policy: length
output:
  dir: out
  format: yaml
logging:
  level: debug
  format: json
`)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"emails", "phone numbers"}, cfg.Patterns.Categories)
	assert.Equal(t, types.PolicyLength, cfg.Patterns.CreditCardPolicy)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, types.FormatYAML, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "output:\n  dir: from-file\n")
	t.Setenv("REGEX_EXTRACTOR_OUTPUT_DIR", "from-env")
	t.Setenv("REGEX_EXTRACTOR_PATTERNS_CATEGORIES", "emails,urls")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output.Dir)
	assert.Equal(t, []string{"emails", "urls"}, cfg.Patterns.Categories)
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("REGEX_EXTRACTOR_PATTERNS_CREDIT_CARD_POLICY", "issuer")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("credit-card-policy", "", "")
	require.NoError(t, flags.Parse([]string{"--credit-card-policy", "length"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag("patterns.credit_card_policy", flags.Lookup("credit-card-policy")))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, types.PolicyLength, cfg.Patterns.CreditCardPolicy)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr string
	}{
		{
			name: "missing explicit file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			wantErr: "reading config file",
		},
		{
			name: "malformed yaml",
			setup: func(t *testing.T) string {
				return writeConfig(t, "patterns: [unclosed\n")
			},
			wantErr: "reading config file",
		},
		{
			name: "unknown category",
			setup: func(t *testing.T) string {
				return writeConfig(t, "patterns:\n  categories: [emails, zipcodes]\n")
			},
			wantErr: `unknown category "zipcodes"`,
		},
		{
			name: "bad log level",
			setup: func(t *testing.T) string {
				return writeConfig(t, "logging:\n  level: loud\n")
			},
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load(viper.New(), tt.setup(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *types.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *types.Config) {}},
		{name: "all is accepted", mutate: func(c *types.Config) { c.Patterns.Categories = []string{"ALL"} }},
		{name: "no categories", mutate: func(c *types.Config) { c.Patterns.Categories = nil }, wantErr: "no categories"},
		{name: "bad policy", mutate: func(c *types.Config) { c.Patterns.CreditCardPolicy = "luhn" }, wantErr: "invalid credit card policy"},
		{name: "empty dir", mutate: func(c *types.Config) { c.Output.Dir = "" }, wantErr: "output directory"},
		{name: "bad format", mutate: func(c *types.Config) { c.Output.Format = "xml" }, wantErr: "invalid output format"},
		{name: "bad log format", mutate: func(c *types.Config) { c.Logging.Format = "text" }, wantErr: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
