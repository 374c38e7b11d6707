// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CreditCardPolicy selects the credit card rule variant.
type CreditCardPolicy string

const (
	// PolicyIssuer validates issuer prefixes (Visa 4, Mastercard 51-55,
	// Amex 34/37) together with the issuer's exact digit count.
	PolicyIssuer CreditCardPolicy = "issuer"

	// PolicyLength accepts any run of 13-19 digits regardless of prefix.
	PolicyLength CreditCardPolicy = "length"
)

// OutputFormat selects how results are rendered on the console.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// PatternConfig selects which rules the registry compiles.
type PatternConfig struct {
	// Categories lists the enabled categories; "all" enables every category.
	Categories []string `json:"categories" yaml:"categories" mapstructure:"categories"`

	// CreditCardPolicy selects the credit card variant: issuer or length.
	CreditCardPolicy CreditCardPolicy `json:"credit_card_policy" yaml:"credit_card_policy" mapstructure:"credit_card_policy"`
}

// OutputConfig holds presentation and persistence settings.
type OutputConfig struct {
	// Dir is the directory the *_extracted.txt files are written to.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// Format selects console rendering: text, json or yaml.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// LoggingConfig holds structured logging settings. Logs go to stderr.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console or json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings of the regex-extractor CLI.
type Config struct {
	Patterns PatternConfig `json:"patterns" yaml:"patterns" mapstructure:"patterns"`
	Output   OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
	Logging  LoggingConfig `json:"logging" yaml:"logging" mapstructure:"logging"`
}
