// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the regex-extractor CLI.
// Without a subcommand it starts the interactive menu; extract, sample and
// patterns expose the same engine non-interactively.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/regex-extractor/internal/config"
	"github.com/pdiddy/regex-extractor/internal/logging"
	"github.com/pdiddy/regex-extractor/internal/patterns"
	"github.com/pdiddy/regex-extractor/internal/report"
	"github.com/pdiddy/regex-extractor/internal/shell"
	"github.com/pdiddy/regex-extractor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Loaded once in PersistentPreRunE and shared by every command.
var (
	cfg      types.Config
	logger   = zap.NewNop()
	registry *patterns.Registry
)

// rootCmd is the base command for the regex-extractor CLI.
var rootCmd = &cobra.Command{
	Use:   "regex-extractor",
	Short: "Extract emails, URLs, phone numbers and more from text",
	Long: `regex-extractor finds structured data in free text: emails, URLs, phone
numbers, credit card numbers, times (12h/24h), HTML tags, hashtags and
currency amounts.

Run without arguments for the interactive menu, or use the extract and
sample subcommands from scripts. Results can be written to
<category>_extracted.txt files plus all_extracted_data.txt.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := shell.New(cfg, registry, report.NewPersister(cfg.Output.Dir, logger), logger)
		return sh.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// setup loads configuration, builds the logger and compiles the pattern
// registry. A rule that fails to compile aborts the command.
func setup(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")

	c, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	l, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	logger = l
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Info("using config file", zap.String("path", used))
	}

	reg, err := patterns.New(patterns.Options{
		Categories:       cfg.Patterns.Categories,
		CreditCardPolicy: cfg.Patterns.CreditCardPolicy,
	})
	if err != nil {
		var ce *patterns.CompileError
		if errors.As(err, &ce) {
			logger.Error("pattern rule failed to compile", zap.String("category", string(ce.Category)), zap.Error(ce.Err))
		}
		return err
	}
	registry = reg
	logger.Debug("registry ready",
		zap.Int("rules", reg.Len()),
		zap.String("credit_card_policy", string(reg.CreditCardPolicy())),
	)
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./regex-extractor.yaml or ~/.config/regex-extractor/regex-extractor.yaml)")
	pf.StringSlice("categories", nil, "categories to extract, comma separated (default: all)")
	pf.String("credit-card-policy", "", "credit card rule variant: issuer or length (default: issuer)")
	pf.String("out-dir", "", "directory for *_extracted.txt files (default: .)")
	pf.String("log-level", "", "log level: debug, info, warn, or error (default: warn)")
	pf.String("log-format", "", "log format: console or json (default: console)")

	bindFlag("patterns.categories", pf.Lookup("categories"))
	bindFlag("patterns.credit_card_policy", pf.Lookup("credit-card-policy"))
	bindFlag("output.dir", pf.Lookup("out-dir"))
	bindFlag("logging.level", pf.Lookup("log-level"))
	bindFlag("logging.format", pf.Lookup("log-format"))
}

// bindFlag binds a flag to a viper key; binding only fails for a nil flag.
func bindFlag(key string, f *pflag.Flag) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
