package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/regex-extractor/internal/extract"
	"github.com/pdiddy/regex-extractor/internal/report"
	"github.com/pdiddy/regex-extractor/internal/sample"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Extract the built-in sample text",
	Long: `Sample runs every enabled pattern over the built-in sample text, which
mixes valid and invalid candidates for each category, prints the results
and saves them into --out-dir unless --no-save is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		noSave, _ := cmd.Flags().GetBool("no-save")
		out := cmd.OutOrStdout()

		res, err := extract.Extract(registry, sample.Text())
		if err != nil {
			return err
		}
		if err := report.PrintSummary(out, res); err != nil {
			return err
		}
		if err := report.Print(out, res); err != nil {
			return err
		}
		if noSave {
			return nil
		}

		p := report.NewPersister(cfg.Output.Dir, logger)
		if _, err := p.Save(res); err != nil {
			return err
		}
		names, err := report.ListSaved(p.Dir())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved extracted data files in %s:\n", p.Dir())
		for _, n := range names {
			fmt.Fprintf(out, "  • %s\n", n)
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().Bool("no-save", false, "print the results without writing files")

	rootCmd.AddCommand(sampleCmd)
}
