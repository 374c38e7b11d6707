package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/regex-extractor/internal/extract"
	"github.com/pdiddy/regex-extractor/internal/report"
	"github.com/pdiddy/regex-extractor/pkg/types"
)

// stdinName marks standard input in the argument list.
const stdinName = "-"

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract structured data from text, files, or stdin",
	Long: `Extract runs every enabled pattern over the given input and prints the
matches per category. Input comes from --text, from the listed files, or
from stdin when neither is given ("-" also names stdin).

With --save, the matches of all inputs are merged in input order and
written to <category>_extracted.txt files plus all_extracted_data.txt in
--out-dir.`,
	RunE: runExtract,
}

// source is one named input to extract from.
type source struct {
	name string
	data []byte
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	save, _ := cmd.Flags().GetBool("save")
	summary, _ := cmd.Flags().GetBool("summary")
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	sources, err := readSources(cmd.InOrStdin(), text, args)
	if err != nil {
		return err
	}

	var results []*types.ExtractionResult
	failed := 0
	for _, src := range sources {
		res, err := extract.ExtractBytes(registry, src.data)
		if err != nil {
			logger.Warn("input rejected", zap.String("source", src.name), zap.Error(err))
			fmt.Fprintf(errOut, "%s: %v\n", src.name, err)
			failed++
			continue
		}
		results = append(results, res)

		if len(sources) > 1 && cfg.Output.Format == types.FormatText {
			fmt.Fprintf(out, "==> %s <==\n", src.name)
		}
		if summary {
			if err := report.PrintSummary(out, res); err != nil {
				return err
			}
		}
		if err := report.Render(out, res, cfg.Output.Format); err != nil {
			return err
		}
	}

	if save && len(results) > 0 {
		p := report.NewPersister(cfg.Output.Dir, logger)
		written, err := p.Save(merge(registry.Categories(), results))
		if err != nil {
			return err
		}
		fmt.Fprintf(errOut, "Saved %d files to %s\n", len(written), p.Dir())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be extracted", failed, len(sources))
	}
	return nil
}

// readSources collects the inputs: --text first, then each file argument.
// With neither, stdin is read.
func readSources(stdin io.Reader, text string, args []string) ([]source, error) {
	var sources []source
	if text != "" {
		sources = append(sources, source{name: "--text", data: []byte(text)})
	}
	if len(args) == 0 && text == "" {
		args = []string{stdinName}
	}

	for _, arg := range args {
		var (
			data []byte
			err  error
		)
		if arg == stdinName {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(arg)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		sources = append(sources, source{name: arg, data: data})
	}
	return sources, nil
}

// merge concatenates results category by category, keeping input order.
func merge(categories []types.Category, results []*types.ExtractionResult) *types.ExtractionResult {
	merged := types.NewResultBuilder(categories)
	for _, res := range results {
		for _, c := range categories {
			matches, _ := res.Matches(c)
			for _, m := range matches {
				merged.Append(c, m)
			}
		}
	}
	return merged.Build()
}

func init() {
	extractCmd.Flags().String("text", "", "text to extract from instead of files or stdin")
	extractCmd.Flags().Bool("save", false, "write *_extracted.txt files into --out-dir")
	extractCmd.Flags().Bool("summary", false, "print a per-category match count before the results")
	extractCmd.Flags().String("format", "", "output format: text, json, or yaml (default: text)")

	bindFlag("output.format", extractCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(extractCmd)
}
