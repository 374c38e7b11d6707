// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders extraction results on the console and persists
// them as flat text files.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/regex-extractor/pkg/types"
)

const noMatches = "No matches found"

// Print writes a header per category and one bullet per match, or a
// "No matches found" bullet when the category is empty.
func Print(w io.Writer, res *types.ExtractionResult) error {
	for _, c := range res.Categories() {
		if _, err := fmt.Fprintf(w, "--- %s ---\n", c.Title()); err != nil {
			return err
		}
		matches, _ := res.Matches(c)
		if len(matches) == 0 {
			matches = []string{noMatches}
		}
		for _, m := range matches {
			if _, err := fmt.Fprintf(w, "  • %s\n", m); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// PrintSummary writes one progress block per category with its match count.
func PrintSummary(w io.Writer, res *types.ExtractionResult) error {
	for _, c := range res.Categories() {
		if _, err := fmt.Fprintf(w, "Extracting %s...\n  Found %d matches.\n\n", c.Label(), res.Count(c)); err != nil {
			return err
		}
	}
	return nil
}

// Render writes res in the given format. An empty format means text.
func Render(w io.Writer, res *types.ExtractionResult, format types.OutputFormat) error {
	switch format {
	case types.FormatText, "":
		return Print(w, res)
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}
}
