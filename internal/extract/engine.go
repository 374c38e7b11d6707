// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract applies a pattern registry to text and returns the
// normalized matches per category. It performs no I/O and keeps no state;
// reporting belongs to the caller.
package extract

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/regex-extractor/internal/patterns"
	"github.com/pdiddy/regex-extractor/pkg/types"
)

// ErrInvalidInput is returned for input that is not text: invalid UTF-8 or
// data containing NUL bytes.
var ErrInvalidInput = errors.New("input is not valid UTF-8 text")

// Extract scans text with every rule of reg, in registry order, and returns
// a fresh result. Every registry category is present in the result, with
// an empty sequence when nothing matched.
func Extract(reg *patterns.Registry, text string) (*types.ExtractionResult, error) {
	if !utf8.ValidString(text) || strings.IndexByte(text, 0) >= 0 {
		return nil, ErrInvalidInput
	}
	return run(reg, text), nil
}

// ExtractBytes is Extract for raw file or stdin contents.
func ExtractBytes(reg *patterns.Registry, data []byte) (*types.ExtractionResult, error) {
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return nil, ErrInvalidInput
	}
	return run(reg, string(data)), nil
}

func run(reg *patterns.Registry, text string) *types.ExtractionResult {
	b := types.NewResultBuilder(reg.Categories())
	for _, rule := range reg.Rules() {
		for _, m := range rule.Regexp().FindAllStringSubmatch(text, -1) {
			b.Append(rule.Category, normalize(rule, m))
		}
	}
	return b.Build()
}

// normalize turns a raw submatch into its display string: the whole match
// for a rule without groups, otherwise the concatenation of the non-empty
// groups.
func normalize(rule patterns.Rule, m []string) string {
	if rule.Groups == 0 {
		return m[0]
	}
	var b strings.Builder
	for _, g := range m[1:] {
		if g != "" {
			b.WriteString(g)
		}
	}
	if b.Len() == 0 {
		// Rules wrap every alternative in a group, so this only happens for
		// a malformed rule.
		return m[0]
	}
	return b.String()
}
