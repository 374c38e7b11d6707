// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sample provides the built-in demonstration corpus. Each line holds
// a candidate value followed by a "# note"; the notes are ordinary text to
// the matcher.
package sample

import _ "embed"

//go:embed sample.txt
var text string

// Text returns the built-in sample corpus.
func Text() string {
	return text
}
