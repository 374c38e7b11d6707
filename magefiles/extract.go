//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Sample builds the CLI and extracts the built-in sample into out/sample.
func Sample() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "sample", "--out-dir", filepath.Join(outDir, "sample"))
}

// Extract builds the CLI and extracts file into out/extract, printing a summary.
func Extract(file string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "extract", file,
		"--summary", "--save", "--out-dir", filepath.Join(outDir, "extract"))
}
