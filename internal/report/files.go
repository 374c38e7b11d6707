// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/regex-extractor/pkg/types"
)

// CombinedFile is the name of the file holding every category.
const CombinedFile = "all_extracted_data.txt"

const categorySuffix = "_extracted.txt"

// Persister writes extraction results as flat text files into a directory.
type Persister struct {
	dir string
	log *zap.Logger
}

// NewPersister creates a persister writing into dir. A nil logger disables logging.
func NewPersister(dir string, log *zap.Logger) *Persister {
	if dir == "" {
		dir = "."
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Persister{dir: dir, log: log.Named("persister")}
}

// Dir returns the output directory.
func (p *Persister) Dir() string {
	return p.dir
}

// Save writes one <category>_extracted.txt file per category followed by
// the combined file. It returns the paths written so far; on error, files
// already written are left in place.
func (p *Persister) Save(res *types.ExtractionResult) ([]string, error) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", p.dir, err)
	}

	var written []string
	for _, c := range res.Categories() {
		matches, _ := res.Matches(c)
		path := filepath.Join(p.dir, c.FileName())
		if err := writeLines(path, matches); err != nil {
			p.log.Error("category save failed", zap.String("category", string(c)), zap.Error(err))
			return written, err
		}
		p.log.Info("category saved",
			zap.String("category", string(c)),
			zap.Int("matches", len(matches)),
			zap.String("path", path),
		)
		written = append(written, path)
	}

	path := filepath.Join(p.dir, CombinedFile)
	if err := writeLines(path, combinedLines(res)); err != nil {
		p.log.Error("combined save failed", zap.Error(err))
		return written, err
	}
	p.log.Info("combined file saved", zap.String("path", path), zap.Int("total_matches", res.Total()))
	written = append(written, path)

	return written, nil
}

// combinedLines lays out the combined file: a header per category, its
// matches or a "No matches found" line, and a blank separator line.
func combinedLines(res *types.ExtractionResult) []string {
	var lines []string
	for _, c := range res.Categories() {
		lines = append(lines, fmt.Sprintf("--- %s ---", c.Title()))
		matches, _ := res.Matches(c)
		if len(matches) == 0 {
			lines = append(lines, noMatches)
		}
		lines = append(lines, matches...)
		lines = append(lines, "")
	}
	return lines
}

// writeLines writes each line followed by a newline, truncating path.
func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ListSaved returns the sorted names of extraction output files in dir.
// A missing directory yields an empty list.
func ListSaved(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading output directory %s: %w", dir, err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, categorySuffix) || name == CombinedFile {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
