// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// ExtractionResult maps each category to the matches found for it, in the
// order they appear in the source text. Categories keep registry order.
// A result is read-only once built; accessors hand out copies.
type ExtractionResult struct {
	order   []Category
	matches map[Category][]string
}

// NewExtractionResult creates an empty result holding the given categories.
// Every category is present with an empty match sequence.
func NewExtractionResult(categories []Category) *ExtractionResult {
	r := &ExtractionResult{
		order:   make([]Category, 0, len(categories)),
		matches: make(map[Category][]string, len(categories)),
	}
	for _, c := range categories {
		if _, dup := r.matches[c]; dup {
			continue
		}
		r.order = append(r.order, c)
		r.matches[c] = []string{}
	}
	return r
}

// ResultBuilder collects matches into a result. Once Build is called the
// builder is spent and the result it returned can no longer change.
type ResultBuilder struct {
	r *ExtractionResult
}

// NewResultBuilder starts a result holding the given categories.
func NewResultBuilder(categories []Category) *ResultBuilder {
	return &ResultBuilder{r: NewExtractionResult(categories)}
}

// Append records a match for c. It panics on a category the builder was not
// created with, or after Build.
func (b *ResultBuilder) Append(c Category, match string) {
	if b.r == nil {
		panic("types: result builder used after Build")
	}
	if _, ok := b.r.matches[c]; !ok {
		panic(fmt.Sprintf("types: category %q not in result", c))
	}
	b.r.matches[c] = append(b.r.matches[c], match)
}

// Build returns the finished result.
func (b *ResultBuilder) Build() *ExtractionResult {
	if b.r == nil {
		panic("types: result builder used after Build")
	}
	r := b.r
	b.r = nil
	return r
}

// Categories returns the categories in extraction order.
func (r *ExtractionResult) Categories() []Category {
	out := make([]Category, len(r.order))
	copy(out, r.order)
	return out
}

// Matches returns a copy of the matches for c. The second value reports
// whether c is part of the result.
func (r *ExtractionResult) Matches(c Category) ([]string, bool) {
	m, ok := r.matches[c]
	if !ok {
		return nil, false
	}
	out := make([]string, len(m))
	copy(out, m)
	return out, true
}

// Count returns the number of matches for c.
func (r *ExtractionResult) Count(c Category) int {
	return len(r.matches[c])
}

// Total returns the number of matches across all categories.
func (r *ExtractionResult) Total() int {
	n := 0
	for _, m := range r.matches {
		n += len(m)
	}
	return n
}

// Empty reports whether no category produced a match.
func (r *ExtractionResult) Empty() bool {
	return r.Total() == 0
}

// MarshalJSON encodes the result as an object whose keys follow extraction order.
func (r *ExtractionResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(c))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.matches[c])
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", c, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the result as a mapping node whose keys follow extraction order.
func (r *ExtractionResult) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range r.order {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(c)}
		val := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, m := range r.matches[c] {
			val.Content = append(val.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m})
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}
