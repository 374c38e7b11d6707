// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the regex-extractor pipeline:
// the category enumeration, the extraction result and the configuration structs.
package types

import (
	"fmt"
	"strings"
)

// Category names a class of extractable data.
type Category string

const (
	CategoryEmails       Category = "emails"
	CategoryURLs         Category = "urls"
	CategoryPhoneNumbers Category = "phone_numbers"
	CategoryCreditCards  Category = "credit_cards"
	CategoryTimes        Category = "times"
	CategoryHTMLTags     Category = "html_tags"
	CategoryHashtags     Category = "hashtags"
	CategoryCurrency     Category = "currency"
)

// AllCategories lists every category in canonical extraction order.
var AllCategories = []Category{
	CategoryEmails,
	CategoryURLs,
	CategoryPhoneNumbers,
	CategoryCreditCards,
	CategoryTimes,
	CategoryHTMLTags,
	CategoryHashtags,
	CategoryCurrency,
}

// Label returns the lower-case human label, e.g. "phone numbers".
func (c Category) Label() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// Title returns the header form used by the presenters, e.g. "Phone Numbers".
func (c Category) Title() string {
	words := strings.Fields(c.Label())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FileName returns the per-category output file name.
func (c Category) FileName() string {
	return string(c) + "_extracted.txt"
}

// Valid reports whether c is one of AllCategories.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a name such as "phone_numbers" or "Phone Numbers"
// into a Category.
func ParseCategory(name string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	c := Category(normalized)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", name)
	}
	return c, nil
}
