// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestNewExtractionResultHasEveryCategory(t *testing.T) {
	r := NewExtractionResult(AllCategories)

	assert.Equal(t, AllCategories, r.Categories())
	for _, c := range AllCategories {
		m, ok := r.Matches(c)
		require.True(t, ok, "category %s missing", c)
		assert.NotNil(t, m)
		assert.Empty(t, m)
	}
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.Total())
}

func TestNewExtractionResultDropsDuplicates(t *testing.T) {
	r := NewExtractionResult([]Category{CategoryTimes, CategoryEmails, CategoryTimes})
	assert.Equal(t, []Category{CategoryTimes, CategoryEmails}, r.Categories())
}

func TestAppendKeepsOrder(t *testing.T) {
	b := NewResultBuilder([]Category{CategoryTimes})
	b.Append(CategoryTimes, "14:30")
	b.Append(CategoryTimes, "2:30 PM")
	r := b.Build()

	m, _ := r.Matches(CategoryTimes)
	assert.Equal(t, []string{"14:30", "2:30 PM"}, m)
	assert.Equal(t, 2, r.Count(CategoryTimes))
	assert.Equal(t, 2, r.Total())
	assert.False(t, r.Empty())
}

func TestAppendUnknownCategoryPanics(t *testing.T) {
	b := NewResultBuilder([]Category{CategoryTimes})
	assert.Panics(t, func() { b.Append(CategoryEmails, "a@b.co") })
}

func TestBuiltResultIsFrozen(t *testing.T) {
	b := NewResultBuilder([]Category{CategoryEmails})
	b.Append(CategoryEmails, "user@example.com")
	r := b.Build()

	assert.Panics(t, func() { b.Append(CategoryEmails, "late@example.com") })
	assert.Panics(t, func() { b.Build() })

	m, _ := r.Matches(CategoryEmails)
	assert.Equal(t, []string{"user@example.com"}, m)
}

func TestAccessorsReturnCopies(t *testing.T) {
	b := NewResultBuilder([]Category{CategoryEmails})
	b.Append(CategoryEmails, "user@example.com")
	r := b.Build()

	m, _ := r.Matches(CategoryEmails)
	m[0] = "changed"
	cats := r.Categories()
	cats[0] = CategoryURLs

	again, _ := r.Matches(CategoryEmails)
	assert.Equal(t, []string{"user@example.com"}, again)
	assert.Equal(t, []Category{CategoryEmails}, r.Categories())
}

func TestMatchesUnknownCategory(t *testing.T) {
	r := NewExtractionResult([]Category{CategoryEmails})
	m, ok := r.Matches(CategoryCurrency)
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestMarshalJSONKeepsOrder(t *testing.T) {
	b := NewResultBuilder([]Category{CategoryURLs, CategoryEmails})
	b.Append(CategoryEmails, "user@example.com")
	r := b.Build()

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"urls":[],"emails":["user@example.com"]}`, string(data))
}

func TestMarshalYAMLKeepsOrder(t *testing.T) {
	b := NewResultBuilder([]Category{CategoryCurrency, CategoryTimes})
	b.Append(CategoryCurrency, "$19.99")
	r := b.Build()

	data, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "currency:\n    - $19.99\ntimes: []\n", string(data))
}
