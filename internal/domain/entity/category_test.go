package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var slugShape = regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*-\d{4}$`)

func TestSlugBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple words", input: "Fresh Produce", expected: "fresh-produce"},
		{name: "punctuation stripped", input: "Dairy & Eggs!", expected: "dairy-eggs"},
		{name: "whitespace runs collapse", input: "  Frozen \t  Foods  ", expected: "frozen-foods"},
		{name: "hyphen runs collapse", input: "Ready--to---Eat", expected: "ready-to-eat"},
		{name: "edge hyphens trimmed", input: "-Spices-", expected: "spices"},
		{name: "underscore kept", input: "bulk_rice", expected: "bulk_rice"},
		{name: "only symbols falls back", input: "@@@", expected: DefaultSlugBase},
		{name: "empty falls back", input: "", expected: DefaultSlugBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SlugBase(tt.input))
		})
	}
}

func TestDeriveSlug_AppendsLastFourMillisecondDigits(t *testing.T) {
	at := time.UnixMilli(1700000001234)

	assert.Equal(t, "fresh-produce-1234", DeriveSlug("Fresh Produce", at))
}

func TestDeriveSlug_PadsSuffix(t *testing.T) {
	at := time.UnixMilli(1700000000042)

	assert.Equal(t, "spices-0042", DeriveSlug("Spices", at))
}

func TestDeriveSlug_ShapeHolds(t *testing.T) {
	at := time.UnixMilli(1700000009876)
	names := []string{"Fresh Produce", "  ", "Über Käse", "a - b", "***", "Meat & Poultry (Halal)"}

	for _, name := range names {
		slug := DeriveSlug(name, at)
		assert.Regexp(t, slugShape, slug, "name %q", name)
		assert.NotContains(t, slug, "--", "name %q", name)
	}
}

func TestCategory_HasSlug(t *testing.T) {
	assert.False(t, (&Category{}).HasSlug())
	assert.True(t, (&Category{Slug: "spices-0042"}).HasSlug())
}
