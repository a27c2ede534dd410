package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultSlugBase replaces a name that normalises to nothing.
const DefaultSlugBase = "category"

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphens      = regexp.MustCompile(`-+`)
)

// Category groups a seller's products for display.
// ProductCount is never stored; it is filled only by the with-product-count reads.
type Category struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Color        string    `json:"color"`
	Order        int       `json:"order"`
	SellerID     uuid.UUID `json:"sellerId"`
	ProductCount int64     `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasSlug reports whether a slug was ever derived for the category.
func (c *Category) HasSlug() bool {
	return c.Slug != ""
}

// SlugBase normalises a category name into the URL-safe part of a slug.
func SlugBase(name string) string {
	base := strings.ToLower(name)
	base = slugInvalidChars.ReplaceAllString(base, "")
	base = slugWhitespace.ReplaceAllString(strings.TrimSpace(base), "-")
	base = slugHyphens.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		return DefaultSlugBase
	}

	return base
}

// DeriveSlug builds a slug from name with a suffix taken from the last four digits
// of at's Unix-millisecond timestamp.
func DeriveSlug(name string, at time.Time) string {
	return fmt.Sprintf("%s-%04d", SlugBase(name), at.UnixMilli()%10000)
}
