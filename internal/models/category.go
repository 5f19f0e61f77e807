package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Category string

const (
	CategoryClothing    Category = "clothing"
	CategoryElectronics Category = "electronics"
	CategoryBooks       Category = "books"
	CategoryKitchenware Category = "kitchenware"
	CategoryTools       Category = "tools"
	CategoryToys        Category = "toys"
	CategorySports      Category = "sports"
	CategoryDecor       Category = "decor"
	CategoryOther       Category = "other"
)

var Categories = []Category{
	CategoryClothing,
	CategoryElectronics,
	CategoryBooks,
	CategoryKitchenware,
	CategoryTools,
	CategoryToys,
	CategorySports,
	CategoryDecor,
	CategoryOther,
}

// ParseCategory matches a label case-insensitively against the fixed set.
func ParseCategory(label string) (Category, bool) {
	normalized := Category(strings.ToLower(strings.TrimSpace(label)))
	for _, category := range Categories {
		if category == normalized {
			return category, true
		}
	}
	return "", false
}

// Label is the display form, e.g. "Kitchenware".
func (c Category) Label() string {
	r, size := utf8.DecodeRuneInString(string(c))
	if r == utf8.RuneError {
		return string(c)
	}
	return string(unicode.ToUpper(r)) + string(c)[size:]
}
