// Package model defines the core domain models used throughout the application.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a document type label. The set is closed; CategoryOther is the
// fallback and is always present.
type Category string

// Known document categories, in definition order. Definition order matters:
// the rule scorer breaks score ties in favor of the first-defined category.
const (
	CategoryInvoice       Category = "Invoice"
	CategoryResume        Category = "Resume"
	CategoryContract      Category = "Contract"
	CategoryBankStatement Category = "Bank Statement"
	CategoryOther         Category = "Other"
)

// ErrUnknownCategory indicates a label outside the closed category set.
var ErrUnknownCategory = errors.New("unknown category")

// Categories returns all known categories in definition order.
func Categories() []Category {
	return []Category{
		CategoryInvoice,
		CategoryResume,
		CategoryContract,
		CategoryBankStatement,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryInvoice, CategoryResume, CategoryContract, CategoryBankStatement, CategoryOther:
		return true
	}
	return false
}

// ParseCategory resolves a user-supplied label to a Category. Matching is
// case-insensitive and tolerates missing spaces ("bankstatement").
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "_", "")

	for _, c := range Categories() {
		key := strings.ReplaceAll(strings.ToLower(string(c)), " ", "")
		if normalized == key {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
