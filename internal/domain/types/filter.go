package types

import (
	"fmt"
	"slices"
	"strings"
)

// SortKey selects the column the product list is ordered by.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByPrice  SortKey = "price"
	SortByRating SortKey = "rating"
)

// ParseSortKey validates s as a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortByName, SortByPrice, SortByRating:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want name, price or rating)", s)
}

// Sort is a sort key plus direction.
type Sort struct {
	Key       SortKey `json:"key" yaml:"key"`
	Ascending bool    `json:"ascending" yaml:"ascending"`
}

// ProductFilter narrows and orders the cached product list.
// The zero value matches every product in storage order.
type ProductFilter struct {
	Query      string   `json:"query,omitempty" yaml:"query,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Sort       *Sort    `json:"sort,omitempty" yaml:"sort,omitempty"`
}

// ToggleCategory adds category to the filter, or removes it if already present.
func (f ProductFilter) ToggleCategory(category string) ProductFilter {
	out := f
	if i := slices.Index(f.Categories, category); i >= 0 {
		out.Categories = slices.Delete(slices.Clone(f.Categories), i, i+1)
		return out
	}
	out.Categories = append(slices.Clone(f.Categories), category)
	return out
}

// ToggleSort clears the sort when key is already selected; otherwise it
// selects key, keeping the current direction (ascending if none was set).
func (f ProductFilter) ToggleSort(key SortKey) ProductFilter {
	out := f
	if f.Sort != nil && f.Sort.Key == key {
		out.Sort = nil
		return out
	}
	asc := true
	if f.Sort != nil {
		asc = f.Sort.Ascending
	}
	out.Sort = &Sort{Key: key, Ascending: asc}
	return out
}

// SortBy selects key and direction.
func (f ProductFilter) SortBy(key SortKey, ascending bool) ProductFilter {
	out := f
	out.Sort = &Sort{Key: key, Ascending: ascending}
	return out
}
