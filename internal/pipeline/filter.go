package pipeline

import (
	"strings"

	"github.com/maicaalmonte/nutricalculator/internal/model"
)

// applyFilters returns the subset of records satisfying every active filter,
// preserving order. With no active filters the input comes back unchanged.
func applyFilters(records []model.ProductRecord, p model.Params) []model.ProductRecord {
	if p.Category == "" && p.Brand == "" && p.ProductName == "" {
		return records
	}

	out := make([]model.ProductRecord, 0, len(records))
	for _, rec := range records {
		if matchesFilters(rec, p) {
			out = append(out, rec)
		}
	}
	return out
}

// matchesFilters applies the active filters conjunctively. Each is a
// case-sensitive substring test; a field still holding its missing-value
// placeholder never matches. The normalised record carries no category
// field, so an active category filter matches no record.
func matchesFilters(rec model.ProductRecord, p model.Params) bool {
	if p.Category != "" {
		return false
	}
	if p.Brand != "" && !fieldContains(rec.Brands, p.Brand) {
		return false
	}
	if p.ProductName != "" && !fieldContains(rec.ProductName, p.ProductName) {
		return false
	}
	return true
}

func fieldContains(field, substr string) bool {
	return field != model.MissingText && strings.Contains(field, substr)
}
