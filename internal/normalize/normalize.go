// Package normalize flattens raw OpenFoodFacts products into the fixed
// ProductRecord schema.
package normalize

import (
	"strconv"
	"strings"

	"github.com/maicaalmonte/nutricalculator/internal/model"
)

// Records converts every raw product into a ProductRecord, preserving order.
// One output per input — nothing is dropped, whatever shape the source has.
func Records(raws []model.RawProduct) []model.ProductRecord {
	out := make([]model.ProductRecord, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Record(raw))
	}
	return out
}

// Record flattens a single raw product. Identity fields default to "N/A",
// nutrient fields to 0. The nutriments sub-map may be absent entirely.
func Record(raw model.RawProduct) model.ProductRecord {
	nutriments, _ := raw["nutriments"].(map[string]any)

	return model.ProductRecord{
		ProductName:     text(raw, "product_name"),
		IngredientsText: text(raw, "ingredients_text"),
		Brands:          text(raw, "brands"),
		Quantity:        text(raw, "quantity"),
		Code:            text(raw, "code"),

		EnergyKcal:    amount(nutriments, "energy-kcal_100g"),
		Fat:           amount(nutriments, "fat_100g"),
		Carbohydrates: amount(nutriments, "carbohydrates_100g"),
		Sugars:        amount(nutriments, "sugars_100g"),
		Proteins:      amount(nutriments, "proteins_100g"),
		Salt:          amount(nutriments, "salt_100g"),
		Fiber:         amount(nutriments, "fiber_100g"),
		VitaminA:      amount(nutriments, "vitamin-a_100g"),
		VitaminC:      amount(nutriments, "vitamin-c_100g"),
		Calcium:       amount(nutriments, "calcium_100g"),
		Iron:          amount(nutriments, "iron_100g"),
		Magnesium:     amount(nutriments, "magnesium_100g"),
		Potassium:     amount(nutriments, "potassium_100g"),
		Sodium:        amount(nutriments, "sodium_100g"),
		Zinc:          amount(nutriments, "zinc_100g"),
		Phosphorus:    amount(nutriments, "phosphorus_100g"),
		VitaminD:      amount(nutriments, "vitamin-d_100g"),
		VitaminE:      amount(nutriments, "vitamin-e_100g"),
		VitaminK:      amount(nutriments, "vitamin-k_100g"),
		Folate:        amount(nutriments, "folate_100g"),
		VitaminB12:    amount(nutriments, "vitamin-b12_100g"),
		VitaminB6:     amount(nutriments, "vitamin-b6_100g"),
		Copper:        amount(nutriments, "copper_100g"),
		Manganese:     amount(nutriments, "manganese_100g"),
		Selenium:      amount(nutriments, "selenium_100g"),
	}
}

// text reads an identity field. The "N/A" placeholder stands in only for
// absent (or non-string) values; a present-but-empty string passes through
// unchanged, matching the upstream payloads.
func text(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return model.MissingText
}

// amount reads a nutriment value. OpenFoodFacts serves these as JSON numbers
// or as numeric strings depending on the product; anything else counts as
// missing.
func amount(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
