// Package model defines shared data structures for the nutricalculator service.
package model

// RawProduct is a single unvalidated product as returned by the
// OpenFoodFacts search API. No schema is guaranteed.
type RawProduct map[string]any

// MissingText is the placeholder for identity fields absent from the source.
const MissingText = "N/A"

// NutrientKeys is the fixed, ordered set of nutriment keys carried into every
// ProductRecord. The names match the OpenFoodFacts per-100g keys.
var NutrientKeys = []string{
	"energy-kcal_100g",
	"fat_100g",
	"carbohydrates_100g",
	"sugars_100g",
	"proteins_100g",
	"salt_100g",
	"fiber_100g",
	"vitamin-a_100g",
	"vitamin-c_100g",
	"calcium_100g",
	"iron_100g",
	"magnesium_100g",
	"potassium_100g",
	"sodium_100g",
	"zinc_100g",
	"phosphorus_100g",
	"vitamin-d_100g",
	"vitamin-e_100g",
	"vitamin-k_100g",
	"folate_100g",
	"vitamin-b12_100g",
	"vitamin-b6_100g",
	"copper_100g",
	"manganese_100g",
	"selenium_100g",
}

// ProductRecord is a normalised product. Every record carries exactly this
// field set: five identity fields ("N/A" when the source omits them) and the
// full NutrientKeys enumeration (0 when the source omits a value).
type ProductRecord struct {
	ProductName     string `json:"product_name"`
	IngredientsText string `json:"ingredients_text"`
	Brands          string `json:"brands"`
	Quantity        string `json:"quantity"`
	Code            string `json:"code"`

	EnergyKcal    float64 `json:"energy-kcal_100g"`
	Fat           float64 `json:"fat_100g"`
	Carbohydrates float64 `json:"carbohydrates_100g"`
	Sugars        float64 `json:"sugars_100g"`
	Proteins      float64 `json:"proteins_100g"`
	Salt          float64 `json:"salt_100g"`
	Fiber         float64 `json:"fiber_100g"`
	VitaminA      float64 `json:"vitamin-a_100g"`
	VitaminC      float64 `json:"vitamin-c_100g"`
	Calcium       float64 `json:"calcium_100g"`
	Iron          float64 `json:"iron_100g"`
	Magnesium     float64 `json:"magnesium_100g"`
	Potassium     float64 `json:"potassium_100g"`
	Sodium        float64 `json:"sodium_100g"`
	Zinc          float64 `json:"zinc_100g"`
	Phosphorus    float64 `json:"phosphorus_100g"`
	VitaminD      float64 `json:"vitamin-d_100g"`
	VitaminE      float64 `json:"vitamin-e_100g"`
	VitaminK      float64 `json:"vitamin-k_100g"`
	Folate        float64 `json:"folate_100g"`
	VitaminB12    float64 `json:"vitamin-b12_100g"`
	VitaminB6     float64 `json:"vitamin-b6_100g"`
	Copper        float64 `json:"copper_100g"`
	Manganese     float64 `json:"manganese_100g"`
	Selenium      float64 `json:"selenium_100g"`
}

// Params is one inbound product query after parsing. Zero values mean
// "not supplied"; Normalize fills the defaults.
type Params struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	MaxPages int    `json:"max_pages"`
	Language string `json:"language"`

	// Substring filters, conjunctive. Empty string imposes no constraint.
	Category    string `json:"category,omitempty"`
	Brand       string `json:"brand,omitempty"`
	ProductName string `json:"product_name,omitempty"`
}

// Default request parameters.
const (
	DefaultPage     = 1
	DefaultLimit    = 100
	DefaultMaxPages = 10
	DefaultLanguage = "en"
)

// Normalize fills unset fields with their defaults.
func (p *Params) Normalize() {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.MaxPages == 0 {
		p.MaxPages = DefaultMaxPages
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
}

// Validate rejects out-of-range parameters. It assumes Normalize has run.
func (p Params) Validate() error {
	if p.Page < 1 {
		return &ValidationError{Msg: "page must be a positive integer"}
	}
	if p.Limit < 1 {
		return &ValidationError{Msg: "limit must be a positive integer"}
	}
	if p.MaxPages < 1 {
		return &ValidationError{Msg: "max_pages must be a positive integer"}
	}
	return nil
}

// ValidationError wraps a user-facing validation message. Handlers map it to
// a 400 response; anything else is an internal error.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
