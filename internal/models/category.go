package models

// Spending categories form a closed set; every transaction and budget
// belongs to exactly one of them.
const (
	CategoryFood           = "food"
	CategoryTransportation = "transportation"
	CategoryHousing        = "housing"
	CategoryUtilities      = "utilities"
	CategoryEntertainment  = "entertainment"
	CategoryHealthcare     = "healthcare"
	CategoryShopping       = "shopping"
	CategoryOther          = "other"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransportation,
		CategoryHousing,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryShopping,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// CategoryMeta holds display metadata for a category. It is presentation-only
// and never participates in aggregation logic.
type CategoryMeta struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var categoryMeta = map[string]CategoryMeta{
	CategoryFood:           {Icon: "fork.knife", Color: "blue"},
	CategoryTransportation: {Icon: "car.fill", Color: "green"},
	CategoryHousing:        {Icon: "house.fill", Color: "orange"},
	CategoryUtilities:      {Icon: "bolt.fill", Color: "yellow"},
	CategoryEntertainment:  {Icon: "tv.fill", Color: "purple"},
	CategoryHealthcare:     {Icon: "heart.fill", Color: "red"},
	CategoryShopping:       {Icon: "cart.fill", Color: "pink"},
	CategoryOther:          {Icon: "ellipsis.circle.fill", Color: "gray"},
}

// MetaForCategory returns the display metadata for a category.
// Unknown categories get the "other" metadata.
func MetaForCategory(category string) CategoryMeta {
	if meta, ok := categoryMeta[category]; ok {
		return meta
	}
	return categoryMeta[CategoryOther]
}
