package model

// Category classifies a catalog product.
type Category string

const (
	CategorySecurity      Category = "security"
	CategoryLighting      Category = "lighting"
	CategoryClimate       Category = "climate"
	CategoryAudioVideo    Category = "audio-video"
	CategoryNetworking    Category = "networking"
	CategoryAccessControl Category = "access-control"
	CategoryOther         Category = "other"
)

// AllCategories returns every known category.
func AllCategories() []Category {
	return []Category{
		CategorySecurity,
		CategoryLighting,
		CategoryClimate,
		CategoryAudioVideo,
		CategoryNetworking,
		CategoryAccessControl,
		CategoryOther,
	}
}

// ParseCategory maps a raw string onto a known category, defaulting to other.
func ParseCategory(s string) Category {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// Product is a catalog entry with per-tier pricing. Supplied read-only by
// the CatalogProvider.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	Brand       string   `json:"brand,omitempty"`
	BasePrice   float64  `json:"base_price"`
	GoodPrice   float64  `json:"good_price"`
	BetterPrice float64  `json:"better_price"`
	BestPrice   float64  `json:"best_price"`
	Active      bool     `json:"active"`
}

// TierPrice returns the product price for the given tier, falling back to
// the base price when a tier price is unset.
func (p Product) TierPrice(t Tier) float64 {
	var price float64
	switch t {
	case TierGood:
		price = p.GoodPrice
	case TierBetter:
		price = p.BetterPrice
	case TierBest:
		price = p.BestPrice
	}
	if price <= 0 {
		return p.BasePrice
	}
	return price
}
