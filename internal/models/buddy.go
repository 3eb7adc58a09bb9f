package models

import "github.com/ball-buddies/storefront/internal/search"

// Rarity tiers a buddy can be sold at.
const (
	RarityCommon = "common"
	RarityRare   = "rare"
	RarityUltra  = "ultra"
)

// Buddy represents one sellable character ball in the catalog. The catalog
// itself is owned by the backend; instances held here are snapshot copies.
type Buddy struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Sport       string  `json:"sport"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Rarity      string  `json:"rarity"`
	InStock     bool    `json:"inStock"`
}

// ValidRarity reports whether r is one of the known rarity tiers.
func ValidRarity(r string) bool {
	return r == RarityCommon || r == RarityRare || r == RarityUltra
}

// SearchableFields lists the buddy fields consulted by the free-text filter.
func SearchableFields() []string {
	return []string{"name", "sport", "description"}
}

// BuddyFields registers typed extractors for every field addressable by
// search term or sort key.
func BuddyFields() search.FieldMap[Buddy] {
	return search.FieldMap[Buddy]{
		"name":        func(b Buddy) search.Value { return search.StringValue(b.Name) },
		"sport":       func(b Buddy) search.Value { return search.StringValue(b.Sport) },
		"description": func(b Buddy) search.Value { return search.StringValue(b.Description) },
		"price":       func(b Buddy) search.Value { return search.NumberValue(b.Price) },
		"rarity":      func(b Buddy) search.Value { return search.StringValue(b.Rarity) },
		"inStock":     func(b Buddy) search.Value { return search.BoolValue(b.InStock) },
	}
}
