package handlers

import "github.com/ball-buddies/storefront/internal/models"

type BuddyRequest struct {
	Name        string  `json:"name"`
	Sport       string  `json:"sport"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Rarity      string  `json:"rarity"`
	InStock     bool    `json:"inStock"`
}

type Meta struct {
	ResultCount int `json:"result_count"`
	TotalCount  int `json:"total_count"`
}

type BuddiesSearchResult struct {
	Data []models.Buddy `json:"data"`
	Meta Meta           `json:"meta"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type HealthResult struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}
