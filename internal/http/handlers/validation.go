package handlers

import (
	"strings"

	"github.com/ball-buddies/storefront/internal/client"
	"github.com/ball-buddies/storefront/internal/models"
)

type BuddyValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateBuddy(b BuddyRequest) []BuddyValidationError {
	errs := []BuddyValidationError{}
	if strings.TrimSpace(b.Name) == "" {
		errs = append(errs, BuddyValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(b.Sport) == "" {
		errs = append(errs, BuddyValidationError{Field: "Sport", Description: "Sport is required"})
	}
	if strings.TrimSpace(b.Description) == "" {
		errs = append(errs, BuddyValidationError{Field: "Description", Description: "Description is required"})
	}
	if b.Price <= 0 {
		errs = append(errs, BuddyValidationError{Field: "Price", Description: "Price must be greater than 0"})
	}
	if strings.TrimSpace(b.Image) == "" {
		errs = append(errs, BuddyValidationError{Field: "Image", Description: "Image URL is required"})
	}
	if !models.ValidRarity(b.Rarity) {
		errs = append(errs, BuddyValidationError{Field: "Rarity", Description: "Rarity must be common, rare, or ultra"})
	}
	return errs
}

// validateBuddyPatch checks only the fields present in a partial update.
func validateBuddyPatch(p client.BuddyPatch) []BuddyValidationError {
	errs := []BuddyValidationError{}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, BuddyValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Sport != nil && strings.TrimSpace(*p.Sport) == "" {
		errs = append(errs, BuddyValidationError{Field: "Sport", Description: "Sport is required"})
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		errs = append(errs, BuddyValidationError{Field: "Description", Description: "Description is required"})
	}
	if p.Price != nil && *p.Price <= 0 {
		errs = append(errs, BuddyValidationError{Field: "Price", Description: "Price must be greater than 0"})
	}
	if p.Image != nil && strings.TrimSpace(*p.Image) == "" {
		errs = append(errs, BuddyValidationError{Field: "Image", Description: "Image URL is required"})
	}
	if p.Rarity != nil && !models.ValidRarity(*p.Rarity) {
		errs = append(errs, BuddyValidationError{Field: "Rarity", Description: "Rarity must be common, rare, or ultra"})
	}
	return errs
}
