package domain

import (
	"errors"
	"fmt"
	"time"
)

// Category classifies a portfolio work on the public site.
type Category string

const (
	CategoryRestaurants Category = "Restaurants"
	CategoryHealthcare  Category = "Healthcare"
	CategoryOffices     Category = "Commercial Offices"
)

// validCategories is the closed set accepted on create and update.
var validCategories = map[Category]struct{}{
	CategoryRestaurants: {},
	CategoryHealthcare:  {},
	CategoryOffices:     {},
}

// IsValid reports whether the category is a member of the closed set.
func (c Category) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

// NormalizeCategory returns the category unchanged when valid and the
// Restaurants default otherwise. Documents written before the category field
// existed are read back through this.
func NormalizeCategory(c Category) Category {
	if c.IsValid() {
		return c
	}
	return CategoryRestaurants
}

var ErrWorkNotFound = errors.New("work not found")
var ErrInvalidWorkID = errors.New("invalid work id")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrNotConfigured = errors.New("required configuration is missing")

// ValidationError reports malformed or missing client input. The reason is
// safe to return to the caller verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// UploadError wraps a failure reported by the object storage provider.
type UploadError struct {
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "image upload failed"
}

func (e *UploadError) Unwrap() error { return e.Err }

// Work is a single portfolio entry shown on the public site.
//
// Name and TitleImageURL are never empty for a persisted work, and
// GalleryImageURLs contains no empty entries. ID is assigned by the store on
// insert and never reused; CreatedAt is set once, UpdatedAt on every update.
type Work struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Category         Category   `json:"category"`
	TitleImageURL    string     `json:"titleImageUrl"`
	GalleryImageURLs []string   `json:"galleryImageUrls"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}
