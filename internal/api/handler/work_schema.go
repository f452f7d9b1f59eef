package handler

import (
	"time"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

// --- Request / Response types ---

type createWorkRequest struct {
	Name             string   `json:"name"             validate:"required"`
	Description      string   `json:"description"`
	Category         string   `json:"category"         validate:"omitempty,oneof=Restaurants Healthcare 'Commercial Offices'"`
	TitleImageURL    string   `json:"titleImageUrl"    validate:"required"`
	GalleryImageURLs []string `json:"galleryImageUrls"`
}

// updateWorkRequest distinguishes absent fields (nil) from provided ones so
// the service can apply patch semantics.
type updateWorkRequest struct {
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	Category         *string   `json:"category"`
	TitleImageURL    *string   `json:"titleImageUrl"`
	GalleryImageURLs *[]string `json:"galleryImageUrls"`
}

// workResponse is the public view of a work record. It carries no
// internal-only fields.
type workResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	TitleImageURL    string     `json:"titleImageUrl"`
	GalleryImageURLs []string   `json:"galleryImageUrls"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

type workEnvelope struct {
	Work workResponse `json:"work"`
}

type listWorksResponse struct {
	Works []workResponse `json:"works"`
}

func toWorkResponse(w *domain.Work) workResponse {
	gallery := w.GalleryImageURLs
	if gallery == nil {
		gallery = []string{}
	}
	return workResponse{
		ID:               w.ID,
		Name:             w.Name,
		Description:      w.Description,
		Category:         string(w.Category),
		TitleImageURL:    w.TitleImageURL,
		GalleryImageURLs: gallery,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}
