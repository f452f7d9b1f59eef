package ports

import (
	"context"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

// CreateWorkInput carries all data needed to create a new portfolio work.
// Image URLs reference uploads completed beforehand through the image
// service; the create call never receives raw bytes.
type CreateWorkInput struct {
	Name             string
	Description      string
	Category         string
	TitleImageURL    string
	GalleryImageURLs []string
}

// UpdateWorkInput carries a partial update. Pointer fields distinguish
// "absent" from "present but empty"; absent fields are not applied.
type UpdateWorkInput struct {
	Name             *string
	Description      *string
	Category         *string
	TitleImageURL    *string
	GalleryImageURLs []string
	HasGallery       bool
}

// WorkService defines use-case operations for portfolio works.
type WorkService interface {
	List(ctx context.Context) ([]*domain.Work, error)
	Create(ctx context.Context, input CreateWorkInput) (*domain.Work, error)
	Update(ctx context.Context, id string, input UpdateWorkInput) (*domain.Work, error)
	Delete(ctx context.Context, id string) error
}
