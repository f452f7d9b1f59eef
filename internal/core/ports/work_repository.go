package ports

import (
	"context"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

// WorkPatch carries the fields of a partial update. Nil fields are left
// untouched; a non-nil GalleryImageURLs replaces the whole list.
type WorkPatch struct {
	Name             *string
	Description      *string
	Category         *domain.Category
	TitleImageURL    *string
	GalleryImageURLs []string
	HasGallery       bool
}

// IsEmpty reports whether the patch carries no field at all.
func (p WorkPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil &&
		p.TitleImageURL == nil && !p.HasGallery
}

// WorkRepository defines persistence operations for portfolio works.
type WorkRepository interface {
	// List returns all works sorted by creation time, newest first. The
	// relative order of equal timestamps is stable within a single call.
	List(ctx context.Context) ([]*domain.Work, error)
	// Insert stores a new work and returns it with the store-assigned id.
	Insert(ctx context.Context, w *domain.Work) (*domain.Work, error)
	// UpdateByID applies the patch to the work with the given id and returns
	// the updated document. Returns domain.ErrInvalidWorkID when the id does
	// not parse and domain.ErrWorkNotFound when no document matches.
	UpdateByID(ctx context.Context, id string, patch WorkPatch) (*domain.Work, error)
	// DeleteByID removes the work with the given id. Same error contract as
	// UpdateByID.
	DeleteByID(ctx context.Context, id string) error
}
