package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/frontridge/frontridge-api/internal/core/domain"
	"github.com/frontridge/frontridge-api/internal/core/ports"
)

// WorkService implements the portfolio CRUD use cases on top of the works
// repository, with a read-through cache in front of List.
type WorkService struct {
	repo   ports.WorkRepository
	cache  ports.WorksCache
	logger zerolog.Logger
}

func NewWorkService(repo ports.WorkRepository, cache ports.WorksCache, logger zerolog.Logger) *WorkService {
	return &WorkService{repo: repo, cache: cache, logger: logger}
}

// List returns all works, newest first. Cache errors are logged and treated
// as misses; the repository stays the source of truth.
func (s *WorkService) List(ctx context.Context) ([]*domain.Work, error) {
	if works, ok, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("works cache read failed, falling through")
	} else if ok {
		return works, nil
	}

	works, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, w := range works {
		w.Category = domain.NormalizeCategory(w.Category)
	}

	if err := s.cache.Set(ctx, works); err != nil {
		s.logger.Warn().Err(err).Msg("works cache write failed")
	}
	return works, nil
}

// Create validates the required fields and inserts a new work. The image
// URLs must reference already-completed uploads.
func (s *WorkService) Create(ctx context.Context, input ports.CreateWorkInput) (*domain.Work, error) {
	name := strings.TrimSpace(input.Name)
	titleImageURL := strings.TrimSpace(input.TitleImageURL)
	if name == "" || titleImageURL == "" {
		return nil, domain.NewValidationError("name and titleImageUrl are required")
	}

	category := domain.Category(strings.TrimSpace(input.Category))
	if category != "" && !category.IsValid() {
		return nil, domain.NewValidationError("category must be one of: %s, %s, %s",
			domain.CategoryRestaurants, domain.CategoryHealthcare, domain.CategoryOffices)
	}

	work := &domain.Work{
		Name:             name,
		Description:      strings.TrimSpace(input.Description),
		Category:         domain.NormalizeCategory(category),
		TitleImageURL:    titleImageURL,
		GalleryImageURLs: filterEmpty(input.GalleryImageURLs),
		CreatedAt:        time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, work)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert work")
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("work_id", created.ID).Str("name", created.Name).Msg("work created")
	return created, nil
}

// Update applies patch semantics: only fields present and non-empty after
// trimming are written. A patch with no applicable field is rejected.
func (s *WorkService) Update(ctx context.Context, id string, input ports.UpdateWorkInput) (*domain.Work, error) {
	patch := ports.WorkPatch{}

	if v := trimmed(input.Name); v != nil {
		patch.Name = v
	}
	if v := trimmed(input.Description); v != nil {
		patch.Description = v
	}
	if v := trimmed(input.TitleImageURL); v != nil {
		patch.TitleImageURL = v
	}
	if v := trimmed(input.Category); v != nil {
		category := domain.Category(*v)
		if !category.IsValid() {
			return nil, domain.NewValidationError("category must be one of: %s, %s, %s",
				domain.CategoryRestaurants, domain.CategoryHealthcare, domain.CategoryOffices)
		}
		patch.Category = &category
	}
	if input.HasGallery {
		patch.GalleryImageURLs = filterEmpty(input.GalleryImageURLs)
		patch.HasGallery = true
	}

	if patch.IsEmpty() {
		return nil, domain.NewValidationError("no valid fields provided")
	}

	updated, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("work_id", id).Msg("work updated")
	updated.Category = domain.NormalizeCategory(updated.Category)
	return updated, nil
}

// Delete removes a work permanently.
func (s *WorkService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("work_id", id).Msg("work deleted")
	return nil
}

func (s *WorkService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("works cache invalidation failed")
	}
}

// trimmed returns a pointer to the trimmed string when present and non-empty,
// nil otherwise.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func filterEmpty(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			out = append(out, u)
		}
	}
	return out
}
