package recipes

import (
	"context"

	"family-site-go/internal/domain/validation"
)

type Service struct {
	repo     Repository
	recorder Recorder
}

func NewService(repo Repository, recorder Recorder) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{repo: repo, recorder: recorder}
}

// Submit stores a public submission. New recipes always start pending.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*Recipe, error) {
	recipe, err := input.validate()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	s.recorder.RecipeSubmitted(recipe.Category)
	return recipe, nil
}

func (s *Service) ListApproved(ctx context.Context, filter CatalogFilter) ([]Recipe, error) {
	return s.repo.ListCatalog(ctx, BuildCatalogQuery(filter))
}

// GetApproved returns a recipe only when it is publicly visible.
func (s *Service) GetApproved(ctx context.Context, id int64) (*Recipe, error) {
	recipe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.Status != StatusApproved {
		return nil, ErrRecipeNotFound
	}
	return recipe, nil
}

// ListAll returns every recipe, optionally narrowed to one status. An empty
// status means no narrowing.
func (s *Service) ListAll(ctx context.Context, status string) ([]Recipe, error) {
	if status == "" {
		return s.repo.List(ctx, nil)
	}

	parsed, ok := ParseStatus(status)
	if !ok {
		return nil, validation.New("status", "Invalid status")
	}
	return s.repo.List(ctx, &parsed)
}

// Update applies the supplied fields. Any status may move to any other.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Recipe, error) {
	patch, err := input.validate()
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, input.ID, patch); err != nil {
		return nil, err
	}

	previous := current.Status
	patch.ApplyTo(current)
	if current.Status != previous {
		s.recorder.RecipeStatusChanged(previous, current.Status)
	}

	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.RecipeDeleted()
	return nil
}
