package family

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Publish creates an entry. Creation and publishing are the same action.
func (s *Service) Publish(ctx context.Context, input PublishInput) (*Item, error) {
	item, err := input.validate()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Item, error) {
	patch, err := input.validate()
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, input.ID, patch); err != nil {
		return nil, err
	}

	patch.ApplyTo(item)
	return item, nil
}

func (s *Service) ListPublished(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx, true)
}

func (s *Service) ListAll(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx, false)
}
