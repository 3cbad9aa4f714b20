package recipes

import "context"

type Repository interface {
	Create(ctx context.Context, recipe *Recipe) error
	GetByID(ctx context.Context, id int64) (*Recipe, error)
	ListCatalog(ctx context.Context, query CatalogQuery) ([]Recipe, error)
	List(ctx context.Context, status *Status) ([]Recipe, error)
	Update(ctx context.Context, id int64, patch Patch) error
	Delete(ctx context.Context, id int64) error
}
