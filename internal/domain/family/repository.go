package family

import "context"

type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id int64) (*Item, error)
	List(ctx context.Context, publishedOnly bool) ([]Item, error)
	Update(ctx context.Context, id int64, patch Patch) error
}
