package family

import (
	"context"
	"errors"

	familydomain "family-site-go/internal/domain/family"
	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, item *familydomain.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*familydomain.Item, error) {
	var item familydomain.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormRepository) List(ctx context.Context, publishedOnly bool) ([]familydomain.Item, error) {
	q := r.db.WithContext(ctx).Model(&familydomain.Item{})
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}

	items := make([]familydomain.Item, 0)
	if err := q.Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) Update(ctx context.Context, id int64, patch familydomain.Patch) error {
	updates := make(map[string]any)
	if v, ok := patch.Title.Get(); ok {
		updates["title"] = v
	}
	if v, ok := patch.Summary.Get(); ok {
		updates["summary"] = v
	}
	if v, ok := patch.Content.Get(); ok {
		updates["content"] = nullableString(v)
	}
	if v, ok := patch.MediaType.Get(); ok {
		updates["media_type"] = string(v)
	}
	if v, ok := patch.MediaURL.Get(); ok {
		updates["media_url"] = nullableString(v)
	}
	if v, ok := patch.IsPublished.Get(); ok {
		updates["is_published"] = v
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&familydomain.Item{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return familydomain.ErrItemNotFound
	}
	return nil
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
