package recipes

import (
	"context"
	"errors"

	recipesdomain "family-site-go/internal/domain/recipes"
	"gorm.io/gorm"
)

const searchClause = `(LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\' OR LOWER(ingredients) LIKE LOWER(?) ESCAPE '\')`

const maxTotalTimeClause = `(prep_time IS NOT NULL OR cook_time IS NOT NULL) AND COALESCE(prep_time, 0) + COALESCE(cook_time, 0) <= ?`

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, recipe *recipesdomain.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*recipesdomain.Recipe, error) {
	var recipe recipesdomain.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recipesdomain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *GormRepository) ListCatalog(ctx context.Context, query recipesdomain.CatalogQuery) ([]recipesdomain.Recipe, error) {
	q := r.db.WithContext(ctx).Model(&recipesdomain.Recipe{})
	if query.Status != "" {
		q = q.Where("status = ?", string(query.Status))
	}
	if query.Category != "" {
		q = q.Where("category = ?", string(query.Category))
	}
	if query.Search != "" {
		pattern := query.SearchPattern()
		q = q.Where(searchClause, pattern, pattern, pattern)
	}
	if query.MaxTotalTime > 0 {
		q = q.Where(maxTotalTimeClause, query.MaxTotalTime)
	}

	recipes := make([]recipesdomain.Recipe, 0)
	if err := q.Order("created_at DESC").Order("id DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *GormRepository) List(ctx context.Context, status *recipesdomain.Status) ([]recipesdomain.Recipe, error) {
	q := r.db.WithContext(ctx).Model(&recipesdomain.Recipe{})
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	recipes := make([]recipesdomain.Recipe, 0)
	if err := q.Order("created_at DESC").Order("id DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *GormRepository) Update(ctx context.Context, id int64, patch recipesdomain.Patch) error {
	updates := recipeColumns(patch)
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&recipesdomain.Recipe{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return recipesdomain.ErrRecipeNotFound
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&recipesdomain.Recipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return recipesdomain.ErrRecipeNotFound
	}
	return nil
}

// recipeColumns lists only the columns present in patch.
func recipeColumns(patch recipesdomain.Patch) map[string]any {
	updates := make(map[string]any)
	if v, ok := patch.Title.Get(); ok {
		updates["title"] = v
	}
	if v, ok := patch.Description.Get(); ok {
		updates["description"] = v
	}
	if v, ok := patch.Ingredients.Get(); ok {
		updates["ingredients"] = v
	}
	if v, ok := patch.Steps.Get(); ok {
		updates["steps"] = v
	}
	if v, ok := patch.ImageURL.Get(); ok {
		updates["image_url"] = nullable(v)
	}
	if v, ok := patch.Category.Get(); ok {
		updates["category"] = string(v)
	}
	if v, ok := patch.SubmittedBy.Get(); ok {
		updates["submitted_by"] = nullable(v)
	}
	if v, ok := patch.PrepTime.Get(); ok {
		updates["prep_time"] = nullable(v)
	}
	if v, ok := patch.CookTime.Get(); ok {
		updates["cook_time"] = nullable(v)
	}
	if v, ok := patch.Serves.Get(); ok {
		updates["serves"] = nullable(v)
	}
	if v, ok := patch.Status.Get(); ok {
		updates["status"] = string(v)
	}
	return updates
}

func nullable[T any](value *T) any {
	if value == nil {
		return nil
	}
	return *value
}
