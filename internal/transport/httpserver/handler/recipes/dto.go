package recipes

import (
	"time"

	recipesdomain "family-site-go/internal/domain/recipes"
	commonhandler "family-site-go/internal/transport/httpserver/handler/common"
	"family-site-go/pkg/optional"
)

type recipeResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	ImageURL    *string   `json:"imageUrl"`
	Category    string    `json:"category"`
	SubmittedBy *string   `json:"submittedBy"`
	PrepTime    *int      `json:"prepTime"`
	CookTime    *int      `json:"cookTime"`
	Serves      *int      `json:"serves"`
	Likes       int       `json:"likes"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type submitRecipeRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Ingredients commonhandler.TextLines `json:"ingredients"`
	Steps       commonhandler.TextLines `json:"steps"`
	ImageURL    *string                 `json:"imageUrl"`
	Category    *string                 `json:"category"`
	SubmittedBy *string                 `json:"submittedBy"`
	PrepTime    commonhandler.LooseInt  `json:"prepTime"`
	CookTime    commonhandler.LooseInt  `json:"cookTime"`
	Serves      commonhandler.LooseInt  `json:"serves"`
}

type submitRecipeResponse struct {
	Message  string `json:"message"`
	RecipeID int64  `json:"recipeId"`
	Status   string `json:"status"`
}

type updateRecipeRequest struct {
	Title       optional.Value[string]                  `json:"title"`
	Description optional.Value[string]                  `json:"description"`
	Ingredients optional.Value[commonhandler.TextLines] `json:"ingredients"`
	Steps       optional.Value[commonhandler.TextLines] `json:"steps"`
	ImageURL    optional.Value[*string]                 `json:"imageUrl"`
	Category    optional.Value[string]                  `json:"category"`
	SubmittedBy optional.Value[*string]                 `json:"submittedBy"`
	PrepTime    optional.Value[commonhandler.LooseInt]  `json:"prepTime"`
	CookTime    optional.Value[commonhandler.LooseInt]  `json:"cookTime"`
	Serves      optional.Value[commonhandler.LooseInt]  `json:"serves"`
	Status      optional.Value[string]                  `json:"status"`
}

type updateRecipeResponse struct {
	ID      int64          `json:"id"`
	Message string         `json:"message"`
	Recipe  recipeResponse `json:"recipe"`
}

type deleteRecipeResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func toRecipeResponse(recipe recipesdomain.Recipe) recipeResponse {
	return recipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Description: recipe.Description,
		Ingredients: nonNilLines(recipe.Ingredients),
		Steps:       nonNilLines(recipe.Steps),
		ImageURL:    recipe.ImageURL,
		Category:    string(recipe.Category),
		SubmittedBy: recipe.SubmittedBy,
		PrepTime:    recipe.PrepTime,
		CookTime:    recipe.CookTime,
		Serves:      recipe.Serves,
		Likes:       recipe.Likes,
		Status:      string(recipe.Status),
		CreatedAt:   recipe.CreatedAt,
	}
}

func toRecipeResponses(recipes []recipesdomain.Recipe) []recipeResponse {
	result := make([]recipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}
	return result
}

func nonNilLines(lines recipesdomain.Lines) []string {
	if lines == nil {
		return []string{}
	}
	return []string(lines)
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func textOf(lines commonhandler.TextLines) string {
	return lines.Text
}
