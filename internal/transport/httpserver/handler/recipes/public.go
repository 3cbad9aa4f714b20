package recipes

import (
	"net/http"

	recipesdomain "family-site-go/internal/domain/recipes"
	"family-site-go/internal/domain/validation"
	commonhandler "family-site-go/internal/transport/httpserver/handler/common"
)

// ListRecipes returns approved recipes. Unknown query parameters are ignored.
func (h *Handlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := recipesdomain.CatalogFilter{
		Category:     query.Get("category"),
		Search:       query.Get("search"),
		MaxTotalTime: query.Get("maxTotalTime"),
	}

	result, err := h.Recipes.ListApproved(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.log, "recipes.list", err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeResponses(result))
}

func (h *Handlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecipeID(w, r)
	if !ok {
		return
	}

	result, err := h.Recipes.GetApproved(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, "recipes.get", err, "recipe_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeResponse(*result))
}

func (h *Handlers) SubmitRecipe(w http.ResponseWriter, r *http.Request) {
	var req submitRecipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeServiceError(w, h.log, "recipes.submit", err)
		return
	}

	result, err := h.Recipes.Submit(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, "recipes.submit", err)
		return
	}

	h.log.Info("recipes.submit: recipe submitted", "recipe_id", result.ID, "category", result.Category)
	writeJSON(w, http.StatusCreated, submitRecipeResponse{
		Message:  "Recipe submitted for review",
		RecipeID: result.ID,
		Status:   string(result.Status),
	})
}

func (req submitRecipeRequest) toInput() (recipesdomain.SubmitInput, error) {
	prepTime, err := looseMinutes("prepTime", "Prep time", req.PrepTime)
	if err != nil {
		return recipesdomain.SubmitInput{}, err
	}
	cookTime, err := looseMinutes("cookTime", "Cook time", req.CookTime)
	if err != nil {
		return recipesdomain.SubmitInput{}, err
	}
	serves, err := looseServes(req.Serves)
	if err != nil {
		return recipesdomain.SubmitInput{}, err
	}

	return recipesdomain.SubmitInput{
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients.Text,
		Steps:       req.Steps.Text,
		ImageURL:    derefString(req.ImageURL),
		Category:    derefString(req.Category),
		SubmittedBy: derefString(req.SubmittedBy),
		PrepTime:    prepTime,
		CookTime:    cookTime,
		Serves:      serves,
	}, nil
}

func looseMinutes(field, label string, value commonhandler.LooseInt) (*int, error) {
	if value.Invalid {
		return nil, validation.New(field, label+" must be a non-negative number")
	}
	return value.Value, nil
}

func looseServes(value commonhandler.LooseInt) (*int, error) {
	if value.Invalid {
		return nil, validation.New("serves", "Serves must be a positive number")
	}
	return value.Value, nil
}
