package recipes

import (
	"net/http"

	recipesdomain "family-site-go/internal/domain/recipes"
	"family-site-go/pkg/optional"
)

func (h *Handlers) ListAllRecipes(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	result, err := h.Recipes.ListAll(r.Context(), status)
	if err != nil {
		writeServiceError(w, h.log, "admin.recipes.list", err, "status", status)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeResponses(result))
}

func (h *Handlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecipeID(w, r)
	if !ok {
		return
	}

	var req updateRecipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.toInput(id)
	if err != nil {
		writeServiceError(w, h.log, "admin.recipes.update", err, "recipe_id", id)
		return
	}

	result, err := h.Recipes.Update(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, "admin.recipes.update", err, "recipe_id", id)
		return
	}

	h.log.Info("admin.recipes.update: recipe updated", "recipe_id", id, "status", result.Status)
	writeJSON(w, http.StatusOK, updateRecipeResponse{
		ID:      id,
		Message: "Recipe updated",
		Recipe:  toRecipeResponse(*result),
	})
}

func (h *Handlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecipeID(w, r)
	if !ok {
		return
	}

	if err := h.Recipes.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.log, "admin.recipes.delete", err, "recipe_id", id)
		return
	}

	h.log.Info("admin.recipes.delete: recipe deleted", "recipe_id", id)
	writeJSON(w, http.StatusOK, deleteRecipeResponse{ID: id, Message: "Recipe deleted"})
}

func (req updateRecipeRequest) toInput(id int64) (recipesdomain.UpdateInput, error) {
	input := recipesdomain.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Ingredients: optional.Map(req.Ingredients, textOf),
		Steps:       optional.Map(req.Steps, textOf),
		ImageURL:    optional.Map(req.ImageURL, derefString),
		Category:    req.Category,
		SubmittedBy: optional.Map(req.SubmittedBy, derefString),
		Status:      req.Status,
	}

	if v, ok := req.PrepTime.Get(); ok {
		minutes, err := looseMinutes("prepTime", "Prep time", v)
		if err != nil {
			return recipesdomain.UpdateInput{}, err
		}
		input.PrepTime = optional.Of(minutes)
	}
	if v, ok := req.CookTime.Get(); ok {
		minutes, err := looseMinutes("cookTime", "Cook time", v)
		if err != nil {
			return recipesdomain.UpdateInput{}, err
		}
		input.CookTime = optional.Of(minutes)
	}
	if v, ok := req.Serves.Get(); ok {
		serves, err := looseServes(v)
		if err != nil {
			return recipesdomain.UpdateInput{}, err
		}
		input.Serves = optional.Of(serves)
	}

	return input, nil
}
