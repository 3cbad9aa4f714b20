package recipes

import (
	"strings"

	"family-site-go/internal/domain/validation"
	"family-site-go/pkg/optional"
)

type SubmitInput struct {
	Title       string
	Description string
	Ingredients string
	Steps       string
	ImageURL    string
	Category    string
	SubmittedBy string
	PrepTime    *int
	CookTime    *int
	Serves      *int
}

// UpdateInput carries only the fields an admin supplied. Blank ImageURL or
// SubmittedBy and nil numbers clear the column.
type UpdateInput struct {
	ID          int64
	Title       optional.Value[string]
	Description optional.Value[string]
	Ingredients optional.Value[string]
	Steps       optional.Value[string]
	ImageURL    optional.Value[string]
	Category    optional.Value[string]
	SubmittedBy optional.Value[string]
	PrepTime    optional.Value[*int]
	CookTime    optional.Value[*int]
	Serves      optional.Value[*int]
	Status      optional.Value[string]
}

// Patch is a validated UpdateInput.
type Patch struct {
	Title       optional.Value[string]
	Description optional.Value[string]
	Ingredients optional.Value[Lines]
	Steps       optional.Value[Lines]
	ImageURL    optional.Value[*string]
	Category    optional.Value[Category]
	SubmittedBy optional.Value[*string]
	PrepTime    optional.Value[*int]
	CookTime    optional.Value[*int]
	Serves      optional.Value[*int]
	Status      optional.Value[Status]
}

func (p Patch) Empty() bool {
	return !p.Title.IsSet() &&
		!p.Description.IsSet() &&
		!p.Ingredients.IsSet() &&
		!p.Steps.IsSet() &&
		!p.ImageURL.IsSet() &&
		!p.Category.IsSet() &&
		!p.SubmittedBy.IsSet() &&
		!p.PrepTime.IsSet() &&
		!p.CookTime.IsSet() &&
		!p.Serves.IsSet() &&
		!p.Status.IsSet()
}

func (p Patch) ApplyTo(recipe *Recipe) {
	if v, ok := p.Title.Get(); ok {
		recipe.Title = v
	}
	if v, ok := p.Description.Get(); ok {
		recipe.Description = v
	}
	if v, ok := p.Ingredients.Get(); ok {
		recipe.Ingredients = v
	}
	if v, ok := p.Steps.Get(); ok {
		recipe.Steps = v
	}
	if v, ok := p.ImageURL.Get(); ok {
		recipe.ImageURL = v
	}
	if v, ok := p.Category.Get(); ok {
		recipe.Category = v
	}
	if v, ok := p.SubmittedBy.Get(); ok {
		recipe.SubmittedBy = v
	}
	if v, ok := p.PrepTime.Get(); ok {
		recipe.PrepTime = v
	}
	if v, ok := p.CookTime.Get(); ok {
		recipe.CookTime = v
	}
	if v, ok := p.Serves.Get(); ok {
		recipe.Serves = v
	}
	if v, ok := p.Status.Get(); ok {
		recipe.Status = v
	}
}

func (in SubmitInput) validate() (*Recipe, error) {
	title, err := requireText("title", "Title is required", in.Title)
	if err != nil {
		return nil, err
	}
	description, err := requireText("description", "Description is required", in.Description)
	if err != nil {
		return nil, err
	}
	ingredients, err := requireLines("ingredients", "Ingredients", in.Ingredients)
	if err != nil {
		return nil, err
	}
	steps, err := requireLines("steps", "Steps", in.Steps)
	if err != nil {
		return nil, err
	}

	category := DefaultCategory
	if strings.TrimSpace(in.Category) != "" {
		parsed, ok := ParseCategory(in.Category)
		if !ok {
			return nil, validation.New("category", "Invalid category")
		}
		category = parsed
	}

	if err := validateMinutes("prepTime", "Prep time", in.PrepTime); err != nil {
		return nil, err
	}
	if err := validateMinutes("cookTime", "Cook time", in.CookTime); err != nil {
		return nil, err
	}
	if err := validateServes(in.Serves); err != nil {
		return nil, err
	}

	return &Recipe{
		Title:       title,
		Description: description,
		Ingredients: ingredients,
		Steps:       steps,
		ImageURL:    nullableText(in.ImageURL),
		Category:    category,
		SubmittedBy: nullableText(in.SubmittedBy),
		PrepTime:    in.PrepTime,
		CookTime:    in.CookTime,
		Serves:      in.Serves,
		Status:      StatusPending,
	}, nil
}

func (in UpdateInput) validate() (Patch, error) {
	var patch Patch

	if v, ok := in.Status.Get(); ok {
		status, valid := ParseStatus(v)
		if !valid {
			return Patch{}, validation.New("status", "Invalid status")
		}
		patch.Status = optional.Of(status)
	}
	if v, ok := in.Title.Get(); ok {
		title, err := requireText("title", "Title is required", v)
		if err != nil {
			return Patch{}, err
		}
		patch.Title = optional.Of(title)
	}
	if v, ok := in.Description.Get(); ok {
		description, err := requireText("description", "Description is required", v)
		if err != nil {
			return Patch{}, err
		}
		patch.Description = optional.Of(description)
	}
	if v, ok := in.Ingredients.Get(); ok {
		lines, err := requireLines("ingredients", "Ingredients", v)
		if err != nil {
			return Patch{}, err
		}
		patch.Ingredients = optional.Of(lines)
	}
	if v, ok := in.Steps.Get(); ok {
		lines, err := requireLines("steps", "Steps", v)
		if err != nil {
			return Patch{}, err
		}
		patch.Steps = optional.Of(lines)
	}
	patch.ImageURL = optional.Map(in.ImageURL, nullableText)
	if v, ok := in.Category.Get(); ok {
		category, valid := ParseCategory(v)
		if !valid {
			return Patch{}, validation.New("category", "Invalid category")
		}
		patch.Category = optional.Of(category)
	}
	patch.SubmittedBy = optional.Map(in.SubmittedBy, nullableText)
	if v, ok := in.PrepTime.Get(); ok {
		if err := validateMinutes("prepTime", "Prep time", v); err != nil {
			return Patch{}, err
		}
		patch.PrepTime = in.PrepTime
	}
	if v, ok := in.CookTime.Get(); ok {
		if err := validateMinutes("cookTime", "Cook time", v); err != nil {
			return Patch{}, err
		}
		patch.CookTime = in.CookTime
	}
	if v, ok := in.Serves.Get(); ok {
		if err := validateServes(v); err != nil {
			return Patch{}, err
		}
		patch.Serves = in.Serves
	}

	if patch.Empty() {
		return Patch{}, validation.New("", "No valid fields to update")
	}
	return patch, nil
}

func requireText(field, message, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", validation.New(field, message)
	}
	return value, nil
}

func requireLines(field, label, text string) (Lines, error) {
	lines := ParseLines(text)
	if len(lines) == 0 {
		return nil, validation.New(field, label+" must contain at least one non-empty line")
	}
	return lines, nil
}

func validateMinutes(field, label string, value *int) error {
	if value != nil && *value < 0 {
		return validation.New(field, label+" must be a non-negative number")
	}
	return nil
}

func validateServes(value *int) error {
	if value != nil && *value < 1 {
		return validation.New("serves", "Serves must be a positive number")
	}
	return nil
}

func nullableText(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
