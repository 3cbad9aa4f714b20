package recipes

import (
	recipesdomain "family-site-go/internal/domain/recipes"
	"family-site-go/pkg/logger"
)

type Handlers struct {
	Recipes *recipesdomain.Service
	log     logger.Logger
}

func New(recipes *recipesdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Recipes: recipes,
		log:     log,
	}
}
