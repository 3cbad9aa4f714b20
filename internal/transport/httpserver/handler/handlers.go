package handler

import (
	adminhandler "family-site-go/internal/transport/httpserver/handler/admin"
	commonhandler "family-site-go/internal/transport/httpserver/handler/common"
	familyhandler "family-site-go/internal/transport/httpserver/handler/family"
	recipeshandler "family-site-go/internal/transport/httpserver/handler/recipes"
)

type Handlers struct {
	Common  *commonhandler.Handlers
	Recipes *recipeshandler.Handlers
	Family  *familyhandler.Handlers
	Admin   *adminhandler.Handlers
}

func New(common *commonhandler.Handlers, recipes *recipeshandler.Handlers, family *familyhandler.Handlers, admin *adminhandler.Handlers) *Handlers {
	return &Handlers{
		Common:  common,
		Recipes: recipes,
		Family:  family,
		Admin:   admin,
	}
}
