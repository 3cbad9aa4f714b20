package httpserver

import (
	"net/http"
	"time"

	"family-site-go/internal/config"
	"family-site-go/internal/telemetry"
	"family-site-go/internal/transport/httpserver/handler"
	"family-site-go/internal/transport/httpserver/middleware"
	"family-site-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Metrics is the observer behind the request middleware and /metrics.
type Metrics interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

func NewRouter(cfg config.Config, handlers *handler.Handlers, sessions middleware.SessionChecker, metrics Metrics, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	if metrics != nil {
		r.Use(middleware.Metrics(metrics))
	}
	if cfg.OTEL.Enabled {
		r.Use(telemetry.HTTPMiddleware(cfg.OTEL.ServiceName))
	}
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORSOrigins))

	r.Get("/health", handlers.Common.Health)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/recipes", handlers.Recipes.ListRecipes)
		r.Post("/recipes", handlers.Recipes.SubmitRecipe)
		r.Get("/recipes/{id}", handlers.Recipes.GetRecipe)
		r.Get("/family", handlers.Family.ListPublished)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", handlers.Admin.Login)
			r.Get("/check-auth", handlers.Admin.CheckAuth)

			admin := middleware.NewAdminAuth(sessions, log)
			r.Group(func(r chi.Router) {
				r.Use(admin.Middleware)

				r.Post("/logout", handlers.Admin.Logout)

				r.Get("/recipes", handlers.Recipes.ListAllRecipes)
				r.Patch("/recipes/{id}", handlers.Recipes.UpdateRecipe)
				r.Delete("/recipes/{id}", handlers.Recipes.DeleteRecipe)

				r.Get("/family", handlers.Family.ListAll)
				r.Post("/family", handlers.Family.Publish)
				r.Patch("/family/{id}", handlers.Family.Update)
			})
		})
	})

	return r
}
