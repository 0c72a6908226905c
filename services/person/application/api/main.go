package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/personregistry/pkg/app"
	"github.com/ghuser/personregistry/services/person/application/handlers"
	appsvcs "github.com/ghuser/personregistry/services/person/application/services"
)

// PersonRoutes registers the person endpoints on the provided chi router.
func PersonRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	RegisterRoutes(r, svcs)
}

// RegisterRoutes mounts the person endpoints for an already-wired service
// container. Split out so tests can mount handlers over fakes.
func RegisterRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/person", func(r chi.Router) {
		r.Get("/", handlers.NewGetPersonsHandler(svcs).Execute)
		r.Post("/", handlers.NewPostPersonHandler(svcs).Execute)
		r.Put("/", handlers.NewPutPersonHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeletePersonHandler(svcs).Execute)
	})
	r.Post("/persons", handlers.NewPostPersonsHandler(svcs).Execute)
}
