package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/stitchworks/atelier/internal/http/auth"
	"github.com/stitchworks/atelier/internal/http/driver"
	"github.com/stitchworks/atelier/internal/http/imports"
	"github.com/stitchworks/atelier/internal/http/productions"
	"github.com/stitchworks/atelier/internal/http/seamstresses"
	"github.com/stitchworks/atelier/internal/http/shipments"
)

func New(
	authMW *auth.Middleware,
	shipmentsV1 *shipments.Handler,
	seamstressesV1 *seamstresses.Handler,
	productionsV1 *productions.Handler,
	importsV1 *imports.Handler,
	driverV1 *driver.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authMW.Authenticate)

		r.Route("/shipments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			shipmentsV1.Routes(r)
		})

		r.Route("/seamstresses", seamstressesV1.Routes)

		r.Route("/productions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			productionsV1.Routes(r)
		})

		r.Route("/imports", func(r chi.Router) {
			r.Use(authMW.RequireRole(auth.RoleAdmin))
			importsV1.Routes(r)
		})

		r.Route("/driver", func(r chi.Router) {
			r.Use(authMW.RequireRole(auth.RoleDriver))
			driverV1.Routes(r)
		})
	})

	return router
}
