package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hostelhq/hostelhq/internal/auth"
	authHandler "github.com/hostelhq/hostelhq/internal/http/auth"
	dashboardHandler "github.com/hostelhq/hostelhq/internal/http/dashboard"
	residentHandler "github.com/hostelhq/hostelhq/internal/http/resident"
	roomHandler "github.com/hostelhq/hostelhq/internal/http/room"
	uploadHandler "github.com/hostelhq/hostelhq/internal/http/upload"
)

func New(
	authSvc *auth.Service,
	authV1 *authHandler.Handler,
	residentsV1 *residentHandler.Handler,
	roomsV1 *roomHandler.Handler,
	dashboardV1 *dashboardHandler.Handler,
	uploadV1 *uploadHandler.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/auth", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		authV1.Routes(r)
	})

	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(authSvc))

		r.Route("/user", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			residentsV1.Routes(r)
		})

		r.Route("/room", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			roomsV1.Routes(r)
		})

		r.Route("/admin/dashboard", dashboardV1.Routes)

		r.Route("/upload", uploadV1.Routes)
	})

	return router
}
