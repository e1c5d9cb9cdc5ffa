package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.serverConfig.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.serverConfig.RequestTimeout))
	}

	router.Get("/version", h.getServerVersion)

	router.Route("/auth", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(newIPRateLimiter(h.serverConfig.AuthRateLimit).limit)
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		if h.appConfig.EnableReset {
			r.Delete("/reset", h.resetUsers)
		}

		r.With(h.auth).Get("/me", h.me)
	})

	router.Route("/posts", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.createPost)
		r.Get("/", h.getAllPosts)
		r.Get("/{id}", h.getPost)
		r.Patch("/{id}", h.updatePost)
		r.Delete("/{id}", h.deletePost)
	})

	router.Route("/comments", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.createComment)
		r.Delete("/{id}", h.deleteComment)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}
