package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/blog-api/internal/api"
	apiMiddleware "github.com/phrazzld/blog-api/internal/api/middleware"
)

// corsMaxAge is how long browsers may cache a preflight response, in seconds.
const corsMaxAge = 300

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.allowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           corsMaxAge,
	}))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	api.RegisterRoutes(r, api.Handlers{
		Users:      api.NewUserHandler(app.userService),
		Auth:       api.NewAuthHandler(app.userService, app.jwtService),
		Posts:      api.NewPostHandler(app.postService),
		Comments:   api.NewCommentHandler(app.postService),
		Categories: api.NewCategoryHandler(app.postService),
	}, authMiddleware.Authenticate)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

func (app *application) allowedOrigins() []string {
	if len(app.config.Server.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return app.config.Server.CORSAllowedOrigins
}
