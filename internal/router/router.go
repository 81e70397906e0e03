package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/auth"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/config"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/middlewares"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/progress"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/user"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

type RouterConfig struct {
	Settings        *config.Settings
	UserHandler     *user.Handler
	WhygoHandler    *whygo.Handler
	ProgressHandler *progress.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.Settings.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/", whygo.Routes(cfg.WhygoHandler))

		r.Route("/outcomes", func(r chi.Router) {
			r.Get("/{id}", cfg.WhygoHandler.GetOutcome)
			r.Get("/{id}/history", cfg.ProgressHandler.OutcomeHistory)
			r.Post("/{id}/progress", cfg.ProgressHandler.RecordProgress)
		})
	})

	return r
}
