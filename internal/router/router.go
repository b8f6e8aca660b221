package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/forumhub-dev/forumhub/internal/middleware"
	"github.com/forumhub-dev/forumhub/internal/middleware/metrics"
	"github.com/forumhub-dev/forumhub/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()
	cfg := deps.Config

	r.Use(mw.RequestId)
	r.Use(chi_middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(mw.RateLimitByIP(cfg.Public.RateLimitRPS, cfg.Public.RateLimitBurst))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	needAuth := mw.NeedAuth(deps.Jwt)
	adminOnly := mw.AdminOnly(deps.Jwt)

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(adminOnly).Get("/", h.ListUsers)
			r.With(needAuth).Get("/{id}", h.GetUser)
			r.With(needAuth).Put("/{id}", h.UpdateUser)
			r.With(adminOnly).Delete("/{id}", h.DeleteUser)
		})

		r.Route("/courses", func(r chi.Router) {
			r.With(needAuth).Get("/", h.ListCourses)
			r.With(adminOnly).Post("/", h.CreateCourse)
		})

		r.Route("/topics", func(r chi.Router) {
			r.With(needAuth).Post("/", h.CreateTopic)
			r.With(needAuth).Get("/active", h.ListActiveTopics)
			r.With(adminOnly).Get("/admin", h.ListAllTopics)
			r.With(needAuth).Get("/{id}", h.GetTopicDetail)
			r.With(adminOnly).Put("/{id}", h.UpdateTopic)
			r.With(adminOnly).Delete("/{id}", h.DeleteTopic)
			r.With(needAuth).Post("/{id}/replies", h.CreateReply)
		})
	})

	return r
}
