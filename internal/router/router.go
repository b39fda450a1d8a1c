package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/bibliotech/recommendation-service/docs"
	"github.com/bibliotech/recommendation-service/internal/handler"
	"github.com/bibliotech/recommendation-service/internal/metrics"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	// Routes
	r.Get("/", h.Home)
	r.Get("/test", h.Test)
	r.Post("/similarbooks", h.GetSimilarBooks)
	r.Get("/recommendations/similar-users/{userID}", h.GetSimilarUserRecommendations)
	r.Get("/recommendations/popular", h.GetPopularBooks)
	r.Get("/recommendations/user/{userID}", h.GetPreferenceRecommendations)
	r.Post("/user/{userID}/history", h.UpdateHistory)
	r.Get("/health", healthCheck)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
