// Package api provides the local HTTP API for sprachlog.
// A UI collaborator (menu bar app, web dashboard) reads tracker state
// and records activity through it. Localhost only by default.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sprachlog/sprachlog/internal/app/tracker"
	"github.com/sprachlog/sprachlog/internal/health"
)

// Server is the sprachlog HTTP API server.
type Server struct {
	tracker        *tracker.Service
	version        string
	metricsEnabled bool
	health         *health.Checker
}

// NewServer creates a new API server over the tracker service.
func NewServer(svc *tracker.Service, version string) *Server {
	return &Server{tracker: svc, version: version}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHealth attaches the daemon's health checker to /health.
func (s *Server) SetHealth(c *health.Checker) { s.health = c }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if s.health == nil {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		status := "ok"
		code := http.StatusOK
		if !s.health.IsHealthy() {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]interface{}{
			"status": status,
			"checks": s.health.Statuses(),
		})
	})

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": s.version,
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/today", s.handleToday)
		r.Route("/day/{date}", func(r chi.Router) {
			r.Get("/", s.handleDay)
			r.Put("/note", s.handleSetNote)
			r.Post("/tasks/{task}/complete", s.handleCompleteTask)
			r.Post("/tasks/{task}/uncomplete", s.handleUncompleteTask)
			r.Post("/tasks/{task}/pomodoro", s.handlePomodoro)
		})

		r.Get("/streak", s.handleStreak)
		r.Get("/level", s.handleLevel)
		r.Get("/progress/{year}", s.handleProgress)
		r.Get("/achievements", s.handleAchievements)

		r.Get("/vocabulary", s.handleListVocabulary)
		r.Post("/vocabulary", s.handleAddVocabulary)

		r.Get("/notifications", s.handleNotifications)
		r.Post("/notifications/{id}/shown", s.handleNotificationShown)

		r.Get("/goals", s.handleGetGoals)
		r.Put("/goals", s.handleSetGoals)

		r.Get("/export/{year}", s.handleExport)
		r.Post("/import", s.handleImport)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
