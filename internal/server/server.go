// Package server is the reference implementation of the habits wire
// protocol: plain HTTP, JSON bodies, in-memory data. It exists so the
// client can be used and tested without external infrastructure; any
// protocol-conformant server works equally well.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/models"
)

type Server struct {
	data    *dataset
	limiter *rateLimiter
	router  *mux.Router
}

// New returns a server with seeded data.
func New() *Server {
	registerMetrics()

	s := &Server{
		data:    newDataset(),
		limiter: newRateLimiter(),
	}
	s.data.seed()
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/habits", s.handleHabits).Methods(http.MethodGet)
	r.HandleFunc("/users", s.handleUsers).Methods(http.MethodGet)
	r.HandleFunc("/habitStats", s.handleHabitStats).Methods(http.MethodGet)
	r.HandleFunc("/userStats", s.handleUserStats).Methods(http.MethodGet)
	r.HandleFunc("/userLeadingStats/{id}", s.handleLeadingStats).Methods(http.MethodGet)
	r.HandleFunc("/combinedStats", s.handleCombinedStats).Methods(http.MethodGet)
	r.HandleFunc("/loggedHabit", s.handleLoggedHabit).Methods(http.MethodPost)
	r.HandleFunc("/images/{id}", s.handleImage).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.Use(s.limiter.middleware)
	r.Use(monitorMiddleware)

	return r
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.limiter.cleanup(3 * time.Minute)
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Reference server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHabits(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.data.allHabits())
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.data.allUsers())
}

func (s *Server) handleHabitStats(w http.ResponseWriter, r *http.Request) {
	var names []string
	if csv := r.URL.Query().Get("names"); csv != "" {
		names = strings.Split(csv, ",")
	}
	stats := s.data.habitStats(names)
	if stats == nil {
		stats = []models.HabitStatistics{}
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if csv := r.URL.Query().Get("ids"); csv != "" {
		ids = strings.Split(csv, ",")
	}
	stats := s.data.userStats(ids)
	if stats == nil {
		stats = []models.UserStatistics{}
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (s *Server) handleLeadingStats(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	stats, ok := s.data.leadingStats(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "unknown user")
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (s *Server) handleCombinedStats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.data.combinedStats())
}

func (s *Server) handleLoggedHabit(w http.ResponseWriter, r *http.Request) {
	var event models.LoggedHabit
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid logged habit")
		return
	}
	if event.UserID == "" || event.HabitName == "" {
		respondWithError(w, http.StatusBadRequest, "userID and habitName are required")
		return
	}

	s.data.logHabit(event)
	logger.Info("Logged habit", "user", event.UserID, "habit", event.HabitName)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.data.mu.RLock()
	user, ok := s.data.users[id]
	s.data.mu.RUnlock()
	if !ok {
		respondWithError(w, http.StatusNotFound, "unknown image")
		return
	}

	img, err := avatarPNG(user)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to render image")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img); err != nil {
		logger.Error("Failed to write image", "error", err)
	}
}
