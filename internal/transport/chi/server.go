// Package chi exposes the recommendation service over HTTP.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/narralit/bookdex/internal/domain/search/filter"
	"github.com/narralit/bookdex/internal/logger"
	"github.com/narralit/bookdex/internal/metrics"
	"github.com/narralit/bookdex/internal/usecase/recommend"
	"github.com/narralit/bookdex/internal/version"
)

// Server handles the HTTP search surface.
type Server struct {
	recommender *recommend.Service
	apiKeys     []string
	logger      *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(recommender *recommend.Service, apiKeys []string, log *zap.Logger) *Server {
	return &Server{recommender: recommender, apiKeys: apiKeys, logger: log}
}

// Router assembles the chi router with recovery, metrics and auth middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(APIKeyMiddleware(s.apiKeys))
	r.Use(metrics.Middleware())

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/v1/search", s.handleSearch)
	return r
}

type searchRequest struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
	Pages  string `json:"pages,omitempty"`
	TopN   int    `json:"top_n,omitempty"`
}

type searchResult struct {
	Title       string  `json:"title"`
	Score       float64 `json:"score"`
	Authors     string  `json:"authors"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}

type searchResponse struct {
	Intent         any            `json:"intent"`
	Results        []searchResult `json:"results"`
	AuthorMatches  int            `json:"author_matches,omitempty"`
	FilterFellBack bool           `json:"filter_fell_back,omitempty"`
	Warnings       []string       `json:"warnings,omitempty"`
}

// handleSearch handles POST /v1/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	var warnings []string
	if req.Pages != "" {
		if _, err := filter.ParsePages(req.Pages); err != nil {
			warnings = append(warnings, "ignoring invalid page filter: "+err.Error())
		} else {
			warnings = append(warnings, "page count data is not available; page filter ignored")
		}
	}

	ctx := logger.ContextWithLogger(r.Context(), s.logger)
	rec, err := s.recommender.Recommend(ctx, req.Text, req.TopN, filter.New(req.Author))
	if err != nil {
		s.logger.Error("Recommendation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if rec.Stats.FilterFellBack {
		warnings = append(warnings, "no catalog rows matched the author filter; searched the full catalog")
	}

	results := make([]searchResult, len(rec.Results))
	for i := range rec.Results {
		res := &rec.Results[i]
		results[i] = searchResult{
			Title:       res.Title(),
			Score:       res.Score(),
			Authors:     res.Authors(),
			Description: res.Description(),
			Rating:      res.Rating(),
		}
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Intent:         rec.Intent,
		Results:        results,
		AuthorMatches:  rec.Stats.AuthorMatches,
		FilterFellBack: rec.Stats.FilterFellBack,
		Warnings:       warnings,
	})
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// jsonRecoverer returns JSON instead of a plain text stacktrace on panic.
func jsonRecoverer(log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					writeError(w, http.StatusInternalServerError, "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
