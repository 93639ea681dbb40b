package http

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Server serves a generated report artifact for local preview
type Server struct {
	*http.Server
	router       chi.Router
	artifactPath string
}

// NewServer creates the preview HTTP server. The artifact is read from disk
// on every request, so regenerating the report shows up on the next reload
// without restarting the server.
func NewServer(ctx context.Context, addr, artifactPath string) (*Server, error) {
	if artifactPath == "" {
		return nil, goerr.New("artifact path is required")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:       router,
		artifactPath: artifactPath,
	}

	// Health check
	router.Get("/health", handleHealth)

	// Report artifact
	router.Get("/", server.handleReport)

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "argus",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// handleReport serves the report artifact from disk
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.artifactPath)
	if err != nil {
		if os.IsNotExist(err) {
			writeError(w, goerr.New("report not generated yet",
				goerr.V("path", s.artifactPath)), http.StatusNotFound)
			return
		}
		ctxlog.From(r.Context()).Error("Failed to read report artifact",
			"error", err,
			"path", s.artifactPath,
		)
		writeError(w, goerr.Wrap(err, "failed to read report"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write report response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		// Can't get context here, so use background context
		ctxlog.From(context.Background()).Error("Failed to encode error response", "error", err)
	}
}
