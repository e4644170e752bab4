// Package server exposes the catalog over HTTP.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lepinkainen/libra/internal/catalog"
)

// Server serves the read-only book endpoint.
type Server struct {
	svc  *catalog.Service
	addr string
}

// New creates a Server for the given catalog service and listen address.
func New(svc *catalog.Service, addr string) *Server {
	return &Server{svc: svc, addr: addr}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/books", s.handleBooks)

	return r
}

// ListenAndServe blocks serving HTTP on the configured address.
func (s *Server) ListenAndServe() error {
	slog.Info("HTTP server listening", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Router())
}

// handleBooks handles GET /books?search=<term>. A blank or absent term
// fetches the whole first catalog page; a non-blank term runs a remote
// search. Both persist new titles as a side effect and always answer
// 200 with a JSON array.
func (s *Server) handleBooks(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")

	var books []catalog.Book
	if term == "" {
		books = s.svc.FetchAll(r.Context())
	} else {
		books = s.svc.Search(r.Context(), term)
	}
	if books == nil {
		books = []catalog.Book{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(books); err != nil {
		slog.Error("Failed to encode books response", "error", err)
	}
}

// requestLogger logs one line per request through the default slog
// logger, matching the rest of the tool's output.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
