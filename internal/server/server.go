// Package server exposes the dashboard over HTTP. Every page request
// rebuilds the snapshot from scratch; nothing is cached between requests.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"tfdash.dev/tfdash/internal/render"
	"tfdash.dev/tfdash/internal/snapshot"
)

// SnapshotBuilder is the piece of the assembler the server needs.
type SnapshotBuilder interface {
	Build(ctx context.Context) snapshot.Snapshot
}

type Server struct {
	builder SnapshotBuilder
	addr    string
}

func New(builder SnapshotBuilder, port int) *Server {
	return &Server{
		builder: builder,
		addr:    fmt.Sprintf("localhost:%d", port),
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Handler builds the route table: the dashboard on / and /index.html,
// everything else falling through to static file serving.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir("."))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			files.ServeHTTP(w, r)
			return
		}

		snap := s.builder.Build(r.Context())
		page, err := render.Page(snap)
		if err != nil {
			slog.Error("rendering dashboard failed", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(page); err != nil {
			slog.Debug("writing response failed", slog.Any("error", err))
		}
	})

	return mux
}

// Serve blocks serving the dashboard until the listener fails.
func (s *Server) Serve() error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}
	return srv.ListenAndServe()
}
