// Package server serves rendered components over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vcrobe/nojs-ssr/render"
	"github.com/vcrobe/nojs-ssr/runtime"
)

// Server re-runs the full render pipeline for every request.
type Server struct {
	renderer     *render.Renderer
	newComponent func() runtime.Component
	logger       *slog.Logger
	router       *chi.Mux
}

// New creates a server rendering a fresh component from newComponent on
// every request. A nil logger selects slog.Default().
func New(renderer *render.Renderer, newComponent func() runtime.Component, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		renderer:     renderer,
		newComponent: newComponent,
		logger:       logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/_declaration", s.serveDeclaration)
	r.Handle("/*", http.HandlerFunc(s.serveDocument))

	s.router = r
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) serveDocument(w http.ResponseWriter, r *http.Request) {
	document := s.renderer.Render(s.newComponent())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(document)); err != nil {
		s.logger.Warn("write response", "error", err, "request_id", middleware.GetReqID(r.Context()))
	}
}

// serveDeclaration shows the declaration text of the served component and
// the handlers recovered from it.
func (s *Server) serveDeclaration(w http.ResponseWriter, r *http.Request) {
	res := s.renderer.RenderResult(s.newComponent())

	var sb strings.Builder
	sb.WriteString(res.Declaration)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "%d handler(s)\n", len(res.Records))
	for _, rec := range res.Records {
		fmt.Fprintf(&sb, "%s\t%s\t%s\n", rec.ElementID, rec.EventType, rec.HandlerSource)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(sb.String())); err != nil {
		s.logger.Warn("write response", "error", err, "request_id", middleware.GetReqID(r.Context()))
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
