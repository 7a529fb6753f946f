// Package server exposes the wheel pipeline over HTTP.
//
// The API is a single wheel endpoint plus a health check. Chart documents
// are POSTed as JSON; layout parameters travel as query parameters so that
// identical charts with different render settings cache independently.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/lunaterra/chartwheel/pkg/buildinfo"
	"github.com/lunaterra/chartwheel/pkg/chart"
	cwerrors "github.com/lunaterra/chartwheel/pkg/errors"
	"github.com/lunaterra/chartwheel/pkg/pipeline"
)

// maxChartBytes bounds the request body. Chart documents are small; anything
// larger is a client error.
const maxChartBytes = 1 << 20

// Server handles HTTP requests against a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server. A nil logger falls back to the default logger.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/wheels", s.handleWheel)
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleWheel accepts a chart document and returns one rendered artifact.
//
// Query parameters: mode, format (svg|json|dot), style, legend, size,
// min_separation, refresh. Defaults match the CLI.
func (s *Server) handleWheel(w http.ResponseWriter, r *http.Request) {
	c, err := chart.ReadJSON(http.MaxBytesReader(w, r.Body, maxChartBytes))
	if err != nil {
		s.writeError(w, r, cwerrors.Wrap(cwerrors.ErrCodeInvalidChart, err, "decode chart document"))
		return
	}
	if err := chart.Validate(c); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), c, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("X-Layout-Hash", result.LayoutHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// optionsFromQuery builds pipeline options from request query parameters.
// The server renders exactly one format per request.
func optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()

	opts := pipeline.Options{
		Mode:    q.Get("mode"),
		Style:   q.Get("style"),
		Legend:  q.Get("legend") == "true",
		Refresh: q.Get("refresh") == "true",
	}

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	opts.Formats = []string{format}

	if v := q.Get("size"); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil || size <= 0 {
			return opts, cwerrors.New(cwerrors.ErrCodeInvalidInput, "invalid size: %q", v)
		}
		opts.Size = size
	}
	if v := q.Get("min_separation"); v != "" {
		sep, err := strconv.ParseFloat(v, 64)
		if err != nil || sep < 0 {
			return opts, cwerrors.New(cwerrors.ErrCodeInvalidInput, "invalid min_separation: %q", v)
		}
		opts.MinSeparation = sep
	}

	err := opts.ValidateAndSetDefaults()
	return opts, err
}

// contentType maps an artifact format to its media type.
func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatPDF:
		return "application/pdf"
	case pipeline.FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "application/json"
	}
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError maps coded errors to HTTP statuses and logs the failure.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch cwerrors.GetCode(err) {
	case cwerrors.ErrCodeInvalidInput, cwerrors.ErrCodeInvalidChart,
		cwerrors.ErrCodeInvalidMode, cwerrors.ErrCodeInvalidFormat,
		cwerrors.ErrCodeInvalidStyle:
		status = http.StatusBadRequest
	case cwerrors.ErrCodeNotFound, cwerrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	s.logger.Error("request failed",
		"request_id", requestIDFrom(r.Context()),
		"path", r.URL.Path,
		"status", status,
		"err", err)

	writeJSON(w, status, errorResponse{
		Error: cwerrors.UserMessage(err),
		Code:  string(cwerrors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// requestID assigns a UUID to every request and echoes it in the response.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// logRequests emits one structured log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"request_id", requestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}
