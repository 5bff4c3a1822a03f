package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/common"
)

// Routes builds the HTTP handler tree. Every request gets a request ID and
// an access log entry.
func (s *Service) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/upload", s.handleUpload)
	mux.HandleFunc("GET /uploads/{name...}", s.handleServeUpload)
	mux.HandleFunc("PATCH /api/documents/{id}/fields/{index}", s.handleUpdateField)
	mux.HandleFunc("GET /api/documents/{id}/pages/{page}", s.handlePage)
	mux.HandleFunc("GET /api/documents/{id}/export", s.handleExport)

	return s.withRequestLog(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Service) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()
		ctx := common.WithRequestID(r.Context(), reqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		s.logger.LogAttrs(ctx, slog.LevelInfo, "server.request",
			slog.String("req_id", reqID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		)
	})
}
