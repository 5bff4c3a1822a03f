package server

import (
	"embed"
	"net/http"
)

//go:embed web/index.html
var webFS embed.FS

// handleIndex serves the embedded single-page UI.
func (s *Service) handleIndex(w http.ResponseWriter, _ *http.Request) {
	b, err := webFS.ReadFile("web/index.html")
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "UI assets missing")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(b)
}
