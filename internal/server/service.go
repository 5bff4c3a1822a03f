// Package server exposes the HTTP surface: upload, stored-file retrieval,
// field editing, paginated views, and export downloads.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/constants"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/common"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/export"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/metadata"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/pipeline"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/session"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/storage"
)

// Service wires the upload pipeline, session store, upload store and export
// service behind HTTP handlers.
type Service struct {
	processor      *pipeline.Processor
	sessions       *session.Store
	store          *storage.Store
	exporter       *export.Service
	logger         *slog.Logger
	maxUploadBytes int64
}

func NewService(proc *pipeline.Processor, sessions *session.Store, store *storage.Store, exporter *export.Service, maxUploadBytes int64, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		processor:      proc,
		sessions:       sessions,
		store:          store,
		exporter:       exporter,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

type uploadResponse struct {
	DocumentID string           `json:"documentId"`
	Metadata   []metadata.Field `json:"metadata"`
	FileURL    string           `json:"fileUrl"`
}

// handleUpload accepts one multipart file under key "file", runs the upload
// pipeline, and opens a fresh document session for the result.
func (s *Service) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			s.writeError(w, http.StatusBadRequest, "No file uploaded.")
			return
		}
		s.logger.Error("server.upload.form_failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error reading upload: %v", err))
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			s.logger.Warn("server.upload.close_failed", "error", cerr)
		}
	}()

	res, err := s.processor.ProcessUpload(r.Context(), file, header.Filename, constants.PDFMIMEType)
	if err != nil {
		status := common.HTTPStatus(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			msg = fmt.Sprintf("Error processing document: %v", err)
		}
		s.writeError(w, status, msg)
		return
	}

	doc := s.sessions.Put(res.FileURL, res.Fields)
	s.writeJSON(w, http.StatusOK, uploadResponse{
		DocumentID: doc.ID.String(),
		Metadata:   doc.Fields,
		FileURL:    doc.FileURL,
	})
}

// handleServeUpload streams a stored upload back for display.
func (s *Service) handleServeUpload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	f, err := s.store.Open(name)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "File not found")
			return
		}
		s.logger.Error("server.uploads.open_failed", "name", name, "error", err)
		s.writeError(w, http.StatusInternalServerError, "Error reading file")
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("server.uploads.close_failed", "name", name, "error", cerr)
		}
	}()

	w.Header().Set("Content-Type", constants.PDFMIMEType)
	if _, err := io.Copy(w, f); err != nil {
		s.logger.Warn("server.uploads.stream_failed", "name", name, "error", err)
	}
}

type fieldUpdateRequest struct {
	FieldType   *string           `json:"fieldType"`
	Length      *string           `json:"length"`
	Values      *string           `json:"values"`
	Annotations map[string]string `json:"annotations"`
}

type fieldResponse struct {
	Index int            `json:"index"`
	Field metadata.Field `json:"field"`
}

// handleUpdateField applies a manual override to one field of a document
// session. Fields are addressed by their position in the full list.
func (s *Service) handleUpdateField(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "document id must be a UUID")
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "field index must be an integer")
		return
	}

	var req fieldUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	upd := session.FieldUpdate{
		Length:      req.Length,
		Values:      req.Values,
		Annotations: req.Annotations,
	}
	if req.FieldType != nil {
		ft := constants.FieldType(*req.FieldType)
		upd.FieldType = &ft
	}

	field, err := s.sessions.UpdateField(id, index, upd)
	if err != nil {
		s.writeError(w, common.HTTPStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, fieldResponse{Index: index, Field: field})
}

type pageResponse struct {
	Page    int         `json:"page"`
	MaxPage int         `json:"maxPage"`
	Fields  []pageField `json:"fields"`
}

type pageField struct {
	Index int `json:"index"`
	metadata.Field
}

// handlePage returns the fields on one page. Out-of-range page numbers are
// clamped to [1, maxPage], never an error.
func (s *Service) handlePage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "document id must be a UUID")
		return
	}
	page, err := strconv.Atoi(r.PathValue("page"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "page must be an integer")
		return
	}

	_, fields, err := s.sessions.Get(id)
	if err != nil {
		s.writeError(w, common.HTTPStatus(err), err.Error())
		return
	}

	maxPage := metadata.MaxPage(fields)
	page = metadata.ClampPage(page, maxPage)

	resp := pageResponse{Page: page, MaxPage: maxPage, Fields: make([]pageField, 0)}
	for i, f := range fields {
		if f.PageNumber == page {
			resp.Fields = append(resp.Fields, pageField{Index: i, Field: f})
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleExport serves the export artifact for a document session:
// metadata.json by default, an XLSX workbook with ?format=xlsx.
func (s *Service) handleExport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "document id must be a UUID")
		return
	}
	_, fields, err := s.sessions.Get(id)
	if err != nil {
		s.writeError(w, common.HTTPStatus(err), err.Error())
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		b, err := s.exporter.MetadataJSON(fields)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.MetadataFileName+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	case "xlsx":
		b, err := s.exporter.MetadataXLSX(fields)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="metadata.xlsx"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	default:
		s.writeError(w, http.StatusBadRequest, "unsupported export format")
	}
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("server.write_response_failed", "error", err)
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
