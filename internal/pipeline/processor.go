// Package pipeline coordinates one upload round trip: store the bytes,
// run the extraction capability, normalize, classify.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/extract"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/metadata"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/storage"
)

// Processor runs the upload pipeline. The extraction round trip is
// all-or-nothing: on failure nothing is normalized and the stored file is
// the only side effect.
type Processor struct {
	Store     *storage.Store
	Extractor extract.DocumentExtractor
	Logger    *slog.Logger
}

func NewProcessor(store *storage.Store, extractor extract.DocumentExtractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Store: store, Extractor: extractor, Logger: logger}
}

// Result is the outcome of one processed upload.
type Result struct {
	FileURL  string
	FileName string
	HashHex  string
	Fields   []metadata.Field
}

// ProcessUpload stores the payload, sends it to the extractor, and produces
// the classified field list. The fields come back in page-major, block-minor
// source order.
func (p *Processor) ProcessUpload(ctx context.Context, r io.Reader, originalName, mimeType string) (Result, error) {
	saved, err := p.Store.Save(r, originalName)
	if err != nil {
		p.Logger.Error("pipeline.save.failed", "name", originalName, "error", err)
		return Result{}, err
	}

	content, err := p.Store.Read(saved.Name)
	if err != nil {
		p.Logger.Error("pipeline.read.failed", "name", saved.Name, "error", err)
		return Result{}, err
	}

	start := time.Now()
	doc, err := p.Extractor.Extract(ctx, content, mimeType)
	if err != nil {
		p.Logger.Error("pipeline.extract.failed", "name", saved.Name, "error", err)
		return Result{}, err
	}

	fields := metadata.Normalize(doc)
	metadata.ClassifyFields(fields)

	p.Logger.Info("pipeline.extract.ok",
		"name", saved.Name,
		"pages", len(doc.Pages),
		"fields", len(fields),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		FileURL:  saved.FileURL,
		FileName: saved.Name,
		HashHex:  saved.HashHex,
		Fields:   fields,
	}, nil
}
