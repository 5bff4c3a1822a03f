// extract runs the upload pipeline against a local PDF without the HTTP
// server: process the file with Document AI, normalize and classify the
// fields, and write metadata.json (and optionally metadata.xlsx) next to
// the input. DOCAI_PROJECT_ID, DOCAI_LOCATION and DOCAI_PROCESSOR_ID must
// be set, same as for the daemon.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/constants"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/common"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/docai"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/export"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/metadata"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	pdfPath := flag.String("pdf", "", "path to the input PDF (required)")
	outDir := flag.String("out", "", "output directory (default: alongside the input)")
	xlsx := flag.Bool("xlsx", false, "also write metadata.xlsx")
	flag.Parse()

	if *pdfPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.DocAI.ProjectID == "" || cfg.DocAI.Location == "" || cfg.DocAI.ProcessorID == "" {
		logger.Error("DOCAI_PROJECT_ID, DOCAI_LOCATION and DOCAI_PROCESSOR_ID are required")
		os.Exit(1)
	}

	content, err := os.ReadFile(*pdfPath)
	if err != nil {
		logger.Error("read pdf", "path", *pdfPath, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := docai.NewClient(ctx, cfg.DocAI, logger)
	if err != nil {
		logger.Error("create document ai client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			logger.Warn("close document ai client", "error", cerr)
		}
	}()

	start := time.Now()
	doc, err := client.Extract(ctx, content, constants.PDFMIMEType)
	if err != nil {
		logger.Error("document extraction failed", "path", *pdfPath, "error", err)
		os.Exit(1)
	}

	fields := metadata.Normalize(doc)
	metadata.ClassifyFields(fields)

	dir := *outDir
	if dir == "" {
		dir = filepath.Dir(*pdfPath)
	}

	exporter := export.NewService(logger)
	jsonBytes, err := exporter.MetadataJSON(fields)
	if err != nil {
		logger.Error("render metadata.json", "error", err)
		os.Exit(1)
	}
	jsonPath := filepath.Join(dir, export.MetadataFileName)
	if err := os.WriteFile(jsonPath, jsonBytes, 0o640); err != nil {
		logger.Error("write metadata.json", "path", jsonPath, "error", err)
		os.Exit(1)
	}

	if *xlsx {
		xlsxBytes, err := exporter.MetadataXLSX(fields)
		if err != nil {
			logger.Error("render metadata.xlsx", "error", err)
			os.Exit(1)
		}
		xlsxPath := filepath.Join(dir, "metadata.xlsx")
		if err := os.WriteFile(xlsxPath, xlsxBytes, 0o640); err != nil {
			logger.Error("write metadata.xlsx", "path", xlsxPath, "error", err)
			os.Exit(1)
		}
	}

	logger.Info("extraction OK",
		"pages", len(doc.Pages),
		"fields", len(fields),
		"out", jsonPath,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
