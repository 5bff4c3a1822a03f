// Package export produces the downloadable artifacts: the metadata.json
// projection and an XLSX workbook mirroring the review table.
package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/metadata"
)

// MetadataFileName is the name of the JSON export artifact.
const MetadataFileName = "metadata.json"

// Service turns a field list into export bytes. It never mutates the
// fields it is given.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// MetadataJSON renders the export projection (pageNumber dropped, user
// annotations retained) and validates the result against the export schema
// before handing it out.
func (s *Service) MetadataJSON(fields []metadata.Field) ([]byte, error) {
	start := time.Now()

	records := metadata.ExportProjection(fields)
	b, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	if err := validateExport(b); err != nil {
		s.logger.Error("export.json.schema_invalid", "error", err)
		return nil, err
	}

	s.logger.Info("export.json.ok",
		"fields", len(records),
		"bytes", len(b),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return b, nil
}

// MetadataXLSX renders one row per field with the same columns as the
// review table. Page numbers are intentionally omitted, matching the JSON
// projection.
func (s *Service) MetadataXLSX(fields []metadata.Field) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Metadata"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	defaultIndex, _ := f.GetSheetIndex("Sheet1")
	if defaultIndex != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{"Fieldname", "Field Type", "Length", "Values"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, fld := range fields {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, fld.Text)
		write(2, string(fld.FieldType))
		write(3, fld.Length)
		write(4, fld.Values)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"fields", len(fields),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
