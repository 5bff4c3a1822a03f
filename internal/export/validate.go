package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/metadata"
)

var (
	exportSchemaOnce sync.Once
	exportSchema     *jsonschema.Schema
	exportSchemaErr  error
)

// compiledExportSchema compiles metadata.ExportSchema once; the schema is
// static for the lifetime of the process.
func compiledExportSchema() (*jsonschema.Schema, error) {
	exportSchemaOnce.Do(func() {
		b, err := json.Marshal(metadata.ExportSchema())
		if err != nil {
			exportSchemaErr = fmt.Errorf("marshal export schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("metadata-export.json", bytes.NewReader(b)); err != nil {
			exportSchemaErr = fmt.Errorf("add export schema: %w", err)
			return
		}
		exportSchema, exportSchemaErr = compiler.Compile("metadata-export.json")
	})
	return exportSchema, exportSchemaErr
}

// validateExport checks serialized export records against the artifact
// schema, so a malformed projection is caught before it reaches a download.
func validateExport(data []byte) error {
	schema, err := compiledExportSchema()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal export json: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("export does not match schema: %w", err)
	}
	return nil
}
