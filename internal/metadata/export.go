package metadata

import "github.com/CodeNinja0929/PDF-Metadata-Extractor/constants"

// ExportRecord is the export projection of a Field: everything except the
// pageNumber attribute, including user-supplied annotations.
type ExportRecord struct {
	Text        string              `json:"text"`
	FieldType   constants.FieldType `json:"fieldType"`
	BoundingBox []Point             `json:"boundingBox"`
	Length      string              `json:"length,omitempty"`
	Values      string              `json:"values,omitempty"`
	Annotations map[string]string   `json:"annotations,omitempty"`
}

// ExportProjection produces the export view of the field list. It is a pure
// projection: the in-memory fields are not mutated and record order matches
// field order.
func ExportProjection(fields []Field) []ExportRecord {
	records := make([]ExportRecord, 0, len(fields))
	for _, f := range fields {
		records = append(records, ExportRecord{
			Text:        f.Text,
			FieldType:   f.FieldType,
			BoundingBox: f.BoundingBox,
			Length:      f.Length,
			Values:      f.Values,
			Annotations: f.Annotations,
		})
	}
	return records
}

// ExportSchema returns the JSON Schema (draft 2020-12 subset) the exported
// metadata.json artifact must satisfy, as a generic map.
func ExportSchema() map[string]any {
	fieldTypes := make([]any, 0, len(constants.FieldTypes))
	for _, t := range constants.FieldTypes {
		fieldTypes = append(fieldTypes, string(t))
	}
	point := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"x": map[string]any{"type": "number"},
			"y": map[string]any{"type": "number"},
		},
		"required": []string{"x", "y"},
	}
	record := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text":        map[string]any{"type": "string"},
			"fieldType":   map[string]any{"type": "string", "enum": fieldTypes},
			"boundingBox": map[string]any{"type": "array", "items": point},
			"length":      map[string]any{"type": "string"},
			"values":      map[string]any{"type": "string"},
			"annotations": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
		"required": []string{"text", "fieldType", "boundingBox"},
	}
	return map[string]any{
		"type":  "array",
		"items": record,
	}
}
