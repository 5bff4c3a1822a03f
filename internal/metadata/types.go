// Package metadata implements the response-to-field normalization core:
// flattening the extraction hierarchy into an ordered field list,
// heuristic field-type classification, clamped pagination, and the
// export projection.
package metadata

import "github.com/CodeNinja0929/PDF-Metadata-Extractor/constants"

// Point is one bounding-polygon vertex in the source document's
// coordinate space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Field is one normalized, user-editable record per detected block.
//
// PageNumber is immutable after creation. FieldType, Length, Values and
// Annotations are user-mutable. Fields have no identity beyond their
// position in the list; list order is the page-major, block-minor
// traversal order of the source document and must be preserved.
type Field struct {
	PageNumber  int                 `json:"pageNumber"`
	Text        string              `json:"text"`
	FieldType   constants.FieldType `json:"fieldType"`
	BoundingBox []Point             `json:"boundingBox"`

	// Optional user-supplied annotations; absent until edited.
	Length string `json:"length,omitempty"`
	Values string `json:"values,omitempty"`

	// Annotations holds open-ended user notes keyed by name. Kept as an
	// explicit map rather than dynamic attributes on the record itself.
	Annotations map[string]string `json:"annotations,omitempty"`
}
