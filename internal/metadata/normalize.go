package metadata

import (
	"strings"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/constants"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/extract"
)

// Normalize flattens a raw extraction result into the ordered Field list:
// pages in order, blocks within a page in order, one Field per block.
//
// Each field's text is reconstructed by slicing FullText with every
// [start, end) segment range in source order, concatenating with no
// separator, then trimming surrounding whitespace once from the combined
// result. Polygon vertices map 1:1 into the bounding box with missing
// coordinates defaulting to 0. FieldType is initialized to "text";
// classification is a separate step.
//
// Normalize is a pure function of its input and never fails: malformed
// offsets coerce to 0, missing page numbers default to 0, and an absent
// page list yields an empty (non-nil) result.
func Normalize(doc extract.DocumentResult) []Field {
	fields := make([]Field, 0)
	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			fields = append(fields, Field{
				PageNumber:  page.PageNumber,
				Text:        reconstructText(doc.FullText, block.Segments),
				FieldType:   constants.FieldTypeText,
				BoundingBox: boundingBox(block.Vertices),
			})
		}
	}
	return fields
}

// reconstructText concatenates the [start, end) slices of fullText for
// every segment, then trims the combined result. Slicing never reads
// outside [0, len(fullText)]: bounds are clamped, and an inverted range
// is swapped rather than rejected.
func reconstructText(fullText string, segments []extract.TextSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		start := clampOffset(extract.CoerceOffset(seg.StartIndex), len(fullText))
		end := clampOffset(extract.CoerceOffset(seg.EndIndex), len(fullText))
		if start > end {
			start, end = end, start
		}
		b.WriteString(fullText[start:end])
	}
	return strings.TrimSpace(b.String())
}

func clampOffset(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// boundingBox maps polygon vertices 1:1 into points, defaulting missing
// coordinates to 0. Vertices are never dropped and order is preserved;
// the polygon is not validated or closed here.
func boundingBox(vertices []extract.Vertex) []Point {
	box := make([]Point, 0, len(vertices))
	for _, v := range vertices {
		var p Point
		if v.X != nil {
			p.X = *v.X
		}
		if v.Y != nil {
			p.Y = *v.Y
		}
		box = append(box, p)
	}
	return box
}
