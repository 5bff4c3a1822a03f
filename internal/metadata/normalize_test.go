package metadata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/constants"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/extract"
)

func seg(start, end any) extract.TextSegment {
	return extract.TextSegment{StartIndex: start, EndIndex: end}
}

func vertex(x, y *float64) extract.Vertex {
	return extract.Vertex{X: x, Y: y}
}

func f64(v float64) *float64 { return &v }

func TestNormalizeEmptyDocument(t *testing.T) {
	fields := Normalize(extract.DocumentResult{})
	require.NotNil(t, fields)
	assert.Len(t, fields, 0)
}

func TestNormalizeTraversalOrder(t *testing.T) {
	// 2 pages with 2 and 3 blocks: output length is the block total and the
	// order is page-major, block-minor.
	full := "abcdefghij"
	doc := extract.DocumentResult{
		FullText: full,
		Pages: []extract.Page{
			{PageNumber: 1, Blocks: []extract.Block{
				{Segments: []extract.TextSegment{seg(0, 1)}},
				{Segments: []extract.TextSegment{seg(1, 2)}},
			}},
			{PageNumber: 2, Blocks: []extract.Block{
				{Segments: []extract.TextSegment{seg(2, 3)}},
				{Segments: []extract.TextSegment{seg(3, 4)}},
				{Segments: []extract.TextSegment{seg(4, 5)}},
			}},
		},
	}

	fields := Normalize(doc)
	require.Len(t, fields, 5)

	wantTexts := []string{"a", "b", "c", "d", "e"}
	wantPages := []int{1, 1, 2, 2, 2}
	for i := range fields {
		assert.Equal(t, wantTexts[i], fields[i].Text)
		assert.Equal(t, wantPages[i], fields[i].PageNumber)
		assert.Equal(t, constants.FieldTypeText, fields[i].FieldType)
	}
}

func TestNormalizeOffsetCoercion(t *testing.T) {
	// Offsets arrive as ints, strings and json.Numbers; the reconstructed
	// text must equal slicing with the integer-coerced bounds.
	full := "Hello, world"
	doc := extract.DocumentResult{
		FullText: full,
		Pages: []extract.Page{{
			PageNumber: 1,
			Blocks: []extract.Block{
				{Segments: []extract.TextSegment{seg("0", "5")}},
				{Segments: []extract.TextSegment{seg(json.Number("7"), json.Number("12"))}},
				{Segments: []extract.TextSegment{seg("garbage", 5)}},
				{Segments: []extract.TextSegment{seg(nil, nil)}},
			},
		}},
	}

	fields := Normalize(doc)
	require.Len(t, fields, 4)
	assert.Equal(t, "Hello", fields[0].Text)
	assert.Equal(t, "world", fields[1].Text)
	assert.Equal(t, "Hello", fields[2].Text) // start coerces to 0
	assert.Equal(t, "", fields[3].Text)
}

func TestNormalizeOutOfRangeOffsets(t *testing.T) {
	full := "short"
	doc := extract.DocumentResult{
		FullText: full,
		Pages: []extract.Page{{
			PageNumber: 1,
			Blocks: []extract.Block{
				{Segments: []extract.TextSegment{seg(0, 100)}},
				{Segments: []extract.TextSegment{seg(-5, 5)}},
				{Segments: []extract.TextSegment{seg(4, 1)}}, // inverted range
			},
		}},
	}

	fields := Normalize(doc)
	require.Len(t, fields, 3)
	assert.Equal(t, "short", fields[0].Text)
	assert.Equal(t, "short", fields[1].Text)
	assert.Equal(t, "hor", fields[2].Text)
}

func TestNormalizeConcatenateThenTrim(t *testing.T) {
	// Trimming happens once on the concatenated text, not per segment:
	// interior whitespace contributed by segment boundaries survives.
	full := "  Patient  Name  "
	doc := extract.DocumentResult{
		FullText: full,
		Pages: []extract.Page{{
			PageNumber: 1,
			Blocks: []extract.Block{
				{Segments: []extract.TextSegment{seg(0, 9), seg(9, 17)}},
			},
		}},
	}

	fields := Normalize(doc)
	require.Len(t, fields, 1)
	assert.Equal(t, "Patient  Name", fields[0].Text)
}

func TestNormalizeBlockWithNoSegments(t *testing.T) {
	doc := extract.DocumentResult{
		FullText: "irrelevant",
		Pages: []extract.Page{{
			PageNumber: 3,
			Blocks:     []extract.Block{{}},
		}},
	}

	fields := Normalize(doc)
	require.Len(t, fields, 1)
	assert.Equal(t, "", fields[0].Text)
	assert.Equal(t, 3, fields[0].PageNumber)
	assert.NotNil(t, fields[0].BoundingBox)
	assert.Len(t, fields[0].BoundingBox, 0)
}

func TestNormalizePageWithNoBlocks(t *testing.T) {
	doc := extract.DocumentResult{
		FullText: "text",
		Pages: []extract.Page{
			{PageNumber: 1},
			{PageNumber: 2, Blocks: []extract.Block{{Segments: []extract.TextSegment{seg(0, 4)}}}},
		},
	}

	fields := Normalize(doc)
	require.Len(t, fields, 1)
	assert.Equal(t, 2, fields[0].PageNumber)
}

func TestNormalizeBoundingBoxDefaults(t *testing.T) {
	doc := extract.DocumentResult{
		FullText: "",
		Pages: []extract.Page{{
			PageNumber: 1,
			Blocks: []extract.Block{{
				Vertices: []extract.Vertex{
					vertex(f64(10), nil),
					vertex(nil, f64(20)),
					vertex(nil, nil),
					vertex(f64(1), f64(2)),
				},
			}},
		}},
	}

	fields := Normalize(doc)
	require.Len(t, fields, 1)
	assert.Equal(t, []Point{
		{X: 10, Y: 0},
		{X: 0, Y: 20},
		{X: 0, Y: 0},
		{X: 1, Y: 2},
	}, fields[0].BoundingBox)
}

func TestNormalizeInputNotMutated(t *testing.T) {
	full := "abc"
	doc := extract.DocumentResult{
		FullText: full,
		Pages: []extract.Page{{
			PageNumber: 1,
			Blocks:     []extract.Block{{Segments: []extract.TextSegment{seg(0, 3)}}},
		}},
	}

	_ = Normalize(doc)
	assert.Equal(t, "abc", doc.FullText)
	assert.Equal(t, 0, doc.Pages[0].Blocks[0].Segments[0].StartIndex.(int))
}

func TestNormalizeAndClassifyScenario(t *testing.T) {
	// Two pages: a plain name field and a date-of-birth field.
	full := "  Patient Name  Date of Birth"
	doc := extract.DocumentResult{
		FullText: full,
		Pages: []extract.Page{
			{PageNumber: 1, Blocks: []extract.Block{{Segments: []extract.TextSegment{seg(0, 16)}}}},
			{PageNumber: 2, Blocks: []extract.Block{{Segments: []extract.TextSegment{seg(16, 29)}}}},
		},
	}

	fields := Normalize(doc)
	ClassifyFields(fields)

	require.Len(t, fields, 2)
	assert.Equal(t, Field{
		PageNumber:  1,
		Text:        "Patient Name",
		FieldType:   constants.FieldTypeText,
		BoundingBox: []Point{},
	}, fields[0])
	assert.Equal(t, Field{
		PageNumber:  2,
		Text:        "Date of Birth",
		FieldType:   constants.FieldTypeDate,
		BoundingBox: []Point{},
	}, fields[1])
}
