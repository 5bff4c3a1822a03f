package extract

import "context"

// DocumentExtractor is Stage 1: raw document bytes -> text + layout hierarchy.
// Implementations call the external document-understanding capability; they
// do not retry on failure.
type DocumentExtractor interface {
	Extract(ctx context.Context, content []byte, mimeType string) (DocumentResult, error)
}

// DocumentResult is the raw hierarchical output of the extraction capability:
// the full document text plus pages -> blocks -> text segments and polygon
// vertices. It is read-only input to the normalizer.
type DocumentResult struct {
	// FullText is the complete extracted text, addressable by byte offset.
	FullText string
	Pages    []Page
}

// Page is one document page in source order.
type Page struct {
	PageNumber int // 1-based; 0 when the source omits it
	Blocks     []Block
}

// Block is one detected layout block on a page.
type Block struct {
	Segments []TextSegment
	Vertices []Vertex
}

// TextSegment is a [start, end) byte-offset range into FullText.
//
// Offsets are deliberately loosely typed: depending on the transport the
// capability may deliver them as native integers, decimal strings (protojson
// encodes int64 that way), or wide-integer values. CoerceOffset resolves
// them to plain ints.
type TextSegment struct {
	StartIndex any
	EndIndex   any
}

// Vertex is one polygon point. A nil coordinate means the source omitted it;
// it defaults to 0 downstream.
type Vertex struct {
	X *float64
	Y *float64
}
