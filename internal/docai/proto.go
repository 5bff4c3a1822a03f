package docai

import (
	"fmt"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/extract"
)

// FromProto converts a Document AI response into the raw hierarchy consumed
// by the normalizer: document text plus pages -> blocks -> text segments and
// bounding-polygon vertices. Structure and ordering are carried over as-is;
// no interpretation happens here.
func FromProto(doc *documentaipb.Document) extract.DocumentResult {
	if doc == nil {
		return extract.DocumentResult{}
	}
	out := extract.DocumentResult{FullText: doc.GetText()}
	for _, p := range doc.GetPages() {
		page := extract.Page{PageNumber: int(p.GetPageNumber())}
		for _, b := range p.GetBlocks() {
			layout := b.GetLayout()
			block := extract.Block{}
			for _, seg := range layout.GetTextAnchor().GetTextSegments() {
				block.Segments = append(block.Segments, extract.TextSegment{
					StartIndex: seg.GetStartIndex(),
					EndIndex:   seg.GetEndIndex(),
				})
			}
			for _, v := range layout.GetBoundingPoly().GetVertices() {
				x := float64(v.GetX())
				y := float64(v.GetY())
				block.Vertices = append(block.Vertices, extract.Vertex{X: &x, Y: &y})
			}
			page.Blocks = append(page.Blocks, block)
		}
		out.Pages = append(out.Pages, page)
	}
	return out
}

// FromJSON parses a stored Document AI response (protojson encoding, as
// produced by batch processing or saved fixtures) and converts it. Unknown
// fields are tolerated so responses from newer API revisions still load.
func FromJSON(data []byte) (extract.DocumentResult, error) {
	var doc documentaipb.Document
	opts := protojson.UnmarshalOptions{DiscardUnknown: true}
	if err := opts.Unmarshal(data, &doc); err != nil {
		return extract.DocumentResult{}, fmt.Errorf("parse document json: %w", err)
	}
	return FromProto(&doc), nil
}
