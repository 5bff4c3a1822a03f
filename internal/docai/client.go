// Package docai adapts Google Document AI to the extract.DocumentExtractor
// contract. It owns the processor resource name, the regional endpoint, and
// the mapping of RPC failures into the application error taxonomy.
package docai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/common"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/extract"
)

// Client calls a Document AI OCR processor and converts its responses into
// the raw hierarchy the normalizer consumes. It implements
// extract.DocumentExtractor.
type Client struct {
	cfg    common.DocAIConfig
	pc     *documentai.DocumentProcessorClient
	logger *slog.Logger
}

// NewClient dials the regional Document AI endpoint. Credentials come from
// the ambient Google application-default mechanism.
func NewClient(ctx context.Context, cfg common.DocAIConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ProjectID == "" || cfg.Location == "" || cfg.ProcessorID == "" {
		return nil, common.NewAppError("CONFIG_ERROR", "missing Document AI processor identifiers", common.ErrInvalidInput)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)
	}

	pc, err := documentai.NewDocumentProcessorClient(ctx, option.WithEndpoint(cfg.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("create document processor client: %w", err)
	}
	return &Client{cfg: cfg, pc: pc, logger: logger}, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.pc.Close()
}

func (c *Client) processorName() string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s",
		c.cfg.ProjectID, c.cfg.Location, c.cfg.ProcessorID)
}

// Extract sends raw document bytes to the processor and returns the
// flattening-ready hierarchy. The round trip is atomic: there is no retry
// and no partial result on failure.
func (c *Client) Extract(ctx context.Context, content []byte, mimeType string) (extract.DocumentResult, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = common.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	req := &documentaipb.ProcessRequest{
		Name: c.processorName(),
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  content,
				MimeType: mimeType,
			},
		},
	}

	resp, err := c.pc.ProcessDocument(ctx, req)
	if err != nil {
		c.logger.Error("docai.process.failed",
			"processor", c.processorName(),
			"bytes", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return extract.DocumentResult{}, mapRPCError(err)
	}

	doc := resp.GetDocument()
	c.logger.Info("docai.process.ok",
		"processor", c.processorName(),
		"bytes", len(content),
		"pages", len(doc.GetPages()),
		"text_bytes", len(doc.GetText()),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return FromProto(doc), nil
}

// mapRPCError folds a gRPC status error into the application taxonomy while
// keeping the underlying diagnostic message intact.
func mapRPCError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return common.WrapError(err, "process document")
	}
	switch st.Code() {
	case codes.InvalidArgument, codes.FailedPrecondition:
		return common.NewAppError("DOCAI_REQUEST", st.Message(), common.ErrInvalidInput)
	case codes.NotFound:
		return common.NewAppError("DOCAI_PROCESSOR", st.Message(), common.ErrExtraction)
	case codes.DeadlineExceeded, codes.Canceled:
		return common.NewAppError("DOCAI_TIMEOUT", st.Message(), common.ErrExtraction)
	default:
		return common.NewAppError("DOCAI_RPC", st.Message(), common.ErrExtraction)
	}
}
