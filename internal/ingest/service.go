package ingest

import (
	"fmt"

	"github.com/otrixindiacloud/tradix-docingest/internal/docparse"
	"github.com/otrixindiacloud/tradix-docingest/internal/extract"
)

// Service is the document-ingestion facade the transport layers call. It
// composes the extraction and parsing components; it holds no shared mutable
// state, so concurrent requests are independent.
type Service struct {
	extractor *extract.Extractor
	validator *extract.Validator
	parser    *docparse.Parser
}

// NewService wires the standard pipeline: structured extraction with
// byte-scrape fallback, then the receipt/delivery parsers.
func NewService(maxFileSize int64, minTextLen int, tempDir string) *Service {
	extractor := extract.NewExtractor(maxFileSize, minTextLen, tempDir)
	return &Service{
		extractor: extractor,
		validator: extract.NewValidator(maxFileSize),
		parser:    docparse.NewParser(extractor),
	}
}

// ParseDocumentRequest carries one uploaded document: the raw bytes plus the
// original filename. The filename is used only for its extension check and
// as a document-number fallback source.
type ParseDocumentRequest struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}

// ParseReceipt runs the full pipeline for a goods receipt upload.
func (s *Service) ParseReceipt(req ParseDocumentRequest) (*docparse.ReceiptData, error) {
	doc, err := s.parser.ParseReceipt(req.Data, req.Filename)
	if err != nil {
		return nil, fmt.Errorf("receipt parsing failed: %w", err)
	}
	return doc, nil
}

// ParseDelivery runs the full pipeline for a delivery note upload.
func (s *Service) ParseDelivery(req ParseDocumentRequest) (*docparse.DeliveryData, error) {
	doc, err := s.parser.ParseDelivery(req.Data, req.Filename)
	if err != nil {
		return nil, fmt.Errorf("delivery parsing failed: %w", err)
	}
	return doc, nil
}

// ValidateDocument checks whether an upload is a well-formed PDF without
// running extraction. Validation failures are reported in the result.
func (s *Service) ValidateDocument(req ParseDocumentRequest) *extract.ValidateResult {
	return s.validator.ValidateBytes(req.Data, req.Filename)
}
