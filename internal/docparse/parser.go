package docparse

import "path/filepath"

// TextSource turns raw uploaded bytes into plain text. Satisfied by
// extract.Extractor; kept as an interface so the parse pipeline can be
// exercised without real PDF plumbing.
type TextSource interface {
	ExtractText(data []byte, filename string) (string, error)
}

// Default values applied by the finalization step when extraction left a
// field unset.
const (
	DefaultHandler = "System User"
	DefaultStatus  = "Pending"
)

// Parser orchestrates the full pipeline for one uploaded document:
// text extraction, line segmentation, header and item-table extraction, and
// a single default-filling pass. Receipt and delivery documents are two
// instantiations of the same pipeline with different label sets.
type Parser struct {
	source TextSource
}

// NewParser creates a document parser over the given text source.
func NewParser(source TextSource) *Parser {
	return &Parser{source: source}
}

// ParseReceipt parses an uploaded goods receipt PDF into structured data.
// The only failure mode is the text-extraction stage; every later step
// degrades to defaults.
func (p *Parser) ParseReceipt(data []byte, filename string) (*ReceiptData, error) {
	text, err := p.source.ExtractText(data, filename)
	if err != nil {
		return nil, err
	}

	lines := SegmentLines(text)
	h := extractHeader(lines, receiptHeaderRules, receiptAddressRe)

	doc := &ReceiptData{
		ReceiptNumber:   h.DocNumber,
		ReceiptDate:     h.DocDate,
		SupplierName:    h.Party,
		SupplierAddress: h.Address,
		ContactPerson:   h.Contact,
		PaymentTerms:    h.PaymentTerms,
		DueDate:         h.DueDate,
		ReceivedBy:      h.HandledBy,
		Status:          h.Status,
		Notes:           h.Notes,
		Items:           extractItems(lines),
	}
	p.finalizeReceipt(doc, filename)
	return doc, nil
}

// ParseDelivery parses an uploaded delivery note PDF into structured data.
func (p *Parser) ParseDelivery(data []byte, filename string) (*DeliveryData, error) {
	text, err := p.source.ExtractText(data, filename)
	if err != nil {
		return nil, err
	}

	lines := SegmentLines(text)
	h := extractHeader(lines, deliveryHeaderRules, deliveryAddressRe)

	doc := &DeliveryData{
		DeliveryNumber:  h.DocNumber,
		DeliveryDate:    h.DocDate,
		CustomerName:    h.Party,
		DeliveryAddress: h.Address,
		ContactPerson:   h.Contact,
		DeliveryTerms:   h.PaymentTerms,
		DeliveredBy:     h.HandledBy,
		Status:          h.Status,
		Notes:           h.Notes,
		Items:           extractItems(lines),
	}
	p.finalizeDelivery(doc, filename)
	return doc, nil
}

// numberFromFilename applies the structural document-number pattern to the
// upload's original filename.
func numberFromFilename(filename string) string {
	return docNumberRe.FindString(filepath.Base(filename))
}

// finalizeReceipt is the single place where "what wins when nothing
// matched" is decided for receipts.
func (p *Parser) finalizeReceipt(doc *ReceiptData, filename string) {
	if doc.ReceiptNumber == "" {
		doc.ReceiptNumber = numberFromFilename(filename)
	}
	if doc.ReceivedBy == "" {
		doc.ReceivedBy = DefaultHandler
	}
	if doc.Status == "" {
		doc.Status = DefaultStatus
	}
	doc.Date = doc.ReceiptDate
	if doc.Items == nil {
		doc.Items = []LineItem{}
	}
}

// finalizeDelivery mirrors finalizeReceipt for delivery notes.
func (p *Parser) finalizeDelivery(doc *DeliveryData, filename string) {
	if doc.DeliveryNumber == "" {
		doc.DeliveryNumber = numberFromFilename(filename)
	}
	if doc.DeliveredBy == "" {
		doc.DeliveredBy = DefaultHandler
	}
	if doc.Status == "" {
		doc.Status = DefaultStatus
	}
	doc.Date = doc.DeliveryDate
	if doc.Items == nil {
		doc.Items = []LineItem{}
	}
}
