package docparse

import "github.com/google/uuid"

// LineItem is one parsed row of a document's items table. ItemName and
// UnitPrice mirror Description and UnitCost for consumers still reading the
// old field names; that is a format contract, not a data invariant.
type LineItem struct {
	ID              string  `json:"id"`
	SerialNo        int     `json:"serialNo"`
	Description     string  `json:"description"`
	ItemName        string  `json:"itemName"`
	Quantity        float64 `json:"quantity"`
	UnitCost        float64 `json:"unitCost"`
	UnitPrice       float64 `json:"unitPrice"`
	DiscountPercent float64 `json:"discountPercent"`
	DiscountAmount  float64 `json:"discountAmount"`
	NetTotal        float64 `json:"netTotal"`
	VATPercent      float64 `json:"vatPercent"`
	VATAmount       float64 `json:"vatAmount"`
}

// newLineItem creates a line item with a fresh synthetic identifier. Source
// content is unreliable, so identity is generated, never derived.
func newLineItem(serialNo int) LineItem {
	return LineItem{ID: uuid.NewString(), SerialNo: serialNo}
}

// ReceiptData is the extraction result for a goods receipt document. It is
// transient: assembled once per upload and handed to the caller, which
// decides whether to persist anything. Date mirrors ReceiptDate for older
// consumers.
type ReceiptData struct {
	ReceiptNumber   string     `json:"receiptNumber"`
	ReceiptDate     string     `json:"receiptDate"`
	Date            string     `json:"date"`
	SupplierName    string     `json:"supplierName"`
	SupplierAddress string     `json:"supplierAddress,omitempty"`
	ContactPerson   string     `json:"contactPerson,omitempty"`
	PaymentTerms    string     `json:"paymentTerms,omitempty"`
	DueDate         string     `json:"dueDate,omitempty"`
	ReceivedBy      string     `json:"receivedBy"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes"`
	Items           []LineItem `json:"items"`
}

// DeliveryData is the extraction result for a delivery note document.
// Date mirrors DeliveryDate for older consumers.
type DeliveryData struct {
	DeliveryNumber  string     `json:"deliveryNumber"`
	DeliveryDate    string     `json:"deliveryDate"`
	Date            string     `json:"date"`
	CustomerName    string     `json:"customerName"`
	DeliveryAddress string     `json:"deliveryAddress,omitempty"`
	ContactPerson   string     `json:"contactPerson,omitempty"`
	DeliveryTerms   string     `json:"deliveryTerms,omitempty"`
	DeliveredBy     string     `json:"deliveredBy"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes"`
	Items           []LineItem `json:"items"`
}
