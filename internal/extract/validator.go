package extract

import (
	"bytes"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator checks whether an uploaded byte buffer is a well-formed PDF
// before the extraction pipeline is run against it.
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a validator with the specified size constraint.
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{maxFileSize: maxFileSize}
}

// ValidateResult describes the outcome of validating one upload.
type ValidateResult struct {
	Filename string `json:"filename"`
	Valid    bool   `json:"valid"`
	Pages    int    `json:"pages,omitempty"`
	Size     int64  `json:"size"`
	Message  string `json:"message,omitempty"`
}

// ValidateBytes validates the upload. Validation failures are reported in
// the result, not as errors.
func (v *Validator) ValidateBytes(data []byte, filename string) *ValidateResult {
	result := &ValidateResult{
		Filename: filename,
		Size:     int64(len(data)),
	}

	if len(data) == 0 {
		result.Message = "file is empty"
		return result
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		result.Message = "file is not a PDF: " + filename
		return result
	}
	if v.maxFileSize > 0 && int64(len(data)) > v.maxFileSize {
		result.Message = "file too large"
		return result
	}

	conf := model.NewDefaultConfiguration()
	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		result.Message = "invalid PDF: " + err.Error()
		return result
	}
	if pages, err := api.PageCount(bytes.NewReader(data), conf); err == nil {
		result.Pages = pages
	}

	result.Valid = true
	return result
}

// IsValidPDF performs a quick validity check on an upload.
func (v *Validator) IsValidPDF(data []byte, filename string) bool {
	return v.ValidateBytes(data, filename).Valid
}
