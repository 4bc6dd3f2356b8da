package extract

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why text extraction failed. Anything downstream of the
// text stage degrades to defaults instead of erroring, so this taxonomy is the
// complete set of failures a caller can observe.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota

	// KindUnsupportedFormat means the filename does not indicate a supported
	// document format, or the payload exceeds the configured size limit.
	KindUnsupportedFormat

	// KindEmptyInput means a zero-length byte buffer was submitted.
	KindEmptyInput

	// KindInsufficientText means every extraction strategy ran but none
	// yielded enough text. The document is likely an image-based scan.
	KindInsufficientText

	// KindLibraryUnavailable means the structured extraction mechanism could
	// not run at all; the byte-scrape fallback was still attempted first.
	KindLibraryUnavailable
)

// String returns the wire name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUnsupportedFormat:
		return "UNSUPPORTED_FORMAT"
	case KindEmptyInput:
		return "EMPTY_INPUT"
	case KindInsufficientText:
		return "INSUFFICIENT_TEXT"
	case KindLibraryUnavailable:
		return "LIBRARY_UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}

// Error is a classified extraction failure: a machine-readable kind plus a
// human-readable message. It does not prescribe transport status codes.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the classification of err, or KindUnknown when err is not an
// extraction error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
