package parser

import "fmt"

// UnsupportedFormatError is returned when a filename extension is not one of
// the supported formats.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "unsupported file format: missing extension"
	}
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}

// ExtractionError wraps a parser failure: corrupt structure, bad encoding and so on.
type ExtractionError struct {
	Format Format
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s text: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func extractionErr(format Format, err error) *ExtractionError {
	return &ExtractionError{Format: format, Err: err}
}
