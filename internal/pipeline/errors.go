package pipeline

import (
	"errors"
	"fmt"

	"github.com/dgallion1/clausewise/internal/parser"
)

// ErrNoClauses is returned when segmentation finds nothing to analyze.
var ErrNoClauses = errors.New("document could not be segmented into clauses")

// InputTooShortError is returned when the extracted text, trimmed, is below
// the minimum analyzable length.
type InputTooShortError struct {
	Length int
	Min    int
}

func (e *InputTooShortError) Error() string {
	return fmt.Sprintf("document too short for analysis: %d characters, need at least %d", e.Length, e.Min)
}

// IsClientError reports whether err was caused by the submitted document
// rather than by the service.
func IsClientError(err error) bool {
	var unsupported *parser.UnsupportedFormatError
	var extraction *parser.ExtractionError
	var tooShort *InputTooShortError
	return errors.As(err, &unsupported) ||
		errors.As(err, &extraction) ||
		errors.As(err, &tooShort) ||
		errors.Is(err, ErrNoClauses)
}
