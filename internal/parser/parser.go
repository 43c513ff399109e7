package parser

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format identifies a supported document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
)

// Result is the plain text extracted from one document.
type Result struct {
	Text     string
	Format   Format
	Pages    int      // PDF page count, 0 for other formats
	Warnings []string // non-fatal problems, e.g. a PDF page that failed to decode
}

// Parser converts raw document bytes into plain text.
type Parser interface {
	Parse(r io.Reader, filename string) (*Result, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// Options tune the parsers returned by ForFile.
type Options struct {
	// PDFFallbackPdfcpu retries PDFs the primary reader cannot open with pdfcpu.
	PDFFallbackPdfcpu bool
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdfcpu: opts.PDFFallbackPdfcpu}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, &UnsupportedFormatError{Ext: ext}
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Extract picks a parser by extension and runs it over data.
func Extract(data []byte, filename string, opts Options) (*Result, error) {
	p, err := ForFile(filename, opts)
	if err != nil {
		return nil, err
	}
	return p.Parse(bytes.NewReader(data), filename)
}
