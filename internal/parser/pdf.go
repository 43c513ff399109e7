package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It tries ledongthuc/pdf first, then falls
// back to a pdfcpu content-stream scan if enabled.
type PDFParser struct {
	FallbackPdfcpu bool
}

var errNoReadablePages = errors.New("no page could be decoded")

func (p *PDFParser) Parse(r io.Reader, filename string) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, extractionErr(FormatPDF, fmt.Errorf("read: %w", err))
	}

	res, err := extractPDFText(data)
	if err != nil && p.FallbackPdfcpu {
		fallback, ferr := extractPdfcpuText(data)
		if ferr == nil {
			fallback.Warnings = append(fallback.Warnings, "primary pdf reader failed, used pdfcpu: "+err.Error())
			return fallback, nil
		}
		err = fmt.Errorf("%w (pdfcpu fallback: %v)", err, ferr)
	}
	if err != nil {
		return nil, extractionErr(FormatPDF, err)
	}
	return res, nil
}

func extractPDFText(data []byte) (*Result, error) {
	reader, err := openPDF(data)
	if err != nil {
		return nil, err
	}

	var buf strings.Builder
	var warnings []string
	numPages := reader.NumPage()
	failed := 0
	for i := 1; i <= numPages; i++ {
		text, err := pageText(reader, i)
		if err != nil {
			failed++
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, err))
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
	}
	if numPages > 0 && failed == numPages {
		return nil, fmt.Errorf("%w: %s", errNoReadablePages, warnings[0])
	}

	return &Result{
		Text:     normalizeText(buf.String()),
		Format:   FormatPDF,
		Pages:    numPages,
		Warnings: warnings,
	}, nil
}

func openPDF(data []byte) (reader *pdflib.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("open pdf: decoder panic: %v", r)
		}
	}()
	reader, err = pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return reader, nil
}

// pageText extracts one page. The library panics on some malformed content
// streams, so each page is isolated.
func pageText(reader *pdflib.Reader, n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	page := reader.Page(n)
	if page.V.IsNull() {
		return "", errors.New("missing page object")
	}
	return page.GetPlainText(nil)
}
