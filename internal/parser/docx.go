package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (res *Result, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, extractionErr(FormatDOCX, fmt.Errorf("read: %w", err))
	}
	defer recoverInto(FormatDOCX, &err)

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, extractionErr(FormatDOCX, fmt.Errorf("parse docx: %w", err))
	}

	// Every paragraph, empty ones included, ends with a newline so blank
	// paragraphs still read as paragraph breaks downstream.
	var buf strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		buf.WriteString(docxParagraphText(para))
		buf.WriteByte('\n')
	}

	return &Result{
		Text:   normalizeText(buf.String()),
		Format: FormatDOCX,
	}, nil
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		switch c := child.(type) {
		case *docx.Run:
			writeRunText(&buf, c)
		case *docx.Hyperlink:
			writeRunText(&buf, &c.Run)
		}
	}
	return buf.String()
}

func writeRunText(buf *strings.Builder, run *docx.Run) {
	for _, rc := range run.Children {
		switch t := rc.(type) {
		case *docx.Text:
			buf.WriteString(t.Text)
		case *docx.Tab:
			buf.WriteByte('\t')
		}
	}
}

// recoverInto turns a panic inside a third-party decoder into an ExtractionError.
func recoverInto(format Format, err *error) {
	if r := recover(); r != nil {
		*err = extractionErr(format, fmt.Errorf("decoder panic: %v", r))
	}
}
