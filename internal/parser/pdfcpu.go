package parser

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPdfcpuText reads text-showing operators straight from each page's
// content stream. Cruder than the primary reader but tolerant of files whose
// cross-reference tables the primary reader rejects.
func extractPdfcpuText(data []byte) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdfcpu: decoder panic: %v", r)
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	var buf strings.Builder
	var warnings []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", pageNr, err))
			continue
		}
		if r == nil {
			continue
		}
		content, err := io.ReadAll(r)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", pageNr, err))
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(textFromContentStream(content))
	}

	return &Result{
		Text:     normalizeText(buf.String()),
		Format:   FormatPDF,
		Pages:    ctx.PageCount,
		Warnings: warnings,
	}, nil
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// contentOpRe matches the text operators of a content stream: a TJ array,
// a string shown with Tj, ' or ", or a line-positioning operator.
var contentOpRe = regexp.MustCompile(`\[((?:\\.|[^\]\\])*)\]\s*TJ|\(((?:\\.|[^\\)])*)\)\s*(Tj|'|")|(T\*|\bT[dD]\b|\bET\b)`)

// textFromContentStream collects shown text, one output line per text line.
func textFromContentStream(data []byte) string {
	var sb strings.Builder
	var line strings.Builder

	flush := func() {
		if t := strings.Join(strings.Fields(line.String()), " "); t != "" {
			sb.WriteString(t)
			sb.WriteByte('\n')
		}
		line.Reset()
	}

	for _, m := range contentOpRe.FindAllSubmatch(data, -1) {
		switch {
		case m[1] != nil:
			for _, s := range pdfStringRe.FindAllSubmatch(m[1], -1) {
				line.WriteString(decodePDFString(s[1]))
			}
		case m[3] != nil:
			if op := string(m[3]); op == "'" || op == `"` {
				flush()
			}
			line.WriteString(decodePDFString(m[2]))
		default:
			flush()
		}
	}
	flush()
	return strings.TrimRight(sb.String(), "\n")
}

// decodePDFString handles the escape sequences of a PDF string literal.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] < '0' || raw[i] > '7' {
				sb.WriteByte(raw[i])
				continue
			}
			// Octal escape, up to three digits.
			val := int(raw[i] - '0')
			for k := 0; k < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; k++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		}
	}
	return sb.String()
}
