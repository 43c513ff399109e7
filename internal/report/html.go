package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dgallion1/clausewise/internal/document"
)

var (
	md     = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy = bluemonday.UGCPolicy()
)

// HTML renders the Markdown report to a standalone, sanitized HTML page.
func HTML(r *document.Report) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(r)), &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&out, "<title>ClauseWise: %s</title>\n", html.EscapeString(r.Info.Filename))
	out.WriteString("</head>\n<body>\n")
	out.Write(policy.SanitizeBytes(body.Bytes()))
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}
