package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TextParser handles plain text files. Input must be UTF-8; a leading UTF-8
// byte order mark is removed. UTF-16 and legacy encodings are rejected.
type TextParser struct{}

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

func (p *TextParser) Parse(r io.Reader, filename string) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, extractionErr(FormatTXT, fmt.Errorf("read: %w", err))
	}

	text, err := decodeUTF8(data)
	if err != nil {
		return nil, extractionErr(FormatTXT, err)
	}

	return &Result{
		Text:   text,
		Format: FormatTXT,
	}, nil
}

// decodeUTF8 rejects invalid UTF-8, strips a UTF-8 BOM and normalises line
// endings and composition.
func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return normalizeText(string(out)), nil
}

func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}
