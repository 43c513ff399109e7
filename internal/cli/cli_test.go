package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dgallion1/clausewise/internal/document"
)

const ndaText = "This Non-Disclosure Agreement is made between the parties on 01/15/2024 and governs " +
	"everything exchanged between them.\n" +
	"1. Confidentiality. The Recipient shall remain confidential about all information received " +
	"and shall pay $5,000 for any breach."

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyze_JSON(t *testing.T) {
	out, err := run(t, "analyze", "--format", "json", writeDoc(t, "nda.txt", ndaText))
	require.NoError(t, err)

	var rep document.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "NDA", rep.Info.DocumentType)
	assert.Equal(t, "nda.txt", rep.Info.Filename)
}

func TestAnalyze_DefaultTable(t *testing.T) {
	out, err := run(t, "analyze", writeDoc(t, "nda.txt", ndaText))
	require.NoError(t, err)
	assert.Contains(t, out, "NDA (0.92)")
	assert.Contains(t, out, "Recommendations:")
}

func TestAnalyze_Markdown(t *testing.T) {
	out, err := run(t, "analyze", "-f", "markdown", writeDoc(t, "nda.txt", ndaText))
	require.NoError(t, err)
	assert.Contains(t, out, "# Analysis: nda.txt")
}

func TestAnalyze_XLSXToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.xlsx")
	_, err := run(t, "analyze", "-f", "xlsx", "-o", dest, writeDoc(t, "nda.txt", ndaText))
	require.NoError(t, err)

	f, err := excelize.OpenFile(dest)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Clauses")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := run(t, "analyze", "-f", "yaml", writeDoc(t, "nda.txt", ndaText))
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "analyze", "-f", "xlsx", writeDoc(t, "nda.txt", ndaText))
	assert.ErrorContains(t, err, "--output is required")

	_, err = run(t, "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "read")

	_, err = run(t, "analyze", writeDoc(t, "short.txt", "tiny"))
	assert.ErrorContains(t, err, "too short")

	_, err = run(t, "analyze")
	assert.Error(t, err)
}

func TestAnalyze_ConfigFlag(t *testing.T) {
	cfgPath := writeDoc(t, "clausewise.yaml", "min_document_len: 5000\n")
	_, err := run(t, "--config", cfgPath, "analyze", writeDoc(t, "nda.txt", ndaText))
	assert.ErrorContains(t, err, "need at least 5000")
}

type closeRecorder struct {
	bytes.Buffer
	closed   bool
	closeErr error
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

func TestWriteAndClose(t *testing.T) {
	flushErr := errors.New("disk full")
	writeOK := func(w io.Writer) error {
		_, err := io.WriteString(w, "report")
		return err
	}

	wc := &closeRecorder{closeErr: flushErr}
	assert.ErrorIs(t, writeAndClose(wc, writeOK), flushErr)
	assert.True(t, wc.closed)

	renderErr := errors.New("render failed")
	wc = &closeRecorder{closeErr: flushErr}
	assert.ErrorIs(t, writeAndClose(wc, func(io.Writer) error { return renderErr }), renderErr)
	assert.True(t, wc.closed)

	wc = &closeRecorder{}
	require.NoError(t, writeAndClose(wc, writeOK))
	assert.Equal(t, "report", wc.String())
}
