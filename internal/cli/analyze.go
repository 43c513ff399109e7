package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dgallion1/clausewise/internal/document"
	"github.com/dgallion1/clausewise/internal/report"
)

var outputFormats = []string{"table", "json", "markdown", "html", "xlsx"}

func newAnalyzeCommand(e *env) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "analyze [flags] <file>",
		Short: "Analyze a pdf, docx or txt document",
		Long: `Analyze a legal document and print a report.

Examples:
  clausewise analyze contract.pdf
  clausewise analyze --format markdown nda.docx
  clausewise analyze --format xlsx -o lease.xlsx lease.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(format) {
				return fmt.Errorf("unknown format %q (use one of %v)", format, outputFormats)
			}
			if format == "xlsx" && output == "" {
				return fmt.Errorf("--output is required for xlsx")
			}

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			a, err := e.analyzer()
			if err != nil {
				return err
			}
			rep, err := a.Analyze(cmd.Context(), document.RawDocument{Content: data, Filename: filepath.Base(path)})
			if err != nil {
				return err
			}

			if output == "" {
				return render(cmd.OutOrStdout(), rep, format)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := writeAndClose(f, func(w io.Writer) error { return render(w, rep, format) }); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json, markdown, html, xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}

// writeAndClose runs write against wc and always closes it. A close failure
// is reported when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

func validFormat(f string) bool {
	for _, v := range outputFormats {
		if f == v {
			return true
		}
	}
	return false
}

func render(w io.Writer, rep *document.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "markdown":
		_, err := io.WriteString(w, report.Markdown(rep))
		return err
	case "html":
		body, err := report.HTML(rep)
		if err != nil {
			return err
		}
		_, err = w.Write(body)
		return err
	case "xlsx":
		return report.WriteXLSX(w, rep)
	default:
		report.WriteTable(w, rep)
		return nil
	}
}
