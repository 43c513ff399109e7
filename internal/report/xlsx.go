package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dgallion1/clausewise/internal/document"
)

// WriteXLSX writes a workbook with Summary, Clauses and Entities sheets.
func WriteXLSX(w io.Writer, r *document.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), "Summary"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	info := r.Info
	summary := [][]any{
		{"Field", "Value"},
		{"Filename", info.Filename},
		{"Document type", info.DocumentType},
		{"Confidence", info.Confidence},
		{"Total clauses", info.TotalClauses},
		{"Overall risk", string(info.OverallRisk)},
		{"Risk score", info.RiskScore},
		{"Analysis time", info.AnalysisTime},
		{"Analysis ID", info.AnalysisID},
		{"Content hash", info.ContentHash},
	}
	for _, rec := range r.Recommendations {
		summary = append(summary, []any{"Recommendation", rec})
	}
	if err := writeRows(f, "Summary", summary); err != nil {
		return err
	}

	clauses := [][]any{{"Clause", "Category", "Risk", "Original", "Simplified"}}
	for _, c := range r.Clauses {
		clauses = append(clauses, []any{c.Number, c.Category, string(c.Risk), c.Original, c.Simplified})
	}
	if err := writeSheet(f, "Clauses", clauses); err != nil {
		return err
	}

	entities := [][]any{{"Text", "Type", "Confidence"}}
	for _, e := range r.Entities {
		entities = append(entities, []any{e.Text, string(e.Type), e.Confidence})
	}
	if err := writeSheet(f, "Entities", entities); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
