package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/dgallion1/clausewise/internal/document"
)

// WriteTable prints the report as terminal tables.
func WriteTable(w io.Writer, r *document.Report) {
	info := r.Info

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(info.Filename)
	tw.AppendRow(table.Row{"Document type", fmt.Sprintf("%s (%.2f)", info.DocumentType, info.Confidence)})
	tw.AppendRow(table.Row{"Clauses", info.TotalClauses})
	tw.AppendRow(table.Row{"Overall risk", fmt.Sprintf("%s (%.2f)", info.OverallRisk, info.RiskScore)})
	tw.AppendRow(table.Row{"Analysis time", info.AnalysisTime})
	for _, warn := range info.Warnings {
		tw.AppendRow(table.Row{"Warning", warn})
	}
	tw.SetStyle(table.StyleLight)
	tw.Render()
	fmt.Fprintln(w)

	if len(r.Entities) > 0 {
		et := table.NewWriter()
		et.SetOutputMirror(w)
		et.AppendHeader(table.Row{"Entity", "Type", "Confidence"})
		for _, e := range r.Entities {
			et.AppendRow(table.Row{e.Text, e.Type, fmt.Sprintf("%.2f", e.Confidence)})
		}
		et.SetStyle(table.StyleLight)
		et.Render()
		fmt.Fprintln(w)
	}

	ct := table.NewWriter()
	ct.SetOutputMirror(w)
	ct.AppendHeader(table.Row{"#", "Category", "Risk", "Plain language"})
	for _, c := range r.Clauses {
		ct.AppendRow(table.Row{c.Number, c.Category, riskColor(c.Risk).Sprint(c.Risk), c.Simplified})
	}
	ct.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, WidthMax: 80},
	})
	ct.SetStyle(table.StyleLight)
	ct.Render()

	if len(r.Recommendations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Recommendations:")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}
}

func riskColor(l document.RiskLevel) text.Colors {
	switch l {
	case document.RiskHigh:
		return text.Colors{text.FgRed, text.Bold}
	case document.RiskMedium:
		return text.Colors{text.FgYellow}
	default:
		return text.Colors{text.FgGreen}
	}
}
