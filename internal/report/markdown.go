// Package report renders analysis reports as Markdown, HTML, XLSX and
// terminal tables.
package report

import (
	"fmt"
	"strings"

	"github.com/dgallion1/clausewise/internal/document"
)

// Markdown renders r as a GitHub-flavored Markdown document.
func Markdown(r *document.Report) string {
	var sb strings.Builder
	info := r.Info

	fmt.Fprintf(&sb, "# Analysis: %s\n\n", inline(info.Filename))
	fmt.Fprintf(&sb, "- **Document type:** %s (%.0f%% confidence)\n", inline(info.DocumentType), info.Confidence*100)
	fmt.Fprintf(&sb, "- **Clauses:** %d\n", info.TotalClauses)
	fmt.Fprintf(&sb, "- **Overall risk:** %s (score %.2f)\n", info.OverallRisk, info.RiskScore)
	if info.Strategy != "" {
		fmt.Fprintf(&sb, "- **Segmentation:** %s\n", info.Strategy)
	}
	if info.Pages > 0 {
		fmt.Fprintf(&sb, "- **Pages:** %d\n", info.Pages)
	}
	fmt.Fprintf(&sb, "- **Analysis time:** %s\n", info.AnalysisTime)
	if info.AnalysisID != "" {
		fmt.Fprintf(&sb, "- **Analysis ID:** `%s`\n", info.AnalysisID)
	}

	if len(info.Warnings) > 0 {
		sb.WriteString("\n## Warnings\n\n")
		for _, w := range info.Warnings {
			fmt.Fprintf(&sb, "- %s\n", inline(w))
		}
	}

	sb.WriteString("\n## Entities\n\n")
	if len(r.Entities) == 0 {
		sb.WriteString("_No entities found._\n")
	} else {
		sb.WriteString("| Text | Type | Confidence |\n|---|---|---|\n")
		for _, e := range r.Entities {
			fmt.Fprintf(&sb, "| %s | %s | %.2f |\n", cell(e.Text), e.Type, e.Confidence)
		}
	}

	sb.WriteString("\n## Clauses\n")
	for _, c := range r.Clauses {
		fmt.Fprintf(&sb, "\n### Clause %d: %s (%s risk)\n\n", c.Number, inline(c.Category), c.Risk)
		fmt.Fprintf(&sb, "**Original:** %s\n\n", inline(c.Excerpt))
		fmt.Fprintf(&sb, "**Plain language:** %s\n", inline(c.Simplified))
	}

	if len(r.Recommendations) > 0 {
		sb.WriteString("\n## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&sb, "- %s\n", inline(rec))
		}
	}
	return sb.String()
}

var inlineEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"*", "\\*",
	"_", "\\_",
	"`", "\\`",
	"#", "\\#",
	"[", "\\[",
	"]", "\\]",
	"<", "&lt;",
	">", "&gt;",
)

// inline flattens text onto one line and escapes Markdown syntax.
func inline(s string) string {
	return inlineEscaper.Replace(strings.Join(strings.Fields(s), " "))
}

func cell(s string) string {
	return strings.ReplaceAll(inline(s), "|", "\\|")
}
