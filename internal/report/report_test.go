package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/net/html"

	"github.com/dgallion1/clausewise/internal/document"
)

func sampleReport() *document.Report {
	return &document.Report{
		Info: document.DocumentInfo{
			AnalysisID:   "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
			Filename:     "nda_final.txt",
			Format:       "txt",
			DocumentType: "NDA",
			Confidence:   0.92,
			TotalClauses: 2,
			OverallRisk:  document.RiskMedium,
			RiskScore:    1.5,
			AnalysisTime: "2ms",
			Strategy:     "numbered",
		},
		Entities: []document.Entity{
			{Text: "Acme Corp", Type: document.EntityOrganization, Confidence: 0.85},
			{Text: "$5,000", Type: document.EntityMoney, Confidence: 0.88},
		},
		Clauses: []document.Clause{
			{Number: 1, Category: "Confidentiality", Risk: document.RiskLow,
				Original: "The Recipient shall keep secrets.", Excerpt: "The Recipient shall keep secrets.",
				Simplified: "The Recipient will keep secrets."},
			{Number: 2, Category: "Clause Type 2", Risk: document.RiskMedium,
				Original: "Pay <script>alert(1)</script> | now", Excerpt: "Pay <script>alert(1)</script> | now",
				Simplified: "Pay <script>alert(1)</script> | now"},
		},
		Recommendations: []string{"Review high-risk clauses with legal counsel"},
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleReport())

	assert.True(t, strings.HasPrefix(out, "# Analysis: nda\\_final.txt\n"))
	assert.Contains(t, out, "- **Document type:** NDA (92% confidence)")
	assert.Contains(t, out, "- **Overall risk:** Medium (score 1.50)")
	assert.Contains(t, out, "| Acme Corp | ORGANIZATION | 0.85 |")
	assert.Contains(t, out, "### Clause 1: Confidentiality (Low risk)")
	assert.Contains(t, out, "**Plain language:** The Recipient will keep secrets.")
	assert.Contains(t, out, "- Review high-risk clauses with legal counsel")
	assert.NotContains(t, out, "<script>")
}

func TestMarkdown_NoEntities(t *testing.T) {
	r := sampleReport()
	r.Entities = nil
	r.Info.Warnings = []string{"page 2: bad stream"}
	out := Markdown(r)
	assert.Contains(t, out, "_No entities found._")
	assert.Contains(t, out, "## Warnings\n\n- page 2: bad stream")
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func TestHTML(t *testing.T) {
	out, err := HTML(sampleReport())
	require.NoError(t, err)

	doc, err := html.Parse(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Empty(t, findAll(doc, "script"), "script elements must be stripped")

	titles := findAll(doc, "title")
	require.Len(t, titles, 1)
	assert.Equal(t, "ClauseWise: nda_final.txt", textOf(titles[0]))

	h1 := findAll(doc, "h1")
	require.Len(t, h1, 1)
	assert.Equal(t, "Analysis: nda_final.txt", textOf(h1[0]))

	var cells []string
	for _, td := range findAll(doc, "td") {
		cells = append(cells, textOf(td))
	}
	assert.Contains(t, cells, "Acme Corp")
	assert.Contains(t, cells, "$5,000")

	assert.Len(t, findAll(doc, "h3"), 2)
	assert.Contains(t, textOf(doc), "Pay <script>alert(1)</script> | now")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Clauses", "Entities"}, f.GetSheetList())

	clauses, err := f.GetRows("Clauses")
	require.NoError(t, err)
	require.Len(t, clauses, 3)
	assert.Equal(t, []string{"Clause", "Category", "Risk", "Original", "Simplified"}, clauses[0])
	assert.Equal(t, "Confidentiality", clauses[1][1])
	assert.Equal(t, "The Recipient will keep secrets.", clauses[1][4])

	entities, err := f.GetRows("Entities")
	require.NoError(t, err)
	require.Len(t, entities, 3)
	assert.Equal(t, "Acme Corp", entities[1][0])

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Document type", "NDA"}, summary[2])
	assert.Equal(t, []string{"Recommendation", "Review high-risk clauses with legal counsel"}, summary[len(summary)-1])
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "nda_final.txt")
	assert.Contains(t, out, "NDA (0.92)")
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "Confidentiality")
	assert.Contains(t, out, "The Recipient will keep secrets.")
	assert.Contains(t, out, "Recommendations:")
}
