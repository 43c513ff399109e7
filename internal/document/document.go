package document

import "unicode/utf8"

// RawDocument is an uploaded file as received at the request boundary.
type RawDocument struct {
	Content  []byte
	Filename string
}

// RiskLevel is a coarse ordinal attached to a clause or a whole document.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Score maps a level onto the 1..3 scale used for aggregation.
// Unknown levels count as Low.
func (l RiskLevel) Score() int {
	switch l {
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 1
	}
}

// EntityType tags a recognized span of text.
type EntityType string

const (
	EntityOrganization EntityType = "ORGANIZATION"
	EntityPerson       EntityType = "PERSON"
	EntityDate         EntityType = "DATE"
	EntityMoney        EntityType = "MONEY"
)

// Entity is a recognized span with a fixed per-type confidence.
type Entity struct {
	Text       string     `json:"text"`
	Type       EntityType `json:"type"`
	Confidence float64    `json:"confidence"`
}

// Classification is the inferred document category.
type Classification struct {
	Label      string  `json:"classification"`
	Confidence float64 `json:"confidence"`
}

// Clause is one analyzable segment of the document.
type Clause struct {
	Number     int       `json:"clause_number"` // 1-based, contiguous
	Excerpt    string    `json:"original"`
	Original   string    `json:"original_full"`
	Simplified string    `json:"simplified"`
	Risk       RiskLevel `json:"risk_level"`
	Category   string    `json:"category"`
}

// DocumentInfo is the report header.
type DocumentInfo struct {
	AnalysisID   string    `json:"analysis_id"`
	Filename     string    `json:"filename"`
	Format       string    `json:"format"`
	DocumentType string    `json:"document_type"`
	Confidence   float64   `json:"confidence"`
	TotalClauses int       `json:"total_clauses"`
	OverallRisk  RiskLevel `json:"overall_risk"`
	RiskScore    float64   `json:"risk_score"`
	AnalysisTime string    `json:"analysis_time"`
	ContentHash  string    `json:"content_hash"`
	Pages        int       `json:"pages,omitempty"`
	Strategy     string    `json:"segmentation"`
	Warnings     []string  `json:"warnings,omitempty"`
}

// Report is the terminal artifact of one analysis run.
type Report struct {
	Info            DocumentInfo `json:"document_info"`
	Entities        []Entity     `json:"entities"`
	Clauses         []Clause     `json:"clauses"`
	Recommendations []string     `json:"recommendations"`
}

// ExcerptLen is the number of characters of a clause shown in the report excerpt.
const ExcerptLen = 200

// Excerpt shortens text to ExcerptLen runes, appending "..." when cut.
func Excerpt(text string) string {
	if utf8.RuneCountInString(text) <= ExcerptLen {
		return text
	}
	runes := []rune(text)
	return string(runes[:ExcerptLen]) + "..."
}
