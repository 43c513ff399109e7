// Package classify labels documents and clauses from ordered keyword tables.
package classify

import (
	"fmt"
	"strings"

	"github.com/dgallion1/clausewise/internal/document"
)

// Rule maps any of its keywords to a label. Rules are evaluated in order
// and the first rule with a matching keyword wins.
type Rule struct {
	Keywords   []string `yaml:"keywords"`
	Label      string   `yaml:"label"`
	Confidence float64  `yaml:"confidence"`
}

// Fallback is returned when no document rule matches.
var Fallback = document.Classification{Label: "General Contract", Confidence: 0.70}

// DefaultRules is the document-type table, highest priority first.
func DefaultRules() []Rule {
	return []Rule{
		{Keywords: []string{"non-disclosure", "confidential"}, Label: "NDA", Confidence: 0.92},
		{Keywords: []string{"lease", "rental"}, Label: "Lease Agreement", Confidence: 0.89},
		{Keywords: []string{"employment", "employee"}, Label: "Employment Contract", Confidence: 0.87},
		{Keywords: []string{"service", "services"}, Label: "Service Agreement", Confidence: 0.85},
	}
}

// DefaultCategories is the clause-category table. Confidence is unused.
func DefaultCategories() []Rule {
	return []Rule{
		{Keywords: []string{"confidential", "non-disclosure", "proprietary"}, Label: "Confidentiality"},
		{Keywords: []string{"terminat", "cancel"}, Label: "Termination"},
		{Keywords: []string{"payment", "fee", "compensation", "invoice", "$"}, Label: "Payment"},
		{Keywords: []string{"liabil", "indemn", "damages"}, Label: "Liability"},
		{Keywords: []string{"governing law", "governed by", "jurisdiction"}, Label: "Governing Law"},
		{Keywords: []string{"arbitrat", "dispute", "mediat"}, Label: "Dispute Resolution"},
		{Keywords: []string{"term of", "duration", "effective date", "renew"}, Label: "Term"},
	}
}

// Classifier holds read-only rule tables and is safe for concurrent use.
type Classifier struct {
	rules      []Rule
	categories []Rule
}

// New builds a Classifier. Nil tables fall back to the defaults.
// Keywords are lower-cased once here.
func New(rules, categories []Rule) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}
	if categories == nil {
		categories = DefaultCategories()
	}
	return &Classifier{rules: lowered(rules), categories: lowered(categories)}
}

// Classify returns the label of the first rule with a keyword contained in
// text (case-insensitive), or Fallback.
func (c *Classifier) Classify(text string) document.Classification {
	if r, ok := firstMatch(c.rules, strings.ToLower(text)); ok {
		return document.Classification{Label: r.Label, Confidence: r.Confidence}
	}
	return Fallback
}

// CategorizeClause names the clause at the 1-based position. Clauses that
// match no category are labelled "Clause Type N".
func (c *Classifier) CategorizeClause(position int, text string) string {
	if r, ok := firstMatch(c.categories, strings.ToLower(text)); ok {
		return r.Label
	}
	return fmt.Sprintf("Clause Type %d", position)
}

func firstMatch(rules []Rule, lower string) (Rule, bool) {
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if kw != "" && strings.Contains(lower, kw) {
				return r, true
			}
		}
	}
	return Rule{}, false
}

func lowered(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		kws := make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		out[i] = Rule{Keywords: kws, Label: r.Label, Confidence: r.Confidence}
	}
	return out
}
