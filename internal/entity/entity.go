// Package entity finds parties, dates and monetary amounts in contract text.
package entity

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/dgallion1/clausewise/internal/document"
)

// MaxPerGroup caps the entities kept for each group (parties, dates, money).
const MaxPerGroup = 3

const (
	partyConfidence = 0.85
	dateConfidence  = 0.90
	moneyConfidence = 0.88
)

// corporateSuffixes mark a party as an organization.
var corporateSuffixes = []string{"Corp", "Inc", "LLC", "Ltd", "Company", "Corporation"}

var (
	orgRe   = regexp.MustCompile(`\b[A-Z][a-z]+ (?:Corp|Inc|LLC|Ltd|Company|Corporation)\b`)
	dateRe  = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b|\b\d{4}-\d{2}-\d{2}\b`)
	moneyRe = regexp.MustCompile(`\$\d[\d,]*(?:\.\d{2})?`)

	// Two capitalized words where the second is not a corporate suffix.
	// RE2 has no lookahead, hence regexp2.
	personRe = regexp2.MustCompile(`\b[A-Z][a-z]+ (?!(?:Corp|Inc|LLC|Ltd|Company|Corporation)\b)[A-Z][a-z]+\b`, regexp2.None)
)

// Extractor is stateless and safe for concurrent use.
type Extractor struct{}

// New returns an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns up to three parties, then up to three dates, then up to
// three monetary amounts, each group deduplicated by exact text and kept in
// order of first occurrence.
func (e *Extractor) Extract(text string) []document.Entity {
	var entities []document.Entity

	parties := append(orgRe.FindAllString(text, -1), findAll2(personRe, text)...)
	for _, p := range firstUnique(parties, MaxPerGroup) {
		entities = append(entities, document.Entity{Text: p, Type: partyType(p), Confidence: partyConfidence})
	}
	for _, d := range firstUnique(dateRe.FindAllString(text, -1), MaxPerGroup) {
		entities = append(entities, document.Entity{Text: d, Type: document.EntityDate, Confidence: dateConfidence})
	}
	for _, m := range firstUnique(moneyRe.FindAllString(text, -1), MaxPerGroup) {
		entities = append(entities, document.Entity{Text: m, Type: document.EntityMoney, Confidence: moneyConfidence})
	}
	return entities
}

func partyType(text string) document.EntityType {
	for _, s := range corporateSuffixes {
		if strings.Contains(text, s) {
			return document.EntityOrganization
		}
	}
	return document.EntityPerson
}

func findAll2(re *regexp2.Regexp, text string) []string {
	var out []string
	m, err := re.FindStringMatch(text)
	for err == nil && m != nil {
		out = append(out, m.String())
		m, err = re.FindNextMatch(m)
	}
	return out
}

func firstUnique(items []string, n int) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
		if len(out) == n {
			break
		}
	}
	return out
}
