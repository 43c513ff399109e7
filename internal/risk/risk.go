// Package risk scores clauses and aggregates them into a document risk.
package risk

import (
	"errors"

	"github.com/dgallion1/clausewise/internal/document"
)

// ErrNoLevels is returned by Aggregate for an empty input.
var ErrNoLevels = errors.New("no risk levels to aggregate")

// Model assigns a risk level to the clause at a 1-based position.
type Model interface {
	AssignRisk(position int, text string) document.RiskLevel
}

// Positional alternates Low and Medium by position and ignores the text.
// It never yields High.
type Positional struct{}

func (Positional) AssignRisk(position int, _ string) document.RiskLevel {
	if position%2 == 0 {
		return document.RiskMedium
	}
	return document.RiskLow
}

// Aggregate buckets the mean score of levels: below 1.5 is Low, below 2.5
// is Medium, otherwise High. The mean is returned alongside.
func Aggregate(levels []document.RiskLevel) (document.RiskLevel, float64, error) {
	if len(levels) == 0 {
		return "", 0, ErrNoLevels
	}
	total := 0
	for _, l := range levels {
		total += l.Score()
	}
	mean := float64(total) / float64(len(levels))
	switch {
	case mean < 1.5:
		return document.RiskLow, mean, nil
	case mean < 2.5:
		return document.RiskMedium, mean, nil
	default:
		return document.RiskHigh, mean, nil
	}
}

// Advisor produces recommendation strings for a finished report.
type Advisor interface {
	Recommendations(r *document.Report) []string
}

// DefaultRecommendations are returned for every document.
func DefaultRecommendations() []string {
	return []string{
		"Review high-risk clauses with legal counsel",
		"Consider adding specific performance metrics",
		"Ensure all terms are clearly defined",
		"Verify compliance with local regulations",
	}
}

// StaticAdvisor returns the same list regardless of the report.
type StaticAdvisor struct {
	Items []string
}

func (a StaticAdvisor) Recommendations(*document.Report) []string {
	items := a.Items
	if items == nil {
		items = DefaultRecommendations()
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
