package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Config controls segmentation behavior.
type Config struct {
	MaxClauses      int // Maximum number of clauses returned.
	MinSectionLen   int // Numbered sections must be longer than this (characters).
	MinParagraphLen int // Fallback paragraphs must be longer than this (characters).
}

// DefaultConfig returns the defaults used by the analysis report.
func DefaultConfig() Config {
	return Config{
		MaxClauses:      6,
		MinSectionLen:   50,
		MinParagraphLen: 100,
	}
}

// Strategy names the tier that produced the clauses.
type Strategy string

const (
	StrategyNumbered  Strategy = "numbered"
	StrategyParagraph Strategy = "paragraph"
	StrategyNone      Strategy = "none"
)

// sectionBoundary matches a line that opens with "N." e.g. "1. " or "12. ".
var sectionBoundary = regexp.MustCompile(`(?:^|\n)\s*\d+\.\s*`)

// Segment splits text into clause candidates. See SegmentWithStrategy.
func Segment(text string, cfg Config) []string {
	clauses, _ := SegmentWithStrategy(text, cfg)
	return clauses
}

// SegmentWithStrategy splits text on numbered sections, or on blank-line
// paragraphs when no numbered section is long enough, and truncates the
// result to cfg.MaxClauses. The two tiers never mix.
func SegmentWithStrategy(text string, cfg Config) ([]string, Strategy) {
	cfg = withDefaults(cfg)

	if clauses := splitBySections(text, cfg.MinSectionLen); len(clauses) > 0 {
		return truncate(clauses, cfg.MaxClauses), StrategyNumbered
	}
	if clauses := splitByParagraphs(text, cfg.MinParagraphLen); len(clauses) > 0 {
		return truncate(clauses, cfg.MaxClauses), StrategyParagraph
	}
	return nil, StrategyNone
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.MaxClauses <= 0 {
		cfg.MaxClauses = def.MaxClauses
	}
	if cfg.MinSectionLen <= 0 {
		cfg.MinSectionLen = def.MinSectionLen
	}
	if cfg.MinParagraphLen <= 0 {
		cfg.MinParagraphLen = def.MinParagraphLen
	}
	return cfg
}

// splitBySections drops the preamble before the first numbered boundary.
func splitBySections(text string, minLen int) []string {
	parts := sectionBoundary.Split(text, -1)
	if len(parts) < 2 {
		return nil
	}
	return keepLonger(parts[1:], minLen)
}

// splitByParagraphs splits on double-newlines.
func splitByParagraphs(text string, minLen int) []string {
	return keepLonger(strings.Split(text, "\n\n"), minLen)
}

func keepLonger(parts []string, minLen int) []string {
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) > minLen {
			result = append(result, p)
		}
	}
	return result
}

func truncate(clauses []string, n int) []string {
	if len(clauses) > n {
		return clauses[:n]
	}
	return clauses
}
