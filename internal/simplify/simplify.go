// Package simplify rewrites legal jargon into everyday phrasing.
package simplify

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LeadIn prefixes simplified clauses longer than LeadInThreshold runes.
const (
	LeadIn          = "In simple terms: "
	LeadInThreshold = 200
)

// ErrOverlappingTerms is returned by New when one jargon phrase contains another.
var ErrOverlappingTerms = errors.New("overlapping jargon terms")

// Term is one phrase substitution.
type Term struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DefaultTerms is the built-in jargon dictionary.
func DefaultTerms() []Term {
	return []Term{
		{From: "whereas", To: "while"},
		{From: "heretofore", To: "before now"},
		{From: "hereinafter", To: "from now on"},
		{From: "party of the first part", To: "first party"},
		{From: "party of the second part", To: "second party"},
		{From: "shall", To: "will"},
		{From: "pursuant to", To: "according to"},
		{From: "notwithstanding", To: "despite"},
		{From: "aforementioned", To: "mentioned above"},
	}
}

type rule struct {
	re *regexp.Regexp
	to string
}

// Simplifier holds compiled substitutions and is safe for concurrent use.
type Simplifier struct {
	rules []rule
}

// New compiles terms. Matching is case-insensitive on word boundaries and
// runs in declared order.
func New(terms []Term) (*Simplifier, error) {
	for i, a := range terms {
		if strings.TrimSpace(a.From) == "" {
			return nil, fmt.Errorf("term %d: empty phrase", i)
		}
		for _, b := range terms[i+1:] {
			la, lb := strings.ToLower(a.From), strings.ToLower(b.From)
			if strings.Contains(la, lb) || strings.Contains(lb, la) {
				return nil, fmt.Errorf("%w: %q and %q", ErrOverlappingTerms, a.From, b.From)
			}
		}
	}

	s := &Simplifier{rules: make([]rule, 0, len(terms))}
	for _, t := range terms {
		words := strings.Fields(t.From)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		re, err := regexp.Compile(`(?i)\b` + strings.Join(words, `\s+`) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compile term %q: %w", t.From, err)
		}
		s.rules = append(s.rules, rule{re: re, to: t.To})
	}
	return s, nil
}

// Default returns a Simplifier over DefaultTerms.
func Default() *Simplifier {
	s, err := New(DefaultTerms())
	if err != nil {
		panic(err)
	}
	return s
}

// Simplify substitutes every jargon phrase and adds LeadIn when the result
// is longer than LeadInThreshold runes.
func (s *Simplifier) Simplify(clause string) string {
	out := clause
	for _, r := range s.rules {
		out = r.re.ReplaceAllStringFunc(out, func(m string) string {
			return matchCase(m, r.to)
		})
	}
	if utf8.RuneCountInString(out) > LeadInThreshold {
		return LeadIn + out
	}
	return out
}

// matchCase upper-cases the first letter of repl when match starts upper-case.
func matchCase(match, repl string) string {
	first, _ := utf8.DecodeRuneInString(match)
	if !unicode.IsUpper(first) || repl == "" {
		return repl
	}
	r, size := utf8.DecodeRuneInString(repl)
	return string(unicode.ToUpper(r)) + repl[size:]
}
