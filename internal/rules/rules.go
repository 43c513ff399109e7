// Package rules loads the keyword tables, jargon dictionary and
// recommendations from an optional YAML file.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dgallion1/clausewise/internal/classify"
	"github.com/dgallion1/clausewise/internal/risk"
	"github.com/dgallion1/clausewise/internal/simplify"
)

// Rules is the full set of tunable tables. Sections missing from a file
// keep their built-in values.
type Rules struct {
	DocumentTypes    []classify.Rule `yaml:"document_types"`
	ClauseCategories []classify.Rule `yaml:"clause_categories"`
	Jargon           []simplify.Term `yaml:"jargon"`
	Recommendations  []string        `yaml:"recommendations"`
}

// Default returns the built-in tables.
func Default() *Rules {
	return &Rules{
		DocumentTypes:    classify.DefaultRules(),
		ClauseCategories: classify.DefaultCategories(),
		Jargon:           simplify.DefaultTerms(),
		Recommendations:  risk.DefaultRecommendations(),
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Rules, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rules %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Rules, error) {
	r := Default()
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return r, r.Validate()
}

// Validate checks that required fields are present and values are sane.
func (r *Rules) Validate() error {
	for i, rule := range r.DocumentTypes {
		if rule.Label == "" {
			return fmt.Errorf("document_types[%d]: label is required", i)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("document_types[%d]: keywords are required", i)
		}
		if rule.Confidence < 0 || rule.Confidence > 1 {
			return fmt.Errorf("document_types[%d]: confidence must be within [0,1]", i)
		}
	}
	for i, rule := range r.ClauseCategories {
		if rule.Label == "" || len(rule.Keywords) == 0 {
			return fmt.Errorf("clause_categories[%d]: label and keywords are required", i)
		}
	}
	if _, err := simplify.New(r.Jargon); err != nil {
		return fmt.Errorf("jargon: %w", err)
	}
	return nil
}

// Classifier builds a classifier over the loaded tables.
func (r *Rules) Classifier() *classify.Classifier {
	return classify.New(r.DocumentTypes, r.ClauseCategories)
}

// Simplifier compiles the jargon dictionary.
func (r *Rules) Simplifier() (*simplify.Simplifier, error) {
	return simplify.New(r.Jargon)
}

// Advisor returns the recommendation source.
func (r *Rules) Advisor() risk.StaticAdvisor {
	return risk.StaticAdvisor{Items: r.Recommendations}
}
