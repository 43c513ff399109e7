package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dgallion1/clausewise/internal/classify"
	"github.com/dgallion1/clausewise/internal/config"
	"github.com/dgallion1/clausewise/internal/document"
	"github.com/dgallion1/clausewise/internal/entity"
	"github.com/dgallion1/clausewise/internal/parser"
	"github.com/dgallion1/clausewise/internal/risk"
	"github.com/dgallion1/clausewise/internal/segment"
	"github.com/dgallion1/clausewise/internal/simplify"
)

// Components are the replaceable analysis stages. Nil fields get defaults.
type Components struct {
	Entities   *entity.Extractor
	Classifier *classify.Classifier
	Simplifier *simplify.Simplifier
	Risk       risk.Model
	Advisor    risk.Advisor
}

// Analyzer runs one document through every stage and assembles the report.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	entities   *entity.Extractor
	classifier *classify.Classifier
	simplifier *simplify.Simplifier
	risk       risk.Model
	advisor    risk.Advisor
	log        *slog.Logger

	segCfg         segment.Config
	parserOpts     parser.Options
	minDocumentLen int
	maxConcurrent  int
}

func NewAnalyzer(cfg config.Config, c Components, log *slog.Logger) *Analyzer {
	a := &Analyzer{
		entities:   c.Entities,
		classifier: c.Classifier,
		simplifier: c.Simplifier,
		risk:       c.Risk,
		advisor:    c.Advisor,
		log:        log,
		segCfg: segment.Config{
			MaxClauses:      cfg.MaxClauses,
			MinSectionLen:   cfg.MinSectionLen,
			MinParagraphLen: cfg.MinParagraphLen,
		},
		parserOpts:     parser.Options{PDFFallbackPdfcpu: cfg.PDFFallbackPdfcpu},
		minDocumentLen: cfg.MinDocumentLen,
		maxConcurrent:  cfg.MaxConcurrentAnalyze,
	}
	if a.entities == nil {
		a.entities = entity.New()
	}
	if a.classifier == nil {
		a.classifier = classify.New(nil, nil)
	}
	if a.simplifier == nil {
		a.simplifier = simplify.Default()
	}
	if a.risk == nil {
		a.risk = risk.Positional{}
	}
	if a.advisor == nil {
		a.advisor = risk.StaticAdvisor{}
	}
	if a.log == nil {
		a.log = slog.New(slog.DiscardHandler)
	}
	if a.minDocumentLen <= 0 {
		a.minDocumentLen = 100
	}
	if a.maxConcurrent <= 0 {
		a.maxConcurrent = 1
	}
	return a
}

// Analyze extracts, segments, classifies and scores one document. Any
// failure is terminal and no partial report is returned.
func (a *Analyzer) Analyze(ctx context.Context, raw document.RawDocument) (*document.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	id := uuid.NewString()
	log := a.log.With("analysis_id", id, "filename", raw.Filename)

	// Phase 1: Extract
	res, err := parser.Extract(raw.Content, raw.Filename, a.parserOpts)
	if err != nil {
		log.Warn("extract failed", "error", err)
		return nil, err
	}
	for _, w := range res.Warnings {
		log.Warn("extraction warning", "warning", w)
	}

	trimmed := strings.TrimSpace(res.Text)
	if n := utf8.RuneCountInString(trimmed); n < a.minDocumentLen {
		log.Info("document too short", "length", n)
		return nil, &InputTooShortError{Length: n, Min: a.minDocumentLen}
	}

	// Phase 2: Segment
	texts, strategy := segment.SegmentWithStrategy(res.Text, a.segCfg)
	log.Info("segmented document", "clauses", len(texts), "strategy", strategy)
	if len(texts) == 0 {
		return nil, ErrNoClauses
	}

	// Phase 3: Document-level analysis
	classification := a.classifier.Classify(res.Text)
	entities := a.entities.Extract(res.Text)
	if entities == nil {
		entities = []document.Entity{}
	}

	// Phase 4: Per-clause analysis
	clauses := make([]document.Clause, len(texts))
	levels := make([]document.RiskLevel, len(texts))
	for i, text := range texts {
		pos := i + 1
		levels[i] = a.risk.AssignRisk(pos, text)
		clauses[i] = document.Clause{
			Number:     pos,
			Excerpt:    document.Excerpt(text),
			Original:   text,
			Simplified: a.simplifier.Simplify(text),
			Risk:       levels[i],
			Category:   a.classifier.CategorizeClause(pos, text),
		}
	}

	overall, score, err := risk.Aggregate(levels)
	if err != nil {
		return nil, fmt.Errorf("aggregate risk: %w", err)
	}

	report := &document.Report{
		Info: document.DocumentInfo{
			AnalysisID:   id,
			Filename:     raw.Filename,
			Format:       string(res.Format),
			DocumentType: classification.Label,
			Confidence:   classification.Confidence,
			TotalClauses: len(clauses),
			OverallRisk:  overall,
			RiskScore:    score,
			ContentHash:  ContentHashHex([]byte(res.Text)),
			Pages:        res.Pages,
			Strategy:     string(strategy),
			Warnings:     res.Warnings,
		},
		Entities: entities,
		Clauses:  clauses,
	}
	report.Recommendations = a.advisor.Recommendations(report)
	report.Info.AnalysisTime = time.Since(start).Round(time.Millisecond).String()

	log.Info("analysis complete",
		"document_type", classification.Label,
		"clauses", len(clauses),
		"entities", len(entities),
		"overall_risk", overall,
		"elapsed", report.Info.AnalysisTime,
	)
	return report, nil
}

// Simplify rewrites a single clause.
func (a *Analyzer) Simplify(clause string) string {
	return a.simplifier.Simplify(clause)
}

// ExtractEntities runs entity extraction over arbitrary text.
func (a *Analyzer) ExtractEntities(text string) []document.Entity {
	entities := a.entities.Extract(text)
	if entities == nil {
		return []document.Entity{}
	}
	return entities
}

// Classify labels arbitrary text.
func (a *Analyzer) Classify(text string) document.Classification {
	return a.classifier.Classify(text)
}
