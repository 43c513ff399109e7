package pipeline

import (
	"context"

	"github.com/dgallion1/clausewise/internal/document"
)

// BatchResult is the outcome for one document of a batch.
type BatchResult struct {
	Filename string
	Report   *document.Report
	Err      error
}

// AnalyzeBatch analyzes docs with at most MaxConcurrentAnalyze running at
// once. Results keep the input order; one failure does not affect others.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, docs []document.RawDocument) []BatchResult {
	results := make([]BatchResult, len(docs))
	done := make(chan struct{}, len(docs))
	sem := make(chan struct{}, a.maxConcurrent)

	for i, doc := range docs {
		results[i].Filename = doc.Filename
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			done <- struct{}{}
			continue
		}
		go func(i int, doc document.RawDocument) {
			defer func() {
				<-sem
				done <- struct{}{}
			}()
			results[i].Report, results[i].Err = a.Analyze(ctx, doc)
		}(i, doc)
	}

	for range docs {
		<-done
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	a.log.Info("batch complete", "documents", len(docs), "failed", failed)
	return results
}
