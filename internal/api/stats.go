package api

import (
	"sort"
	"sync"
	"time"

	"github.com/dgallion1/clausewise/internal/document"
	"github.com/dgallion1/clausewise/internal/pipeline"
)

type outcome int

const (
	outcomeOK outcome = iota
	outcomeRejected
	outcomeFailed
)

type analysisSample struct {
	at           time.Time
	durationMs   int64
	outcome      outcome
	documentType string
	overallRisk  document.RiskLevel
}

// StatsSnapshot aggregates the analyses inside the rolling window.
type StatsSnapshot struct {
	Count         int            `json:"count"`
	Rejected      int            `json:"rejected"`
	Failed        int            `json:"failed"`
	DocumentTypes map[string]int `json:"document_types"`
	OverallRisk   map[string]int `json:"overall_risk"`
	MinMs         int64          `json:"min_ms"`
	MaxMs         int64          `json:"max_ms"`
	AvgMs         float64        `json:"avg_ms"`
	P50Ms         float64        `json:"p50_ms"`
	P95Ms         float64        `json:"p95_ms"`
	P99Ms         float64        `json:"p99_ms"`
}

// AnalysisStats records analysis latency and outcomes over a rolling window.
// It belongs to the HTTP server; the analyzer itself keeps no counters.
type AnalysisStats struct {
	mu      sync.Mutex
	samples []analysisSample
	window  time.Duration
}

func NewAnalysisStats(window time.Duration) *AnalysisStats {
	if window <= 0 {
		window = time.Hour
	}
	return &AnalysisStats{
		samples: make([]analysisSample, 0, 256),
		window:  window,
	}
}

// Record files one analysis run. rep is nil when err is not.
func (s *AnalysisStats) Record(d time.Duration, rep *document.Report, err error) {
	sm := analysisSample{durationMs: max(d.Milliseconds(), 0)}
	switch {
	case err == nil:
		sm.outcome = outcomeOK
		sm.documentType = rep.Info.DocumentType
		sm.overallRisk = rep.Info.OverallRisk
	case pipeline.IsClientError(err):
		sm.outcome = outcomeRejected
	default:
		sm.outcome = outcomeFailed
	}
	sm.at = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(sm.at)
	s.samples = append(s.samples, sm)
}

func (s *AnalysisStats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)

	snap := StatsSnapshot{
		Count:         len(s.samples),
		DocumentTypes: map[string]int{},
		OverallRisk:   map[string]int{},
	}
	if len(s.samples) == 0 {
		return snap
	}

	values := make([]int64, 0, len(s.samples))
	var sum int64
	for _, sm := range s.samples {
		values = append(values, sm.durationMs)
		sum += sm.durationMs
		switch sm.outcome {
		case outcomeRejected:
			snap.Rejected++
		case outcomeFailed:
			snap.Failed++
		default:
			snap.DocumentTypes[sm.documentType]++
			snap.OverallRisk[string(sm.overallRisk)]++
		}
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	snap.MinMs = values[0]
	snap.MaxMs = values[len(values)-1]
	snap.AvgMs = float64(sum) / float64(len(values))
	snap.P50Ms = percentile(values, 50)
	snap.P95Ms = percentile(values, 95)
	snap.P99Ms = percentile(values, 99)
	return snap
}

func (s *AnalysisStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.window)
	kept := s.samples[:0]
	for _, sm := range s.samples {
		if !sm.at.Before(cutoff) {
			kept = append(kept, sm)
		}
	}
	s.samples = kept
}

// percentile interpolates linearly between the closest ranks.
func percentile(sorted []int64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sorted[0])
	}
	if pct >= 100 {
		return float64(sorted[len(sorted)-1])
	}
	rank := float64(len(sorted)-1) * pct / 100
	lower := int(rank)
	if lower+1 >= len(sorted) {
		return float64(sorted[lower])
	}
	lo, hi := float64(sorted[lower]), float64(sorted[lower+1])
	return lo + (hi-lo)*(rank-float64(lower))
}
