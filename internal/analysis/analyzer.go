// Package analysis is the daily cache-or-recompute controller for the
// cycle-top probability score.
package analysis

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"CycleSentinel/internal/collector"
	"CycleSentinel/internal/evaluator"
	"CycleSentinel/internal/history"
	"CycleSentinel/internal/model"
)

const dateLayout = "2006-01-02"

// Analyzer runs the analysis state machine:
// check cache -> fetch -> evaluate -> merge, degrading to the offline
// fallback when the price series cannot be fetched.
type Analyzer struct {
	Collector *collector.Collector
	Store     history.Store
	// Now is the clock used for "today"; replaceable in tests.
	Now func() time.Time

	group singleflight.Group
}

// New creates an Analyzer on the real clock.
func New(col *collector.Collector, store history.Store) *Analyzer {
	return &Analyzer{Collector: col, Store: store, Now: time.Now}
}

// Run performs the daily analysis pass. It never returns an error: upstream
// failures produce a degraded result so the caller always gets a full
// indicator list and a score. Concurrent invocations for the same calendar
// day share a single fetch and save.
func (a *Analyzer) Run(ctx context.Context) *model.AnalysisResult {
	date := a.Now().Format(dateLayout)
	v, _, _ := a.group.Do(date, func() (any, error) {
		return a.run(ctx, date), nil
	})
	return v.(*model.AnalysisResult)
}

func (a *Analyzer) run(ctx context.Context, date string) *model.AnalysisResult {
	stored, err := a.Store.Load()
	if err != nil {
		// Losing history is recoverable; it must not block the analysis.
		log.Printf("[WARN] load history failed, starting empty: %v", err)
		stored = nil
	}

	// Cache hit: today's entry already exists and is fully populated.
	for _, e := range stored {
		if e.Date == date && e.Complete && len(e.Details) > 0 {
			return &model.AnalysisResult{
				Date:       date,
				Percentage: e.Percentage,
				Indicators: e.Details,
				History:    stored,
			}
		}
	}

	now := a.Now()
	metrics, err := a.Collector.Collect(ctx)
	if err != nil {
		log.Printf("[ERROR] collect failed, serving degraded analysis: %v", err)
		indicators, pct := evaluator.Degraded(now)
		// Degraded entries are synthetic and never persisted.
		return &model.AnalysisResult{
			Date:       date,
			Percentage: pct,
			Indicators: indicators,
			History:    stored,
			Degraded:   true,
		}
	}

	indicators, pct := evaluator.Evaluate(metrics, now)
	entry := model.AnalysisHistoryEntry{
		Date:       date,
		Percentage: pct,
		Details:    indicators,
		Complete:   true,
	}
	merged := history.Upsert(stored, entry)
	if err := a.Store.Save(merged); err != nil {
		log.Printf("[WARN] save history failed: %v", err)
	}

	log.Printf("[INFO] analysis for %s: %d%% (%s)", date, pct, a.Collector.Fetcher.Name())
	return &model.AnalysisResult{
		Date:       date,
		Percentage: pct,
		Indicators: indicators,
		History:    merged,
	}
}

// History returns the persisted entries without triggering a recompute.
func (a *Analyzer) History() ([]model.AnalysisHistoryEntry, error) {
	return a.Store.Load()
}
