package collector

import (
	"context"

	"CycleSentinel/internal/model"
)

// Fetcher defines the interface for fetching upstream market data.
type Fetcher interface {
	// FetchPriceSeries returns daily closes over the lookback window in
	// chronological order; the last element is the current price.
	FetchPriceSeries(ctx context.Context, lookbackDays int) ([]model.PricePoint, error)
	// FetchDominance returns the bitcoin dominance percentage. It never
	// fails: on any upstream problem it returns the fallback constant.
	FetchDominance(ctx context.Context) float64
	Name() string
}

// FallbackDominance is returned when the global-metrics provider is
// unreachable or its payload is missing the dominance field. Dominance is a
// secondary signal and must not block the whole analysis.
const FallbackDominance = 58.5
