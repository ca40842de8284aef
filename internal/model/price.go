package model

import "time"

// PricePoint is a single daily close returned by the market data provider.
// Timestamp is epoch milliseconds; points are ordered ascending with no
// duplicate timestamps within one fetch.
type PricePoint struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
}

// Prices extracts the raw close values, preserving chronological order.
func Prices(points []PricePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Price
	}
	return out
}

// CycleMetrics holds all computed inputs for one evaluation pass.
type CycleMetrics struct {
	CurrentPrice    float64
	SMA200          float64
	SMA111          float64
	SMA350          float64
	PiCycleTop      float64
	MayerMultiple   float64
	RSI14           float64
	Dominance       float64
	ATH             float64
	DistanceFromATH float64 // percent below ATH, negative above
	FetchedAt       time.Time
}
