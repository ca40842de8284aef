package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"CycleSentinel/internal/calculator"
	"CycleSentinel/internal/model"
)

// Fallback levels used when the fetched series is too short for a moving
// average (SMA returns its 0 sentinel).
const (
	fallbackSMA200 = 55000.0
	fallbackSMA111 = 60000.0
	fallbackSMA350 = 45000.0
)

// Collector orchestrates data fetching and cycle metric computation.
type Collector struct {
	Fetcher      Fetcher
	LookbackDays int
	ATH          float64
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, lookbackDays int, ath float64) *Collector {
	return &Collector{Fetcher: fetcher, LookbackDays: lookbackDays, ATH: ath}
}

// Collect fetches the price series and dominance concurrently, then computes
// all cycle metrics. Both fetches complete before evaluation; only a price
// series failure is an error, dominance degrades internally.
func (c *Collector) Collect(ctx context.Context) (*model.CycleMetrics, error) {
	domCh := make(chan float64, 1)
	go func() {
		domCh <- c.Fetcher.FetchDominance(ctx)
	}()

	points, err := c.Fetcher.FetchPriceSeries(ctx, c.LookbackDays)
	dominance := <-domCh
	if err != nil {
		return nil, fmt.Errorf("fetch price series: %w", err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("fetch price series: empty series")
	}

	prices := model.Prices(points)
	currentPrice := prices[len(prices)-1]

	m := &model.CycleMetrics{
		CurrentPrice: currentPrice,
		Dominance:    dominance,
		ATH:          c.ATH,
		FetchedAt:    time.Now(),
	}

	if m.SMA200 = calculator.SMA(prices, 200); m.SMA200 == 0 {
		log.Printf("[WARN] SMA200 unavailable (%d points), using fallback", len(prices))
		m.SMA200 = fallbackSMA200
	}
	if m.SMA111 = calculator.SMA(prices, 111); m.SMA111 == 0 {
		log.Printf("[WARN] SMA111 unavailable (%d points), using fallback", len(prices))
		m.SMA111 = fallbackSMA111
	}
	if m.SMA350 = calculator.SMA(prices, 350); m.SMA350 == 0 {
		log.Printf("[WARN] SMA350 unavailable (%d points), using fallback", len(prices))
		m.SMA350 = fallbackSMA350
	}

	m.PiCycleTop = calculator.PiCycleTop(m.SMA350)
	m.MayerMultiple = calculator.MayerMultiple(currentPrice, m.SMA200)
	m.RSI14 = calculator.RSI(prices, 14)
	m.DistanceFromATH = calculator.DistanceFromATH(currentPrice, c.ATH)

	return m, nil
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Points      []model.PricePoint
	Dominance   float64
	Err         error
	SeriesCalls int
	DomCalls    int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchPriceSeries(_ context.Context, days int) ([]model.PricePoint, error) {
	m.SeriesCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Points != nil {
		return m.Points, nil
	}
	return GenerateMockSeries(68000, days), nil
}

func (m *MockFetcher) FetchDominance(_ context.Context) float64 {
	m.DomCalls++
	if m.Dominance != 0 {
		return m.Dominance
	}
	return FallbackDominance
}

// GenerateMockSeries produces a mildly trending daily series ending today.
func GenerateMockSeries(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.0005)
		points[i] = model.PricePoint{
			Timestamp: time.Now().AddDate(0, 0, -(count - i)).UnixMilli(),
			Price:     p,
		}
	}
	return points
}
