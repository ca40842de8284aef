package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"CycleSentinel/internal/model"
)

const (
	defaultPriceBaseURL  = "https://api.coingecko.com"
	defaultGlobalBaseURL = "https://api.coinpaprika.com"
)

// CoinGeckoFetcher fetches daily bitcoin closes from the CoinGecko
// market_chart endpoint and bitcoin dominance from the Coinpaprika global
// metrics endpoint.
type CoinGeckoFetcher struct {
	PriceBaseURL  string
	GlobalBaseURL string
	Client        *http.Client
}

// NewCoinGeckoFetcher creates a fetcher with optional proxy support.
// Empty base URLs fall back to the public endpoints.
func NewCoinGeckoFetcher(priceBaseURL, globalBaseURL, proxyURL string) *CoinGeckoFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if priceBaseURL == "" {
		priceBaseURL = defaultPriceBaseURL
	}
	if globalBaseURL == "" {
		globalBaseURL = defaultGlobalBaseURL
	}
	return &CoinGeckoFetcher{
		PriceBaseURL:  priceBaseURL,
		GlobalBaseURL: globalBaseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// marketChart is the response structure from the CoinGecko market_chart API.
// Each price element is a [timestampMs, price] pair.
type marketChart struct {
	Prices [][]float64 `json:"prices"`
}

func (f *CoinGeckoFetcher) FetchPriceSeries(ctx context.Context, lookbackDays int) ([]model.PricePoint, error) {
	endpoint := fmt.Sprintf("%s/api/v3/coins/bitcoin/market_chart?vs_currency=usd&days=%d&interval=daily",
		f.PriceBaseURL, lookbackDays)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("coingecko read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko: status %d", resp.StatusCode)
	}

	var chart marketChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}
	if len(chart.Prices) == 0 {
		return nil, fmt.Errorf("coingecko: no prices returned")
	}

	points := make([]model.PricePoint, 0, len(chart.Prices))
	var lastTS int64
	for _, pair := range chart.Prices {
		if len(pair) < 2 {
			return nil, fmt.Errorf("coingecko: malformed price pair")
		}
		ts := int64(pair[0])
		if ts == lastTS {
			continue // provider may duplicate the final point
		}
		lastTS = ts
		points = append(points, model.PricePoint{Timestamp: ts, Price: pair[1]})
	}
	return points, nil
}

// paprikaGlobal is the subset of the Coinpaprika /v1/global payload we read.
type paprikaGlobal struct {
	BitcoinDominancePercentage float64 `json:"bitcoin_dominance_percentage"`
}

func (f *CoinGeckoFetcher) FetchDominance(ctx context.Context) float64 {
	endpoint := f.GlobalBaseURL + "/v1/global"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return FallbackDominance
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		log.Printf("[WARN] dominance fetch failed: %v, using fallback %.1f", err, FallbackDominance)
		return FallbackDominance
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[WARN] dominance fetch: status %d, using fallback %.1f", resp.StatusCode, FallbackDominance)
		return FallbackDominance
	}

	var global paprikaGlobal
	if err := json.NewDecoder(resp.Body).Decode(&global); err != nil {
		log.Printf("[WARN] dominance decode failed: %v, using fallback %.1f", err, FallbackDominance)
		return FallbackDominance
	}
	if global.BitcoinDominancePercentage == 0 {
		return FallbackDominance
	}
	return global.BitcoinDominancePercentage
}
