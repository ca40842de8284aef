// Package ticker maintains the always-on live bitcoin price feed. It is
// independent of the daily analysis pass: a stalled stream never blocks it.
package ticker

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const defaultStreamURL = "wss://stream.binance.com:9443/ws/btcusdt@trade"

const reconnectDelay = 5 * time.Second

// Ticker subscribes to the exchange trade stream and keeps the most recent
// price in memory.
type Ticker struct {
	StreamURL string

	mu      sync.RWMutex
	last    float64
	updated time.Time
}

// New creates a Ticker. An empty streamURL uses the Binance BTCUSDT stream.
func New(streamURL string) *Ticker {
	if streamURL == "" {
		streamURL = defaultStreamURL
	}
	return &Ticker{StreamURL: streamURL}
}

// tradeEvent is the subset of the exchange trade message we read.
type tradeEvent struct {
	Price     string `json:"p"`
	TradeTime int64  `json:"T"`
}

// Run connects and consumes trades until the context is cancelled,
// reconnecting after transient failures.
func (t *Ticker) Run(ctx context.Context) {
	for {
		if err := t.consume(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[WARN] ticker stream: %v, reconnecting in %s", err, reconnectDelay)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (t *Ticker) consume(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, t.StreamURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[INFO] ticker connected: %s", t.StreamURL)

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var evt tradeEvent
		if err := json.Unmarshal(data, &evt); err != nil {
			continue
		}
		price, err := strconv.ParseFloat(evt.Price, 64)
		if err != nil || price <= 0 {
			continue
		}
		t.mu.Lock()
		t.last = price
		t.updated = time.UnixMilli(evt.TradeTime)
		t.mu.Unlock()
	}
}

// Snapshot returns the latest observed price. ok is false until the first
// trade has been received.
func (t *Ticker) Snapshot() (price float64, at time.Time, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.last, t.updated, t.last > 0
}
