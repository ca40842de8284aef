package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CycleSentinel/internal/analysis"
	"CycleSentinel/internal/catalog"
	"CycleSentinel/internal/model"
	"CycleSentinel/internal/ticker"
)

// Handler serves the dashboard endpoints.
type Handler struct {
	Analyzer *analysis.Analyzer
	Ticker   *ticker.Ticker
}

func NewHandler(a *analysis.Analyzer, tk *ticker.Ticker) *Handler {
	return &Handler{Analyzer: a, Ticker: tk}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetAnalysis runs (or serves from cache) today's cycle-top analysis.
// It always answers 200: degraded results carry the degraded flag.
func (h *Handler) GetAnalysis(c *gin.Context) {
	c.JSON(http.StatusOK, h.Analyzer.Run(c.Request.Context()))
}

// GetHistory returns the persisted score history without recomputing.
func (h *Handler) GetHistory(c *gin.Context) {
	entries, err := h.Analyzer.History()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history unavailable"})
		return
	}
	if entries == nil {
		entries = []model.AnalysisHistoryEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}

// GetIndicators returns the static catalog.
func (h *Handler) GetIndicators(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"indicators": catalog.Definitions()})
}

// GetPrice returns the latest live-ticker price, 503 before the first trade.
func (h *Handler) GetPrice(c *gin.Context) {
	if h.Ticker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ticker disabled"})
		return
	}
	price, at, ok := h.Ticker.Snapshot()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no trade received yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"symbol": "BTCUSDT", "price": price, "updatedAt": at})
}
