// Package api exposes the analysis engine to the dashboard SPA.
package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"CycleSentinel/internal/analysis"
	"CycleSentinel/internal/ticker"
)

// NewRouter builds the gin engine with CORS configured for the SPA origins.
func NewRouter(a *analysis.Analyzer, tk *ticker.Ticker, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := NewHandler(a, tk)

	router.GET("/healthz", h.Health)

	v1 := router.Group("/api/v1")
	v1.GET("/analysis", h.GetAnalysis)
	v1.GET("/analysis/history", h.GetHistory)
	v1.GET("/indicators", h.GetIndicators)
	v1.GET("/price", h.GetPrice)

	return router
}
