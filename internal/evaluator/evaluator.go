// Package evaluator turns computed cycle metrics into per-indicator top
// signals and the aggregated probability score.
package evaluator

import (
	"math"
	"time"

	"CycleSentinel/internal/catalog"
	"CycleSentinel/internal/model"
)

// Threshold levels for the "met" conditions.
const (
	dominanceCeiling   = 45.0
	mayerCeiling       = 2.5
	rsiCeiling         = 70.0
	athDistanceFloor   = 2.0
	proxyDistanceFloor = 5.0
)

// OfflineDisplayValue marks indicators produced in degraded mode. The
// dashboard renders it verbatim, so the wording is part of the contract.
const OfflineDisplayValue = "Mode Hors Ligne (API Limit)"

// FallbackPercentage is the fixed score reported in degraded mode.
const FallbackPercentage = 30

const evaluatedAtLayout = "02/01/2006 15:04"

// Evaluate runs every catalog entry against the metrics and returns the
// evaluated indicators plus the aggregated 0-100 percentage.
func Evaluate(m *model.CycleMetrics, at time.Time) ([]model.EvaluatedIndicator, int) {
	defs := catalog.Definitions()
	stamp := at.Format(evaluatedAtLayout)

	evaluated := make([]model.EvaluatedIndicator, 0, len(defs))
	met := 0
	for _, def := range defs {
		isMet, display := evaluateOne(def.Metric, m)
		if isMet {
			met++
		}
		evaluated = append(evaluated, model.EvaluatedIndicator{
			IndicatorDefinition: def,
			IsMet:               isMet,
			DisplayValue:        display,
			EvaluatedAt:         stamp,
		})
	}

	return evaluated, Percentage(met, len(evaluated))
}

// Degraded produces the offline fallback: every indicator carries the
// offline marker and no signal fires. Degraded results are never persisted.
func Degraded(at time.Time) ([]model.EvaluatedIndicator, int) {
	defs := catalog.Definitions()
	stamp := at.Format(evaluatedAtLayout)

	evaluated := make([]model.EvaluatedIndicator, 0, len(defs))
	for _, def := range defs {
		evaluated = append(evaluated, model.EvaluatedIndicator{
			IndicatorDefinition: def,
			IsMet:               false,
			DisplayValue:        OfflineDisplayValue,
			EvaluatedAt:         stamp,
		})
	}
	return evaluated, FallbackPercentage
}

// Percentage rounds met/total to an integer 0-100 score.
func Percentage(met, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(met) / float64(total) * 100))
}

func evaluateOne(metric model.Metric, m *model.CycleMetrics) (bool, string) {
	switch metric {
	case model.MetricPriceVsSMA200:
		return m.CurrentPrice > m.SMA200,
			"$" + groupThousands(int64(m.CurrentPrice)) + " > $" + groupThousands(int64(m.SMA200))
	case model.MetricDominance:
		return m.Dominance < dominanceCeiling, formatFloat(m.Dominance, 2) + "%"
	case model.MetricMayer:
		return m.MayerMultiple > mayerCeiling, "Ratio: " + formatFloat(m.MayerMultiple, 2)
	case model.MetricMonthlyRSI:
		return m.RSI14 > rsiCeiling, "RSI: " + formatFloat(m.RSI14, 1)
	case model.MetricPiCycle:
		return m.SMA111 > m.PiCycleTop,
			"111DMA: $" + groupThousands(int64(m.SMA111/1000)) + "k / Top: $" + groupThousands(int64(m.PiCycleTop/1000)) + "k"
	case model.MetricATHDistance:
		if m.DistanceFromATH < 0 {
			return true, "ATH !"
		}
		return m.DistanceFromATH < athDistanceFloor,
			"-" + formatFloat(m.DistanceFromATH, 1) + "% sous ATH"
	default: // MetricATHDistanceProxy
		return m.DistanceFromATH < proxyDistanceFloor,
			"Proxy: -" + formatFloat(m.DistanceFromATH, 1) + "% sous ATH"
	}
}
