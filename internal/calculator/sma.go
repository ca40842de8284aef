package calculator

// SMA computes the simple moving average of the last `period` elements.
// Returns 0 when the series is shorter than the period; callers must treat
// 0 as "unavailable" and substitute their own fallback.
func SMA(series []float64, period int) float64 {
	if period <= 0 || len(series) < period {
		return 0
	}
	sum := 0.0
	for i := len(series) - period; i < len(series); i++ {
		sum += series[i]
	}
	return sum / float64(period)
}
