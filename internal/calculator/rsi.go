package calculator

// RSI computes the relative strength index over the last `period` day-over-day
// changes. Returns the neutral 50 when the series is too short, and 100 when
// the window contains no losses.
func RSI(series []float64, period int) float64 {
	if period <= 0 || len(series) < period+1 {
		return 50
	}

	changes := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		changes = append(changes, series[i]-series[i-1])
	}

	var avgGain, avgLoss float64
	for _, c := range changes[len(changes)-period:] {
		if c > 0 {
			avgGain += c
		} else {
			avgLoss -= c // make positive
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
