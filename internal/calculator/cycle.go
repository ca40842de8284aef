package calculator

// MayerMultiple is the current price divided by its 200-day moving average.
func MayerMultiple(currentPrice, sma200 float64) float64 {
	if sma200 == 0 {
		return 0
	}
	return currentPrice / sma200
}

// PiCycleTop returns twice the 350-day moving average, the upper band of the
// Pi Cycle Top crossover.
func PiCycleTop(sma350 float64) float64 {
	return sma350 * 2
}

// DistanceFromATH returns how far the price sits below the all-time high, in
// percent. Negative when the price is above the reference high.
func DistanceFromATH(currentPrice, ath float64) float64 {
	if ath == 0 {
		return 0
	}
	return (ath - currentPrice) / ath * 100
}
