package calculator

import (
	"math"
	"testing"
)

func TestSMA_InsufficientData(t *testing.T) {
	series := []float64{1, 2, 3}
	if got := SMA(series, 5); got != 0 {
		t.Errorf("expected 0 sentinel for short series, got %.4f", got)
	}
	if got := SMA(nil, 1); got != 0 {
		t.Errorf("expected 0 sentinel for empty series, got %.4f", got)
	}
}

func TestSMA_ConstantSeries(t *testing.T) {
	series := make([]float64, 400)
	for i := range series {
		series[i] = 68000
	}
	for _, period := range []int{1, 111, 200, 350, 400} {
		if got := SMA(series, period); math.Abs(got-68000) > 1e-9 {
			t.Errorf("period %d: expected 68000, got %.4f", period, got)
		}
	}
}

func TestSMA_LastPeriodElementsOnly(t *testing.T) {
	// 10 junk values followed by 1,2,3,4: SMA(4) must ignore the junk.
	series := []float64{999, 999, 999, 999, 999, 999, 999, 999, 999, 999, 1, 2, 3, 4}
	if got := SMA(series, 4); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("expected 2.5, got %.4f", got)
	}
}

func TestRSI_InsufficientData(t *testing.T) {
	series := []float64{100, 101, 102}
	if got := RSI(series, 14); got != 50 {
		t.Errorf("expected neutral 50, got %.4f", got)
	}
}

func TestRSI_MonotonicUp(t *testing.T) {
	series := make([]float64, 20)
	for i := range series {
		series[i] = 100 + float64(i)
	}
	if got := RSI(series, 14); got != 100 {
		t.Errorf("expected 100 for all-gain series, got %.4f", got)
	}
}

func TestRSI_MonotonicDown(t *testing.T) {
	series := make([]float64, 20)
	for i := range series {
		series[i] = 200 - float64(i)
	}
	if got := RSI(series, 14); got != 0 {
		t.Errorf("expected 0 for all-loss series, got %.4f", got)
	}
}

func TestRSI_Bounded(t *testing.T) {
	series := []float64{100, 104, 98, 103, 97, 105, 99, 102, 96, 107, 101, 95, 108, 100, 103, 99}
	got := RSI(series, 14)
	if got < 0 || got > 100 {
		t.Errorf("RSI out of [0,100]: %.4f", got)
	}
}

func TestRSI_UsesLastPeriodChangesOnly(t *testing.T) {
	// Heavy early losses followed by 14 straight gains: only the gains count.
	series := []float64{500, 400, 300, 200}
	for i := 1; i <= 14; i++ {
		series = append(series, 200+float64(i))
	}
	if got := RSI(series, 14); got != 100 {
		t.Errorf("expected 100 when the last 14 changes are all gains, got %.4f", got)
	}
}

func TestMayerMultiple(t *testing.T) {
	if got := MayerMultiple(125000, 50000); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("expected 2.5, got %.4f", got)
	}
	if got := MayerMultiple(50000, 0); got != 0 {
		t.Errorf("expected 0 for zero SMA, got %.4f", got)
	}
}

func TestPiCycleTop(t *testing.T) {
	if got := PiCycleTop(45000); got != 90000 {
		t.Errorf("expected 90000, got %.4f", got)
	}
}

func TestDistanceFromATH(t *testing.T) {
	tests := []struct {
		price, ath, want float64
	}{
		{73750, 73750, 0},
		{36875, 73750, 50},
		{80000, 73750, -8.474576271186441},
	}
	for _, tt := range tests {
		got := DistanceFromATH(tt.price, tt.ath)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DistanceFromATH(%.0f, %.0f) = %.6f, want %.6f", tt.price, tt.ath, got, tt.want)
		}
	}
	if got := DistanceFromATH(80000, 73750); got >= 0 {
		t.Errorf("expected negative distance above ATH, got %.4f", got)
	}
}
