package model

// ThresholdKind describes how an indicator's objective is expressed.
type ThresholdKind string

const (
	ThresholdGreaterThan ThresholdKind = "GT"
	ThresholdLessThan    ThresholdKind = "LT"
	ThresholdZone        ThresholdKind = "ZONE"
	ThresholdBoolean     ThresholdKind = "BOOL"
)

// Metric selects which computed value an indicator is evaluated against.
type Metric string

const (
	MetricPriceVsSMA200    Metric = "PRICE_VS_SMA200"
	MetricDominance        Metric = "DOMINANCE"
	MetricMayer            Metric = "MAYER"
	MetricMonthlyRSI       Metric = "MONTHLY_RSI"
	MetricPiCycle          Metric = "PI_CYCLE"
	MetricATHDistance      Metric = "ATH_DISTANCE"
	MetricATHDistanceProxy Metric = "ATH_DISTANCE_PROXY"
)

// IndicatorDefinition is one entry of the static top-market catalog.
// Definitions are loaded once at init and never mutated at runtime.
type IndicatorDefinition struct {
	ID           string        `json:"id"`
	TitleEnglish string        `json:"titleEng"`
	TitleFrench  string        `json:"titleFr"`
	Description  string        `json:"description"`
	Objective    string        `json:"objective"`
	Source       string        `json:"source"`
	SourceURL    string        `json:"url"`
	Threshold    ThresholdKind `json:"thresholdType"`
	Metric       Metric        `json:"metric"`
}

// EvaluatedIndicator is a catalog entry plus the outcome of one evaluation
// pass. It only ever lives embedded inside an AnalysisHistoryEntry or an
// AnalysisResult, never persisted on its own.
type EvaluatedIndicator struct {
	IndicatorDefinition
	IsMet        bool   `json:"isMet"`
	DisplayValue string `json:"displayValue"`
	EvaluatedAt  string `json:"analyzedAt"`
}
