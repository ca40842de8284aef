package model

// AnalysisHistoryEntry is one persisted day of the rolling top-score history.
// Date (YYYY-MM-DD) is the unique key; Details may be absent for entries
// that only carry a percentage.
type AnalysisHistoryEntry struct {
	Date       string               `json:"date"`
	Percentage int                  `json:"percentage"`
	Details    []EvaluatedIndicator `json:"details,omitempty"`
	Complete   bool                 `json:"complete"`
}

// AnalysisResult is what the orchestrator hands back to the caller.
// It is always fully populated: 10 indicators and a percentage, with
// Degraded set when upstream data was unavailable.
type AnalysisResult struct {
	Date       string                 `json:"date"`
	Percentage int                    `json:"percentage"`
	Indicators []EvaluatedIndicator   `json:"indicators"`
	History    []AnalysisHistoryEntry `json:"history"`
	Degraded   bool                   `json:"degraded"`
}
