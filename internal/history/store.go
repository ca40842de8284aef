// Package history persists the rolling per-day analysis score history.
package history

import (
	"sort"

	"CycleSentinel/internal/model"
)

// MaxEntries caps the retention window; oldest entries are evicted first.
const MaxEntries = 60

// Store persists the ordered entry sequence under a single logical key.
// Save replaces the persisted set entirely; dedup-by-date and retention are
// the caller's job (use Merge or Upsert before saving).
type Store interface {
	Load() ([]model.AnalysisHistoryEntry, error)
	Save(entries []model.AnalysisHistoryEntry) error
}

// Merge normalizes an entry sequence: one entry per date (the last occurrence
// wins), ascending date order, truncated to the most recent MaxEntries.
func Merge(entries []model.AnalysisHistoryEntry) []model.AnalysisHistoryEntry {
	byDate := make(map[string]model.AnalysisHistoryEntry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}
	out := make([]model.AnalysisHistoryEntry, 0, len(byDate))
	for _, e := range byDate {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if len(out) > MaxEntries {
		out = out[len(out)-MaxEntries:]
	}
	return out
}

// Upsert replaces any existing entry for the new entry's date and returns the
// normalized sequence.
func Upsert(entries []model.AnalysisHistoryEntry, entry model.AnalysisHistoryEntry) []model.AnalysisHistoryEntry {
	kept := make([]model.AnalysisHistoryEntry, 0, len(entries)+1)
	for _, e := range entries {
		if e.Date != entry.Date {
			kept = append(kept, e)
		}
	}
	return Merge(append(kept, entry))
}
