package history

import (
	"testing"
	"time"

	"CycleSentinel/internal/model"
)

func dated(day int, pct int) model.AnalysisHistoryEntry {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
	return model.AnalysisHistoryEntry{Date: d.Format("2006-01-02"), Percentage: pct}
}

func TestMerge_DedupesByDate(t *testing.T) {
	entries := []model.AnalysisHistoryEntry{
		dated(0, 40),
		dated(1, 45),
		{Date: dated(1, 0).Date, Percentage: 50}, // same date, later wins
	}
	merged := Merge(entries)
	if len(merged) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(merged))
	}
	if merged[1].Percentage != 50 {
		t.Errorf("later entry should win, got %d", merged[1].Percentage)
	}
}

func TestMerge_SortsAscending(t *testing.T) {
	entries := []model.AnalysisHistoryEntry{dated(5, 1), dated(2, 2), dated(9, 3), dated(0, 4)}
	merged := Merge(entries)
	for i := 1; i < len(merged); i++ {
		if merged[i].Date <= merged[i-1].Date {
			t.Fatalf("not sorted at %d: %s <= %s", i, merged[i].Date, merged[i-1].Date)
		}
	}
}

func TestMerge_RetentionCap(t *testing.T) {
	var entries []model.AnalysisHistoryEntry
	for i := 0; i < 70; i++ {
		entries = append(entries, dated(i, i))
	}
	merged := Merge(entries)
	if len(merged) != MaxEntries {
		t.Fatalf("expected %d entries after cap, got %d", MaxEntries, len(merged))
	}
	// The 10 oldest dates must be gone.
	oldest := map[string]bool{}
	for i := 0; i < 10; i++ {
		oldest[dated(i, 0).Date] = true
	}
	for _, e := range merged {
		if oldest[e.Date] {
			t.Errorf("evicted date %s still present", e.Date)
		}
	}
	if merged[0].Date != dated(10, 0).Date {
		t.Errorf("expected oldest surviving date %s, got %s", dated(10, 0).Date, merged[0].Date)
	}
}

func TestUpsert_ReplacesExistingDate(t *testing.T) {
	entries := []model.AnalysisHistoryEntry{dated(0, 40), dated(1, 45)}
	updated := Upsert(entries, model.AnalysisHistoryEntry{Date: dated(1, 0).Date, Percentage: 99, Complete: true})

	if len(updated) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(updated))
	}
	count := 0
	for _, e := range updated {
		if e.Date == dated(1, 0).Date {
			count++
			if e.Percentage != 99 || !e.Complete {
				t.Errorf("entry not replaced: %+v", e)
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one entry for the date, got %d", count)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/history.json"
	store := NewFileStore(path)

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load missing file: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(loaded))
	}

	entries := []model.AnalysisHistoryEntry{
		dated(0, 40),
		{
			Date:       "2024-06-01",
			Percentage: 42,
			Complete:   true,
			Details: []model.EvaluatedIndicator{{
				IndicatorDefinition: model.IndicatorDefinition{ID: "ma-200"},
				IsMet:               true,
				DisplayValue:        "$68,000 > $55,000",
			}},
		},
	}
	if err := store.Save(entries); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded))
	}
	if loaded[1].Details[0].DisplayValue != "$68,000 > $55,000" {
		t.Errorf("details lost in round trip: %+v", loaded[1])
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(t.TempDir() + "/history.db")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty history, got %d", len(loaded))
	}

	entries := []model.AnalysisHistoryEntry{
		dated(0, 38),
		{
			Date:       "2024-06-01",
			Percentage: 42,
			Complete:   true,
			Details: []model.EvaluatedIndicator{{
				IndicatorDefinition: model.IndicatorDefinition{ID: "btc-dominance"},
				DisplayValue:        "58.50%",
			}},
		},
	}
	if err := store.Save(entries); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded))
	}
	if !loaded[1].Complete || loaded[1].Percentage != 42 {
		t.Errorf("entry fields lost: %+v", loaded[1])
	}
	if len(loaded[1].Details) != 1 || loaded[1].Details[0].DisplayValue != "58.50%" {
		t.Errorf("details lost: %+v", loaded[1].Details)
	}
	if len(loaded[0].Details) != 0 {
		t.Errorf("percentage-only entry should have no details")
	}
}

func TestSQLiteStore_SaveReplacesSet(t *testing.T) {
	store, err := NewSQLiteStore(t.TempDir() + "/history.db")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	var first []model.AnalysisHistoryEntry
	for i := 0; i < 5; i++ {
		first = append(first, dated(i, 40+i))
	}
	if err := store.Save(first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := []model.AnalysisHistoryEntry{dated(7, 55)}
	if err := store.Save(second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("save must replace the whole set, got %d entries", len(loaded))
	}
	if loaded[0].Date != dated(7, 0).Date {
		t.Errorf("unexpected surviving entry %s", loaded[0].Date)
	}
}

func TestSequentialSaves_IdempotentUpsert(t *testing.T) {
	store := NewFileStore(t.TempDir() + "/history.json")

	var entries []model.AnalysisHistoryEntry
	for i := 0; i < 70; i++ {
		entries = Upsert(entries, dated(i, i))
		if err := store.Save(entries); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != MaxEntries {
		t.Fatalf("expected %d entries after 70 sequential saves, got %d", MaxEntries, len(loaded))
	}
	for i, e := range loaded {
		want := dated(i+10, 0).Date
		if e.Date != want {
			t.Fatalf("entry %d: date %s, want %s", i, e.Date, want)
		}
	}
}
