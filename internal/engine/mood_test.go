package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/storage"
	"github.com/google/uuid"
)

func assertMoodWindow(t *testing.T, entries []models.MoodEntry) {
	t.Helper()
	if len(entries) > MoodWindow {
		t.Fatalf("expected at most %d entries, got %d", MoodWindow, len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if !entries[i-1].Date.After(entries[i].Date) {
			t.Fatalf("expected strictly descending dates, got %v before %v", entries[i-1].Date, entries[i].Date)
		}
	}
}

func TestLogMood_WindowStaysBoundedAndSorted(t *testing.T) {
	clock := newFakeClock()
	e := newTestEngine(t, newMemStore(), &stubClient{}, clock)

	moods := []models.Mood{
		models.MoodGood, models.MoodBad, models.MoodNeutral, models.MoodAwful, models.MoodFantastic,
		models.MoodGood, models.MoodGood, models.MoodBad, models.MoodNeutral, models.MoodFantastic,
	}
	var last models.MoodEntry
	for _, mood := range moods {
		entry, err := e.LogMood(mood)
		if err != nil {
			t.Fatalf("log mood: %v", err)
		}
		last = entry
		assertMoodWindow(t, e.Snapshot().MoodHistory)
		clock.Advance(24 * time.Hour)
	}

	history := e.Snapshot().MoodHistory
	if len(history) != MoodWindow {
		t.Fatalf("expected full window of %d, got %d", MoodWindow, len(history))
	}
	if history[0].ID != last.ID || history[0].Mood != models.MoodFantastic {
		t.Fatalf("expected newest entry first, got %+v", history[0])
	}
	oldest := startOfDay(clock.Now()).AddDate(0, 0, -MoodWindow)
	if !history[MoodWindow-1].Date.Equal(oldest) {
		t.Fatalf("expected oldest kept day %v, got %v", oldest, history[MoodWindow-1].Date)
	}
}

func TestLogMood_DateIsStartOfDay(t *testing.T) {
	clock := newFakeClock()
	e := newTestEngine(t, newMemStore(), &stubClient{}, clock)

	entry, err := e.LogMood(models.MoodNeutral)
	if err != nil {
		t.Fatalf("log mood: %v", err)
	}
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !entry.Date.Equal(want) {
		t.Fatalf("expected %v, got %v", want, entry.Date)
	}
}

func TestLogMood_SameDayReplacesWithoutEviction(t *testing.T) {
	clock := newFakeClock()
	e := newTestEngine(t, newMemStore(), &stubClient{}, clock)

	for i := 0; i < MoodWindow; i++ {
		if _, err := e.LogMood(models.MoodNeutral); err != nil {
			t.Fatalf("log mood: %v", err)
		}
		if i < MoodWindow-1 {
			clock.Advance(24 * time.Hour)
		}
	}
	before := e.Snapshot().MoodHistory

	clock.Advance(3 * time.Hour)
	if _, err := e.LogMood(models.MoodAwful); err != nil {
		t.Fatalf("second log: %v", err)
	}
	after := e.Snapshot().MoodHistory

	if len(after) != MoodWindow {
		t.Fatalf("expected %d entries, got %d", MoodWindow, len(after))
	}
	if after[0].ID != before[0].ID {
		t.Fatalf("expected same-day entry to keep its id")
	}
	if after[0].Mood != models.MoodAwful {
		t.Fatalf("expected replaced mood Awful, got %s", after[0].Mood)
	}
	if !after[MoodWindow-1].Date.Equal(before[MoodWindow-1].Date) {
		t.Fatal("expected oldest entry to survive a same-day replacement")
	}
}

func TestLogMood_RejectsUnknownMood(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store, &stubClient{}, newFakeClock())

	_, err := e.LogMood(models.Mood("Ecstatic"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(e.Snapshot().MoodHistory) != 0 {
		t.Fatal("expected no entry for rejected mood")
	}
	if store.saveCount(storage.KeyMoodHistory) != 0 {
		t.Fatal("expected nothing persisted for rejected mood")
	}
}

func TestLogMood_Persists(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store, &stubClient{}, newFakeClock())

	if _, err := e.LogMood(models.MoodGood); err != nil {
		t.Fatalf("log mood: %v", err)
	}
	var stored []models.MoodEntry
	if found, err := store.Load(context.Background(), storage.KeyMoodHistory, &stored); err != nil || !found {
		t.Fatalf("expected persisted mood history, found=%v err=%v", found, err)
	}
	if len(stored) != 1 || stored[0].Mood != models.MoodGood {
		t.Fatalf("expected one Good entry, got %+v", stored)
	}
}

func TestInitialize_NormalizesLoadedMoodHistory(t *testing.T) {
	clock := newFakeClock()
	store := newMemStore()

	today := startOfDay(clock.Now())
	var seeded []models.MoodEntry
	for _, offset := range []int{-3, 0, -8, -1, -5, -2, -6, -4, -7} {
		seeded = append(seeded, models.MoodEntry{ID: uuid.New(), Mood: models.MoodGood, Date: today.AddDate(0, 0, offset)})
	}
	seeded = append(seeded, models.MoodEntry{ID: uuid.New(), Mood: models.MoodBad, Date: today.Add(5 * time.Hour)})
	store.put(t, storage.KeyMoodHistory, seeded)

	e := newTestEngine(t, store, &stubClient{}, clock)

	history := e.Snapshot().MoodHistory
	if len(history) != MoodWindow {
		t.Fatalf("expected %d entries after normalization, got %d", MoodWindow, len(history))
	}
	assertMoodWindow(t, history)
	if !history[0].Date.Equal(today) {
		t.Fatalf("expected today first, got %v", history[0].Date)
	}
	if !history[MoodWindow-1].Date.Equal(today.AddDate(0, 0, -6)) {
		t.Fatalf("expected oldest kept entry six days ago, got %v", history[MoodWindow-1].Date)
	}
}

func TestLogMood_ClockMovedBackEvictsOldestStored(t *testing.T) {
	clock := newFakeClock()
	e := newTestEngine(t, newMemStore(), &stubClient{}, clock)
	for i := 0; i < MoodWindow; i++ {
		if _, err := e.LogMood(models.MoodGood); err != nil {
			t.Fatalf("log mood: %v", err)
		}
		clock.Advance(24 * time.Hour)
	}
	before := e.Snapshot().MoodHistory
	newest, oldest := before[0].Date, before[MoodWindow-1].Date

	clock.Advance(-time.Duration(MoodWindow+3) * 24 * time.Hour)
	entry, err := e.LogMood(models.MoodBad)
	if err != nil {
		t.Fatalf("log mood: %v", err)
	}

	history := e.Snapshot().MoodHistory
	assertMoodWindow(t, history)
	if len(history) != MoodWindow {
		t.Fatalf("expected full window of %d, got %d", MoodWindow, len(history))
	}
	if !history[0].Date.Equal(newest) {
		t.Fatalf("expected newest day %v kept, got %v", newest, history[0].Date)
	}
	if history[MoodWindow-1].ID != entry.ID {
		t.Fatalf("expected back-dated entry last, got %+v", history[MoodWindow-1])
	}
	for _, m := range history {
		if m.Date.Equal(oldest) {
			t.Fatalf("expected previous oldest day %v evicted", oldest)
		}
	}
}
