package engine

import (
	"slices"
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/storage"
	"github.com/google/uuid"
)

// LogMood records today's mood. A second log on the same day replaces the
// first; a new day evicts the oldest entry once the window is full.
func (e *Engine) LogMood(mood models.Mood) (models.MoodEntry, error) {
	if !mood.Valid() {
		return models.MoodEntry{}, invalid("mood", "unknown mood "+string(mood))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	today := startOfDay(now)

	var entry models.MoodEntry
	idx := slices.IndexFunc(e.moods, func(m models.MoodEntry) bool {
		return sameDay(m.Date, today)
	})
	if idx >= 0 {
		e.moods[idx].Mood = mood
		entry = e.moods[idx]
	} else {
		// The oldest stored entry is evicted even when today sorts before
		// it, which only happens after the clock moves backwards.
		if len(e.moods) >= MoodWindow {
			sortMoodsDesc(e.moods)
			e.moods = slices.Clone(e.moods[:MoodWindow-1])
		}
		entry = models.MoodEntry{ID: uuid.New(), Mood: mood, Date: today}
		e.moods = append(e.moods, entry)
	}
	sortMoodsDesc(e.moods)

	e.persistLocked(storage.KeyMoodHistory, e.moods)
	e.publishLocked()
	return entry, nil
}

// normalizeMoods restores the window invariants on loaded data: one entry per
// day (the first one seen wins), newest first, at most MoodWindow entries.
func normalizeMoods(in []models.MoodEntry, loc *time.Location) []models.MoodEntry {
	out := make([]models.MoodEntry, 0, len(in))
	for _, m := range in {
		if !m.Mood.Valid() {
			continue
		}
		m.Date = startOfDay(m.Date.In(loc))
		if slices.ContainsFunc(out, func(o models.MoodEntry) bool { return sameDay(o.Date, m.Date) }) {
			continue
		}
		out = append(out, m)
	}
	sortMoodsDesc(out)
	if len(out) > MoodWindow {
		out = out[:MoodWindow]
	}
	return out
}

func sortMoodsDesc(moods []models.MoodEntry) {
	slices.SortStableFunc(moods, func(a, b models.MoodEntry) int {
		return b.Date.Compare(a.Date)
	})
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
