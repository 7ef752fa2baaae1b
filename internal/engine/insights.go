package engine

import (
	"github.com/Gathaus/WellnesAiApp-sub000/internal/catalog"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
)

// trendThreshold is the minimum difference in average weight between the
// newer and older half of the window that counts as a trend.
const trendThreshold = 0.5

// FilteredTips returns the tips of one category, or all tips for nil.
func (e *Engine) FilteredTips(category *models.TipCategory) ([]models.WellnessTip, error) {
	if category == nil {
		return catalog.Tips(), nil
	}
	if !category.Valid() {
		return nil, invalid("category", "unknown tip category "+string(*category))
	}
	return catalog.TipsByCategory(*category), nil
}

func (e *Engine) GoalSuggestions() []catalog.GoalSuggestion {
	return catalog.GoalSuggestions()
}

// RecommendationFor picks one suggestion for the given mood at random.
func (e *Engine) RecommendationFor(mood models.Mood) (string, error) {
	options := catalog.Recommendations(mood)
	if len(options) == 0 {
		return "", invalid("mood", "unknown mood "+string(mood))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return options[e.rng.Intn(len(options))], nil
}

func (e *Engine) Meditations(t *models.MeditationType) ([]models.Meditation, error) {
	if t == nil {
		return catalog.Meditations(), nil
	}
	if !t.Valid() {
		return nil, invalid("type", "unknown meditation type "+string(*t))
	}
	return catalog.MeditationsByType(*t), nil
}

// MoodSummary aggregates the mood window. The trend compares the newer half
// of the window with the older half; with an odd count the middle entry is
// left out.
func (e *Engine) MoodSummary() models.MoodSummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.moods)
	summary := models.MoodSummary{Entries: n, Trend: models.MoodTrendStable}
	if n == 0 {
		return summary
	}
	summary.Latest = e.moods[0].Mood
	summary.AverageWeight = averageWeight(e.moods)

	if n < 2 {
		return summary
	}
	half := n / 2
	diff := averageWeight(e.moods[:half]) - averageWeight(e.moods[n-half:])
	switch {
	case diff >= trendThreshold:
		summary.Trend = models.MoodTrendImproving
	case diff <= -trendThreshold:
		summary.Trend = models.MoodTrendDeclining
	}
	return summary
}

func averageWeight(entries []models.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	total := 0
	for _, m := range entries {
		total += m.Mood.Weight()
	}
	return float64(total) / float64(len(entries))
}
