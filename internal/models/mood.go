package models

import (
	"time"

	"github.com/google/uuid"
)

type Mood string

const (
	MoodFantastic Mood = "Fantastic"
	MoodGood      Mood = "Good"
	MoodNeutral   Mood = "Neutral"
	MoodBad       Mood = "Bad"
	MoodAwful     Mood = "Awful"
)

// AllMoods lists moods from best to worst.
var AllMoods = []Mood{MoodFantastic, MoodGood, MoodNeutral, MoodBad, MoodAwful}

func (m Mood) Valid() bool {
	return m.Weight() > 0
}

// Weight returns the ordinal value of the mood, 5 (fantastic) down to 1 (awful).
// Unknown moods weigh 0.
func (m Mood) Weight() int {
	switch m {
	case MoodFantastic:
		return 5
	case MoodGood:
		return 4
	case MoodNeutral:
		return 3
	case MoodBad:
		return 2
	case MoodAwful:
		return 1
	default:
		return 0
	}
}

func (m Mood) Emoji() string {
	switch m {
	case MoodFantastic:
		return "😁"
	case MoodGood:
		return "😊"
	case MoodNeutral:
		return "😐"
	case MoodBad:
		return "😔"
	case MoodAwful:
		return "😩"
	default:
		return ""
	}
}

// MoodEntry records the mood for one calendar day. Date is the start of that day.
type MoodEntry struct {
	ID   uuid.UUID `json:"id"`
	Mood Mood      `json:"mood"`
	Date time.Time `json:"date"`
}

// MoodSummary aggregates the mood window.
type MoodSummary struct {
	Entries       int     `json:"entries"`
	AverageWeight float64 `json:"averageWeight"`
	Trend         string  `json:"trend"`
	Latest        Mood    `json:"latest,omitempty"`
}

const (
	MoodTrendImproving = "improving"
	MoodTrendDeclining = "declining"
	MoodTrendStable    = "stable"
)
