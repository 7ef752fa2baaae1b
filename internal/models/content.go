package models

// DailyContent is the in-memory daily content cache plus the persisted favorites.
type DailyContent struct {
	DailyAffirmation string   `json:"dailyAffirmation"`
	Inspirations     []string `json:"inspirations"`
	Favorites        []string `json:"favorites"`
}

type TipCategory string

const (
	TipMotivation  TipCategory = "Motivation"
	TipMindfulness TipCategory = "Mindfulness"
	TipSelfCare    TipCategory = "SelfCare"
	TipPositivity  TipCategory = "Positivity"
)

var AllTipCategories = []TipCategory{TipMotivation, TipMindfulness, TipSelfCare, TipPositivity}

func (c TipCategory) Valid() bool {
	switch c {
	case TipMotivation, TipMindfulness, TipSelfCare, TipPositivity:
		return true
	}
	return false
}

type WellnessTip struct {
	Content  string      `json:"content"`
	Category TipCategory `json:"category"`
}

type MeditationType string

const (
	MeditationFocus   MeditationType = "Focus"
	MeditationSleep   MeditationType = "Sleep"
	MeditationAnxiety MeditationType = "Anxiety"
	MeditationCalm    MeditationType = "Calm"
)

func (t MeditationType) Valid() bool {
	switch t {
	case MeditationFocus, MeditationSleep, MeditationAnxiety, MeditationCalm:
		return true
	}
	return false
}

type Meditation struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	DurationMinutes int            `json:"durationMinutes"`
	Type            MeditationType `json:"type"`
	ImageName       string         `json:"imageName"`
}
