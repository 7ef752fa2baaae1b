// Package catalog holds the static content served when the remote service is
// unavailable. Accessors return fresh copies so callers may mutate them.
package catalog

import (
	"slices"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
)

// Version identifies the bundled content set.
const Version = "2026.10.1"

var affirmations = []string{
	"I am valuable and deserve to be loved.",
	"Every day, in every way, I am getting better and stronger.",
	"I have the power to overcome challenges.",
	"I can change my life in a positive way.",
	"I am good enough and I accept myself as I am.",
	"I feel grateful for today and every day.",
	"I have the power to create my own happiness.",
	"I radiate positive energy and attract positive energy.",
	"I am at peace.",
	"I love myself more each day.",
	"I am the architect of my life and make positive choices.",
	"I am fully present here and now, enjoying the moment.",
	"My worth is determined by who I am, not by my achievements.",
	"I approach myself with compassion and understanding.",
	"Every challenge strengthens and grows me.",
	"With every breath I become calmer and more balanced.",
	"I respect my body and take good care of it.",
	"Meeting my own needs is self-care, not selfishness.",
	"My life is full of beauty and opportunity.",
	"Every day, in every moment, I am free to choose.",
	"I have the courage to change what I can, the serenity to accept what I cannot, and the wisdom to know the difference.",
}

var tips = []models.WellnessTip{
	{Category: models.TipMotivation, Content: "Focus on one goal every day. Small steps lead to big results."},
	{Category: models.TipMotivation, Content: "Take one small step toward your dreams today."},
	{Category: models.TipMotivation, Content: "Failures are learning opportunities. Embrace them."},
	{Category: models.TipMotivation, Content: "Stepping outside your comfort zone is the key to growth."},
	{Category: models.TipMotivation, Content: "Compare yourself only with who you were yesterday, not with others."},
	{Category: models.TipMotivation, Content: "Every setback is a step on the road to success."},
	{Category: models.TipMotivation, Content: "Give at least 15 minutes a day to something you are passionate about."},

	{Category: models.TipMindfulness, Content: "Try to meditate for at least 10 minutes a day."},
	{Category: models.TipMindfulness, Content: "When things get hard, focus on your breath and take a few deep breaths."},
	{Category: models.TipMindfulness, Content: "Keeping a journal can help you organize your thoughts."},
	{Category: models.TipMindfulness, Content: "Eat with all your senses: slowly and with attention."},
	{Category: models.TipMindfulness, Content: "Once a day, ask yourself: what am I feeling right now?"},
	{Category: models.TipMindfulness, Content: "Observe your thoughts without judging them. Notice them and let them go."},
	{Category: models.TipMindfulness, Content: "Ground yourself: see 5 things, touch 4, hear 3, smell 2 and taste 1."},

	{Category: models.TipSelfCare, Content: "Be kind to yourself and focus on progress instead of perfection."},
	{Category: models.TipSelfCare, Content: "Spend at least 30 minutes in nature every day."},
	{Category: models.TipSelfCare, Content: "Good sleep is the foundation of a good mood. Keep a regular sleep schedule."},
	{Category: models.TipSelfCare, Content: "Drink at least 8 glasses of water a day. Hydration matters for body and mind."},
	{Category: models.TipSelfCare, Content: "Set aside time to pamper yourself at least twice a week, with a bath, a book or a hobby."},
	{Category: models.TipSelfCare, Content: "Move for 30 minutes every day: walking, yoga or dancing, whatever makes you happy."},
	{Category: models.TipSelfCare, Content: "Learn to say no. Setting boundaries is an important part of self-care."},

	{Category: models.TipPositivity, Content: "Be grateful for three things you do every day."},
	{Category: models.TipPositivity, Content: "Savor the small moments that make you happy."},
	{Category: models.TipPositivity, Content: "Notice negative thoughts and replace them with positive statements."},
	{Category: models.TipPositivity, Content: "Look for the beauty around you: a flower, the sky, a smile."},
	{Category: models.TipPositivity, Content: "Every night before bed, recall three good moments from your day."},
	{Category: models.TipPositivity, Content: "Spend time with positive people. Energy is contagious."},
	{Category: models.TipPositivity, Content: "Celebrate your small wins. It builds self-confidence."},
}

// GoalSuggestion is a starter goal offered to the user.
type GoalSuggestion struct {
	Title    string              `json:"title"`
	Category models.GoalCategory `json:"category"`
}

var goalSuggestions = []GoalSuggestion{
	{Title: "Meditate for 10 minutes daily", Category: models.GoalMeditation},
	{Title: "Try a breathing exercise before bed", Category: models.GoalMeditation},
	{Title: "Exercise 3 days a week", Category: models.GoalExercise},
	{Title: "Take a 20 minute walk every day", Category: models.GoalExercise},
	{Title: "Drink 2 liters of water a day", Category: models.GoalWater},
	{Title: "Start the morning with a glass of water", Category: models.GoalWater},
	{Title: "Keep a journal every day", Category: models.GoalJournal},
	{Title: "Write down three things I am grateful for", Category: models.GoalJournal},
	{Title: "Practice mindfulness", Category: models.GoalMindfulness},
	{Title: "Eat one meal a day without screens", Category: models.GoalMindfulness},
}

var recommendations = map[models.Mood][]string{
	models.MoodFantastic: {
		"Write down what made you feel this great. What did you do, who were you with? You can use it to create more moments like this.",
		"Channel your positive energy into something creative. Maybe it is the perfect time to start that project you have been putting off.",
		"Share this energy with the people you love. Perhaps do someone an unexpected kindness.",
	},
	models.MoodGood: {
		"On a good day like this, give yourself a small reward or do an activity you enjoy.",
		"Try keeping a gratitude journal to reinforce your positive feelings.",
		"Getting outside for some fresh air today can help you feel even better.",
	},
	models.MoodNeutral: {
		"A short walk or a breathing exercise can lift your mood.",
		"Listening to music or a podcast you like can raise your energy.",
		"Give yourself a little extra care today, like a favorite drink or a short break.",
	},
	models.MoodBad: {
		"Feeling bad is normal. Instead of holding your feelings in, try writing them down.",
		"A short meditation or deep breathing exercise can help calm your mind.",
		"Talking to someone you love or texting a friend can make you feel better.",
	},
	models.MoodAwful: {
		"When you feel this low, self-compassion matters. Focus only on your basic needs today.",
		"Sharing your feelings with someone you trust or seeking professional support is an option worth considering.",
		"Deep breathing and short mindfulness practices can bring some immediate relief.",
	},
}

var meditations = []models.Meditation{
	{Title: "Morning Focus", Description: "A short meditation to start the day with energy", DurationMinutes: 5, Type: models.MeditationFocus, ImageName: "sunrise.fill"},
	{Title: "Deep Focus", Description: "A meditation that sharpens concentration before work", DurationMinutes: 10, Type: models.MeditationFocus, ImageName: "lightbulb.fill"},
	{Title: "Clear Mind", Description: "A focus meditation that eases mental fatigue", DurationMinutes: 15, Type: models.MeditationFocus, ImageName: "cloud.fill"},

	{Title: "Peaceful Sleep", Description: "A bedtime meditation for restful sleep", DurationMinutes: 10, Type: models.MeditationSleep, ImageName: "moon.zzz.fill"},
	{Title: "Night Unwind", Description: "A meditation with soothing sounds to help you fall asleep", DurationMinutes: 20, Type: models.MeditationSleep, ImageName: "star.fill"},
	{Title: "Deep Sleep", Description: "Deep relaxation techniques for quality sleep", DurationMinutes: 30, Type: models.MeditationSleep, ImageName: "bed.double.fill"},

	{Title: "Ease Anxiety", Description: "Breathing techniques to settle down when anxious", DurationMinutes: 8, Type: models.MeditationAnxiety, ImageName: "waveform.path"},
	{Title: "Letting Go of Worry", Description: "A guided meditation that releases mental tension", DurationMinutes: 12, Type: models.MeditationAnxiety, ImageName: "arrow.up.heart.fill"},
	{Title: "Quick Calm", Description: "Techniques for fast relief in moments of panic", DurationMinutes: 5, Type: models.MeditationAnxiety, ImageName: "lungs.fill"},

	{Title: "Inner Peace", Description: "A meditation to help you find inner peace", DurationMinutes: 15, Type: models.MeditationCalm, ImageName: "leaf.fill"},
	{Title: "Nature Sounds", Description: "A calming meditation set to the sounds of nature", DurationMinutes: 20, Type: models.MeditationCalm, ImageName: "tree.fill"},
	{Title: "Closing the Day", Description: "An end-of-day meditation for rest and gratitude", DurationMinutes: 10, Type: models.MeditationCalm, ImageName: "sunset.fill"},
}

func Affirmations() []string {
	return slices.Clone(affirmations)
}

func Tips() []models.WellnessTip {
	return slices.Clone(tips)
}

// TipsByCategory returns the tips of one category in catalog order.
func TipsByCategory(category models.TipCategory) []models.WellnessTip {
	out := make([]models.WellnessTip, 0, 7)
	for _, tip := range tips {
		if tip.Category == category {
			out = append(out, tip)
		}
	}
	return out
}

func GoalSuggestions() []GoalSuggestion {
	return slices.Clone(goalSuggestions)
}

// Recommendations returns the suggestions for a mood, or nil for an unknown mood.
func Recommendations(mood models.Mood) []string {
	return slices.Clone(recommendations[mood])
}

func Meditations() []models.Meditation {
	return slices.Clone(meditations)
}

func MeditationsByType(t models.MeditationType) []models.Meditation {
	out := make([]models.Meditation, 0, 3)
	for _, m := range meditations {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}
