package models

import (
	"time"

	"github.com/google/uuid"
)

type GoalCategory string

const (
	GoalMeditation  GoalCategory = "Meditation"
	GoalExercise    GoalCategory = "Exercise"
	GoalWater       GoalCategory = "Water"
	GoalJournal     GoalCategory = "Journal"
	GoalMindfulness GoalCategory = "Mindfulness"
)

var AllGoalCategories = []GoalCategory{GoalMeditation, GoalExercise, GoalWater, GoalJournal, GoalMindfulness}

func (c GoalCategory) Valid() bool {
	return c.Icon() != ""
}

// Icon is presentation metadata for the shell.
func (c GoalCategory) Icon() string {
	switch c {
	case GoalMeditation:
		return "lungs.fill"
	case GoalExercise:
		return "figure.walk"
	case GoalWater:
		return "drop.fill"
	case GoalJournal:
		return "book.fill"
	case GoalMindfulness:
		return "brain.head.profile"
	default:
		return ""
	}
}

func (c GoalCategory) Color() string {
	switch c {
	case GoalMeditation:
		return "#3b82f6"
	case GoalExercise:
		return "#22c55e"
	case GoalWater:
		return "#06b6d4"
	case GoalJournal:
		return "#8b5cf6"
	case GoalMindfulness:
		return "#f97316"
	default:
		return ""
	}
}

type Goal struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Category    GoalCategory `json:"category"`
	TargetDate  *time.Time   `json:"targetDate,omitempty"`
	IsCompleted bool         `json:"isCompleted"`
	CreatedAt   time.Time    `json:"createdAt"`
}
