package dto

import (
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
)

type UserRequest struct {
	Name string `json:"name"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

type LogMoodRequest struct {
	Mood models.Mood `json:"mood"`
}

type GoalRequest struct {
	Title       string              `json:"title"`
	Category    models.GoalCategory `json:"category"`
	TargetDate  *time.Time          `json:"targetDate,omitempty"`
	IsCompleted bool                `json:"isCompleted"`
}

type FavoriteRequest struct {
	Text string `json:"text"`
}

type FavoriteResponse struct {
	Text      string `json:"text"`
	Favorited bool   `json:"favorited"`
}

type PremiumRequest struct {
	IsPremium bool `json:"isPremium"`
}

type SubscriptionResponse struct {
	Status             models.SubscriptionStatus `json:"status"`
	EffectivelyPremium bool                      `json:"effectivelyPremium"`
	TrialEndDate       *time.Time                `json:"trialEndDate,omitempty"`
}

type TrialResponse struct {
	Started bool `json:"started"`
	SubscriptionResponse
}

type RecommendationResponse struct {
	Mood           models.Mood `json:"mood"`
	Recommendation string      `json:"recommendation"`
}
