package models

import "time"

type SubscriptionStatus string

const (
	SubscriptionNone     SubscriptionStatus = "none"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionPremium  SubscriptionStatus = "premium"
)

// SubscriptionState is the stored premium flag plus the optional trial end.
type SubscriptionState struct {
	IsPremium    bool       `json:"isPremium"`
	TrialEndDate *time.Time `json:"trialEndDate,omitempty"`
}

// Status derives the current state; trial expiry is evaluated against now.
func (s SubscriptionState) Status(now time.Time) SubscriptionStatus {
	switch {
	case s.IsPremium:
		return SubscriptionPremium
	case s.TrialEndDate != nil && now.Before(*s.TrialEndDate):
		return SubscriptionTrialing
	default:
		return SubscriptionNone
	}
}

func (s SubscriptionState) EffectivelyPremium(now time.Time) bool {
	return s.Status(now) != SubscriptionNone
}
