package engine

import (
	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/storage"
)

// UpdatePremiumStatus sets the premium flag. Losing premium also ends the
// trial that preceded it; a trial can still not be started again afterwards.
// Setting false on a user who was not premium leaves a running trial alone.
func (e *Engine) UpdatePremiumStatus(isPremium bool) models.SubscriptionStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	wasPremium := e.subscription.IsPremium
	e.subscription.IsPremium = isPremium
	e.persistLocked(storage.KeyPremiumStatus, isPremium)
	if wasPremium && !isPremium && e.subscription.TrialEndDate != nil {
		e.subscription.TrialEndDate = nil
		e.persistLocked(storage.KeyTrialEndDate, e.subscription.TrialEndDate)
	}

	status := e.subscription.Status(e.now())
	e.logger.Info("premium status updated", "premium", isPremium, "status", string(status))
	e.publishLocked()
	return status
}

// StartFreeTrial starts the one trial a user gets. It reports false when a
// trial was already started or the user is premium.
func (e *Engine) StartFreeTrial() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.trialStarted || e.subscription.IsPremium {
		return false
	}

	end := e.now().Add(e.trialDuration)
	e.subscription.TrialEndDate = &end
	e.trialStarted = true

	e.persistLocked(storage.KeyTrialEndDate, end)
	e.persistLocked(storage.KeyTrialStarted, true)
	e.logger.Info("free trial started", "trial_end", end)
	e.publishLocked()
	return true
}

func (e *Engine) SubscriptionStatus() models.SubscriptionStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.subscription.Status(e.now())
}

// EffectivelyPremium reports premium or an unexpired trial.
func (e *Engine) EffectivelyPremium() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.subscription.EffectivelyPremium(e.now())
}
