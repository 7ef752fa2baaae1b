package engine

import (
	"testing"
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
)

func TestStartFreeTrial_OnlyOnce(t *testing.T) {
	clock := newFakeClock()
	e := newTestEngine(t, newMemStore(), &stubClient{}, clock)

	if !e.StartFreeTrial() {
		t.Fatal("expected first trial to start")
	}
	first := e.Snapshot().Subscription
	if first.TrialEndDate == nil || !first.TrialEndDate.Equal(clock.Now().Add(DefaultTrialDuration)) {
		t.Fatalf("expected trial end in 72h, got %v", first.TrialEndDate)
	}

	clock.Advance(time.Hour)
	if e.StartFreeTrial() {
		t.Fatal("expected second trial to be rejected")
	}
	second := e.Snapshot().Subscription
	if !second.TrialEndDate.Equal(*first.TrialEndDate) {
		t.Fatalf("expected trial end unchanged, got %v", second.TrialEndDate)
	}
	if second.IsPremium {
		t.Fatal("expected trial to leave the premium flag untouched")
	}
	if e.SubscriptionStatus() != models.SubscriptionTrialing || !e.EffectivelyPremium() {
		t.Fatal("expected trialing and effectively premium")
	}
}

func TestTrial_ExpiresLazily(t *testing.T) {
	clock := newFakeClock()
	e := newTestEngine(t, newMemStore(), &stubClient{}, clock)
	e.StartFreeTrial()

	clock.Advance(DefaultTrialDuration)
	if e.SubscriptionStatus() != models.SubscriptionNone {
		t.Fatalf("expected status none at trial end, got %s", e.SubscriptionStatus())
	}
	if e.EffectivelyPremium() {
		t.Fatal("expected expired trial not to grant premium")
	}
	if e.StartFreeTrial() {
		t.Fatal("expected an expired trial not to restart")
	}
}

func TestUpdatePremiumStatus(t *testing.T) {
	e := newTestEngine(t, newMemStore(), &stubClient{}, newFakeClock())
	e.StartFreeTrial()

	if status := e.UpdatePremiumStatus(true); status != models.SubscriptionPremium {
		t.Fatalf("expected premium, got %s", status)
	}
	if status := e.UpdatePremiumStatus(false); status != models.SubscriptionNone {
		t.Fatalf("expected none after losing premium, got %s", status)
	}
	snap := e.Snapshot()
	if snap.Subscription.TrialEndDate != nil {
		t.Fatalf("expected trial cleared, got %v", snap.Subscription.TrialEndDate)
	}
	if !snap.TrialStarted || e.StartFreeTrial() {
		t.Fatal("expected trial to stay used up")
	}
}

func TestStartFreeTrial_RejectedForPremium(t *testing.T) {
	e := newTestEngine(t, newMemStore(), &stubClient{}, newFakeClock())
	e.UpdatePremiumStatus(true)

	if e.StartFreeTrial() {
		t.Fatal("expected premium user not to start a trial")
	}
	if e.Snapshot().Subscription.TrialEndDate != nil {
		t.Fatal("expected no trial end date")
	}
}

func TestStartFreeTrial_RememberedAcrossSessions(t *testing.T) {
	store := newMemStore()
	clock := newFakeClock()
	first := newTestEngine(t, store, &stubClient{}, clock)
	first.StartFreeTrial()
	first.Close()

	clock.Advance(DefaultTrialDuration + time.Hour)
	second := newTestEngine(t, store, &stubClient{}, clock)
	if second.StartFreeTrial() {
		t.Fatal("expected persisted trial flag to block a new trial")
	}
	if second.SubscriptionStatus() != models.SubscriptionNone {
		t.Fatalf("expected expired trial after reload, got %s", second.SubscriptionStatus())
	}
}

func TestUpdatePremiumStatus_FalseKeepsRunningTrial(t *testing.T) {
	clock := newFakeClock()
	store := newMemStore()
	e := newTestEngine(t, store, &stubClient{}, clock)
	e.StartFreeTrial()
	trialEnd := *e.Snapshot().Subscription.TrialEndDate

	if status := e.UpdatePremiumStatus(false); status != models.SubscriptionTrialing {
		t.Fatalf("expected trialing, got %s", status)
	}
	snap := e.Snapshot()
	if snap.Subscription.TrialEndDate == nil || !snap.Subscription.TrialEndDate.Equal(trialEnd) {
		t.Fatalf("expected trial end %v kept, got %v", trialEnd, snap.Subscription.TrialEndDate)
	}
	if !e.EffectivelyPremium() {
		t.Fatal("expected the running trial to keep premium access")
	}
	e.Close()

	reloaded := newTestEngine(t, store, &stubClient{}, clock)
	if reloaded.SubscriptionStatus() != models.SubscriptionTrialing {
		t.Fatalf("expected trial to survive reload, got %s", reloaded.SubscriptionStatus())
	}
}
