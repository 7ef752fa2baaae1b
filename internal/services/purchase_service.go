package services

import (
	"errors"
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/dto"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
)

var ErrMissingEventType = errors.New("purchase event has no type")

// PremiumUpdater is the part of the session engine purchase events drive.
type PremiumUpdater interface {
	UpdatePremiumStatus(isPremium bool) models.SubscriptionStatus
}

// PurchaseService applies store purchase events forwarded by the shell.
type PurchaseService struct {
	premium PremiumUpdater
	now     func() time.Time
}

func NewPurchaseService(premium PremiumUpdater) *PurchaseService {
	return &PurchaseService{premium: premium, now: time.Now}
}

// HandleEvent updates the premium flag for events that change entitlement.
// It reports whether the event was applied.
func (s *PurchaseService) HandleEvent(event *dto.PurchaseEvent) (models.SubscriptionStatus, bool, error) {
	switch event.Type {
	case "":
		return "", false, ErrMissingEventType
	case "INITIAL_PURCHASE", "RENEWAL", "UNCANCELLATION", "PRODUCT_CHANGE":
		return s.premium.UpdatePremiumStatus(true), true, nil
	case "EXPIRATION":
		return s.premium.UpdatePremiumStatus(false), true, nil
	case "CANCELLATION":
		// Access lasts until the paid period ends.
		if event.ExpirationAtMs > 0 && msToTime(event.ExpirationAtMs).After(s.now()) {
			return "", false, nil
		}
		return s.premium.UpdatePremiumStatus(false), true, nil
	default:
		return "", false, nil
	}
}

func msToTime(ms int64) time.Time {
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
}
