package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is the single on-device user created at onboarding.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
