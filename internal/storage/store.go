// Package storage is the durable key-value boundary for engine state slices.
// It only encodes and decodes; it never interprets the values it stores.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Key identifies one persisted slice.
type Key string

const (
	KeyUser                  Key = "user"
	KeyMessages              Key = "messages"
	KeyMoodHistory           Key = "moodHistory"
	KeyGoals                 Key = "goals"
	KeySettings              Key = "settings"
	KeyPremiumStatus         Key = "premiumStatus"
	KeyTrialEndDate          Key = "trialEndDate"
	KeyTrialStarted          Key = "trialStarted"
	KeyFavoritedInspirations Key = "favoritedInspirations"
)

// AllKeys lists every slice the engine persists.
var AllKeys = []Key{
	KeyUser,
	KeyMessages,
	KeyMoodHistory,
	KeyGoals,
	KeySettings,
	KeyPremiumStatus,
	KeyTrialEndDate,
	KeyTrialStarted,
	KeyFavoritedInspirations,
}

// ErrDecode marks a stored value that could not be decoded into the requested type.
var ErrDecode = errors.New("stored slice could not be decoded")

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Save encodes value as JSON and upserts it under key.
func (s *Store) Save(ctx context.Context, key Key, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	row := models.StateSlice{
		Key:       string(key),
		Value:     datatypes.JSON(encoded),
		UpdatedAt: time.Now().UTC(),
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slice_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Load decodes the value stored under key into dest. It reports false with a
// nil error when the key is absent, and false with an error when the row
// cannot be read or decoded.
func (s *Store) Load(ctx context.Context, key Key, dest any) (bool, error) {
	var row models.StateSlice
	result := s.db.WithContext(ctx).
		Where("slice_key = ?", string(key)).
		Limit(1).
		Find(&row)
	if result.Error != nil {
		return false, fmt.Errorf("read %s: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err := json.Unmarshal(row.Value, dest); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
	}
	return true, nil
}

func (s *Store) Delete(ctx context.Context, key Key) error {
	if err := s.db.WithContext(ctx).Where("slice_key = ?", string(key)).Delete(&models.StateSlice{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys returns the keys currently present in the store.
func (s *Store) Keys(ctx context.Context) ([]Key, error) {
	var names []string
	if err := s.db.WithContext(ctx).Model(&models.StateSlice{}).Order("slice_key ASC").Pluck("slice_key", &names).Error; err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	keys := make([]Key, 0, len(names))
	for _, name := range names {
		keys = append(keys, Key(name))
	}
	return keys, nil
}
