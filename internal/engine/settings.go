package engine

import (
	"strings"
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/storage"
)

// UpdateSettings merges patch into the current settings.
func (e *Engine) UpdateSettings(patch models.SettingsPatch) (models.Settings, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.settings.Apply(patch)
	next.LanguageCode = strings.TrimSpace(next.LanguageCode)
	if next.LanguageCode == "" {
		return e.settings, invalid("languageCode", "must not be empty")
	}
	if _, err := time.Parse("15:04", next.ReminderTime); err != nil {
		return e.settings, invalid("reminderTime", "must be HH:MM")
	}

	e.settings = next
	e.persistLocked(storage.KeySettings, next)
	e.publishLocked()
	return next, nil
}
