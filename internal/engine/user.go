package engine

import (
	"fmt"
	"strings"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/storage"
	"github.com/google/uuid"
)

const welcomeTemplate = "Hello %s! I'm your wellness assistant. I'm here whenever you want to share how you feel, get some motivation or just chat."

// CreateUser replaces the profile and greets the new user in the transcript.
func (e *Engine) CreateUser(name string) (models.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.UserProfile{}, invalid("name", "must not be empty")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	user := models.UserProfile{ID: uuid.New(), Name: name, CreatedAt: now}
	e.user = &user
	e.messages = append(e.messages, models.NewChatMessage(fmt.Sprintf(welcomeTemplate, name), false, now))

	e.persistLocked(storage.KeyUser, user)
	e.persistLocked(storage.KeyMessages, e.messages)
	e.logger.Info("user created", "user_id", user.ID.String())
	e.publishLocked()
	return user, nil
}

// UpdateProfileName renames the current user, creating a profile if none exists.
func (e *Engine) UpdateProfileName(name string) (models.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.UserProfile{}, invalid("name", "must not be empty")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.user == nil {
		e.user = &models.UserProfile{ID: uuid.New(), CreatedAt: e.now()}
	}
	e.user.Name = name
	user := *e.user

	e.persistLocked(storage.KeyUser, user)
	e.publishLocked()
	return user, nil
}
