package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/dto"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/engine"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const keepAliveInterval = 15 * time.Second

// SessionHandler exposes the session engine to the UI shell.
type SessionHandler struct {
	engine *engine.Engine
}

func NewSessionHandler(e *engine.Engine) *SessionHandler {
	return &SessionHandler{engine: e}
}

func (h *SessionHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.engine.Snapshot())
}

// Events streams a snapshot after every state change as server-sent events.
func (h *SessionHandler) Events(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	updates, cancel := h.engine.Subscribe()
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		ticker := time.NewTicker(keepAliveInterval)
		defer ticker.Stop()

		for {
			select {
			case snap, ok := <-updates:
				if !ok {
					return
				}
				data, err := json.Marshal(snap)
				if err != nil {
					slog.Error("failed to encode snapshot", "component", "bridge", "error", err)
					return
				}
				fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data)
			case <-ticker.C:
				fmt.Fprint(w, ": keep-alive\n\n")
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	})
	return nil
}

func (h *SessionHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	user, err := h.engine.CreateUser(req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *SessionHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	user, err := h.engine.UpdateProfileName(req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// SendMessage returns once the user message is recorded; the reply arrives
// through /events or /state.
func (h *SessionHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	h.engine.SendMessage(req.Text)
	return c.Status(fiber.StatusAccepted).JSON(dto.AcceptedResponse{Accepted: true})
}

func (h *SessionHandler) LogMood(c *fiber.Ctx) error {
	var req dto.LogMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	entry, err := h.engine.LogMood(req.Mood)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *SessionHandler) MoodSummary(c *fiber.Ctx) error {
	return c.JSON(h.engine.MoodSummary())
}

func (h *SessionHandler) AddGoal(c *fiber.Ctx) error {
	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	goal, err := h.engine.AddGoal(models.Goal{
		Title:       req.Title,
		Category:    req.Category,
		TargetDate:  req.TargetDate,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (h *SessionHandler) UpdateGoal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid goal ID")
	}
	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	goal := models.Goal{
		ID:          id,
		Title:       req.Title,
		Category:    req.Category,
		TargetDate:  req.TargetDate,
		IsCompleted: req.IsCompleted,
	}
	updated, err := h.engine.UpdateGoal(goal)
	if err != nil {
		return respondError(c, err)
	}
	if !updated {
		return notFound(c, "Goal not found")
	}
	return c.JSON(findGoal(h.engine.Snapshot().Goals, id))
}

func (h *SessionHandler) DeleteGoal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid goal ID")
	}
	if !h.engine.DeleteGoal(id) {
		return notFound(c, "Goal not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SessionHandler) ToggleGoal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid goal ID")
	}
	goal, ok := h.engine.ToggleGoalCompletion(id)
	if !ok {
		return notFound(c, "Goal not found")
	}
	return c.JSON(goal)
}

func (h *SessionHandler) GoalSuggestions(c *fiber.Ctx) error {
	return c.JSON(h.engine.GoalSuggestions())
}

func (h *SessionHandler) RefreshAffirmation(c *fiber.Ctx) error {
	h.engine.RefreshDailyAffirmation()
	return c.Status(fiber.StatusAccepted).JSON(dto.AcceptedResponse{Accepted: true})
}

func (h *SessionHandler) RefreshInspirations(c *fiber.Ctx) error {
	h.engine.FetchInspirations()
	return c.Status(fiber.StatusAccepted).JSON(dto.AcceptedResponse{Accepted: true})
}

func (h *SessionHandler) ToggleFavorite(c *fiber.Ctx) error {
	var req dto.FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Text == "" {
		return badRequest(c, "text is required")
	}
	favorited := h.engine.ToggleFavoriteInspiration(req.Text)
	return c.JSON(dto.FavoriteResponse{Text: req.Text, Favorited: favorited})
}

func (h *SessionHandler) Tips(c *fiber.Ctx) error {
	var category *models.TipCategory
	if raw := c.Query("category"); raw != "" {
		tc := models.TipCategory(raw)
		category = &tc
	}
	tips, err := h.engine.FilteredTips(category)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tips)
}

func (h *SessionHandler) Meditations(c *fiber.Ctx) error {
	var kind *models.MeditationType
	if raw := c.Query("type"); raw != "" {
		mt := models.MeditationType(raw)
		kind = &mt
	}
	meditations, err := h.engine.Meditations(kind)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(meditations)
}

func (h *SessionHandler) Recommendation(c *fiber.Ctx) error {
	mood := models.Mood(c.Query("mood"))
	if mood == "" {
		history := h.engine.Snapshot().MoodHistory
		if len(history) == 0 {
			return badRequest(c, "mood is required when no mood has been logged")
		}
		mood = history[0].Mood
	}
	text, err := h.engine.RecommendationFor(mood)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RecommendationResponse{Mood: mood, Recommendation: text})
}

func (h *SessionHandler) UpdateSettings(c *fiber.Ctx) error {
	var patch models.SettingsPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	settings, err := h.engine.UpdateSettings(patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

func (h *SessionHandler) Subscription(c *fiber.Ctx) error {
	return c.JSON(h.subscriptionResponse())
}

func (h *SessionHandler) StartTrial(c *fiber.Ctx) error {
	started := h.engine.StartFreeTrial()
	status := fiber.StatusOK
	if !started {
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(dto.TrialResponse{Started: started, SubscriptionResponse: h.subscriptionResponse()})
}

func (h *SessionHandler) UpdatePremium(c *fiber.Ctx) error {
	var req dto.PremiumRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	h.engine.UpdatePremiumStatus(req.IsPremium)
	return c.JSON(h.subscriptionResponse())
}

func (h *SessionHandler) subscriptionResponse() dto.SubscriptionResponse {
	snap := h.engine.Snapshot()
	return dto.SubscriptionResponse{
		Status:             snap.SubscriptionStatus,
		EffectivelyPremium: snap.SubscriptionStatus != models.SubscriptionNone,
		TrialEndDate:       snap.Subscription.TrialEndDate,
	}
}

func findGoal(goals []models.Goal, id uuid.UUID) models.Goal {
	for _, g := range goals {
		if g.ID == id {
			return g
		}
	}
	return models.Goal{}
}
