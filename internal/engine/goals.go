package engine

import (
	"slices"
	"strings"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/storage"
	"github.com/google/uuid"
)

func validateGoal(goal models.Goal) (models.Goal, error) {
	goal.Title = strings.TrimSpace(goal.Title)
	if goal.Title == "" {
		return goal, invalid("title", "must not be empty")
	}
	if !goal.Category.Valid() {
		return goal, invalid("category", "unknown category "+string(goal.Category))
	}
	return goal, nil
}

// AddGoal inserts goal, or replaces the goal with the same id. A zero id or
// creation time is filled in.
func (e *Engine) AddGoal(goal models.Goal) (models.Goal, error) {
	goal, err := validateGoal(goal)
	if err != nil {
		return models.Goal{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = e.now()
	}
	goal.TargetDate = cloneTime(goal.TargetDate)

	if idx := e.goalIndexLocked(goal.ID); idx >= 0 {
		e.goals[idx] = goal
	} else {
		e.goals = append(e.goals, goal)
	}

	e.persistLocked(storage.KeyGoals, e.goals)
	e.publishLocked()
	goal.TargetDate = cloneTime(goal.TargetDate)
	return goal, nil
}

// UpdateGoal replaces the goal with the same id. It reports false and changes
// nothing when no such goal exists.
func (e *Engine) UpdateGoal(goal models.Goal) (bool, error) {
	goal, err := validateGoal(goal)
	if err != nil {
		return false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.goalIndexLocked(goal.ID)
	if idx < 0 {
		return false, nil
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = e.goals[idx].CreatedAt
	}
	goal.TargetDate = cloneTime(goal.TargetDate)
	e.goals[idx] = goal

	e.persistLocked(storage.KeyGoals, e.goals)
	e.publishLocked()
	return true, nil
}

func (e *Engine) DeleteGoal(id uuid.UUID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.goalIndexLocked(id)
	if idx < 0 {
		return false
	}
	e.goals = slices.Delete(e.goals, idx, idx+1)

	e.persistLocked(storage.KeyGoals, e.goals)
	e.publishLocked()
	return true
}

// ToggleGoalCompletion flips the completion flag and returns the updated goal.
func (e *Engine) ToggleGoalCompletion(id uuid.UUID) (models.Goal, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.goalIndexLocked(id)
	if idx < 0 {
		return models.Goal{}, false
	}
	e.goals[idx].IsCompleted = !e.goals[idx].IsCompleted
	goal := e.goals[idx]
	goal.TargetDate = cloneTime(goal.TargetDate)

	e.persistLocked(storage.KeyGoals, e.goals)
	e.publishLocked()
	return goal, true
}

func (e *Engine) goalIndexLocked(id uuid.UUID) int {
	return slices.IndexFunc(e.goals, func(g models.Goal) bool { return g.ID == id })
}
