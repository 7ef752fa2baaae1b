// Package engine owns the session state of the wellness app: profile, chat
// transcript, mood window, goals, subscription, settings and daily content.
//
// Every mutation runs under a single lock, is written through to the slice
// store and is then published to subscribers as an immutable Snapshot.
// Remote calls run on background goroutines and fall back to local content
// when the service fails.
package engine

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/remote"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/storage"
)

// SliceStore persists whole state slices by key.
type SliceStore interface {
	Save(ctx context.Context, key storage.Key, value any) error
	Load(ctx context.Context, key storage.Key, dest any) (bool, error)
}

// ContentClient reaches the remote chat and affirmations service.
type ContentClient interface {
	Complete(ctx context.Context, messages []remote.Message) (string, error)
	FetchAffirmations(ctx context.Context) ([]remote.Affirmation, error)
}

const (
	DefaultPersona = "You are a warm, supportive wellness assistant. Help the user with their mental and emotional well-being. " +
		"Offer practical suggestions on meditation, mindfulness, positive thinking, sleep and stress management. " +
		"Keep answers short and encouraging. You are not a doctor; suggest professional help when appropriate."

	// FallbackReply is appended when a chat completion cannot be obtained.
	FallbackReply = "I'm sorry, I couldn't respond right now. Please try again in a moment."

	DefaultHistoryWindow  = 20
	DefaultTrialDuration  = 72 * time.Hour
	DefaultRequestTimeout = 30 * time.Second

	// MoodWindow is the number of days kept in the mood history.
	MoodWindow = 7
)

type Options struct {
	Now            func() time.Time
	Rand           *rand.Rand
	Logger         *slog.Logger
	Persona        string
	HistoryWindow  int
	TrialDuration  time.Duration
	RequestTimeout time.Duration
}

// Snapshot is a deep copy of the engine state at one point in time.
type Snapshot struct {
	User               *models.UserProfile       `json:"user"`
	Messages           []models.ChatMessage      `json:"messages"`
	MoodHistory        []models.MoodEntry        `json:"moodHistory"`
	Goals              []models.Goal             `json:"goals"`
	Subscription       models.SubscriptionState  `json:"subscription"`
	SubscriptionStatus models.SubscriptionStatus `json:"subscriptionStatus"`
	TrialStarted       bool                      `json:"trialStarted"`
	Settings           models.Settings           `json:"settings"`
	Content            models.DailyContent       `json:"content"`
	PendingReplies     int                       `json:"pendingReplies"`
}

type Engine struct {
	store  SliceStore
	client ContentClient
	logger *slog.Logger

	now            func() time.Time
	rng            *rand.Rand
	persona        string
	historyWindow  int
	trialDuration  time.Duration
	requestTimeout time.Duration

	mu           sync.Mutex
	user         *models.UserProfile
	messages     []models.ChatMessage
	moods        []models.MoodEntry
	goals        []models.Goal
	subscription models.SubscriptionState
	trialStarted bool
	settings     models.Settings
	content      models.DailyContent
	pending      int

	subscribers map[int]chan Snapshot
	nextSubID   int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool
}

func New(store SliceStore, client ContentClient, opts Options) *Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Persona == "" {
		opts.Persona = DefaultPersona
	}
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = DefaultHistoryWindow
	}
	if opts.TrialDuration <= 0 {
		opts.TrialDuration = DefaultTrialDuration
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		store:          store,
		client:         client,
		logger:         opts.Logger.With("component", "engine"),
		now:            opts.Now,
		rng:            opts.Rand,
		persona:        opts.Persona,
		historyWindow:  opts.HistoryWindow,
		trialDuration:  opts.TrialDuration,
		requestTimeout: opts.RequestTimeout,
		settings:       models.DefaultSettings(),
		subscribers:    make(map[int]chan Snapshot),
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Initialize loads every persisted slice. Missing or unreadable slices fall
// back to their defaults; the error is logged and never returned.
func (e *Engine) Initialize(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var user models.UserProfile
	if e.load(ctx, storage.KeyUser, &user) {
		e.user = &user
	}

	var messages []models.ChatMessage
	if e.load(ctx, storage.KeyMessages, &messages) {
		e.messages = messages
	}

	var moods []models.MoodEntry
	if e.load(ctx, storage.KeyMoodHistory, &moods) {
		e.moods = normalizeMoods(moods, e.now().Location())
	}

	var goals []models.Goal
	if e.load(ctx, storage.KeyGoals, &goals) {
		e.goals = goals
	}

	settings := models.DefaultSettings()
	if e.load(ctx, storage.KeySettings, &settings) {
		e.settings = settings
	}

	var premium bool
	if e.load(ctx, storage.KeyPremiumStatus, &premium) {
		e.subscription.IsPremium = premium
	}
	var trialEnd *time.Time
	if e.load(ctx, storage.KeyTrialEndDate, &trialEnd) {
		e.subscription.TrialEndDate = trialEnd
	}
	var trialStarted bool
	if e.load(ctx, storage.KeyTrialStarted, &trialStarted) {
		e.trialStarted = trialStarted
	}
	if e.subscription.TrialEndDate != nil {
		e.trialStarted = true
	}

	var favorites []string
	if e.load(ctx, storage.KeyFavoritedInspirations, &favorites) {
		e.content.Favorites = favorites
	}

	e.seedContentLocked()

	e.logger.Info("session initialized",
		"has_user", e.user != nil,
		"messages", len(e.messages),
		"moods", len(e.moods),
		"goals", len(e.goals),
	)
	e.publishLocked()
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Subscribe returns a channel that holds the latest snapshot. The current
// state is delivered immediately; a slow reader only ever sees the newest
// state. The returned func unsubscribes and closes the channel.
func (e *Engine) Subscribe() (<-chan Snapshot, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ch := make(chan Snapshot, 1)
	if e.closed {
		close(ch)
		return ch, func() {}
	}
	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = ch
	ch <- e.snapshotLocked()

	return ch, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if sub, ok := e.subscribers[id]; ok {
			delete(e.subscribers, id)
			close(sub)
		}
	}
}

// Wait blocks until every in-flight remote request has been applied.
func (e *Engine) Wait() {
	e.wg.Wait()
}

// Close cancels in-flight remote requests, waits for them to settle and
// closes all subscriber channels. Requests cut short still apply their
// fallback before Close returns.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()

	e.cancel()
	e.wg.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()
	for id, ch := range e.subscribers {
		delete(e.subscribers, id)
		close(ch)
	}
}

// goLocked starts fn on a tracked goroutine. It reports false once the
// engine is closed. Callers must hold e.mu.
func (e *Engine) goLocked(fn func(ctx context.Context)) bool {
	if e.closed {
		return false
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		ctx, cancel := context.WithTimeout(e.ctx, e.requestTimeout)
		defer cancel()
		fn(ctx)
	}()
	return true
}

func (e *Engine) load(ctx context.Context, key storage.Key, dest any) bool {
	found, err := e.store.Load(ctx, key, dest)
	if err != nil {
		e.logger.Error("failed to load state slice, using default", "slice", string(key), "error", err)
		return false
	}
	return found
}

// persistLocked writes one slice. Failures are logged and dropped; the
// in-memory state stays authoritative for the session.
func (e *Engine) persistLocked(key storage.Key, value any) {
	if err := e.store.Save(context.Background(), key, value); err != nil {
		e.logger.Error("failed to persist state slice", "slice", string(key), "error", err)
	}
}

func (e *Engine) publishLocked() {
	if len(e.subscribers) == 0 {
		return
	}
	snap := e.snapshotLocked()
	for _, ch := range e.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	now := e.now()
	snap := Snapshot{
		Messages:           cloneSlice(e.messages),
		MoodHistory:        cloneSlice(e.moods),
		Goals:              make([]models.Goal, len(e.goals)),
		Subscription:       models.SubscriptionState{IsPremium: e.subscription.IsPremium, TrialEndDate: cloneTime(e.subscription.TrialEndDate)},
		SubscriptionStatus: e.subscription.Status(now),
		TrialStarted:       e.trialStarted,
		Settings:           e.settings,
		Content: models.DailyContent{
			DailyAffirmation: e.content.DailyAffirmation,
			Inspirations:     cloneSlice(e.content.Inspirations),
			Favorites:        cloneSlice(e.content.Favorites),
		},
		PendingReplies: e.pending,
	}
	if e.user != nil {
		user := *e.user
		snap.User = &user
	}
	for i, g := range e.goals {
		g.TargetDate = cloneTime(g.TargetDate)
		snap.Goals[i] = g
	}
	return snap
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
