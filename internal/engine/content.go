package engine

import (
	"context"
	"math/rand"
	"slices"
	"strings"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/catalog"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/remote"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/storage"
)

// RefreshDailyAffirmation picks a new daily affirmation in the background,
// from the remote list or the bundled catalog, and rebuilds the pool around it.
func (e *Engine) RefreshDailyAffirmation() {
	e.fetchContent(true)
}

// FetchInspirations rebuilds the inspiration pool in the background, keeping
// the current daily affirmation pinned first.
func (e *Engine) FetchInspirations() {
	e.fetchContent(false)
}

func (e *Engine) fetchContent(refreshDaily bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	started := e.goLocked(func(ctx context.Context) {
		items := e.remoteAffirmations(ctx)

		e.mu.Lock()
		defer e.mu.Unlock()
		e.applyContentLocked(items, refreshDaily)
		e.publishLocked()
	})
	if !started {
		e.applyContentLocked(catalog.Affirmations(), refreshDaily)
		e.publishLocked()
	}
}

// remoteAffirmations returns the remote texts, or the catalog when the call
// fails or yields nothing.
func (e *Engine) remoteAffirmations(ctx context.Context) []string {
	items, err := e.client.FetchAffirmations(ctx)
	if err != nil {
		reason, _ := remote.ReasonOf(err)
		e.logger.Warn("affirmations unavailable, using catalog", "reason", string(reason), "error", err)
		return catalog.Affirmations()
	}

	texts := make([]string, 0, len(items))
	for _, item := range items {
		texts = append(texts, strings.TrimSpace(item.Content))
	}
	if len(texts) == 0 {
		e.logger.Info("affirmations endpoint returned no items, using catalog")
		return catalog.Affirmations()
	}
	return texts
}

func (e *Engine) applyContentLocked(items []string, refreshDaily bool) {
	daily := e.content.DailyAffirmation
	if refreshDaily || daily == "" {
		daily = items[e.rng.Intn(len(items))]
	}
	e.content.DailyAffirmation = daily
	e.content.Inspirations = buildPool(items, daily, e.rng)
}

func (e *Engine) seedContentLocked() {
	e.applyContentLocked(catalog.Affirmations(), true)
}

// buildPool shuffles items and moves pinned to the front, inserting it when
// it is not among them. Duplicate texts are collapsed.
func buildPool(items []string, pinned string, rng *rand.Rand) []string {
	pool := make([]string, 0, len(items)+1)
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		pool = append(pool, item)
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	if pinned == "" {
		return pool
	}
	if idx := slices.Index(pool, pinned); idx >= 0 {
		pool = slices.Delete(pool, idx, idx+1)
	}
	return slices.Insert(pool, 0, pinned)
}

// ToggleFavoriteInspiration adds or removes text from the favorites and
// reports whether it is now a favorite.
func (e *Engine) ToggleFavoriteInspiration(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	favorited := true
	if idx := slices.Index(e.content.Favorites, text); idx >= 0 {
		e.content.Favorites = slices.Delete(e.content.Favorites, idx, idx+1)
		favorited = false
	} else {
		e.content.Favorites = append(e.content.Favorites, text)
	}

	e.persistLocked(storage.KeyFavoritedInspirations, e.content.Favorites)
	e.publishLocked()
	return favorited
}
