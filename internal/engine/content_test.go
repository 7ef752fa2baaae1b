package engine

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/catalog"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/remote"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/storage"
	"github.com/google/go-cmp/cmp"
)

func remoteItems(texts ...string) func(context.Context) ([]remote.Affirmation, error) {
	return func(context.Context) ([]remote.Affirmation, error) {
		items := make([]remote.Affirmation, 0, len(texts))
		for i, text := range texts {
			items = append(items, remote.Affirmation{ID: string(rune('a' + i)), Content: text})
		}
		return items, nil
	}
}

func TestInitialize_SeedsContentFromCatalog(t *testing.T) {
	e := newTestEngine(t, newMemStore(), &stubClient{}, newFakeClock())

	content := e.Snapshot().Content
	if !slices.Contains(catalog.Affirmations(), content.DailyAffirmation) {
		t.Fatalf("expected daily affirmation from catalog, got %q", content.DailyAffirmation)
	}
	if content.Inspirations[0] != content.DailyAffirmation {
		t.Fatalf("expected daily affirmation pinned first, got %q", content.Inspirations[0])
	}
	if diff := cmp.Diff(sortedCopy(catalog.Affirmations()), sortedCopy(content.Inspirations)); diff != "" {
		t.Fatalf("pool differs from catalog (-catalog +pool):\n%s", diff)
	}
}

func TestFetchInspirations_FailureFallsBackToCatalog(t *testing.T) {
	client := &stubClient{
		affirmations: func(context.Context) ([]remote.Affirmation, error) {
			return nil, &remote.Failure{Reason: remote.ReasonTimeout}
		},
	}
	e := newTestEngine(t, newMemStore(), client, newFakeClock())
	daily := e.Snapshot().Content.DailyAffirmation

	e.FetchInspirations()
	e.Wait()

	content := e.Snapshot().Content
	if len(content.Inspirations) == 0 {
		t.Fatal("expected non-empty pool")
	}
	if content.DailyAffirmation != daily || content.Inspirations[0] != daily {
		t.Fatalf("expected %q pinned first, got %q", daily, content.Inspirations[0])
	}
	if diff := cmp.Diff(sortedCopy(catalog.Affirmations()), sortedCopy(content.Inspirations)); diff != "" {
		t.Fatalf("pool differs from catalog (-catalog +pool):\n%s", diff)
	}
}

func TestFetchInspirations_EmptyResultFallsBackToCatalog(t *testing.T) {
	client := &stubClient{affirmations: remoteItems()}
	e := newTestEngine(t, newMemStore(), client, newFakeClock())

	e.FetchInspirations()
	e.Wait()

	if got := len(e.Snapshot().Content.Inspirations); got != len(catalog.Affirmations()) {
		t.Fatalf("expected catalog-sized pool, got %d", got)
	}
}

func TestFetchInspirations_UsesRemoteItemsAndKeepsDailyPinned(t *testing.T) {
	client := &stubClient{affirmations: remoteItems("I am calm.", "I am focused.", "I am rested.")}
	e := newTestEngine(t, newMemStore(), client, newFakeClock())
	daily := e.Snapshot().Content.DailyAffirmation

	e.FetchInspirations()
	e.Wait()

	pool := e.Snapshot().Content.Inspirations
	if len(pool) != 4 || pool[0] != daily {
		t.Fatalf("expected daily pinned ahead of 3 remote items, got %v", pool)
	}
	want := sortedCopy([]string{"I am calm.", "I am focused.", "I am rested."})
	if diff := cmp.Diff(want, sortedCopy(pool[1:])); diff != "" {
		t.Fatalf("unexpected remote pool (-want +got):\n%s", diff)
	}
}

func TestRefreshDailyAffirmation_PicksFromRemote(t *testing.T) {
	texts := []string{"I am calm.", "I am focused.", "I am rested."}
	client := &stubClient{affirmations: remoteItems(texts...)}
	e := newTestEngine(t, newMemStore(), client, newFakeClock())

	e.RefreshDailyAffirmation()
	e.Wait()

	content := e.Snapshot().Content
	if !slices.Contains(texts, content.DailyAffirmation) {
		t.Fatalf("expected daily affirmation from remote items, got %q", content.DailyAffirmation)
	}
	if len(content.Inspirations) != 3 || content.Inspirations[0] != content.DailyAffirmation {
		t.Fatalf("expected pool of 3 with daily first, got %v", content.Inspirations)
	}
}

func TestRefreshDailyAffirmation_FailureUsesCatalog(t *testing.T) {
	e := newTestEngine(t, newMemStore(), &stubClient{}, newFakeClock())

	e.RefreshDailyAffirmation()
	e.Wait()

	content := e.Snapshot().Content
	if !slices.Contains(catalog.Affirmations(), content.DailyAffirmation) {
		t.Fatalf("expected catalog affirmation, got %q", content.DailyAffirmation)
	}
	if content.Inspirations[0] != content.DailyAffirmation {
		t.Fatal("expected daily affirmation pinned first")
	}
}

func TestBuildPool(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	pool := buildPool([]string{"a", "b", "c", "b"}, "c", rng)
	if pool[0] != "c" || len(pool) != 3 {
		t.Fatalf("expected c first in a pool of 3, got %v", pool)
	}

	pool = buildPool([]string{"a", "b"}, "z", rng)
	if pool[0] != "z" || len(pool) != 3 {
		t.Fatalf("expected missing pinned text inserted first, got %v", pool)
	}

	pool = buildPool([]string{"a", "b"}, "", rng)
	if len(pool) != 2 {
		t.Fatalf("expected no pinned entry, got %v", pool)
	}
}

func TestToggleFavoriteInspiration(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store, &stubClient{}, newFakeClock())

	if !e.ToggleFavoriteInspiration("I am at peace.") {
		t.Fatal("expected first toggle to favorite")
	}
	e.ToggleFavoriteInspiration("I love myself more each day.")
	if e.ToggleFavoriteInspiration("I am at peace.") {
		t.Fatal("expected second toggle to unfavorite")
	}
	e.ToggleFavoriteInspiration("I am at peace.")
	if e.ToggleFavoriteInspiration("  ") {
		t.Fatal("expected blank text to be ignored")
	}

	want := []string{"I love myself more each day.", "I am at peace."}
	if diff := cmp.Diff(want, e.Snapshot().Content.Favorites); diff != "" {
		t.Fatalf("favorites mismatch (-want +got):\n%s", diff)
	}

	var stored []string
	if _, err := store.Load(context.Background(), storage.KeyFavoritedInspirations, &stored); err != nil {
		t.Fatalf("load favorites: %v", err)
	}
	if diff := cmp.Diff(want, stored); diff != "" {
		t.Fatalf("stored favorites mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchInspirations_FallbackKeepsRemoteDailyPinned(t *testing.T) {
	failing := false
	client := &stubClient{
		affirmations: func(ctx context.Context) ([]remote.Affirmation, error) {
			if failing {
				return nil, &remote.Failure{Reason: remote.ReasonTimeout}
			}
			return remoteItems("I am calm.")(ctx)
		},
	}
	e := newTestEngine(t, newMemStore(), client, newFakeClock())

	e.RefreshDailyAffirmation()
	e.Wait()
	if got := e.Snapshot().Content.DailyAffirmation; got != "I am calm." {
		t.Fatalf("expected remote daily affirmation, got %q", got)
	}

	failing = true
	e.FetchInspirations()
	e.Wait()

	content := e.Snapshot().Content
	if content.DailyAffirmation != "I am calm." || content.Inspirations[0] != "I am calm." {
		t.Fatalf("expected remote daily affirmation pinned first, got %q", content.Inspirations[0])
	}
	want := append(catalog.Affirmations(), "I am calm.")
	if diff := cmp.Diff(sortedCopy(want), sortedCopy(content.Inspirations)); diff != "" {
		t.Fatalf("expected catalog plus the pinned daily (-want +got):\n%s", diff)
	}
}
