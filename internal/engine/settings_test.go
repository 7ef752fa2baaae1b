package engine

import (
	"errors"
	"testing"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
)

func TestUpdateSettings_MergesPatch(t *testing.T) {
	e := newTestEngine(t, newMemStore(), &stubClient{}, newFakeClock())

	dark := true
	reminder := "21:30"
	got, err := e.UpdateSettings(models.SettingsPatch{DarkModeEnabled: &dark, ReminderTime: &reminder})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}

	want := models.DefaultSettings()
	want.DarkModeEnabled = true
	want.ReminderTime = "21:30"
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if e.Snapshot().Settings != want {
		t.Fatal("expected snapshot to carry the merged settings")
	}
}

func TestUpdateSettings_RejectsInvalidValues(t *testing.T) {
	e := newTestEngine(t, newMemStore(), &stubClient{}, newFakeClock())

	badTime := "25:99"
	blankLang := "  "
	off := false
	cases := []models.SettingsPatch{
		{ReminderTime: &badTime},
		{LanguageCode: &blankLang},
		{NotificationsEnabled: &off, ReminderTime: &badTime},
	}
	for _, patch := range cases {
		_, err := e.UpdateSettings(patch)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", patch, err)
		}
	}
	if e.Snapshot().Settings != models.DefaultSettings() {
		t.Fatalf("expected settings unchanged, got %+v", e.Snapshot().Settings)
	}
}
