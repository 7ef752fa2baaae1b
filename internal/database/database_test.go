package database

import (
	"path/filepath"
	"testing"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/config"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
)

func TestOpen_SQLiteMigratesTables(t *testing.T) {
	cfg := &config.Config{
		StoreDriver: "sqlite",
		StorePath:   filepath.Join(t.TempDir(), "nested", "wellness-test.db"),
	}

	db, err := Open(cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := Ping(db); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if !db.Migrator().HasTable(&models.StateSlice{}) {
		t.Fatal("expected state_slices table")
	}
	if !db.Migrator().HasTable(&models.SystemLog{}) {
		t.Fatal("expected system_logs table")
	}
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	if _, err := Open(&config.Config{StoreDriver: "mongo"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestOpen_PostgresRequiresDSN(t *testing.T) {
	if _, err := Open(&config.Config{StoreDriver: "postgres"}); err == nil {
		t.Fatal("expected error when STORE_DSN is missing")
	}
}
