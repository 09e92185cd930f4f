package testutil

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"toolhub/internal/config"
	"toolhub/internal/repository"
)

// SetupTestDB connects to the database named by DATABASE_URI in the env file
// and drops it so every run starts empty. Tests against a live store are
// skipped when it returns an error.
func SetupTestDB(envRelPath string) (*repository.Database, error) {
	_ = godotenv.Load(envRelPath)
	cfg := config.Load()

	if cfg.Database.URI == "" {
		return nil, errors.New("DATABASE_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := repository.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to test db: %w", err)
	}

	if err := db.DB().Drop(ctx); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("drop test db: %w", err)
	}

	return db, nil
}

func RequireDB(t *testing.T, db *repository.Database) {
	t.Helper()
	if db == nil {
		t.Skip("Test database not initialized")
	}
}
