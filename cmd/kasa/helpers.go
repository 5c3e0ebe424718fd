package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/kasaapp/kasa/internal/app"
	"github.com/kasaapp/kasa/internal/config"
	"github.com/kasaapp/kasa/internal/storage"
)

// initStore initializes the durable store with proper path expansion and
// runs migrations.
func initStore(ctx context.Context) (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDataPath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initApp opens the store and loads the application state. The returned
// cleanup closes the store.
func initApp(ctx context.Context) (*app.App, func(), error) {
	store, err := initStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	a, err := app.New(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	cleanup := func() { _ = store.Close() }
	return a, cleanup, nil
}
