package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/wifi-triage/internal/common"
	"github.com/Veraticus/wifi-triage/internal/config"
	"github.com/Veraticus/wifi-triage/internal/session"
	"github.com/Veraticus/wifi-triage/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initStorage opens the session database with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(settings.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func closeStorage(st *storage.SQLiteStorage) {
	if err := st.Close(); err != nil {
		slog.Error("failed to close storage", "error", err)
	}
}

// loadRecordStore rebuilds the record store from the stored session.
func loadRecordStore(ctx context.Context, st *storage.SQLiteStorage) (*session.Store, error) {
	sess, err := st.LoadSession(ctx)
	if errors.Is(err, common.ErrNoSession) {
		return nil, common.NewUserError("no analysis loaded; run 'triage load <results.json>' first", err)
	}
	if err != nil {
		return nil, err
	}

	store := session.NewStore()
	store.Restore(sess.Records, session.Stats{Total: sess.Total, Flagged: sess.Flagged})
	return store, nil
}

// resolvePatterns picks the organization pattern text: an explicit --org
// flag first, then the configured patterns, then the last saved text.
func resolvePatterns(cmd *cobra.Command, st *storage.SQLiteStorage) (string, error) {
	if cmd.Flags().Changed("org") {
		return cmd.Flags().GetString("org")
	}

	if configured := viper.GetString(config.KeyOrganizationPattern); configured != "" {
		return configured, nil
	}

	saved, err := st.LoadPatterns(cmd.Context())
	if errors.Is(err, common.ErrNotFound) {
		return "", nil
	}
	return saved, err
}

func writeOutputFile(path, text string) error {
	if err := os.WriteFile(config.ExpandPath(path), []byte(text), 0o600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
