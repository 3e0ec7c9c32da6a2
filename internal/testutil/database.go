// Package testutil provides shared helpers for tests that need a migrated
// session database or realistic network records.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/wifi-triage/internal/model"
	"github.com/Veraticus/wifi-triage/internal/storage"
	"github.com/Veraticus/wifi-triage/internal/testutil/records"
)

// TestDB is a migrated in-memory session database.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a migrated in-memory database, closed when the test ends.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	db.MustSaveSession(records.NewBuilder(t).WithSurvey().Build())
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// MustSaveSession stores recs as the current session or fails the test.
func (db *TestDB) MustSaveSession(recs records.Records) string {
	db.t.Helper()

	id, err := db.Storage.SaveSession(context.Background(), recs.Network(), len(recs), recs.FlaggedCount())
	if err != nil {
		db.t.Fatalf("failed to save session: %v", err)
	}
	return id
}

// MustLoadRecords returns the stored session records or fails the test.
func (db *TestDB) MustLoadRecords() []model.NetworkRecord {
	db.t.Helper()

	sess, err := db.Storage.LoadSession(context.Background())
	if err != nil {
		db.t.Fatalf("failed to load session: %v", err)
	}
	return sess.Records
}
