package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/wifi-triage/internal/common"
	"github.com/Veraticus/wifi-triage/internal/model"
	"github.com/google/uuid"
)

// patternsKey is the settings row holding the last organization pattern text.
const patternsKey = "organization.patterns"

// Session is a stored snapshot of the record store.
type Session struct {
	CreatedAt time.Time
	ID        string
	Records   []model.NetworkRecord
	Total     int
	Flagged   int
}

// SaveSession replaces any stored session with records and returns the new session ID.
func (s *SQLiteStorage) SaveSession(ctx context.Context, records []model.NetworkRecord, total, flagged int) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return "", fmt.Errorf("failed to clear records: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return "", fmt.Errorf("failed to clear sessions: %w", err)
	}

	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (id, total, flagged, created_at) VALUES (?, ?, ?, ?)`,
		id, total, flagged, time.Now().UTC(),
	); err != nil {
		return "", fmt.Errorf("failed to insert session: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (session_id, position, ssid, bssid, vendor, vendor_source, flagged)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare record insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, id, i, r.SSID, r.BSSID, r.Vendor, r.VendorSource, r.Flagged); err != nil {
			return "", fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit session: %w", err)
	}

	return id, nil
}

// LoadSession returns the stored session, or common.ErrNoSession if there is none.
func (s *SQLiteStorage) LoadSession(ctx context.Context) (*Session, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var sess Session
	err := s.db.QueryRowContext(ctx,
		`SELECT id, total, flagged, created_at FROM sessions ORDER BY created_at DESC LIMIT 1`,
	).Scan(&sess.ID, &sess.Total, &sess.Flagged, &sess.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT ssid, bssid, vendor, vendor_source, flagged
		 FROM records WHERE session_id = ? ORDER BY position`, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var r model.NetworkRecord
		if err := rows.Scan(&r.SSID, &r.BSSID, &r.Vendor, &r.VendorSource, &r.Flagged); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		sess.Records = append(sess.Records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	return &sess, nil
}

// SavePatterns stores the organization pattern text used by the last run.
func (s *SQLiteStorage) SavePatterns(ctx context.Context, text string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		patternsKey, text, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save patterns: %w", err)
	}
	return nil
}

// LoadPatterns returns the last stored pattern text, or common.ErrNotFound.
func (s *SQLiteStorage) LoadPatterns(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	var text string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, patternsKey).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", common.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load patterns: %w", err)
	}
	return text, nil
}
