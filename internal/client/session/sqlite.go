package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/asaraswat/ecotrackify/internal/client/models"
	"github.com/asaraswat/ecotrackify/internal/dbx"
)

// Keys in the metadata table. The token is stored as plain text, an
// inherited simplification of the original client.
const (
	keyAuthToken       = "authToken"
	keyCarbonFootprint = "carbonFootprint"
)

// SQLiteStore implements Store over a metadata(key,value) table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a Store bound to the given database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// The row helpers take the handle explicitly so multi-key writes can run
// on a transaction instead of the pool.

func (s *SQLiteStore) get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ctx context.Context, db dbx.DBTX, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, s.db, keyAuthToken, []byte(token))
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	value, err := s.get(ctx, s.db, keyAuthToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *SQLiteStore) ClearToken(ctx context.Context) error {
	return s.delete(ctx, s.db, keyAuthToken)
}

// StartSession stores a freshly issued token and drops any breakdown cached
// by a previous session, in a single transaction. A failure between the two
// writes must not leave another account's figures under the new token.
func (s *SQLiteStore) StartSession(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyAuthToken, []byte(token)); err != nil {
			return err
		}
		return s.delete(ctx, tx, keyCarbonFootprint)
	})
}

func (s *SQLiteStore) CacheFootprint(ctx context.Context, b *models.Breakdown) error {
	encoded, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode breakdown: %w", err)
	}
	return s.set(ctx, s.db, keyCarbonFootprint, encoded)
}

func (s *SQLiteStore) CachedFootprint(ctx context.Context) (*models.Breakdown, error) {
	value, err := s.get(ctx, s.db, keyCarbonFootprint)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	var b models.Breakdown
	if err := json.Unmarshal(value, &b); err != nil {
		return nil, fmt.Errorf("failed to decode cached breakdown: %w", err)
	}
	return &b, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata`)
	if err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}
