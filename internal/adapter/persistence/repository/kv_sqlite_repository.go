package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"plan_appetit/internal/usecase/interfaces"
)

// KVSQLiteRepository persists entries in the kv_entries table created by
// database.OpenSQLite.
type KVSQLiteRepository struct {
	db        *sql.DB
	namespace string
}

var _ interfaces.IKeyValueStore = (*KVSQLiteRepository)(nil)

func NewKVSQLiteRepository(db *sql.DB, namespace string) *KVSQLiteRepository {
	return &KVSQLiteRepository{db: db, namespace: namespace}
}

func (r *KVSQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv_entries WHERE key = ?`,
		namespacedKey(r.namespace, key),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select key %s: %w", key, err)
	}
	return value, true, nil
}

func (r *KVSQLiteRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		namespacedKey(r.namespace, key), value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert key %s: %w", key, err)
	}
	return nil
}
