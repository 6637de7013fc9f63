package store

import (
	"time"

	"github.com/pcarvalho/deskd/internal/bus"
	"github.com/pcarvalho/deskd/internal/cache"
	"go.uber.org/zap"
)

// MarkStale flags a cache key as stale. Returns true when the key
// transitioned from fresh to stale, false when it was already stale
// (so repeated invalidations of the same key collapse into one refetch).
func (db *DB) MarkStale(key cache.Key) (bool, error) {
	now := time.Now().UnixMilli()
	res, err := db.Exec(`
		INSERT INTO cache_state (key, stale, updated_at) VALUES (?, 1, ?)
		ON CONFLICT(key) DO UPDATE SET stale = 1, updated_at = excluded.updated_at
		WHERE cache_state.stale = 0`,
		string(key), now)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ClearStale marks a key fresh after a successful refetch.
func (db *DB) ClearStale(key cache.Key) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO cache_state (key, stale, updated_at) VALUES (?, 0, ?)
		ON CONFLICT(key) DO UPDATE SET stale = 0, updated_at = excluded.updated_at`,
		string(key), now)
	return err
}

// StaleKeys returns every key currently marked stale, oldest first.
func (db *DB) StaleKeys() ([]cache.Key, error) {
	rows, err := db.Query(`SELECT key FROM cache_state WHERE stale = 1 ORDER BY updated_at ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []cache.Key
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, cache.Key(k))
	}
	return keys, rows.Err()
}

// Invalidator is the SQLite-backed cache.Invalidator: it marks keys
// stale and announces fresh-to-stale transitions on the bus so the
// refresh worker and watch streams pick them up.
type Invalidator struct {
	db     *DB
	bus    *bus.Bus
	logger *zap.Logger
}

// NewInvalidator creates a store-backed invalidator.
func NewInvalidator(db *DB, b *bus.Bus, logger *zap.Logger) *Invalidator {
	return &Invalidator{db: db, bus: b, logger: logger}
}

// Invalidate implements cache.Invalidator. Fire-and-forget: failures
// are logged, never surfaced, and re-invalidating a stale key is a no-op.
func (i *Invalidator) Invalidate(key cache.Key) {
	changed, err := i.db.MarkStale(key)
	if err != nil {
		if i.logger != nil {
			i.logger.Error("failed to mark cache key stale", zap.Error(err), zap.String("key", string(key)))
		}
		return
	}
	if changed && i.bus != nil {
		i.bus.Emit(bus.KindInvalidated, string(key))
	}
}
