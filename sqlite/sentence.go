package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/arcigy/coldlead"
)

// Compile-time interface verification.
var _ coldlead.SentenceCache = (*SentenceCache)(nil)

// SentenceCache implements coldlead.SentenceCache using SQLite.
type SentenceCache struct {
	db *DB
}

// NewSentenceCache creates a new SentenceCache.
func NewSentenceCache(db *DB) *SentenceCache {
	return &SentenceCache{db: db}
}

// GetSentence returns the sentence stored under key.
func (c *SentenceCache) GetSentence(ctx context.Context, key string) (string, bool, error) {
	var sentence string
	err := c.db.QueryRowContext(ctx, "SELECT sentence FROM sentences WHERE key = ?", key).Scan(&sentence)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return sentence, true, nil
}

// PutSentence stores sentence under key.
func (c *SentenceCache) PutSentence(ctx context.Context, key, sentence string) error {
	if key == "" {
		return coldlead.Errorf(coldlead.EINVALID, "cache key required")
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO sentences (key, sentence, created_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET sentence = excluded.sentence, created_at = excluded.created_at
	`, key, sentence, formatTime(time.Now()))
	return err
}
