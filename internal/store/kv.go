package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// ErrNotFound is returned by Repo.Load when nothing is stored under a key.
var ErrNotFound = errors.New("store: no value for key")

// Key names one of the logical records persisted by the app.
type Key string

const (
	KeyLanguage     Key = "@app:language"
	KeyProgress     Key = "@app:progress"
	KeySettings     Key = "@app:settings"
	KeyAchievements Key = "@app:achievements"
	KeyTreeState    Key = "@app:tree_state"
)

// AllKeys returns every logical key in a stable order.
func AllKeys() []Key {
	return []Key{KeyLanguage, KeyProgress, KeySettings, KeyAchievements, KeyTreeState}
}

// Entry describes a stored record without its value.
type Entry struct {
	Key       Key
	Size      int
	UpdatedAt time.Time
}

// Repo stores one JSON document per key.
type Repo interface {
	// Save marshals v to JSON and stores it under key, replacing any
	// previous value.
	Save(ctx context.Context, key Key, v any) error

	// Load unmarshals the value stored under key into dst.
	// Returns ErrNotFound when the key is absent.
	Load(ctx context.Context, key Key, dst any) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key Key) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Entries lists the stored keys ordered by key.
	Entries(ctx context.Context) ([]Entry, error)
}

func (s *Store) Save(ctx context.Context, key Key, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	query, args := s.builder.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(string(key), string(b), time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, key Key, dst any) error {
	query, args := s.builder.Select("value").
		From(s.builder.Table(kvTable)).
		Where(entsql.EQ("key", string(key))).
		Query()

	var raw string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("load %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key Key) error {
	query, args := s.builder.Delete(kvTable).
		Where(entsql.EQ("key", string(key))).
		Query()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	query, args := s.builder.Delete(kvTable).Query()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	query, args := s.builder.Select("key", "value", "updated_at").
		From(s.builder.Table(kvTable)).
		OrderBy("key").
		Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			key       string
			value     string
			updatedAt int64
		)
		if err := rows.Scan(&key, &value, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, Entry{
			Key:       Key(key),
			Size:      len(value),
			UpdatedAt: time.UnixMilli(updatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}
