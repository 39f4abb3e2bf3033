package storage

import (
	"context"
	"sort"
	"time"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
)

// Turn is one saved chat message
type Turn struct {
	ID        int64
	Role      string
	Message   string
	CreatedAt string
}

// SaveMessage appends one message to the conversation history
func (s *Store) SaveMessage(ctx context.Context, role, message string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO conversations (role, message, created_at) VALUES (?, ?, ?)",
		role, message, time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrTypeDatabase, "failed to save conversation message")
	}

	return nil
}

// RecentMessages returns the last n turns in chronological order, oldest
// first, so they can be replayed directly as model context.
func (s *Store) RecentMessages(ctx context.Context, n int) ([]Turn, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, role, message, created_at FROM conversations ORDER BY id DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeDatabase, "failed to load conversation history")
	}

	defer func() { _ = rows.Close() }()

	var turns []Turn

	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.Role, &t.Message, &t.CreatedAt); err != nil {
			return nil, errors.Wrap(err, errors.ErrTypeDatabase, "failed to scan conversation row")
		}

		turns = append(turns, t)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeDatabase, "conversation history iteration failed")
	}

	sort.Slice(turns, func(i, j int) bool { return turns[i].ID < turns[j].ID })

	return turns, nil
}

// HistoryCount returns the total number of saved turns
func (s *Store) HistoryCount(ctx context.Context) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM conversations").Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrTypeDatabase, "failed to count conversation history")
	}

	return count, nil
}

// ClearHistory deletes all saved turns
func (s *Store) ClearHistory(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM conversations")
	if err != nil {
		return errors.Wrap(err, errors.ErrTypeDatabase, "failed to clear conversation history")
	}

	return nil
}
