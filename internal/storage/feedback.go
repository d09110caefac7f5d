package storage

import (
	"context"
	"fmt"

	"github.com/docuflow/docuflow/internal/model"
)

// AppendFeedback adds a correction to the feedback log. Inserts are
// append-only and serialized by the single-connection pool, so concurrent
// submissions never interleave.
func (s *SQLiteStore) AppendFeedback(ctx context.Context, label model.Category, text string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if !label.Valid() {
		return fmt.Errorf("%w: %q", model.ErrUnknownCategory, label)
	}
	if err := validateString(text, "text"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (label, text) VALUES (?, ?)`, string(label), text)
	if err != nil {
		return fmt.Errorf("failed to append feedback: %w", err)
	}
	return nil
}

// ListFeedback returns all feedback entries in insertion order. The result
// doubles as a retraining corpus supplement.
func (s *SQLiteStore) ListFeedback(ctx context.Context) ([]model.Feedback, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, text, created_at FROM feedback ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.Feedback
	for rows.Next() {
		var entry model.Feedback
		var label string
		if err := rows.Scan(&entry.ID, &label, &entry.Text, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		entry.Label = model.Category(label)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback rows: %w", err)
	}
	return entries, nil
}
