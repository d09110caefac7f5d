package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/docuflow/docuflow/internal/common"
)

// defaultModelName keys the single active model blob.
const defaultModelName = "classifier"

// SaveModel stores the trained-model blob, replacing any previous blob. The
// write happens in a single transaction, so a reader never observes a
// partially-written model.
func (s *SQLiteStore) SaveModel(ctx context.Context, blob []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(blob) == 0 {
		return fmt.Errorf("%w: model", ErrEmptyBlob)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO models (name, blob, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			blob = excluded.blob,
			updated_at = excluded.updated_at
	`, defaultModelName, blob)
	if err != nil {
		return fmt.Errorf("failed to save model blob: %w", err)
	}
	return nil
}

// LoadModel returns the stored model blob, or common.ErrNotFound when no
// model has been persisted yet.
func (s *SQLiteStore) LoadModel(ctx context.Context) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT blob FROM models WHERE name = ?`, defaultModelName).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: model %q", common.ErrNotFound, defaultModelName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load model blob: %w", err)
	}
	return blob, nil
}
