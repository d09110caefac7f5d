package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/docuflow/docuflow/internal/model"
)

// SaveClassification records a classification outcome and returns its ID.
func (s *SQLiteStore) SaveClassification(ctx context.Context, result model.EnsembleResult, sourcePath string) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO classifications (id, category, confidence, decision, source_path)
		VALUES (?, ?, ?, ?, ?)
	`, id, string(result.Category), result.Confidence, string(result.Decision), sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to save classification: %w", err)
	}
	return id, nil
}

// ListClassifications returns recorded classifications newest-first, capped
// at limit (or uncapped when limit <= 0).
func (s *SQLiteStore) ListClassifications(ctx context.Context, limit int) ([]model.ClassificationRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, category, confidence, decision, COALESCE(source_path, ''), classified_at
		FROM classifications ORDER BY classified_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.ClassificationRecord
	for rows.Next() {
		var rec model.ClassificationRecord
		var category, decision string
		if err := rows.Scan(&rec.ID, &category, &rec.Confidence, &decision, &rec.SourcePath, &rec.ClassifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan classification row: %w", err)
		}
		rec.Category = model.Category(category)
		rec.Decision = model.DecisionTag(decision)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate classification rows: %w", err)
	}
	return records, nil
}
