package storage

import (
	"context"
	"fmt"

	"github.com/docuflow/docuflow/internal/model"
)

// SaveRoutingOverride persists a department override for a category.
func (s *SQLiteStore) SaveRoutingOverride(ctx context.Context, category model.Category, route model.Route) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if !category.Valid() {
		return fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
	}
	if err := validateString(route.Department, "department"); err != nil {
		return err
	}
	if err := validateString(route.Folder, "folder"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO routing_overrides (category, department, folder, description, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(category) DO UPDATE SET
			department = excluded.department,
			folder = excluded.folder,
			description = excluded.description,
			updated_at = excluded.updated_at
	`, string(category), route.Department, route.Folder, route.Description)
	if err != nil {
		return fmt.Errorf("failed to save routing override: %w", err)
	}
	return nil
}

// ListRoutingOverrides returns all persisted routing overrides.
func (s *SQLiteStore) ListRoutingOverrides(ctx context.Context) (map[model.Category]model.Route, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, department, folder, COALESCE(description, '') FROM routing_overrides`)
	if err != nil {
		return nil, fmt.Errorf("failed to list routing overrides: %w", err)
	}
	defer func() { _ = rows.Close() }()

	overrides := make(map[model.Category]model.Route)
	for rows.Next() {
		var category string
		var route model.Route
		if err := rows.Scan(&category, &route.Department, &route.Folder, &route.Description); err != nil {
			return nil, fmt.Errorf("failed to scan routing override: %w", err)
		}
		overrides[model.Category(category)] = route
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate routing overrides: %w", err)
	}
	return overrides, nil
}
