package platform

import (
	"context"
	"fmt"
	"time"
)

// Flag is one platform feature flag.
type Flag struct {
	Key         string
	Description string
	Enabled     bool
	UpdatedAt   time.Time
	UpdatedBy   string
}

// ListFlags returns every feature flag, alphabetical by key.
func (p *PG) ListFlags(ctx context.Context) ([]Flag, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT key, COALESCE(description, ''), enabled, updated_at, COALESCE(updated_by, '')
		FROM feature_flags
		ORDER BY key
	`)
	if err != nil {
		return nil, fmt.Errorf("list flags: %w", err)
	}
	defer rows.Close()

	var flags []Flag
	for rows.Next() {
		var f Flag
		if err := rows.Scan(&f.Key, &f.Description, &f.Enabled, &f.UpdatedAt, &f.UpdatedBy); err != nil {
			return nil, err
		}
		flags = append(flags, f)
	}
	return flags, rows.Err()
}

// SetFlag enables or disables a flag, recording who flipped it.
func (p *PG) SetFlag(ctx context.Context, key string, enabled bool, updatedBy string) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE feature_flags
		SET enabled = $2, updated_at = NOW(), updated_by = $3
		WHERE key = $1
	`, key, enabled, updatedBy)
	if err != nil {
		return fmt.Errorf("set flag %s: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set flag %s: no such flag", key)
	}
	return nil
}
