// Package platform is the data-access layer over the ticketing
// platform's Postgres database: per-category entity search plus the
// admin operations (feature flags, fees, roles, request moderation).
package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound reports that the requested record does not exist, for
// example a recent entry whose entity was deleted on the platform.
var ErrNotFound = errors.New("record not found")

// PG is the Postgres-backed platform store.
type PG struct {
	pool          *pgxpool.Pool
	operatorEmail string
}

// Connect creates and verifies a pgxpool connection to the platform
// database. operatorEmail identifies the acting admin for role lookup
// and audit columns.
func Connect(ctx context.Context, databaseURL, operatorEmail string) (*PG, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return &PG{pool: pool, operatorEmail: operatorEmail}, nil
}

// Close releases the connection pool.
func (p *PG) Close() {
	p.pool.Close()
}
