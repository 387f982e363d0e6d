package platform

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lvasseur/boxoffice/internal/search"
)

// Compile-time check that PG implements the aggregator's store contract.
var _ search.Store = (*PG)(nil)

// SearchCategory runs one category's bounded substring lookup.
// Ordering follows creation time so pagination stays deterministic;
// there is no cross-field ranking.
func (p *PG) SearchCategory(ctx context.Context, c search.Category, query string, opts search.Lookup) ([]search.Item, error) {
	switch c {
	case search.CategoryOrganization:
		return p.searchOrganizations(ctx, query, opts)
	case search.CategoryUser:
		return p.searchUsers(ctx, query, opts)
	case search.CategoryArtist:
		return p.searchArtists(ctx, query, opts)
	case search.CategoryVenue:
		return p.searchVenues(ctx, query, opts)
	case search.CategoryEvent:
		return p.searchEvents(ctx, query, opts)
	case search.CategoryRecording:
		return p.searchRecordings(ctx, query, opts)
	}
	return nil, fmt.Errorf("unknown category %v", c)
}

func (p *PG) searchOrganizations(ctx context.Context, query string, opts search.Lookup) ([]search.Item, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), COALESCE(logo_url, '')
		FROM organizations
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY created_at
		LIMIT $2
	`, likePattern(query), opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("search organizations: %w", err)
	}
	defer rows.Close()

	var items []search.Item
	for rows.Next() {
		it := search.Item{Category: search.CategoryOrganization}
		if err := rows.Scan(&it.ID, &it.Name, &it.Detail, &it.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (p *PG) searchUsers(ctx context.Context, query string, opts search.Lookup) ([]search.Item, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, COALESCE(display_name, email), email, COALESCE(avatar_url, '')
		FROM user_profiles
		WHERE display_name ILIKE $1 OR email ILIKE $1
		ORDER BY created_at
		LIMIT $2
	`, likePattern(query), opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	var items []search.Item
	for rows.Next() {
		it := search.Item{Category: search.CategoryUser}
		if err := rows.Scan(&it.ID, &it.Name, &it.Detail, &it.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (p *PG) searchArtists(ctx context.Context, query string, opts search.Lookup) ([]search.Item, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, name, COALESCE(genre, ''), COALESCE(image_url, '')
		FROM artists
		WHERE name ILIKE $1 OR bio ILIKE $1
		ORDER BY created_at
		LIMIT $2
	`, likePattern(query), opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	var items []search.Item
	for rows.Next() {
		it := search.Item{Category: search.CategoryArtist}
		if err := rows.Scan(&it.ID, &it.Name, &it.Detail, &it.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (p *PG) searchVenues(ctx context.Context, query string, opts search.Lookup) ([]search.Item, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, name, COALESCE(city, ''), COALESCE(image_url, '')
		FROM venues
		WHERE name ILIKE $1 OR city ILIKE $1
		ORDER BY created_at
		LIMIT $2
	`, likePattern(query), opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	var items []search.Item
	for rows.Next() {
		it := search.Item{Category: search.CategoryVenue}
		if err := rows.Scan(&it.ID, &it.Name, &it.Detail, &it.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (p *PG) searchEvents(ctx context.Context, query string, opts search.Lookup) ([]search.Item, error) {
	// Status filtering happens here and again in the visibility filter;
	// the query keeps draft rows from consuming cap slots for
	// non-privileged viewers.
	q := `
		SELECT e.id, e.title, COALESCE(v.name, ''), COALESCE(e.image_url, ''), e.status, e.starts_at
		FROM events e
		LEFT JOIN venues v ON v.id = e.venue_id
		WHERE (e.title ILIKE $1 OR e.description ILIKE $1)`
	args := []any{likePattern(query)}
	if !opts.IncludeDrafts {
		q += ` AND e.status = 'published'`
	}
	if opts.UpcomingOnly {
		q += ` AND e.starts_at >= NOW()`
	}
	q += `
		ORDER BY e.starts_at
		LIMIT $2`
	args = append(args, opts.Limit)

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	defer rows.Close()

	var items []search.Item
	for rows.Next() {
		it := search.Item{Category: search.CategoryEvent}
		var startsAt sql.NullTime
		if err := rows.Scan(&it.ID, &it.Name, &it.Detail, &it.ImageURL, &it.Status, &startsAt); err != nil {
			return nil, err
		}
		if startsAt.Valid {
			it.StartsAt = startsAt.Time
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (p *PG) searchRecordings(ctx context.Context, query string, opts search.Lookup) ([]search.Item, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, title, COALESCE(platform, ''), COALESCE(thumbnail_url, '')
		FROM recordings
		WHERE title ILIKE $1 OR description ILIKE $1
		ORDER BY created_at
		LIMIT $2
	`, likePattern(query), opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("search recordings: %w", err)
	}
	defer rows.Close()

	var items []search.Item
	for rows.Next() {
		it := search.Item{Category: search.CategoryRecording}
		if err := rows.Scan(&it.ID, &it.Name, &it.Detail, &it.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetItem fetches a single entity snapshot by id. Opening a recent
// record goes through it so the cached name and detail get refreshed,
// and so deleted entities are detected.
func (p *PG) GetItem(ctx context.Context, c search.Category, id string) (search.Item, error) {
	var (
		it    = search.Item{Category: c, ID: id}
		row   pgx.Row
		start sql.NullTime
		err   error
	)
	switch c {
	case search.CategoryOrganization:
		row = p.pool.QueryRow(ctx, `SELECT name, COALESCE(description, ''), COALESCE(logo_url, '') FROM organizations WHERE id = $1`, id)
		err = row.Scan(&it.Name, &it.Detail, &it.ImageURL)
	case search.CategoryUser:
		row = p.pool.QueryRow(ctx, `SELECT COALESCE(display_name, email), email, COALESCE(avatar_url, '') FROM user_profiles WHERE id = $1`, id)
		err = row.Scan(&it.Name, &it.Detail, &it.ImageURL)
	case search.CategoryArtist:
		row = p.pool.QueryRow(ctx, `SELECT name, COALESCE(genre, ''), COALESCE(image_url, '') FROM artists WHERE id = $1`, id)
		err = row.Scan(&it.Name, &it.Detail, &it.ImageURL)
	case search.CategoryVenue:
		row = p.pool.QueryRow(ctx, `SELECT name, COALESCE(city, ''), COALESCE(image_url, '') FROM venues WHERE id = $1`, id)
		err = row.Scan(&it.Name, &it.Detail, &it.ImageURL)
	case search.CategoryEvent:
		row = p.pool.QueryRow(ctx, `SELECT title, COALESCE(image_url, ''), status, starts_at FROM events WHERE id = $1`, id)
		err = row.Scan(&it.Name, &it.ImageURL, &it.Status, &start)
		if start.Valid {
			it.StartsAt = start.Time
		}
	case search.CategoryRecording:
		row = p.pool.QueryRow(ctx, `SELECT title, COALESCE(platform, ''), COALESCE(thumbnail_url, '') FROM recordings WHERE id = $1`, id)
		err = row.Scan(&it.Name, &it.Detail, &it.ImageURL)
	default:
		return search.Item{}, fmt.Errorf("unknown category %v", c)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return search.Item{}, fmt.Errorf("get %s %s: %w", c, id, ErrNotFound)
	}
	if err != nil {
		return search.Item{}, fmt.Errorf("get %s %s: %w", c, id, err)
	}
	return it, nil
}
