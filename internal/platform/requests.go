package platform

import (
	"context"
	"fmt"
	"time"
)

// Request statuses as stored by the platform.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// Request is a user-submitted entry (a missing artist, venue or event)
// awaiting moderation.
type Request struct {
	ID          string
	Kind        string // "artist", "venue" or "event"
	Title       string
	Body        string
	SubmittedBy string // user email
	Status      string
	Note        string
	CreatedAt   time.Time
}

// PendingRequests returns the moderation queue, oldest first.
func (p *PG) PendingRequests(ctx context.Context) ([]Request, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT r.id, r.kind, r.title, COALESCE(r.body, ''),
		       COALESCE(u.email, ''), r.status, COALESCE(r.note, ''), r.created_at
		FROM submitted_requests r
		LEFT JOIN user_profiles u ON u.id = r.submitted_by
		WHERE r.status = 'pending'
		ORDER BY r.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("pending requests: %w", err)
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		var r Request
		if err := rows.Scan(&r.ID, &r.Kind, &r.Title, &r.Body, &r.SubmittedBy, &r.Status, &r.Note, &r.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// ResolveRequest approves or rejects a pending request with an
// optional moderator note. Resolving an already-resolved request
// fails rather than silently overwriting the first decision.
func (p *PG) ResolveRequest(ctx context.Context, id string, approve bool, note string) error {
	status := RequestRejected
	if approve {
		status = RequestApproved
	}
	tag, err := p.pool.Exec(ctx, `
		UPDATE submitted_requests
		SET status = $2, note = $3, resolved_at = NOW(), resolved_by = $4
		WHERE id = $1 AND status = 'pending'
	`, id, status, note, p.operatorEmail)
	if err != nil {
		return fmt.Errorf("resolve request %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resolve request %s: not pending", id)
	}
	return nil
}
