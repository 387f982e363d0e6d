package platform

import (
	"context"
	"fmt"

	"github.com/lvasseur/boxoffice/internal/identity"
)

// AdminUser is a back-office account with its granted roles.
type AdminUser struct {
	UserID string
	Email  string
	Name   string
	Roles  []identity.Role
}

// ListAdmins returns every admin user with their role sets.
func (p *PG) ListAdmins(ctx context.Context) ([]AdminUser, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT u.user_id, u.email, COALESCE(u.display_name, u.email),
		       COALESCE(array_agg(r.role ORDER BY r.role) FILTER (WHERE r.role IS NOT NULL), '{}')
		FROM admin_users u
		LEFT JOIN admin_roles r ON r.user_id = u.user_id
		GROUP BY u.user_id, u.email, u.display_name
		ORDER BY u.email
	`)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var admins []AdminUser
	for rows.Next() {
		var a AdminUser
		var roles []string
		if err := rows.Scan(&a.UserID, &a.Email, &a.Name, &roles); err != nil {
			return nil, err
		}
		for _, r := range roles {
			a.Roles = append(a.Roles, identity.Role(r))
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// GrantRole adds a role to a user; granting an already-held role is a
// no-op.
func (p *PG) GrantRole(ctx context.Context, userID string, role identity.Role) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO admin_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role) DO NOTHING
	`, userID, string(role))
	if err != nil {
		return fmt.Errorf("grant %s to %s: %w", role, userID, err)
	}
	return nil
}

// RevokeRole removes a role from a user.
func (p *PG) RevokeRole(ctx context.Context, userID string, role identity.Role) error {
	_, err := p.pool.Exec(ctx, `
		DELETE FROM admin_roles WHERE user_id = $1 AND role = $2
	`, userID, string(role))
	if err != nil {
		return fmt.Errorf("revoke %s from %s: %w", role, userID, err)
	}
	return nil
}

// CurrentViewer resolves the operator identified by email into a
// Viewer with their role set. Implements identity.Provider.
func (p *PG) CurrentViewer(ctx context.Context) (identity.Viewer, error) {
	return p.ViewerByEmail(ctx, p.operatorEmail)
}

// ViewerByEmail loads one admin user's identity and roles.
func (p *PG) ViewerByEmail(ctx context.Context, email string) (identity.Viewer, error) {
	var v identity.Viewer
	var roles []string
	err := p.pool.QueryRow(ctx, `
		SELECT u.user_id, u.email, COALESCE(u.display_name, u.email),
		       COALESCE(array_agg(r.role ORDER BY r.role) FILTER (WHERE r.role IS NOT NULL), '{}')
		FROM admin_users u
		LEFT JOIN admin_roles r ON r.user_id = u.user_id
		WHERE u.email = $1
		GROUP BY u.user_id, u.email, u.display_name
	`, email).Scan(&v.UserID, &v.Email, &v.Name, &roles)
	if err != nil {
		return identity.Viewer{}, fmt.Errorf("viewer %s: %w", email, err)
	}
	for _, r := range roles {
		v.Roles = append(v.Roles, identity.Role(r))
	}
	return v, nil
}
