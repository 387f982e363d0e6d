// Package identity resolves the operator's role set from the platform
// and derives the privileged-viewer flag used by search and panels.
package identity

import "context"

// Role is a platform role identifier.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDeveloper Role = "developer"
	RoleSupport   Role = "support"
	RoleModerator Role = "moderator"
)

// Viewer is the acting operator. Lifecycle is owned by the session:
// search and filter code receives a Viewer per invocation and holds no
// global state.
type Viewer struct {
	UserID string
	Email  string
	Name   string
	Roles  []Role
}

// HasRole reports whether the viewer holds the given role.
func (v Viewer) HasRole(role Role) bool {
	for _, r := range v.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Privileged reports whether the viewer may see user records and
// non-published events: admin or developer membership.
func (v Viewer) Privileged() bool {
	return v.HasRole(RoleAdmin) || v.HasRole(RoleDeveloper)
}

// Provider resolves the current operator.
type Provider interface {
	CurrentViewer(ctx context.Context) (Viewer, error)
}
