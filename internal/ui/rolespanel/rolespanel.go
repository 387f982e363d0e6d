// Package rolespanel provides the admin role management panel. Roles
// are toggled per user with single keys; removing your own admin role
// is escalated to the root model for confirmation first.
package rolespanel

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/identity"
	"github.com/lvasseur/boxoffice/internal/platform"
	"github.com/lvasseur/boxoffice/internal/ui"
	"github.com/lvasseur/boxoffice/internal/ui/cursor"
)

// Store is the role persistence consumed by the panel.
type Store interface {
	ListAdmins(ctx context.Context) ([]platform.AdminUser, error)
	GrantRole(ctx context.Context, userID string, role identity.Role) error
	RevokeRole(ctx context.Context, userID string, role identity.Role) error
}

// LoadedMsg carries the admin user list.
type LoadedMsg struct {
	Admins []platform.AdminUser
	Err    error
}

// ChangedMsg reports the outcome of one grant or revoke.
type ChangedMsg struct {
	UserID  string
	Role    identity.Role
	Granted bool
	Err     error
}

// ConfirmRevokeMsg asks the root model to confirm removing the
// operator's own admin role before it is applied.
type ConfirmRevokeMsg struct {
	UserID string
	Role   identity.Role
}

// Model is the role management panel.
type Model struct {
	ui.Base
	store  Store
	viewer identity.Viewer

	admins  []platform.AdminUser
	cursor  cursor.Cursor
	loading bool
	errMsg  string

	// set while a self-revoke waits for confirmation
	pendingRevoke *ConfirmRevokeMsg
}

// New creates the panel for the given operator.
func New(store Store, viewer identity.Viewer) Model {
	return Model{
		store:   store,
		viewer:  viewer,
		cursor:  cursor.New(ui.ScrollMargin),
		loading: true,
	}
}

// Load returns the command that fetches the admin list.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return loadCmd(m.store)
}

// Admins returns the currently displayed admin users.
func (m Model) Admins() []platform.AdminUser {
	return m.admins
}

// Selected returns the admin user under the cursor.
func (m Model) Selected() (platform.AdminUser, bool) {
	pos := m.cursor.Pos()
	if pos >= 0 && pos < len(m.admins) {
		return m.admins[pos], true
	}
	return platform.AdminUser{}, false
}

// ResolveRevoke is called by the root model after the confirmation
// popup closes. A confirmed revoke proceeds, a canceled one is dropped.
func (m *Model) ResolveRevoke(confirmed bool) tea.Cmd {
	pending := m.pendingRevoke
	m.pendingRevoke = nil
	if pending == nil || !confirmed {
		return nil
	}
	return revokeCmd(m.store, pending.UserID, pending.Role)
}

func (m *Model) applyChange(userID string, role identity.Role, granted bool) {
	for i := range m.admins {
		if m.admins[i].UserID != userID {
			continue
		}
		roles := m.admins[i].Roles
		if granted {
			m.admins[i].Roles = append(roles, role)
			return
		}
		for j, r := range roles {
			if r == role {
				m.admins[i].Roles = append(roles[:j], roles[j+1:]...)
				return
			}
		}
	}
}

func hasRole(u platform.AdminUser, role identity.Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func loadCmd(store Store) tea.Cmd {
	return func() tea.Msg {
		admins, err := store.ListAdmins(context.Background())
		return LoadedMsg{Admins: admins, Err: err}
	}
}

func grantCmd(store Store, userID string, role identity.Role) tea.Cmd {
	return func() tea.Msg {
		err := store.GrantRole(context.Background(), userID, role)
		return ChangedMsg{UserID: userID, Role: role, Granted: true, Err: err}
	}
}

func revokeCmd(store Store, userID string, role identity.Role) tea.Cmd {
	return func() tea.Msg {
		err := store.RevokeRole(context.Background(), userID, role)
		return ChangedMsg{UserID: userID, Role: role, Granted: false, Err: err}
	}
}
