package rolespanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/errmsg"
	"github.com/lvasseur/boxoffice/internal/identity"
	"github.com/lvasseur/boxoffice/internal/ui"
)

// roleKeys maps toggle keys to roles.
var roleKeys = map[string]identity.Role{
	"a": identity.RoleAdmin,
	"d": identity.RoleDeveloper,
	"s": identity.RoleSupport,
	"m": identity.RoleModerator,
}

// Update handles messages for the roles panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m.handleKey(msg)

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = errmsg.Format(errmsg.OpAdminsLoad, msg.Err)
			return m, nil
		}
		m.admins = msg.Admins
		m.cursor.ClampToBounds(len(m.admins))
		return m, nil

	case ChangedMsg:
		if msg.Err != nil {
			op := errmsg.OpRoleRevoke
			if msg.Granted {
				op = errmsg.OpRoleGrant
			}
			m.errMsg = errmsg.Format(op, msg.Err)
			return m, nil
		}
		m.applyChange(msg.UserID, msg.Role, msg.Granted)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.errMsg = ""

	switch key := msg.String(); key {
	case "j", "down":
		m.cursor.Move(1, len(m.admins), m.ListHeight(ui.PanelOverhead))

	case "k", "up":
		m.cursor.Move(-1, len(m.admins), m.ListHeight(ui.PanelOverhead))

	case "g":
		m.cursor.JumpStart()

	case "G":
		m.cursor.JumpEnd(len(m.admins), m.ListHeight(ui.PanelOverhead))

	case "r":
		return m, m.Load()

	default:
		role, ok := roleKeys[key]
		if !ok {
			return m, nil
		}
		return m.toggleRole(role)
	}
	return m, nil
}

func (m Model) toggleRole(role identity.Role) (Model, tea.Cmd) {
	user, ok := m.Selected()
	if !ok {
		return m, nil
	}

	if !hasRole(user, role) {
		return m, grantCmd(m.store, user.UserID, role)
	}

	// Dropping your own admin role locks you out of this panel, so the
	// root model asks for confirmation first.
	if role == identity.RoleAdmin && user.UserID == m.viewer.UserID {
		pending := ConfirmRevokeMsg{UserID: user.UserID, Role: role}
		m.pendingRevoke = &pending
		return m, func() tea.Msg { return pending }
	}
	return m, revokeCmd(m.store, user.UserID, role)
}
