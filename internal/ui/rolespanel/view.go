package rolespanel

import (
	"strings"

	"github.com/lvasseur/boxoffice/internal/identity"
	"github.com/lvasseur/boxoffice/internal/ui"
	"github.com/lvasseur/boxoffice/internal/ui/render"
	"github.com/lvasseur/boxoffice/internal/ui/styles"
)

// displayRoles is the column order for role markers.
var displayRoles = []identity.Role{
	identity.RoleAdmin,
	identity.RoleDeveloper,
	identity.RoleSupport,
	identity.RoleModerator,
}

// View renders the roles panel content.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	var b strings.Builder

	b.WriteString(s.Title.Render("Admin Roles"))
	b.WriteString("\n")
	b.WriteString(render.Separator(m.Width()))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(s.Muted.Render("Loading admins..."))
	case m.errMsg != "":
		b.WriteString(s.Error.Render(m.errMsg))
	case len(m.admins) == 0:
		b.WriteString(s.Subtle.Render("No admin users"))
	default:
		b.WriteString(m.renderList())
		b.WriteString("\n\n")
		b.WriteString(s.Subtle.Render("a/d/s/m: toggle admin/developer/support/moderator"))
	}
	return b.String()
}

func (m Model) renderList() string {
	s := styles.T().S()

	start, end := m.cursor.VisibleRange(len(m.admins), m.ListHeight(ui.PanelOverhead))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		u := m.admins[i]

		marks := make([]string, 0, len(displayRoles))
		for _, role := range displayRoles {
			mark := string(role[0])
			if hasRole(u, role) {
				marks = append(marks, s.Success.Render(mark))
			} else {
				marks = append(marks, s.Subtle.Render("-"))
			}
		}

		name := render.TruncateAndPad(render.Sanitize(u.Name), 24)
		email := render.Truncate(u.Email, 32)
		line := s.Base.Render(name) + " [" + strings.Join(marks, "") + "] " + s.Muted.Render(email)
		if u.UserID == m.viewer.UserID {
			line += " " + s.Badge.Render("you")
		}

		if i == m.cursor.Pos() && m.IsFocused() {
			line = s.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
