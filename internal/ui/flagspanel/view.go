package flagspanel

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lvasseur/boxoffice/internal/icons"
	"github.com/lvasseur/boxoffice/internal/ui"
	"github.com/lvasseur/boxoffice/internal/ui/render"
	"github.com/lvasseur/boxoffice/internal/ui/styles"
)

// View renders the flags panel content.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	var b strings.Builder

	b.WriteString(s.Title.Render("Feature Flags"))
	b.WriteString("\n")
	b.WriteString(render.Separator(m.Width()))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(s.Muted.Render("Loading flags..."))
	case m.errMsg != "":
		b.WriteString(s.Error.Render(m.errMsg))
	case len(m.flags) == 0:
		b.WriteString(s.Subtle.Render("No feature flags defined"))
	default:
		b.WriteString(m.renderList())
	}
	return b.String()
}

func (m Model) renderList() string {
	s := styles.T().S()
	ic := icons.Current()

	start, end := m.cursor.VisibleRange(len(m.flags), m.ListHeight(ui.PanelOverhead))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		f := m.flags[i]

		mark := s.Error.Render(ic.Cross)
		if f.Enabled {
			mark = s.Success.Render(ic.Check)
		}

		line := mark + " " + s.Base.Render(render.Truncate(f.Key, 32))
		if f.Description != "" {
			line += " " + s.Muted.Render(render.Truncate(f.Description, 48))
		}
		if f.UpdatedBy != "" {
			line += " " + s.Subtle.Render(humanize.Time(f.UpdatedAt)+" by "+f.UpdatedBy)
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
