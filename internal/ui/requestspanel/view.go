package requestspanel

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lvasseur/boxoffice/internal/ui"
	"github.com/lvasseur/boxoffice/internal/ui/render"
	"github.com/lvasseur/boxoffice/internal/ui/styles"
)

// View renders the requests panel content.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	var b strings.Builder

	b.WriteString(s.Title.Render("Submitted Requests"))
	b.WriteString("\n")
	b.WriteString(render.Separator(m.Width()))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(s.Muted.Render("Loading queue..."))
	case m.errMsg != "":
		b.WriteString(s.Error.Render(m.errMsg))
	case len(m.requests) == 0:
		b.WriteString(s.Subtle.Render("Moderation queue is empty"))
	default:
		b.WriteString(m.renderList())
		b.WriteString("\n\n")
		b.WriteString(m.renderFooter())
	}
	return b.String()
}

func (m Model) renderList() string {
	s := styles.T().S()

	start, end := m.cursor.VisibleRange(len(m.requests), m.ListHeight(ui.PanelOverhead))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		r := m.requests[i]

		kind := s.Badge.Render(render.Pad(r.Kind, 6))
		title := s.Base.Render(render.TruncateAndPad(render.Sanitize(r.Title), 40))
		meta := s.Subtle.Render(r.SubmittedBy + " · " + humanize.Time(r.CreatedAt))
		line := kind + " " + title + " " + meta

		if i == m.cursor.Pos() && m.IsFocused() {
			line = s.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	s := styles.T().S()

	if m.mode == modeNote {
		verb := "Reject"
		if m.approve {
			verb = "Approve"
		}
		return s.Base.Render(verb+" with note: "+m.note) + "█" + "\n" +
			s.Subtle.Render("Enter: confirm  Esc: cancel")
	}
	if m.status != "" {
		return s.Success.Render(m.status)
	}
	return s.Subtle.Render("a: approve  x: reject  r: reload")
}
