package searchpopup

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lvasseur/boxoffice/internal/icons"
	"github.com/lvasseur/boxoffice/internal/search"
	"github.com/lvasseur/boxoffice/internal/ui/render"
	"github.com/lvasseur/boxoffice/internal/ui/styles"
)

// chromeHeight is the number of non-list lines in the popup: title,
// input, blank separator, and the status line.
const chromeHeight = 4

// listHeight returns the height available for result rows.
func (m *Model) listHeight() int {
	h := m.Height() - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	var b strings.Builder

	b.WriteString(s.Title.Render("Search"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m *Model) renderList() string {
	s := styles.T().S()

	if len(m.rows) == 0 {
		switch {
		case m.pending:
			return s.Muted.Render("Searching...")
		case m.showingRecents():
			return s.Subtle.Render("No recent records")
		case m.results != nil:
			return s.Muted.Render("No results for \"" + m.query + "\"")
		default:
			return ""
		}
	}

	// The cursor tracks selectable rows only, so translate its visible
	// range to display rows by walking headers alongside items.
	lines := make([]string, 0, len(m.rows))
	start, end := m.cursor.VisibleRange(m.selectableCount(), m.listHeight())
	selIdx := 0
	for _, r := range m.rows {
		if r.kind == rowHeader {
			if selIdx >= start && selIdx < end {
				lines = append(lines, s.Muted.Render(r.category.Label()))
			}
			continue
		}
		if selIdx >= start && selIdx < end {
			lines = append(lines, m.renderRow(r, selIdx == m.cursor.Pos()))
		}
		selIdx++
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(r row, selected bool) string {
	s := styles.T().S()

	name := r.item.Name
	detail := r.item.Detail
	status := r.item.Status
	when := ""
	if r.kind == rowRecent {
		name = r.record.Name
		detail = r.record.Detail
		when = humanize.Time(r.record.VisitedAt)
	} else if r.item.Category == search.CategoryEvent && !r.item.StartsAt.IsZero() {
		when = humanize.Time(r.item.StartsAt)
	}

	name = render.Truncate(render.Sanitize(name), m.Width()/2)
	line := icons.ForCategory(r.category) + " " + name
	if detail != "" {
		line += s.Subtle.Render(" · " + render.Truncate(render.Sanitize(detail), 30))
	}
	if status == search.EventStatusDraft || status == search.EventStatusTest {
		line += " " + s.Badge.Render(strings.ToUpper(status))
	}
	if when != "" {
		line += " " + s.Subtle.Render(when)
	}

	if selected {
		return s.Selected.Render("> ") + line
	}
	return "  " + line
}

func (m *Model) renderStatus() string {
	s := styles.T().S()

	if m.pending {
		return s.Muted.Render("Searching...")
	}
	if m.showingRecents() {
		return s.Subtle.Render("Recent · Enter: open, Ctrl+X: remove, Esc: close")
	}
	return s.Subtle.Render("Enter: open, Esc: close")
}
