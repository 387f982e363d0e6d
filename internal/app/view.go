package app

import (
	"strings"

	"github.com/lvasseur/boxoffice/internal/keymap"
	"github.com/lvasseur/boxoffice/internal/ui"
	"github.com/lvasseur/boxoffice/internal/ui/headerbar"
	"github.com/lvasseur/boxoffice/internal/ui/popup"
	"github.com/lvasseur/boxoffice/internal/ui/render"
	"github.com/lvasseur/boxoffice/internal/ui/styles"
)

// panelSize returns the dimensions handed to the active panel.
func (m Model) panelSize() (w, h int) {
	w = m.width - 2 // panel border
	h = m.height - headerbar.Height - ui.StatusBarHeight - ui.BorderHeight
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// popupSize returns the content dimensions for the search popups.
func (m Model) popupSize() (w, h int) {
	w = m.width * popup.SizeSearch.WidthPct / 100
	h = m.height * popup.SizeSearch.HeightPct / 100
	return w, h
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := headerbar.Render(string(m.activePanel), m.width, m.panelAllowed(PanelRequests))

	var panel string
	switch m.activePanel {
	case PanelFlags:
		panel = m.flags.View()
	case PanelFees:
		panel = m.fees.View()
	case PanelRoles:
		panel = m.roles.View()
	case PanelRequests:
		panel = m.requests.View()
	}

	panelW, panelH := m.panelSize()
	boxed := styles.PanelStyle(m.popup == popupNone).
		Width(panelW).
		Height(panelH).
		Render(panel)

	view := header + "\n" + boxed + "\n" + m.renderStatus()

	switch m.popup {
	case popupQuickSearch:
		overlay := popup.RenderBordered(m.quickSearch.View(), m.width, m.height, popup.SizeSearch)
		view = popup.Compose(view, overlay, m.width, m.height)
	case popupBrowser:
		overlay := popup.RenderBordered(m.browser.View(), m.width, m.height, popup.SizeSearch)
		view = popup.Compose(view, overlay, m.width, m.height)
	case popupConfirm:
		overlay := popup.RenderBordered(m.confirm.View(), m.width, m.height, popup.SizeAuto)
		view = popup.Compose(view, overlay, m.width, m.height)
	case popupHelp:
		overlay := popup.RenderBordered(m.renderHelp(), m.width, m.height, popup.SizeAuto)
		view = popup.Compose(view, overlay, m.width, m.height)
	}
	return view
}

// helpContexts orders the help overlay sections.
var helpContexts = []struct {
	name  string
	title string
}{
	{"global", "Global"},
	{"flags", "Feature Flags"},
	{"fees", "Fees & Checkout"},
	{"roles", "Admin Roles"},
	{"requests", "Requests"},
	{"search", "Search"},
}

func (m Model) renderHelp() string {
	s := styles.T().S()
	var b strings.Builder

	b.WriteString(s.Title.Render("Key Bindings"))
	for _, ctx := range helpContexts {
		bindings := keymap.ByContext(ctx.name)
		if len(bindings) == 0 {
			continue
		}
		b.WriteString("\n\n" + s.Muted.Render(ctx.title) + "\n")
		for i, kb := range bindings {
			if i > 0 {
				b.WriteString("\n")
			}
			keys := render.Pad(strings.Join(kb.Keys, ", "), 14)
			b.WriteString("  " + s.Base.Render(keys) + s.Subtle.Render(kb.Description))
		}
	}
	return b.String()
}

func (m Model) renderStatus() string {
	s := styles.T().S()

	if m.statusMsg != "" {
		return s.Muted.Render(m.statusMsg)
	}
	return s.Subtle.Render("/: search  ctrl+b: browse  F1-F4: panels  ?: help  q: quit")
}
