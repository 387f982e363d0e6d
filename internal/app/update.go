package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/keymap"
	"github.com/lvasseur/boxoffice/internal/platform"
	"github.com/lvasseur/boxoffice/internal/recent"
	"github.com/lvasseur/boxoffice/internal/search"
	"github.com/lvasseur/boxoffice/internal/ui/confirm"
	"github.com/lvasseur/boxoffice/internal/ui/feespanel"
	"github.com/lvasseur/boxoffice/internal/ui/flagspanel"
	"github.com/lvasseur/boxoffice/internal/ui/requestspanel"
	"github.com/lvasseur/boxoffice/internal/ui/rolespanel"
	"github.com/lvasseur/boxoffice/internal/ui/searchpopup"
)

// globalKeys resolves the application-level bindings.
var globalKeys = keymap.NewResolver(keymap.ByContext("global"))

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StderrMsg:
		m.statusMsg = msg.Line
		return m, WatchStderr()

	case searchpopup.SelectedMsg:
		return m.handleSelection(msg)

	case VisitRefreshedMsg:
		return m.handleVisitRefreshed(msg)

	case searchpopup.ClosedMsg:
		m.popup = popupNone
		m.setFocus()
		return m, nil

	case searchpopup.DebounceMsg, searchpopup.ResultsMsg:
		model, cmd := m.updateActiveSearch(msg)
		model.drainErrors()
		return model, cmd

	case rolespanel.ConfirmRevokeMsg:
		m.popup = popupConfirm
		m.confirm.Show(
			"Revoke your admin role",
			"You will lose access to this console. Continue?",
			msg, m.width/2, m.height/2,
		)
		m.setFocus()
		return m, nil

	case confirm.ResultMsg:
		m.popup = popupNone
		m.confirm.Reset()
		m.setFocus()
		if _, ok := msg.Context.(rolespanel.ConfirmRevokeMsg); ok {
			return m, m.roles.ResolveRevoke(msg.Confirmed)
		}
		return m, nil

	case flagspanel.LoadedMsg, flagspanel.SavedMsg:
		var cmd tea.Cmd
		m.flags, cmd = m.flags.Update(msg)
		return m, cmd

	case feespanel.LoadedMsg, feespanel.SavedMsg:
		var cmd tea.Cmd
		m.fees, cmd = m.fees.Update(msg)
		return m, cmd

	case rolespanel.LoadedMsg, rolespanel.ChangedMsg:
		var cmd tea.Cmd
		m.roles, cmd = m.roles.Update(msg)
		return m, cmd

	case requestspanel.LoadedMsg, requestspanel.ResolvedMsg:
		var cmd tea.Cmd
		m.requests, cmd = m.requests.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	panelW, panelH := m.panelSize()
	m.flags.SetSize(panelW, panelH)
	m.fees.SetSize(panelW, panelH)
	m.roles.SetSize(panelW, panelH)
	m.requests.SetSize(panelW, panelH)

	popupW, popupH := m.popupSize()
	m.quickSearch.SetSize(popupW, popupH)
	m.browser.SetSize(popupW, popupH)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even inside popups
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.popup == popupHelp {
		// Any key dismisses the help overlay
		m.popup = popupNone
		m.setFocus()
		return m, nil
	}
	if m.popup != popupNone {
		return m.updatePopup(msg)
	}

	// Inline edits own the keyboard: global bindings must not swallow
	// letters typed into a note or a fee field
	if m.panelCapturingInput() {
		return m.updateActivePanel(msg)
	}

	switch globalKeys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionPanelFlags:
		m.switchPanel(PanelFlags)
		return m, nil

	case keymap.ActionPanelFees:
		m.switchPanel(PanelFees)
		return m, nil

	case keymap.ActionPanelRoles:
		m.switchPanel(PanelRoles)
		return m, nil

	case keymap.ActionPanelRequests:
		m.switchPanel(PanelRequests)
		return m, nil

	case keymap.ActionQuickSearch:
		m.popup = popupQuickSearch
		m.statusMsg = ""
		popupW, popupH := m.popupSize()
		m.quickSearch.Open(popupW, popupH)
		m.setFocus()
		return m, nil

	case keymap.ActionBrowser:
		m.popup = popupBrowser
		m.statusMsg = ""
		popupW, popupH := m.popupSize()
		m.browser.Open(popupW, popupH)
		m.setFocus()
		return m, nil

	case keymap.ActionHelp:
		m.popup = popupHelp
		m.setFocus()
		return m, nil
	}

	return m.updateActivePanel(msg)
}

// panelCapturingInput reports whether the active panel is in a text
// entry mode.
func (m Model) panelCapturingInput() bool {
	switch m.activePanel {
	case PanelFees:
		return m.fees.Editing()
	case PanelRequests:
		return m.requests.TakingNote()
	}
	return false
}

func (m Model) updateActivePanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activePanel {
	case PanelFlags:
		m.flags, cmd = m.flags.Update(msg)
	case PanelFees:
		m.fees, cmd = m.fees.Update(msg)
	case PanelRoles:
		m.roles, cmd = m.roles.Update(msg)
	case PanelRequests:
		m.requests, cmd = m.requests.Update(msg)
	}
	return m, cmd
}

func (m Model) updatePopup(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.popup {
	case popupQuickSearch, popupBrowser:
		return m.updateActiveSearch(msg)

	case popupConfirm:
		p, cmd := m.confirm.Update(msg)
		if cp, ok := p.(*confirm.Model); ok {
			m.confirm = *cp
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) updateActiveSearch(msg tea.Msg) (Model, tea.Cmd) {
	var target **searchpopup.Model
	switch m.popup {
	case popupQuickSearch:
		target = &m.quickSearch
	case popupBrowser:
		target = &m.browser
	default:
		return m, nil
	}

	p, cmd := (*target).Update(msg)
	if sp, ok := p.(*searchpopup.Model); ok {
		*target = sp
	}
	return m, cmd
}

// handleSelection records the visited entity and resolves it to its
// platform route. Selections coming from the recent list additionally
// re-read the entity so the cached snapshot stays current.
func (m Model) handleSelection(msg searchpopup.SelectedMsg) (tea.Model, tea.Cmd) {
	m.popup = popupNone
	m.setFocus()
	m.RecordVisit(msg.Item)
	m.drainErrors()

	m.lastRoute = search.Route(msg.Item.Category, msg.Item.ID)
	m.statusMsg = "Open " + m.lastRoute

	// Remember the selection for the next session
	if err := m.stateMgr.SetValue("last_route", m.lastRoute); err != nil {
		m.errors.Push(err.Error())
	}
	if msg.FromRecent {
		return m, refreshVisitCmd(m.store, msg.Item)
	}
	return m, nil
}

// handleVisitRefreshed applies the re-read of a recent entity: a
// fresh snapshot replaces the cached one, a deleted entity drops out
// of the recent list.
func (m Model) handleVisitRefreshed(msg VisitRefreshedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.Err, platform.ErrNotFound) {
		m.recents.Remove(msg.Item.ID, msg.Item.Category)
		m.statusMsg = "Record no longer exists on the platform"
		return m, nil
	}
	if msg.Err != nil {
		m.errors.Push(msg.Err.Error())
		m.drainErrors()
		return m, nil
	}
	m.RecordVisit(msg.Item)
	return m, nil
}

// RecordVisit puts the visited entity at the front of the recent list.
func (m *Model) RecordVisit(item search.Item) {
	m.recents.Record(recent.Record{
		ID:       item.ID,
		Category: item.Category,
		Name:     item.Name,
		ImageURL: item.ImageURL,
		Detail:   item.Detail,
	})
}
