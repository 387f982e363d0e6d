// Package app wires the admin console together: panel switching, the
// two search popups, confirmation flow, and persisted UI state.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/config"
	"github.com/lvasseur/boxoffice/internal/errmsg"
	"github.com/lvasseur/boxoffice/internal/identity"
	"github.com/lvasseur/boxoffice/internal/recent"
	"github.com/lvasseur/boxoffice/internal/search"
	"github.com/lvasseur/boxoffice/internal/state"
	"github.com/lvasseur/boxoffice/internal/ui/confirm"
	"github.com/lvasseur/boxoffice/internal/ui/feespanel"
	"github.com/lvasseur/boxoffice/internal/ui/flagspanel"
	"github.com/lvasseur/boxoffice/internal/ui/requestspanel"
	"github.com/lvasseur/boxoffice/internal/ui/rolespanel"
	"github.com/lvasseur/boxoffice/internal/ui/searchpopup"
)

// Panel identifies one of the admin panels.
type Panel string

const (
	PanelFlags    Panel = "flags"
	PanelFees     Panel = "fees"
	PanelRoles    Panel = "roles"
	PanelRequests Panel = "requests"
)

// activePopup identifies which popup currently owns the keyboard.
type activePopup int

const (
	popupNone activePopup = iota
	popupQuickSearch
	popupBrowser
	popupConfirm
	popupHelp
)

// Model is the root application model.
type Model struct {
	cfg      *config.Config
	stateMgr state.Interface
	store    Store
	viewer   identity.Viewer
	recents  *recent.List
	errors   *errorSink

	activePanel Panel
	flags       flagspanel.Model
	fees        feespanel.Model
	roles       rolespanel.Model
	requests    requestspanel.Model

	quickSearch *searchpopup.Model
	browser     *searchpopup.Model
	confirm     confirm.Model
	popup       activePopup

	statusMsg string
	lastRoute string

	width, height int
}

// New creates the root model. The viewer has already been resolved
// against the platform.
func New(cfg *config.Config, stateMgr state.Interface, store Store, viewer identity.Viewer) Model {
	sink := newErrorSink()

	recents := recent.NewList(stateMgr, recent.WithErrorHook(func(err error) {
		sink.Push(errmsg.Format(errmsg.OpRecentLoad, err))
	}))

	onError := func(c search.Category, err error) {
		sink.Push(errmsg.FormatWith(errmsg.OpSearchLookup, c.Label(), err))
	}
	quick := search.NewAggregator(store, cfg.Search.Quick.SearchProfile(), onError)
	browser := search.NewAggregator(store, cfg.Search.Browser.SearchProfile(), onError)

	privileged := viewer.Privileged()

	m := Model{
		cfg:         cfg,
		stateMgr:    stateMgr,
		store:       store,
		viewer:      viewer,
		recents:     recents,
		errors:      sink,
		activePanel: PanelFlags,
		flags:       flagspanel.New(store, viewer.Email),
		fees:        feespanel.New(store),
		roles:       rolespanel.New(store, viewer),
		requests:    requestspanel.New(store),
		quickSearch: searchpopup.New("quick", quick, recents, privileged, cfg.Search.Quick.Debounce()),
		browser:     searchpopup.New("browser", browser, recents, privileged, cfg.Search.Browser.Debounce()),
		confirm:     confirm.New(),
	}

	// Restore the panel that was active last session
	if saved, err := stateMgr.GetPanel(); err == nil && saved != nil {
		if p := Panel(saved.ActivePanel); m.panelAllowed(p) {
			m.activePanel = p
		}
	}
	m.setFocus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.flags.Load(),
		m.fees.Load(),
		m.roles.Load(),
		m.requests.Load(),
		WatchStderr(),
	)
}

// ActivePanel returns the current panel tab.
func (m Model) ActivePanel() Panel {
	return m.activePanel
}

// panelAllowed reports whether the viewer may open the panel. The
// request queue is limited to moderators and privileged viewers.
func (m Model) panelAllowed(p Panel) bool {
	switch p {
	case PanelFlags, PanelFees, PanelRoles:
		return true
	case PanelRequests:
		return m.viewer.HasRole(identity.RoleModerator) || m.viewer.Privileged()
	}
	return false
}

// switchPanel activates a panel tab and persists the choice.
func (m *Model) switchPanel(p Panel) {
	if !m.panelAllowed(p) || m.activePanel == p {
		return
	}
	m.activePanel = p
	m.setFocus()
	m.stateMgr.SavePanel(state.PanelState{ActivePanel: string(p)})
}

// setFocus routes keyboard focus to the active panel unless a popup
// owns it.
func (m *Model) setFocus() {
	focused := m.popup == popupNone
	m.flags.SetFocused(focused && m.activePanel == PanelFlags)
	m.fees.SetFocused(focused && m.activePanel == PanelFees)
	m.roles.SetFocused(focused && m.activePanel == PanelRoles)
	m.requests.SetFocused(focused && m.activePanel == PanelRequests)
}

// drainErrors moves swallowed background errors onto the status line.
func (m *Model) drainErrors() {
	if msgs := m.errors.Drain(); len(msgs) > 0 {
		m.statusMsg = msgs[len(msgs)-1]
	}
}
