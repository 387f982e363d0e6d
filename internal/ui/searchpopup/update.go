package searchpopup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/search"
	"github.com/lvasseur/boxoffice/internal/ui/popup"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case DebounceMsg:
		return m.handleDebounce(msg)

	case ResultsMsg:
		return m.handleResults(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (popup.Popup, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Reset()
		return m, func() tea.Msg { return ClosedMsg{} }

	case "up", "ctrl+p":
		m.cursor.Move(-1, m.selectableCount(), m.listHeight())
		return m, nil

	case "down", "ctrl+n":
		m.cursor.Move(1, m.selectableCount(), m.listHeight())
		return m, nil

	case "enter":
		return m.selectCurrent()

	case "ctrl+x":
		m.removeSelectedRecent()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.onQueryChanged())
	}
	return m, cmd
}

// onQueryChanged invalidates pending timers and in-flight lookups,
// then schedules a fresh debounce when the query is long enough.
func (m *Model) onQueryChanged() tea.Cmd {
	m.query = strings.TrimSpace(m.input.Value())
	m.debounceVersion++
	m.requestID++
	m.pending = false

	if m.showingRecents() {
		m.results = nil
		m.rebuildRows()
		return nil
	}
	return debounceCmd(m.surface, m.debounce, m.debounceVersion)
}

func (m *Model) handleDebounce(msg DebounceMsg) (popup.Popup, tea.Cmd) {
	if msg.Surface != m.surface || msg.Version != m.debounceVersion {
		return m, nil
	}
	if m.showingRecents() {
		return m, nil
	}
	m.requestID++
	m.pending = true
	return m, searchCmd(m.surface, m.searcher, m.query, m.privileged, m.requestID)
}

func (m *Model) handleResults(msg ResultsMsg) (popup.Popup, tea.Cmd) {
	if msg.Surface != m.surface || msg.RequestID != m.requestID {
		return m, nil
	}
	m.pending = false
	m.results = msg.Results
	m.rebuildRows()
	return m, nil
}

// selectCurrent emits the navigation message for the row under the
// cursor. Recording the visit in the recent list is the consumer's
// job, so a selection here stays free of storage side effects.
func (m *Model) selectCurrent() (popup.Popup, tea.Cmd) {
	r, ok := m.selectedRow()
	if !ok {
		return m, nil
	}

	var item search.Item
	fromRecent := false
	switch r.kind {
	case rowItem:
		item = r.item
	case rowRecent:
		fromRecent = true
		item = search.Item{
			ID:       r.record.ID,
			Category: r.record.Category,
			Name:     r.record.Name,
			ImageURL: r.record.ImageURL,
			Detail:   r.record.Detail,
		}
	default:
		return m, nil
	}

	m.Reset()
	return m, func() tea.Msg { return SelectedMsg{Item: item, FromRecent: fromRecent} }
}

// removeSelectedRecent drops the recent record under the cursor.
// Outside recent mode the key is ignored.
func (m *Model) removeSelectedRecent() {
	r, ok := m.selectedRow()
	if !ok || r.kind != rowRecent {
		return
	}
	m.recents.Remove(r.record.ID, r.record.Category)
	m.rebuildRows()
}
