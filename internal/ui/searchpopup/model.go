// Package searchpopup implements the global cross-entity search popup:
// a debounced query input over the search aggregator, with the recent
// record list shown while the query is empty or too short.
package searchpopup

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/lvasseur/boxoffice/internal/recent"
	"github.com/lvasseur/boxoffice/internal/search"
	"github.com/lvasseur/boxoffice/internal/ui"
	"github.com/lvasseur/boxoffice/internal/ui/cursor"
)

// Searcher runs a cross-entity search. The aggregator satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string, privileged bool) search.ResultSet
	Profile() search.Profile
}

// rowKind distinguishes the display lines of the result list.
type rowKind int

const (
	rowHeader rowKind = iota
	rowItem
	rowRecent
)

// row is one display line: a category header, a result item, or a
// recent record shown while the query is empty.
type row struct {
	kind     rowKind
	category search.Category
	item     search.Item
	record   recent.Record
}

// Model is the search popup.
type Model struct {
	ui.Base

	surface    string
	input      textinput.Model
	searcher   Searcher
	recents    *recent.List
	privileged bool
	debounce   time.Duration

	// Both counters grow monotonically while the popup is open. The
	// debounce version invalidates pending timers on every keystroke;
	// the request id invalidates in-flight lookups so a slow response
	// never overwrites a newer one.
	debounceVersion int
	requestID       int64
	pending         bool

	query   string
	results search.ResultSet
	rows    []row
	cursor  cursor.Cursor
}

// New creates a search popup over the given searcher and recent list.
// The surface name tags every message the instance emits so that two
// concurrently wired popups never consume each other's responses.
func New(surface string, searcher Searcher, recents *recent.List, privileged bool, debounce time.Duration) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search organizations, events, people..."
	ti.CharLimit = 128
	ti.Width = 50

	return &Model{
		surface:    surface,
		input:      ti,
		searcher:   searcher,
		recents:    recents,
		privileged: privileged,
		debounce:   debounce,
		cursor:     cursor.New(0),
	}
}

// Open resets the popup to a blank query and focuses the input.
func (m *Model) Open(width, height int) {
	m.Reset()
	m.SetSize(width, height)
	m.input.Focus()
}

// Reset clears the query, results, selection, and in-flight state.
func (m *Model) Reset() {
	m.input.SetValue("")
	m.input.Blur()
	m.query = ""
	m.results = nil
	m.pending = false
	m.debounceVersion++
	m.requestID++
	m.cursor.Reset()
	m.rebuildRows()
}

// Query returns the current trimmed query.
func (m *Model) Query() string {
	return m.query
}

// Results returns the last applied result set, nil before the first
// response.
func (m *Model) Results() search.ResultSet {
	return m.results
}

// minLen returns the minimum query length for the active profile.
func (m *Model) minLen() int {
	return m.searcher.Profile().MinLen()
}

// showingRecents reports whether the popup is in recent-record mode.
func (m *Model) showingRecents() bool {
	return len([]rune(m.query)) < m.minLen()
}

// rebuildRows regenerates the display rows from the current mode.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]

	if m.showingRecents() {
		for _, rec := range m.recents.All() {
			m.rows = append(m.rows, row{kind: rowRecent, category: rec.Category, record: rec})
		}
		m.cursor.ClampToBounds(m.selectableCount())
		return
	}

	for _, c := range search.Categories {
		items := m.results[c]
		if len(items) == 0 {
			continue
		}
		m.rows = append(m.rows, row{kind: rowHeader, category: c})
		for _, it := range items {
			m.rows = append(m.rows, row{kind: rowItem, category: c, item: it})
		}
	}
	m.cursor.ClampToBounds(m.selectableCount())
}

// selectableCount returns the number of selectable (non-header) rows.
func (m *Model) selectableCount() int {
	n := 0
	for _, r := range m.rows {
		if r.kind != rowHeader {
			n++
		}
	}
	return n
}

// selectedRow returns the selectable row under the cursor.
func (m *Model) selectedRow() (row, bool) {
	idx := 0
	for _, r := range m.rows {
		if r.kind == rowHeader {
			continue
		}
		if idx == m.cursor.Pos() {
			return r, true
		}
		idx++
	}
	return row{}, false
}
