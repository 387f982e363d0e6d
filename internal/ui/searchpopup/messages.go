package searchpopup

import "github.com/lvasseur/boxoffice/internal/search"

// DebounceMsg is sent after the debounce delay. Surface names the
// popup instance that armed the timer; Version invalidates stale
// timers when rapid keystrokes occur.
type DebounceMsg struct {
	Surface string
	Version int
}

// ResultsMsg carries one search response. A popup drops responses from
// another surface and responses whose RequestID no longer matches its
// latest request.
type ResultsMsg struct {
	Surface   string
	RequestID int64
	Results   search.ResultSet
}

// SelectedMsg is emitted when the user picks a result or recent record.
type SelectedMsg struct {
	Item       search.Item
	FromRecent bool
}

// ClosedMsg is emitted when the popup is dismissed without a selection.
type ClosedMsg struct{}
