package searchpopup

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceCmd schedules a DebounceMsg tagged with the owning surface
// and the version that armed it.
func debounceCmd(surface string, delay time.Duration, version int) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return DebounceMsg{Surface: surface, Version: version}
	})
}

// searchCmd runs the fan-out off the update loop and tags the response
// with the surface and request id it answers.
func searchCmd(surface string, s Searcher, query string, privileged bool, requestID int64) tea.Cmd {
	return func() tea.Msg {
		results := s.Search(context.Background(), query, privileged)
		return ResultsMsg{Surface: surface, RequestID: requestID, Results: results}
	}
}
