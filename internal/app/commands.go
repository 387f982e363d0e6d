package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/search"
	"github.com/lvasseur/boxoffice/internal/stderr"
)

// StderrMsg carries one captured stderr line.
type StderrMsg struct {
	Line string
}

// VisitRefreshedMsg carries the fresh snapshot of an entity opened
// from the recent list, or the lookup failure.
type VisitRefreshedMsg struct {
	Item search.Item
	Err  error
}

// refreshVisitCmd re-reads an entity opened from the recent list so
// the cached name and detail stay current.
func refreshVisitCmd(store Store, item search.Item) tea.Cmd {
	return func() tea.Msg {
		fresh, err := store.GetItem(context.Background(), item.Category, item.ID)
		if err != nil {
			return VisitRefreshedMsg{Item: item, Err: err}
		}
		return VisitRefreshedMsg{Item: fresh}
	}
}

// WatchStderr returns a command that waits for captured stderr output.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil // Channel closed
		}
		return StderrMsg{Line: line}
	}
}
