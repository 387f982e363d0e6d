package app

import (
	"context"

	"github.com/lvasseur/boxoffice/internal/search"
	"github.com/lvasseur/boxoffice/internal/ui/feespanel"
	"github.com/lvasseur/boxoffice/internal/ui/flagspanel"
	"github.com/lvasseur/boxoffice/internal/ui/requestspanel"
	"github.com/lvasseur/boxoffice/internal/ui/rolespanel"
)

// Store is the full platform surface the application consumes. The
// Postgres client satisfies it; tests swap in fakes per panel.
type Store interface {
	search.Store
	flagspanel.Store
	feespanel.Store
	rolespanel.Store
	requestspanel.Store

	// GetItem refreshes one entity snapshot, used when a recent
	// record is opened.
	GetItem(ctx context.Context, c search.Category, id string) (search.Item, error)
}
