package search

import "time"

// Event status values as stored by the platform. Draft and test events
// are only visible to privileged viewers.
const (
	EventStatusPublished = "published"
	EventStatusDraft     = "draft"
	EventStatusTest      = "test"
)

// Item is an immutable snapshot of an entity at query time.
// Detail carries the category-specific secondary line (user email,
// venue city, recording platform, ...).
type Item struct {
	ID       string
	Category Category
	Name     string
	ImageURL string
	Detail   string

	// Event-only fields.
	StartsAt time.Time
	Status   string
}

// Hidden reports whether the item must not be shown to a
// non-privileged viewer.
func (it Item) Hidden() bool {
	if it.Category == CategoryUser {
		return true
	}
	if it.Category == CategoryEvent {
		return it.Status == EventStatusDraft || it.Status == EventStatusTest
	}
	return false
}

// ResultSet maps each category to its ordered result list.
// Order within a category follows the store's ranking; categories are
// independent, there is no cross-category merge.
type ResultSet map[Category][]Item

// NewResultSet returns an empty result set with no category lists.
func NewResultSet() ResultSet {
	return make(ResultSet, len(Categories))
}

// Total returns the number of items across all categories.
func (rs ResultSet) Total() int {
	n := 0
	for _, items := range rs {
		n += len(items)
	}
	return n
}

// Empty reports whether no category has results.
func (rs ResultSet) Empty() bool {
	return rs.Total() == 0
}
