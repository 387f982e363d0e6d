// Package search implements the cross-entity global search: a fan-out
// aggregator over the platform's entity collections, a role-gated
// visibility filter, and the category/route mapping used for navigation.
package search

import "fmt"

// Category identifies one of the searchable entity collections.
type Category int

const (
	CategoryOrganization Category = iota
	CategoryUser
	CategoryArtist
	CategoryVenue
	CategoryEvent
	CategoryRecording
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryOrganization,
	CategoryUser,
	CategoryArtist,
	CategoryVenue,
	CategoryEvent,
	CategoryRecording,
}

// String returns the stable identifier used in persistence and config.
func (c Category) String() string {
	switch c {
	case CategoryOrganization:
		return "organization"
	case CategoryUser:
		return "user"
	case CategoryArtist:
		return "artist"
	case CategoryVenue:
		return "venue"
	case CategoryEvent:
		return "event"
	case CategoryRecording:
		return "recording"
	}
	return "unknown"
}

// Label returns the section heading shown above a category's results.
func (c Category) Label() string {
	switch c {
	case CategoryOrganization:
		return "Organizations"
	case CategoryUser:
		return "Users"
	case CategoryArtist:
		return "Artists"
	case CategoryVenue:
		return "Venues"
	case CategoryEvent:
		return "Events"
	case CategoryRecording:
		return "Recordings"
	}
	return ""
}

// CategoryFromString parses a stable category identifier.
// Returns false for unknown values (e.g. from corrupted local storage).
func CategoryFromString(s string) (Category, bool) {
	for _, c := range Categories {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler so categories persist
// as stable names rather than iota values.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, ok := CategoryFromString(string(b))
	if !ok {
		return fmt.Errorf("unknown category %q", string(b))
	}
	*c = parsed
	return nil
}
