package config

import (
	"time"

	"github.com/lvasseur/boxoffice/internal/search"
)

// Debounce returns the profile's quiet period as a duration.
func (p ProfileConfig) Debounce() time.Duration {
	return time.Duration(p.DebounceMs) * time.Millisecond
}

// SearchProfile converts the file representation into the typed
// profile consumed by the aggregator. Unknown category names in the
// caps table are ignored; the "default" key applies to every category
// without an explicit cap.
func (p ProfileConfig) SearchProfile() search.Profile {
	caps := make(map[search.Category]int)
	for name, n := range p.Caps {
		if name == "default" || n <= 0 {
			continue
		}
		if c, ok := search.CategoryFromString(name); ok {
			caps[c] = n
		}
	}
	if def := p.DefaultCap(); def > 0 {
		for _, c := range search.Categories {
			if _, ok := caps[c]; !ok {
				caps[c] = def
			}
		}
	}

	upcoming := false
	if p.UpcomingOnly != nil {
		upcoming = *p.UpcomingOnly
	}

	return search.Profile{
		MinQueryLen:  p.MinQueryLen,
		Caps:         caps,
		UpcomingOnly: upcoming,
	}
}
