package icons

import "github.com/lvasseur/boxoffice/internal/search"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Organization string
	User         string
	Artist       string
	Venue        string
	Event        string
	Recording    string
	Flag         string
	Clock        string
	Check        string
	Cross        string
}

var (
	nerdIcons = Icons{
		Organization: " ", // nf-fa-building
		User:         " ", // nf-fa-user
		Artist:       " ", // nf-fa-music
		Venue:        " ", // nf-fa-map_marker
		Event:        " ", // nf-fa-calendar
		Recording:    " ", // nf-fa-video_camera
		Flag:         " ", // nf-fa-flag
		Clock:        " ", // nf-fa-clock_o
		Check:        "",  // nf-fa-check
		Cross:        "",  // nf-fa-close
	}

	unicodeIcons = Icons{
		Organization: "🏢 ",
		User:         "👤 ",
		Artist:       "🎤 ",
		Venue:        "📍 ",
		Event:        "📅 ",
		Recording:    "🎬 ",
		Flag:         "🚩 ",
		Clock:        "⏱ ",
		Check:        "✓",
		Cross:        "✗",
	}

	noneIcons = Icons{
		Check: "y",
		Cross: "n",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

// ForCategory returns the icon for a search category.
func ForCategory(c search.Category) string {
	switch c {
	case search.CategoryOrganization:
		return current.Organization
	case search.CategoryUser:
		return current.User
	case search.CategoryArtist:
		return current.Artist
	case search.CategoryVenue:
		return current.Venue
	case search.CategoryEvent:
		return current.Event
	case search.CategoryRecording:
		return current.Recording
	}
	return ""
}
