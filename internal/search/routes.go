package search

import "strings"

// routeTemplates maps each category to its admin route template.
// The placeholder is substituted with the entity id on navigation.
var routeTemplates = map[Category]string{
	CategoryOrganization: "/organizations/{id}",
	CategoryUser:         "/admin/users/{id}",
	CategoryArtist:       "/artists/{id}",
	CategoryVenue:        "/venues/{id}",
	CategoryEvent:        "/events/{id}",
	CategoryRecording:    "/recordings/{id}",
}

// Route returns the navigation route for an entity of the given category.
func Route(c Category, id string) string {
	tmpl, ok := routeTemplates[c]
	if !ok {
		return "/"
	}
	return strings.Replace(tmpl, "{id}", id, 1)
}
