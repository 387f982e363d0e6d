package platform

import "strings"

// likePattern turns a raw query into a contains-anywhere ILIKE pattern,
// escaping the LIKE metacharacters so user input matches literally.
func likePattern(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(query) + "%"
}
