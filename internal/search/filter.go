package search

// ApplyVisibility enforces the privileged-viewer policy on a result
// set: user results and draft/test events are dropped for
// non-privileged viewers. Pure function, idempotent, input untouched.
func ApplyVisibility(rs ResultSet, privileged bool) ResultSet {
	out := NewResultSet()
	for c, items := range rs {
		if privileged {
			if len(items) > 0 {
				out[c] = append([]Item(nil), items...)
			}
			continue
		}
		var kept []Item
		for _, it := range items {
			if it.Hidden() {
				continue
			}
			kept = append(kept, it)
		}
		if len(kept) > 0 {
			out[c] = kept
		}
	}
	return out
}
