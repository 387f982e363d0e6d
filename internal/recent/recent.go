// Package recent remembers the last entities an operator opened from
// global search, independent of the platform session. The list lives
// in the client-local state store as a JSON array under a fixed key.
package recent

import (
	"encoding/json"
	"time"

	"github.com/lvasseur/boxoffice/internal/search"
)

const (
	// Cap is the maximum number of remembered records.
	Cap = 10

	storageKey = "recent_records"
)

// Record points at a previously visited entity.
type Record struct {
	ID        string          `json:"id"`
	Category  search.Category `json:"category"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	Detail    string          `json:"detail,omitempty"`
	VisitedAt time.Time       `json:"visited_at"`
}

// Storage is the key-value persistence consumed by the list. The
// state manager satisfies it.
type Storage interface {
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}

// List is the bounded most-recent-first record list. Every operation
// is synchronous and never returns an error: storage failures degrade
// to an empty list and are reported through onError only.
type List struct {
	storage Storage
	now     func() time.Time
	onError func(error)
}

// Option configures a List.
type Option func(*List)

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *List) { l.now = now }
}

// WithErrorHook installs a hook receiving swallowed storage errors.
func WithErrorHook(fn func(error)) Option {
	return func(l *List) { l.onError = fn }
}

// NewList creates a record list over the given storage.
func NewList(storage Storage, opts ...Option) *List {
	l := &List{storage: storage, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record inserts rec at the front, dropping any previous entry with
// the same (id, category) and truncating to Cap. Persisted immediately.
func (l *List) Record(rec Record) {
	if rec.VisitedAt.IsZero() {
		rec.VisitedAt = l.now()
	}

	records := l.All()
	kept := make([]Record, 0, len(records)+1)
	kept = append(kept, rec)
	for _, r := range records {
		if r.ID == rec.ID && r.Category == rec.Category {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) > Cap {
		kept = kept[:Cap]
	}
	l.save(kept)
}

// Remove drops the entry matching (id, category) if present.
// Used when the underlying entity is deleted elsewhere.
func (l *List) Remove(id string, category search.Category) {
	records := l.All()
	kept := records[:0]
	changed := false
	for _, r := range records {
		if r.ID == id && r.Category == category {
			changed = true
			continue
		}
		kept = append(kept, r)
	}
	if changed {
		l.save(kept)
	}
}

// All returns the current list, most-recent-first. Corrupt or missing
// storage yields an empty list, never an error.
func (l *List) All() []Record {
	raw, err := l.storage.GetValue(storageKey)
	if err != nil {
		l.report(err)
		return nil
	}
	if raw == "" {
		return nil
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		l.report(err)
		return nil
	}
	if len(records) > Cap {
		records = records[:Cap]
	}
	return records
}

func (l *List) save(records []Record) {
	raw, err := json.Marshal(records)
	if err != nil {
		l.report(err)
		return
	}
	if err := l.storage.SetValue(storageKey, string(raw)); err != nil {
		l.report(err)
	}
}

func (l *List) report(err error) {
	if l.onError != nil {
		l.onError(err)
	}
}
