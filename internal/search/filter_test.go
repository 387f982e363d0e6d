package search

import (
	"reflect"
	"testing"
)

func sampleResultSet() ResultSet {
	return ResultSet{
		CategoryUser: {
			{ID: "u1", Category: CategoryUser, Name: "Ada", Detail: "ada@example.com"},
		},
		CategoryEvent: {
			{ID: "e1", Category: CategoryEvent, Name: "Opening Night", Status: EventStatusPublished},
			{ID: "e2", Category: CategoryEvent, Name: "Dress Rehearsal", Status: EventStatusDraft},
			{ID: "e3", Category: CategoryEvent, Name: "Load Test Gig", Status: EventStatusTest},
		},
		CategoryArtist: {
			{ID: "a1", Category: CategoryArtist, Name: "The Quartet"},
		},
	}
}

func TestApplyVisibilityNonPrivileged(t *testing.T) {
	rs := ApplyVisibility(sampleResultSet(), false)

	if len(rs[CategoryUser]) != 0 {
		t.Errorf("users must be excluded for non-privileged viewers")
	}
	if got := len(rs[CategoryEvent]); got != 1 {
		t.Fatalf("expected 1 published event, got %d", got)
	}
	if rs[CategoryEvent][0].ID != "e1" {
		t.Errorf("expected published event e1, got %s", rs[CategoryEvent][0].ID)
	}
	if len(rs[CategoryArtist]) != 1 {
		t.Errorf("artists must pass through unchanged")
	}
}

func TestApplyVisibilityPrivileged(t *testing.T) {
	in := sampleResultSet()
	rs := ApplyVisibility(in, true)

	if !reflect.DeepEqual(rs, in) {
		t.Errorf("privileged viewer must see the full result set")
	}
}

func TestApplyVisibilityIdempotent(t *testing.T) {
	for _, privileged := range []bool{false, true} {
		once := ApplyVisibility(sampleResultSet(), privileged)
		twice := ApplyVisibility(once, privileged)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("privileged=%v: filter is not idempotent", privileged)
		}
	}
}

func TestApplyVisibilityDoesNotMutateInput(t *testing.T) {
	in := sampleResultSet()
	ApplyVisibility(in, false)

	if got := len(in[CategoryEvent]); got != 3 {
		t.Errorf("input result set was mutated: %d events left", got)
	}
	if got := len(in[CategoryUser]); got != 1 {
		t.Errorf("input result set was mutated: %d users left", got)
	}
}
