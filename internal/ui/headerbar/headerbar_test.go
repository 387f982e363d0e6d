package headerbar

import (
	"strings"
	"testing"

	"github.com/lvasseur/boxoffice/internal/ui/testutil"
)

func TestRenderContainsTabs(t *testing.T) {
	out := testutil.StripANSI(Render("flags", 100, true))

	for _, want := range []string{"boxoffice", "F1 Flags", "F2 Fees", "F3 Roles", "F4 Requests"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q: %q", want, out)
		}
	}
}

func TestRenderHidesRequestsTab(t *testing.T) {
	out := testutil.StripANSI(Render("flags", 100, false))
	if strings.Contains(out, "Requests") {
		t.Errorf("requests tab should be hidden: %q", out)
	}
}

func TestRenderNarrowWidth(t *testing.T) {
	if Render("flags", 10, true) != "" {
		t.Error("narrow header should render empty")
	}
}
