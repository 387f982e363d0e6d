package render

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean string untouched", "Blue Hall", "Blue Hall"},
		{"control chars stripped", "Blue\x00Hall\x07", "BlueHall"},
		{"tab preserved", "a\tb", "a\tb"},
		{"nbsp becomes space", "Blue Hall", "Blue Hall"},
		{"invalid utf8 dropped", "ok\xffok", "okok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		maxWidth int
		want     string
	}{
		{"short", 10, "short"},
		{"a very long event title", 10, "a very ..."},
		{"", 5, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.maxWidth); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
		}
	}
}

func TestTruncateAndPad(t *testing.T) {
	got := TruncateAndPad("ab", 5)
	if got != "ab   " {
		t.Errorf("TruncateAndPad short = %q", got)
	}
	if len(TruncateAndPad("abcdefgh", 5)) != 5 {
		t.Errorf("TruncateAndPad long should be exactly 5 wide")
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 15)
	want := "left      right"
	if got != want {
		t.Errorf("Row() = %q, want %q", got, want)
	}

	// Overflow keeps a minimum single-space gap.
	got = Row("verylongleft", "right", 10)
	if got != "verylongleft right" {
		t.Errorf("Row() overflow = %q", got)
	}
}
