package theme

import "testing"

func TestTierColorBoundaries(t *testing.T) {
	th := FlexokiDark

	cases := []struct {
		pct  int
		want string
	}{
		{0, string(th.Green)},
		{69, string(th.Green)},
		{70, string(th.Orange)},
		{90, string(th.Orange)},
		{91, string(th.Red)},
		{140, string(th.Red)},
	}
	for _, tc := range cases {
		if got := string(th.TierColor(tc.pct)); got != tc.want {
			t.Fatalf("TierColor(%d) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Fatalf("ByName fallback = %q, want %q", got.Name, FlexokiDark.Name)
	}
	if got := ByName("catppuccin-mocha"); got.Name != "catppuccin-mocha" {
		t.Fatalf("ByName = %q, want catppuccin-mocha", got.Name)
	}
}

func TestSetActive(t *testing.T) {
	prev := Active.Name
	defer SetActive(prev)

	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Fatalf("Active = %q after SetActive, want terminal", Active.Name)
	}
}
