package hmi

import "testing"

func TestDefaultNavigationMapping(t *testing.T) {
	cases := []struct {
		interaction Interaction
		want        Navigation
	}{
		{Action, NavUpdate},
		{Next, NavLeft},
		{Previous, NavRight},
		{Back, NavUp},
		{Home, NavHome},
		{SystemStart, NavSystemStart},
		{SystemStop, NavSystemStop},
	}
	for _, tc := range cases {
		if got := DefaultNavigation(tc.interaction); got != tc.want {
			t.Fatalf("%v: expected %v, got %v", tc.interaction, tc.want, got)
		}
	}
}

func TestNthSubpageCarriesIndex(t *testing.T) {
	if NthSubpage(3).SubpageIndex() != 3 {
		t.Fatalf("expected index 3")
	}
	if NavLeft.SubpageIndex() != 0 {
		t.Fatalf("expected zero index for non-subpage directives")
	}
	if NthSubpage(2) == NthSubpage(3) {
		t.Fatalf("expected distinct directives for distinct indices")
	}
	if NthSubpage(2) != NthSubpage(2) {
		t.Fatalf("expected equal directives to compare equal")
	}
}

func TestNavigationNames(t *testing.T) {
	names := map[Navigation]string{
		NavSystemStart: "system-start",
		NavSystemStop:  "system-stop",
		NavUpdate:      "update",
		NavLeft:        "left",
		NavRight:       "right",
		NavUp:          "up",
		NavHome:        "home",
		NthSubpage(1):  "nth-subpage",
	}
	for nav, want := range names {
		if nav.String() != want {
			t.Fatalf("expected %q, got %q", want, nav.String())
		}
	}
}
