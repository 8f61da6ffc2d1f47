package common

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestClampLinesToWidth(t *testing.T) {
	got := ClampLinesToWidth("short\na much longer line here", 10)
	if got != "short\na much lo…" {
		t.Fatalf("unexpected clamp: %q", got)
	}
	if ansi.StringWidth("a much lo…") != 10 {
		t.Fatalf("clamped line should fit the width")
	}
	if got := ClampLinesToWidth("unchanged", 0); got != "unchanged" {
		t.Fatalf("zero width should be a no-op: %q", got)
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		n, sel, h  int
		start, end int
	}{
		{5, 0, 10, 0, 5},
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
		{3, 1, 0, 0, 3},
	}
	for _, c := range cases {
		s, e := Window(c.n, c.sel, c.h)
		if s != c.start || e != c.end {
			t.Fatalf("Window(%d,%d,%d) = %d,%d want %d,%d", c.n, c.sel, c.h, s, e, c.start, c.end)
		}
	}
}
