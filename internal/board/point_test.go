package board

import "testing"

func TestPointRoundTrip(t *testing.T) {
	cases := []struct {
		s    string
		x, y int8
	}{
		{"A1", 7, 0},
		{"H1", 0, 0},
		{"a8", 7, 7},
		{"h8", 0, 7},
		{"D4", 4, 3},
	}
	for _, c := range cases {
		p, err := ParsePoint(c.s)
		if err != nil {
			t.Fatalf("ParsePoint(%q): %v", c.s, err)
		}
		if p.X != c.x || p.Y != c.y {
			t.Errorf("ParsePoint(%q) = (%d,%d), want (%d,%d)", c.s, p.X, p.Y, c.x, c.y)
		}
	}
}

func TestPointAdd(t *testing.T) {
	p := NewPoint(2, 3).Add(NewPoint(-1, 1))
	if p.X != 1 || p.Y != 4 {
		t.Errorf("got (%d,%d), want (1,4)", p.X, p.Y)
	}
}

func TestParsePointErrors(t *testing.T) {
	for _, s := range []string{"", "A", "A12", "I1", "A9", "11"} {
		if _, err := ParsePoint(s); err == nil {
			t.Errorf("ParsePoint(%q): expected error, got nil", s)
		}
	}
}
