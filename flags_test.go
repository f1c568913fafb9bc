package sokoban

import "testing"

func TestCellFlagPredicates(t *testing.T) {
	cases := []struct {
		name           string
		f              CellFlag
		wall, space, v bool
	}{
		{"wall", Wall, true, false, false},
		{"space", Space, false, true, false},
		{"valid-space", Space | Valid, false, true, true},
	}
	for _, c := range cases {
		if got := c.f.IsWall(); got != c.wall {
			t.Errorf("%s: IsWall() = %v, want %v", c.name, got, c.wall)
		}
		if got := c.f.IsSpace(); got != c.space {
			t.Errorf("%s: IsSpace() = %v, want %v", c.name, got, c.space)
		}
		if got := c.f.IsValid(); got != c.v {
			t.Errorf("%s: IsValid() = %v, want %v", c.name, got, c.v)
		}
	}
}

func TestCellFlagString(t *testing.T) {
	if Wall.String() != "#" {
		t.Errorf("Wall.String() = %q, want %q", Wall.String(), "#")
	}
	if Space.String() != " " {
		t.Errorf("Space.String() = %q, want %q", Space.String(), " ")
	}
	if (Space | Valid).String() != " " {
		t.Errorf("(Space|Valid).String() = %q, want %q (Valid cells render as plain floor)", (Space | Valid).String(), " ")
	}
}
