package hashi

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("counts islands", func(t *testing.T) {
		b, err := Parse(fixture(t, "easy_7x7.txt"))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got := b.NodeCount(); got != 13 {
			t.Errorf("NodeCount = %d, want 13", got)
		}
	})

	t.Run("tolerates carriage returns", func(t *testing.T) {
		b, err := Parse("2 2\r\n")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got := b.NodeCount(); got != 2 {
			t.Errorf("NodeCount = %d, want 2", got)
		}
	})

	t.Run("rejects unresolved clue", func(t *testing.T) {
		_, err := Parse("2?")
		if !errors.Is(err, ErrUnresolvedClue) {
			t.Errorf("err = %v, want ErrUnresolvedClue", err)
		}
	})

	t.Run("rejects zero", func(t *testing.T) {
		if _, err := Parse("2 0"); err == nil {
			t.Error("expected error for clue 0")
		}
	})

	t.Run("rejects junk", func(t *testing.T) {
		if _, err := Parse("2x2"); err == nil {
			t.Error("expected error for non-clue character")
		}
	})
}

func TestBoardSpans(t *testing.T) {
	cases := []struct {
		name  string
		board string
		edges int
	}{
		{"row with intermediate island", "2 1 2", 2},
		{"adjacent islands leave no room", "11", 0},
		{"span blocked by adjacent island", "21 2", 1},
		{"column with intermediate island", "2\n \n1\n \n2", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Parse(tc.board)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := len(b.edges); got != tc.edges {
				t.Errorf("got %d spans, want %d", got, tc.edges)
			}
		})
	}
}

func TestEdgeIntersections(t *testing.T) {
	v := func(x, lo, hi int) edge { return edge{fixed: x, lo: lo, hi: hi} }
	h := func(y, lo, hi int) edge { return edge{horizontal: true, fixed: y, lo: lo, hi: hi} }

	cases := []struct {
		name string
		a, b edge
		want bool
	}{
		{"vertical overlap", v(0, 0, 3), v(0, 2, 4), true},
		{"vertical endpoint touch", v(0, 0, 2), v(0, 2, 4), false},
		{"vertical shared start", v(0, 2, 5), v(0, 2, 4), false},
		{"horizontal overlap", h(0, 0, 3), h(0, 2, 4), true},
		{"horizontal endpoint touch", h(0, 0, 2), h(0, 2, 4), false},
		{"horizontal shared start", h(0, 2, 5), h(0, 2, 4), false},
		{"perpendicular crossing", v(1, 0, 2), h(1, 0, 2), true},
		{"vertical at endpoint column", v(2, 0, 2), h(1, 0, 2), false},
		{"horizontal at endpoint row", v(1, 0, 2), h(2, 0, 2), false},
	}
	for _, tc := range cases {
		if got := tc.a.intersects(tc.b); got != tc.want {
			t.Errorf("%s: intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRender(t *testing.T) {
	t.Run("horizontal glyphs", func(t *testing.T) {
		b, err := Parse("2 2")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got := b.Render(nil); got != "2 2\n" {
			t.Errorf("empty = %q", got)
		}
		if got := b.Render([]int{0}); got != "2-2\n" {
			t.Errorf("single = %q", got)
		}
		if got := b.Render([]int{0, 0}); got != "2=2\n" {
			t.Errorf("double = %q", got)
		}
	})

	t.Run("vertical glyphs", func(t *testing.T) {
		b, err := Parse("2\n \n2")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got := b.Render([]int{0}); got != "2\n|\n2\n" {
			t.Errorf("single = %q", got)
		}
		if got := b.Render([]int{0, 0}); got != "2\n‖\n2\n" {
			t.Errorf("double = %q", got)
		}
	})

	t.Run("collision marker", func(t *testing.T) {
		b, err := Parse(" 2 \n2 2\n 2 ")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if len(b.edges) != 2 {
			t.Fatalf("got %d spans, want 2", len(b.edges))
		}
		if got := b.Render([]int{0, 1}); got != " 2 \n2+2\n 2 \n" {
			t.Errorf("crossed = %q", got)
		}
	})

	t.Run("blank rows collapse to bare newlines", func(t *testing.T) {
		b, err := Parse("\n\n2 2")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got := b.Render(nil); got != "\n\n2 2\n" {
			t.Errorf("got %q", got)
		}
	})
}
