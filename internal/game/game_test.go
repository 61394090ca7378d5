package game

import (
	"testing"

	"grocerysim/internal/world"
)

func TestNewWiresLooks(t *testing.T) {
	g, err := New(world.DefaultLayout())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if len(g.looks) != 5 {
		t.Errorf("Expected looks for 3 spots and 2 items, got %d", len(g.looks))
	}
	green, _ := g.World.Spot("green_cube")
	if l := g.looks[green.UID()]; l.size != 2 {
		t.Errorf("Expected green_cube size 2, got %v", l.size)
	}
}

func TestRejectedCommitShowsHint(t *testing.T) {
	g, err := New(world.DefaultLayout())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := g.World.Interact(); err == nil {
		t.Fatal("Expected Interact to fail with nothing in view")
	}

	if !g.Hint.Visible() {
		t.Fatal("Rejected commit should show a hint")
	}
	if g.Hint.Text != "Nothing to interact with" {
		t.Errorf("Unexpected hint '%s'", g.Hint.Text)
	}
}
