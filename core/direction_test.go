package core

import "testing"

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{North: South, South: North, East: West, West: East}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	start := Point{X: 5, Y: 5}
	expected := map[Direction]Point{
		North: {5, 4},
		South: {5, 6},
		East:  {6, 5},
		West:  {4, 5},
	}
	for d, want := range expected {
		dx, dy := d.Delta()
		if got := start.Add(dx, dy); got != want {
			t.Errorf("%v from %v: got %v, want %v", d, start, got, want)
		}
	}

	// Stepping off the origin must go negative instead of wrapping
	dx, dy := West.Delta()
	if got := (Point{}).Add(dx, dy); got.X != -1 {
		t.Errorf("Expected x=-1 moving west from origin, got %v", got)
	}
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"north", "south", "east", "west"} {
		d, ok := ParseDirection(name)
		if !ok {
			t.Errorf("ParseDirection(%q) failed", name)
			continue
		}
		if d.String() != name {
			t.Errorf("Round trip mismatch: %q -> %v", name, d)
		}
	}
	if _, ok := ParseDirection("up"); ok {
		t.Error("Expected ParseDirection(\"up\") to fail")
	}
}
