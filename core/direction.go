package core

// Direction is one of the four cardinal headings
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Opposite returns the heading that reverses d
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the unit step for d; North decrements y, South increments it
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// MarshalText encodes the heading by name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection maps a lowercase heading name to a Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	}
	return North, false
}
