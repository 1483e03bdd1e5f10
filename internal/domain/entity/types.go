package entity

// Logical canvas size. Origin is bottom-left, y grows upward.
const (
	ScreenWidth  = 854.0
	ScreenHeight = 480.0
)

// EntityID is a unique identifier for an entity
type EntityID uint32

// Faction is the side a sprite fights for
type Faction int

const (
	FactionEarth Faction = iota
	FactionAlien
)

// Opposite returns the other faction
func (f Faction) Opposite() Faction {
	if f == FactionEarth {
		return FactionAlien
	}
	return FactionEarth
}

// Valid reports whether f is a known faction
func (f Faction) Valid() bool {
	return f == FactionEarth || f == FactionAlien
}

// String returns the plural display name used in menus and save slots
func (f Faction) String() string {
	switch f {
	case FactionEarth:
		return "Earthlings"
	case FactionAlien:
		return "Aliens"
	default:
		return "Unknown"
	}
}

// Difficulty is the game difficulty chosen at match start
type Difficulty int

const (
	DifficultyNormal Difficulty = iota
	DifficultyHard
)

// Valid reports whether d is a known difficulty
func (d Difficulty) Valid() bool {
	return d == DifficultyNormal || d == DifficultyHard
}

// String returns the string representation of the difficulty
func (d Difficulty) String() string {
	switch d {
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Direction is a logical control direction of a player
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirFire

	numDirections
)

// String returns the config key of the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirFire:
		return "fire"
	default:
		return "unknown"
	}
}

// ParseDirection converts a config key back into a Direction
func ParseDirection(s string) (Direction, bool) {
	for d := DirUp; d < numDirections; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}
