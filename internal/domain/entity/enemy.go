package entity

// EnemyKind defines the behaviour of an enemy
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyTracker
	EnemySplitter
)

// String returns the config/save name of the kind
func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyTracker:
		return "tracker"
	case EnemySplitter:
		return "splitter"
	default:
		return "unknown"
	}
}

// ParseEnemyKind converts a config/save name into an EnemyKind
func ParseEnemyKind(s string) (EnemyKind, bool) {
	for _, k := range []EnemyKind{EnemyBasic, EnemyTracker, EnemySplitter} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// NoTarget marks an enemy that does not follow a player
const NoTarget = -1

// Enemy represents an enemy entity
type Enemy struct {
	ID EntityID
	Body
	VX, VY  float64
	Kind    EnemyKind
	Faction Faction
	Active  bool

	Health    int
	MaxHealth int

	// FireCooldown counts down to the next shot; zero fires on the first tick
	FireCooldown float64
	// Target is the player index a tracker follows, NoTarget otherwise
	Target int
	// Generation counts how many splits produced this enemy
	Generation int
}

// NewEnemy creates a new enemy
func NewEnemy(id EntityID, kind EnemyKind, faction Faction, x, y, vx, vy, width, height float64, health int) *Enemy {
	return &Enemy{
		ID:        id,
		Body:      Body{X: x, Y: y, Width: width, Height: height},
		VX:        vx,
		VY:        vy,
		Kind:      kind,
		Faction:   faction,
		Active:    true,
		Health:    health,
		MaxHealth: health,
		Target:    NoTarget,
	}
}

// Move integrates the position by one step
func (e *Enemy) Move(dt float64) {
	e.X += e.VX * dt
	e.Y += e.VY * dt
}

// TakeHit removes one point of health and reports whether the enemy died
func (e *Enemy) TakeHit() bool {
	e.Health--
	return e.Health <= 0
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.Health > 0 && e.Active
}

// SplitVelocities returns the velocities of the two children of a splitter:
// its own velocity rotated by +90 and -90 degrees.
func (e *Enemy) SplitVelocities() (left, right [2]float64) {
	return [2]float64{-e.VY, e.VX}, [2]float64{e.VY, -e.VX}
}

// Deactivate marks the enemy as removed
func (e *Enemy) Deactivate() {
	e.Active = false
}
