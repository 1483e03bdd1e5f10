package entity

// Player represents a human-controlled ship
type Player struct {
	Body

	// Number is the zero-based player index, fixed for the match
	Number  int
	Faction Faction

	Health    int
	MaxHealth int

	// Timers
	FireCooldown float64

	SpawnX, SpawnY float64

	keys [numDirections]bool
}

// NewPlayer creates a new player at its spawn point with full health
func NewPlayer(number int, faction Faction, spawnX, spawnY, width, height float64, maxHealth int) *Player {
	return &Player{
		Body:      Body{X: spawnX, Y: spawnY, Width: width, Height: height},
		Number:    number,
		Faction:   faction,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		SpawnX:    spawnX,
		SpawnY:    spawnY,
	}
}

// OnKey records that a logical control was pressed or released
func (p *Player) OnKey(dir Direction, pressed bool) {
	if dir < 0 || dir >= numDirections {
		return
	}
	p.keys[dir] = pressed
}

// Pressed reports whether a logical control is held
func (p *Player) Pressed(dir Direction) bool {
	if dir < 0 || dir >= numDirections {
		return false
	}
	return p.keys[dir]
}

// ReleaseAll clears the key state (used after loading a snapshot)
func (p *Player) ReleaseAll() {
	p.keys = [numDirections]bool{}
}

// Move applies the held directions at speed units/sec and keeps the ship on
// screen. Diagonal movement is not normalized.
func (p *Player) Move(dt, speed float64) {
	p.X += (boolToFloat(p.keys[DirRight]) - boolToFloat(p.keys[DirLeft])) * speed * dt
	p.Y += (boolToFloat(p.keys[DirUp]) - boolToFloat(p.keys[DirDown])) * speed * dt
	p.KeepOnScreen()
}

// TakeHit removes one point of health. When health runs out the player is
// restored at its spawn point and true is returned (a life is lost).
func (p *Player) TakeHit() bool {
	p.Health--
	if p.Health > 0 {
		return false
	}
	p.Respawn()
	return true
}

// Respawn restores full health at the spawn point
func (p *Player) Respawn() {
	p.Health = p.MaxHealth
	p.X = p.SpawnX
	p.Y = p.SpawnY
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
