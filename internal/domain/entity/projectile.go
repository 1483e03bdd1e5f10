package entity

import "math"

// BulletKind selects the per-tick steering of a bullet
type BulletKind int

const (
	BulletStraight BulletKind = iota
	BulletBouncy
	BulletHoming
)

// String returns the config/save name of the kind
func (k BulletKind) String() string {
	switch k {
	case BulletStraight:
		return "straight"
	case BulletBouncy:
		return "bouncy"
	case BulletHoming:
		return "homing"
	default:
		return "unknown"
	}
}

// ParseBulletKind converts a save name into a BulletKind
func ParseBulletKind(s string) (BulletKind, bool) {
	for _, k := range []BulletKind{BulletStraight, BulletBouncy, BulletHoming} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Bullet represents a projectile fired by a player or an enemy
type Bullet struct {
	ID EntityID
	Body
	VX, VY  float64
	Kind    BulletKind
	Faction Faction
	// OwnedByPlayer is fixed at creation: faction == the players' faction
	OwnedByPlayer bool
	Bounces       int
	Active        bool
}

// NewBullet creates a new bullet centered at x, y
func NewBullet(id EntityID, kind BulletKind, faction Faction, ownedByPlayer bool, x, y, vx, vy, width, height float64) *Bullet {
	return &Bullet{
		ID:            id,
		Body:          Body{X: x, Y: y, Width: width, Height: height},
		VX:            vx,
		VY:            vy,
		Kind:          kind,
		Faction:       faction,
		OwnedByPlayer: ownedByPlayer,
		Active:        true,
	}
}

// Move integrates the position by one step
func (b *Bullet) Move(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Speed returns the magnitude of the velocity
func (b *Bullet) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Redirect points the bullet at (x, y) keeping its current speed
func (b *Bullet) Redirect(x, y float64) {
	b.VX, b.VY = b.Aim(x, y, b.Speed())
}

// Rotation returns the display rotation in degrees, clockwise from up
func (b *Bullet) Rotation() float64 {
	return 90 - math.Atan2(b.VY, b.VX)*180/math.Pi
}

// Deactivate marks the bullet as removed
func (b *Bullet) Deactivate() {
	b.Active = false
}
