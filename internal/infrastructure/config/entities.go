package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player  PlayerConfig           `json:"player"`
	Bullet  BulletConfig           `json:"bullet"`
	Enemies map[string]EnemyConfig `json:"enemies"`
}

// SizeConfig is a sprite's box in world units
type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PositionConfig is a world position
type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlayerConfig describes the player ships
type PlayerConfig struct {
	Size         SizeConfig `json:"size"`
	Speed        float64    `json:"speed"`
	MaxHealth    int        `json:"maxHealth"`
	FireCooldown float64    `json:"fireCooldown"`
	BulletSpeed  float64    `json:"bulletSpeed"`
	// Spawns holds one spawn point per player number
	Spawns []PositionConfig `json:"spawns"`
}

// BulletConfig is shared by every bullet kind
type BulletConfig struct {
	Size SizeConfig `json:"size"`
}

// EnemyConfig is keyed by enemy kind name ("basic", "tracker", "splitter")
type EnemyConfig struct {
	Size         SizeConfig `json:"size"`
	Health       int        `json:"health"`
	FireCooldown float64    `json:"fireCooldown"`
	BulletSpeed  float64    `json:"bulletSpeed"`
}

// Spawn returns the spawn point of a player, reusing the last one if the
// config lists fewer points than players.
func (p PlayerConfig) Spawn(number int) PositionConfig {
	if len(p.Spawns) == 0 {
		return PositionConfig{X: p.Size.Width / 2, Y: p.Size.Height / 2}
	}
	if number >= len(p.Spawns) {
		return p.Spawns[len(p.Spawns)-1]
	}
	return p.Spawns[number]
}

func (s SizeConfig) valid() bool {
	return s.Width > 0 && s.Height > 0
}
