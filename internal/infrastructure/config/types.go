package config

// GameSettings is the root config for game.json
type GameSettings struct {
	Display DisplayConfig `json:"display"`
	Rules   RulesConfig   `json:"rules"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	TickRate     int    `json:"tickRate"`
}

// RulesConfig holds the gameplay balance knobs
type RulesConfig struct {
	StartingLives int            `json:"startingLives"`
	WinScore      WinScoreConfig `json:"winScore"`

	// ContactHitsToPlayer is how many hits a player takes when an enemy rams it
	ContactHitsToPlayer int `json:"contactHitsToPlayer"`

	// BounceLimit deletes bouncy/homing bullets after this many bounces.
	// 0 = bounce until off screen.
	BounceLimit int `json:"bounceLimit"`

	// SplitDepth stops splitters from splitting after this many generations.
	// 0 = always split.
	SplitDepth int `json:"splitDepth"`

	HardHealthMultiplier int `json:"hardHealthMultiplier"`

	// StatusDuration is how long (seconds) a status line stays visible
	StatusDuration float64 `json:"statusDuration"`
}

// WinScoreConfig is the score that wins the game on the final level
type WinScoreConfig struct {
	Normal int `json:"normal"`
	Hard   int `json:"hard"`
}

// TickDT returns the fixed simulation step in seconds
func (d DisplayConfig) TickDT() float64 {
	if d.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(d.TickRate)
}
