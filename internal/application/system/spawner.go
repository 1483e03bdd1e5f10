package system

import (
	"github.com/younwookim/gone/internal/domain/entity"
)

// LevelKind selects the wave schedule of a spawner
type LevelKind int

const (
	Level1 LevelKind = iota
	Level2
	Level3
)

// String returns the config name of the level kind
func (k LevelKind) String() string {
	switch k {
	case Level1:
		return "level1"
	case Level2:
		return "level2"
	case Level3:
		return "level3"
	default:
		return "unknown"
	}
}

// SpawnKind is the outcome of one Spawn call
type SpawnKind int

const (
	// SpawnEmpty means nothing spawned this tick
	SpawnEmpty SpawnKind = iota
	// SpawnWave carries a batch of new enemies
	SpawnWave
	// SpawnLevelComplete means the spawner will not spawn again
	SpawnLevelComplete
)

// SpawnResult is returned by Spawner.Spawn
type SpawnResult struct {
	Kind    SpawnKind
	Enemies []*entity.Enemy
}

// EnemyFactory builds enemies for a spawner and picks their targets.
// Stage implements it.
type EnemyFactory interface {
	NewEnemy(kind entity.EnemyKind, x, y, vx, vy float64) *entity.Enemy
	GetTarget() *entity.Player
}

// Wave schedule constants
const (
	spawnY             = 400.0
	crossingSpeed      = 100.0
	diagonalSpeed      = 70.0
	level1DoubleWave   = 10
	level1FinalWave    = 20
	level2FinalWave    = 10
	level3SplitterWave = 1
)

// Spawner emits the enemy waves of one level.
// Cooldown counts down to the next wave; Waves counts consumed wave slots.
type Spawner struct {
	Kind     LevelKind
	Cooldown float64
	Waves    int

	period  float64
	cap     int
	factory EnemyFactory
}

// NewSpawner creates a spawner that is ready to emit its first wave
func NewSpawner(kind LevelKind, period float64, enemyCap int, factory EnemyFactory) *Spawner {
	return &Spawner{
		Kind:    kind,
		period:  period,
		cap:     enemyCap,
		factory: factory,
	}
}

// Advance runs the wave timer
func (sp *Spawner) Advance(dt float64) {
	sp.Cooldown -= dt
}

// Spawn returns the next wave given the number of enemies alive
func (sp *Spawner) Spawn(current int) SpawnResult {
	switch sp.Kind {
	case Level1:
		return sp.spawnLevel1(current)
	case Level2:
		return sp.spawnLevel2(current)
	case Level3:
		return sp.spawnLevel3(current)
	}
	return SpawnResult{Kind: SpawnLevelComplete}
}

// ready consumes a wave slot when the timer elapsed and the cap allows it
func (sp *Spawner) ready(current int) bool {
	if sp.Cooldown > 0 {
		return false
	}
	if sp.cap > 0 && current >= sp.cap {
		return false
	}
	sp.Cooldown = sp.period
	sp.Waves++
	return true
}

func (sp *Spawner) spawnLevel1(current int) SpawnResult {
	if !sp.ready(current) {
		return SpawnResult{Kind: SpawnEmpty}
	}
	switch {
	case sp.Waves < level1DoubleWave:
		return wave(sp.fromLeft(entity.EnemyBasic, crossingSpeed, 0))
	case sp.Waves < level1FinalWave:
		return wave(
			sp.fromLeft(entity.EnemyBasic, crossingSpeed, 0),
			sp.fromRight(entity.EnemyBasic, -crossingSpeed, 0),
		)
	}
	return SpawnResult{Kind: SpawnLevelComplete}
}

func (sp *Spawner) spawnLevel2(current int) SpawnResult {
	if !sp.ready(current) {
		return SpawnResult{Kind: SpawnEmpty}
	}
	if sp.Waves < level2FinalWave {
		return wave(
			sp.fromLeft(entity.EnemyBasic, diagonalSpeed, -diagonalSpeed),
			sp.fromRight(entity.EnemyBasic, -diagonalSpeed, -diagonalSpeed),
			sp.tracker(),
		)
	}
	return SpawnResult{Kind: SpawnLevelComplete}
}

// spawnLevel3 sends one pair of splitters, then waits for the field to clear
func (sp *Spawner) spawnLevel3(current int) SpawnResult {
	if sp.Waves < level3SplitterWave {
		if !sp.ready(current) {
			return SpawnResult{Kind: SpawnEmpty}
		}
		return wave(
			sp.fromLeft(entity.EnemySplitter, diagonalSpeed, -diagonalSpeed),
			sp.fromRight(entity.EnemySplitter, -diagonalSpeed, -diagonalSpeed),
		)
	}
	if current == 0 {
		return SpawnResult{Kind: SpawnLevelComplete}
	}
	return SpawnResult{Kind: SpawnEmpty}
}

func wave(enemies ...*entity.Enemy) SpawnResult {
	return SpawnResult{Kind: SpawnWave, Enemies: enemies}
}

func (sp *Spawner) fromLeft(kind entity.EnemyKind, vx, vy float64) *entity.Enemy {
	return sp.factory.NewEnemy(kind, 0, spawnY, vx, vy)
}

func (sp *Spawner) fromRight(kind entity.EnemyKind, vx, vy float64) *entity.Enemy {
	return sp.factory.NewEnemy(kind, entity.ScreenWidth, spawnY, vx, vy)
}

// tracker locks a new tracker onto the next round-robin target
func (sp *Spawner) tracker() *entity.Enemy {
	target := sp.factory.GetTarget()
	x := entity.ScreenWidth / 2
	number := entity.NoTarget
	if target != nil {
		x = target.X
		number = target.Number
	}
	e := sp.factory.NewEnemy(entity.EnemyTracker, x, spawnY, 0, -diagonalSpeed)
	e.Target = number
	return e
}
