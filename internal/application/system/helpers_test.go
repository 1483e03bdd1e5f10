package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

func testConfig() *config.GameConfig {
	enemy := func(w, h float64, health int) config.EnemyConfig {
		return config.EnemyConfig{
			Size:         config.SizeConfig{Width: w, Height: h},
			Health:       health,
			FireCooldown: 0.8,
			BulletSpeed:  500,
		}
	}
	return &config.GameConfig{
		Game: &config.GameSettings{
			Display: config.DisplayConfig{ScreenWidth: 854, ScreenHeight: 480, TickRate: 60},
			Rules: config.RulesConfig{
				StartingLives:        3,
				WinScore:             config.WinScoreConfig{Normal: 500, Hard: 500},
				ContactHitsToPlayer:  1,
				HardHealthMultiplier: 2,
			},
		},
		Entities: &config.EntitiesConfig{
			Player: config.PlayerConfig{
				Size:         config.SizeConfig{Width: 40, Height: 48},
				Speed:        200,
				MaxHealth:    100,
				FireCooldown: 0.125,
				BulletSpeed:  500,
				Spawns:       []config.PositionConfig{{X: 327, Y: 60}, {X: 527, Y: 60}},
			},
			Bullet: config.BulletConfig{Size: config.SizeConfig{Width: 6, Height: 16}},
			Enemies: map[string]config.EnemyConfig{
				"basic":    enemy(40, 40, 5),
				"tracker":  enemy(44, 36, 10),
				"splitter": enemy(36, 36, 5),
			},
		},
		Levels: &config.LevelsConfig{
			Levels: []config.LevelConfig{
				{Kind: "level1", WavePeriod: 1, EnemyCap: 6},
				{Kind: "level2", WavePeriod: 1, EnemyCap: 6, BonusLives: 2},
				{Kind: "level3", WavePeriod: 1},
			},
		},
	}
}

func newTestStage(t testing.TB, cfg *config.GameConfig, setup GameSetup) *Stage {
	t.Helper()
	s, err := NewStage(cfg, setup)
	require.NoError(t, err)
	return s
}

// newQuietStage returns a Stage sitting in level 1 whose spawner never fires,
// so tests control every entity on the field.
func newQuietStage(t testing.TB, setup GameSetup) *Stage {
	t.Helper()
	s := newTestStage(t, testConfig(), setup)
	s.level = 1
	s.spawner = NewSpawner(Level1, 1, 6, s)
	s.spawner.Cooldown = 1e9
	return s
}

func oneEarthling() GameSetup {
	return GameSetup{Difficulty: entity.DifficultyNormal, Faction: entity.FactionEarth, Players: 1}
}

// addEnemy places an enemy that does not shoot during the test
func addEnemy(s *Stage, kind entity.EnemyKind, x, y, vx, vy float64) *entity.Enemy {
	e := s.NewEnemy(kind, x, y, vx, vy)
	e.FireCooldown = 1e9
	s.enemies = append(s.enemies, e)
	return e
}

// fakeFactory builds enemies for spawner tests and cycles through players
type fakeFactory struct {
	players []*entity.Player
	target  int
	nextID  entity.EntityID
}

func newFakeFactory(players int) *fakeFactory {
	f := &fakeFactory{target: -1}
	for i := 0; i < players; i++ {
		f.players = append(f.players, entity.NewPlayer(i, entity.FactionEarth, 100+float64(i)*200, 60, 40, 48, 100))
	}
	return f
}

func (f *fakeFactory) NewEnemy(kind entity.EnemyKind, x, y, vx, vy float64) *entity.Enemy {
	f.nextID++
	return entity.NewEnemy(f.nextID, kind, entity.FactionAlien, x, y, vx, vy, 40, 40, 5)
}

func (f *fakeFactory) GetTarget() *entity.Player {
	f.target = (f.target + 1) % len(f.players)
	return f.players[f.target]
}
