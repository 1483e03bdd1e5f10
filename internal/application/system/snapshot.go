package system

import (
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/gone/internal/application/state"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/config"
)

// SnapshotVersion is the only snapshot layout ImportState accepts
const SnapshotVersion = 1

var (
	// ErrSnapshotVersion is returned for snapshots of another layout version
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
	// ErrInvalidSnapshot is returned for structurally broken snapshots
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	// ErrStageClosed is returned when importing into a closed Stage
	ErrStageClosed = errors.New("stage is closed")
)

// Snapshot is the complete restorable state of a Stage
type Snapshot struct {
	Version    int               `json:"version"`
	Difficulty entity.Difficulty `json:"difficulty"`
	Faction    entity.Faction    `json:"faction"`
	Score      int               `json:"score"`
	Lives      int               `json:"lives"`
	Level      int               `json:"level"`
	Target     int               `json:"target"`
	NextID     entity.EntityID   `json:"nextId"`

	Players []PlayerSnapshot `json:"players"`
	Enemies []EnemySnapshot  `json:"enemies"`
	Bullets []BulletSnapshot `json:"bullets"`
	Spawner *SpawnerSnapshot `json:"spawner,omitempty"` // nil between levels
}

// PlayerSnapshot is one player's position, health and weapon timer
type PlayerSnapshot struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Health       int     `json:"health"`
	FireCooldown float64 `json:"fireCooldown"`
}

// EnemySnapshot is one live enemy
type EnemySnapshot struct {
	ID           entity.EntityID `json:"id"`
	Kind         string          `json:"kind"`
	X            float64         `json:"x"`
	Y            float64         `json:"y"`
	VX           float64         `json:"vx"`
	VY           float64         `json:"vy"`
	Health       int             `json:"health"`
	MaxHealth    int             `json:"maxHealth"`
	FireCooldown float64         `json:"fireCooldown"`
	Target       int             `json:"target"`
	Generation   int             `json:"generation,omitempty"`
}

// BulletSnapshot is one bullet in flight
type BulletSnapshot struct {
	ID      entity.EntityID `json:"id"`
	Kind    string          `json:"kind"`
	Faction entity.Faction  `json:"faction"`
	X       float64         `json:"x"`
	Y       float64         `json:"y"`
	VX      float64         `json:"vx"`
	VY      float64         `json:"vy"`
	Bounces int             `json:"bounces,omitempty"`
}

// SpawnerSnapshot is the wave timer of the current level
type SpawnerSnapshot struct {
	Kind     string  `json:"kind"`
	Cooldown float64 `json:"cooldown"`
	Waves    int     `json:"waves"`
}

// ExportState captures the Stage. The result shares no memory with it.
func (s *Stage) ExportState() *Snapshot {
	snap := &Snapshot{
		Version:    SnapshotVersion,
		Difficulty: s.setup.Difficulty,
		Faction:    s.setup.Faction,
		Score:      s.score,
		Lives:      s.lives,
		Level:      s.level,
		Target:     s.target,
		NextID:     s.nextID,
		Players:    make([]PlayerSnapshot, 0, len(s.players)),
		Enemies:    make([]EnemySnapshot, 0, len(s.enemies)),
		Bullets:    make([]BulletSnapshot, 0, len(s.bullets)),
	}

	for _, p := range s.players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			X:            p.X,
			Y:            p.Y,
			Health:       p.Health,
			FireCooldown: p.FireCooldown,
		})
	}
	for _, e := range s.enemies {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			ID:           e.ID,
			Kind:         e.Kind.String(),
			X:            e.X,
			Y:            e.Y,
			VX:           e.VX,
			VY:           e.VY,
			Health:       e.Health,
			MaxHealth:    e.MaxHealth,
			FireCooldown: e.FireCooldown,
			Target:       e.Target,
			Generation:   e.Generation,
		})
	}
	for _, b := range s.bullets {
		snap.Bullets = append(snap.Bullets, BulletSnapshot{
			ID:      b.ID,
			Kind:    b.Kind.String(),
			Faction: b.Faction,
			X:       b.X,
			Y:       b.Y,
			VX:      b.VX,
			VY:      b.VY,
			Bounces: b.Bounces,
		})
	}
	if s.spawner != nil {
		snap.Spawner = &SpawnerSnapshot{
			Kind:     s.spawner.Kind.String(),
			Cooldown: s.spawner.Cooldown,
			Waves:    s.spawner.Waves,
		}
	}
	return snap
}

// ImportState replaces the Stage contents with snap. The snapshot is fully
// validated first; on error the Stage is left untouched. Player count,
// difficulty and faction must match the Stage setup (use RestoreStage to
// build a Stage from a snapshot). Held keys are released and a finished
// match becomes active again.
func (s *Stage) ImportState(snap *Snapshot) error {
	if s.deleted {
		return ErrStageClosed
	}
	if snap == nil {
		return fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}
	if snap.Difficulty != s.setup.Difficulty || snap.Faction != s.setup.Faction {
		return fmt.Errorf("%w: setup mismatch", ErrInvalidSnapshot)
	}
	if len(snap.Players) != len(s.players) {
		return fmt.Errorf("%w: has %d players, want %d", ErrInvalidSnapshot, len(snap.Players), len(s.players))
	}

	if snap.Lives <= 0 {
		return fmt.Errorf("%w: %d lives", ErrInvalidSnapshot, snap.Lives)
	}

	levels := s.config.Levels.Levels
	if snap.Level < 0 || snap.Level > len(levels) {
		return fmt.Errorf("%w: level %d out of range", ErrInvalidSnapshot, snap.Level)
	}
	if snap.Target < -1 || snap.Target >= len(snap.Players) {
		return fmt.Errorf("%w: target %d out of range", ErrInvalidSnapshot, snap.Target)
	}

	var spawner *Spawner
	if snap.Spawner != nil {
		if snap.Level == 0 {
			return fmt.Errorf("%w: spawner without level", ErrInvalidSnapshot)
		}
		kind, err := ParseLevelKind(snap.Spawner.Kind)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		if !finite(snap.Spawner.Cooldown) || snap.Spawner.Waves < 0 {
			return fmt.Errorf("%w: bad spawner timer", ErrInvalidSnapshot)
		}
		lvl := levels[snap.Level-1]
		if want, err := ParseLevelKind(lvl.Kind); err != nil || kind != want {
			return fmt.Errorf("%w: level %d cannot run a %s spawner", ErrInvalidSnapshot, snap.Level, kind)
		}
		spawner = NewSpawner(kind, lvl.WavePeriod, lvl.EnemyCap, s)
		spawner.Cooldown = snap.Spawner.Cooldown
		spawner.Waves = snap.Spawner.Waves
	}

	maxID := entity.EntityID(0)

	for i, ps := range snap.Players {
		if ps.Health <= 0 || ps.Health > s.players[i].MaxHealth || !finite(ps.X, ps.Y, ps.FireCooldown) {
			return fmt.Errorf("%w: player %d", ErrInvalidSnapshot, i)
		}
	}

	enemies := make([]*entity.Enemy, 0, max(len(snap.Enemies), 32))
	for i, es := range snap.Enemies {
		kind, ok := entity.ParseEnemyKind(es.Kind)
		if !ok {
			return fmt.Errorf("%w: enemy %d has unknown kind %q", ErrInvalidSnapshot, i, es.Kind)
		}
		if es.Health <= 0 || !finite(es.X, es.Y, es.VX, es.VY, es.FireCooldown) {
			return fmt.Errorf("%w: enemy %d", ErrInvalidSnapshot, i)
		}
		if es.Target != entity.NoTarget && (es.Target < 0 || es.Target >= len(snap.Players)) {
			return fmt.Errorf("%w: enemy %d targets player %d", ErrInvalidSnapshot, i, es.Target)
		}
		ec := s.enemyConfig(kind)
		e := entity.NewEnemy(es.ID, kind, s.setup.Faction.Opposite(), es.X, es.Y, es.VX, es.VY, ec.Size.Width, ec.Size.Height, es.Health)
		e.MaxHealth = max(es.MaxHealth, es.Health)
		e.FireCooldown = es.FireCooldown
		e.Target = es.Target
		e.Generation = es.Generation
		enemies = append(enemies, e)
		maxID = max(maxID, es.ID)
	}

	size := s.config.Entities.Bullet.Size
	bullets := make([]*entity.Bullet, 0, max(len(snap.Bullets), 128))
	for i, bs := range snap.Bullets {
		kind, ok := entity.ParseBulletKind(bs.Kind)
		if !ok {
			return fmt.Errorf("%w: bullet %d has unknown kind %q", ErrInvalidSnapshot, i, bs.Kind)
		}
		if !bs.Faction.Valid() || !finite(bs.X, bs.Y, bs.VX, bs.VY) {
			return fmt.Errorf("%w: bullet %d", ErrInvalidSnapshot, i)
		}
		b := entity.NewBullet(bs.ID, kind, bs.Faction, bs.Faction == s.setup.Faction, bs.X, bs.Y, bs.VX, bs.VY, size.Width, size.Height)
		b.Bounces = bs.Bounces
		bullets = append(bullets, b)
		maxID = max(maxID, bs.ID)
	}

	// Validated; apply.
	for i, ps := range snap.Players {
		p := s.players[i]
		p.X, p.Y = ps.X, ps.Y
		p.Health = ps.Health
		p.FireCooldown = ps.FireCooldown
		p.ReleaseAll()
	}
	for _, e := range s.enemies {
		e.Deactivate()
	}
	for _, b := range s.bullets {
		b.Deactivate()
	}
	s.enemies = enemies
	s.bullets = bullets
	s.spawner = spawner
	s.score = snap.Score
	s.lives = snap.Lives
	s.level = snap.Level
	s.target = snap.Target
	s.nextID = max(snap.NextID, maxID+1)
	s.state = state.StateActive
	s.won = false
	return nil
}

// RestoreStage builds a Stage for the setup recorded in snap and loads it
func RestoreStage(cfg *config.GameConfig, snap *Snapshot) (*Stage, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}
	if !snap.Difficulty.Valid() || !snap.Faction.Valid() {
		return nil, fmt.Errorf("%w: bad setup", ErrInvalidSnapshot)
	}
	s, err := NewStage(cfg, GameSetup{
		Difficulty: snap.Difficulty,
		Faction:    snap.Faction,
		Players:    len(snap.Players),
	})
	if err != nil {
		if errors.Is(err, ErrNoPlayers) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		return nil, err
	}
	if err := s.ImportState(snap); err != nil {
		return nil, err
	}
	return s, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
