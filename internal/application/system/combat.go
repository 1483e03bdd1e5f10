package system

import (
	"slices"

	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/config"
)

// NewEnemy builds an enemy of the opposing faction from its entities.json
// entry. Health is scaled on Hard difficulty.
func (s *Stage) NewEnemy(kind entity.EnemyKind, x, y, vx, vy float64) *entity.Enemy {
	ec := s.enemyConfig(kind)
	health := ec.Health
	if s.setup.Difficulty == entity.DifficultyHard && s.config.Game.Rules.HardHealthMultiplier > 0 {
		health *= s.config.Game.Rules.HardHealthMultiplier
	}
	return entity.NewEnemy(s.allocID(), kind, s.setup.Faction.Opposite(), x, y, vx, vy, ec.Size.Width, ec.Size.Height, health)
}

func (s *Stage) enemyConfig(kind entity.EnemyKind) config.EnemyConfig {
	return s.config.Entities.Enemies[kind.String()]
}

func (s *Stage) allocID() entity.EntityID {
	id := s.nextID
	s.nextID++
	return id
}

// fire adds a bullet centered on the shooter
func (s *Stage) fire(kind entity.BulletKind, faction entity.Faction, x, y, vx, vy float64) *entity.Bullet {
	size := s.config.Entities.Bullet.Size
	b := entity.NewBullet(s.allocID(), kind, faction, faction == s.setup.Faction, x, y, vx, vy, size.Width, size.Height)
	s.bullets = append(s.bullets, b)
	return b
}

func (s *Stage) updatePlayers(dt float64) {
	pc := s.config.Entities.Player
	for _, p := range s.players {
		if !s.running() {
			return
		}
		p.Move(dt, pc.Speed)
		p.FireCooldown -= dt
		if p.Pressed(entity.DirFire) && p.FireCooldown <= 0 {
			p.FireCooldown = pc.FireCooldown
			s.fire(entity.BulletStraight, p.Faction, p.X, p.Y, 0, pc.BulletSpeed)
		}
	}
}

func (s *Stage) updateEnemies(dt float64) {
	for _, e := range s.enemyScratch {
		if !s.running() {
			break
		}
		if !e.Active {
			continue
		}
		s.updateEnemy(e, dt)
	}
}

func (s *Stage) updateEnemy(e *entity.Enemy, dt float64) {
	ec := s.enemyConfig(e.Kind)
	hard := s.setup.Difficulty == entity.DifficultyHard

	switch e.Kind {
	case entity.EnemyBasic:
		if s.enemyReady(e, dt, ec) {
			if hard {
				t := s.GetTarget()
				vx, vy := e.Aim(t.X, t.Y, ec.BulletSpeed)
				s.fire(entity.BulletBouncy, e.Faction, e.X, e.Y, vx, vy)
			} else {
				s.fire(entity.BulletStraight, e.Faction, e.X, e.Y, 0, -ec.BulletSpeed)
			}
		}
		s.moveEnemy(e, dt)

	case entity.EnemyTracker:
		if p := s.player(e.Target); p != nil {
			e.X = p.X
		}
		s.moveEnemy(e, dt)
		if !e.Active || !s.running() {
			return
		}
		// Trackers only shoot on Hard
		if s.enemyReady(e, dt, ec) && hard {
			s.fire(entity.BulletStraight, e.Faction, e.X, e.Y, 0, -ec.BulletSpeed)
		}

	case entity.EnemySplitter:
		if s.enemyReady(e, dt, ec) {
			s.fire(entity.BulletStraight, e.Faction, e.X, e.Y, 0, -ec.BulletSpeed)
		}
		s.moveEnemy(e, dt)
	}
}

// enemyReady runs the fire timer and reports whether a shot is due
func (s *Stage) enemyReady(e *entity.Enemy, dt float64, ec config.EnemyConfig) bool {
	e.FireCooldown -= dt
	if e.FireCooldown > 0 {
		return false
	}
	e.FireCooldown = ec.FireCooldown
	return true
}

// moveEnemy integrates, bounces off every edge and rams the first player
// it overlaps. Ramming damages both sides.
func (s *Stage) moveEnemy(e *entity.Enemy, dt float64) {
	e.Move(dt)
	e.Bounce(&e.VX, &e.VY)

	for _, p := range s.players {
		if !e.Intersects(&p.Body) {
			continue
		}
		s.hitEnemy(e)
		for i := 0; i < s.config.Game.Rules.ContactHitsToPlayer && s.running(); i++ {
			s.hitPlayer(p)
		}
		return
	}
}

// hitEnemy applies one point of damage; dead splitters are replaced by two
// children moving at right angles to the parent.
func (s *Stage) hitEnemy(e *entity.Enemy) {
	if !e.Active {
		return
	}
	dead := e.TakeHit()
	s.addScore(1)
	if !dead || s.deleted {
		return
	}

	if e.Kind == entity.EnemySplitter && s.canSplit(e) {
		left, right := e.SplitVelocities()
		for _, v := range [][2]float64{left, right} {
			child := s.NewEnemy(entity.EnemySplitter, e.X, e.Y, v[0], v[1])
			child.Generation = e.Generation + 1
			s.enemies = append(s.enemies, child)
		}
	}

	s.removeEnemy(e)
	if s.OnEnemyDestroyed != nil {
		s.OnEnemyDestroyed()
	}
}

func (s *Stage) canSplit(e *entity.Enemy) bool {
	depth := s.config.Game.Rules.SplitDepth
	return depth <= 0 || e.Generation < depth
}

// hitPlayer applies one point of damage; a depleted player respawns and
// costs a life.
func (s *Stage) hitPlayer(p *entity.Player) {
	lost := p.TakeHit()
	s.addScore(-1)
	if lost {
		s.addLives(-1)
	}
}

func (s *Stage) updateBullets(dt float64) {
	for _, b := range s.bulletScratch {
		if !b.Active {
			continue
		}
		if !s.deleted && !s.state.Ticking() {
			break
		}
		s.updateBullet(b, dt)
	}
}

func (s *Stage) updateBullet(b *entity.Bullet, dt float64) {
	if s.deleted {
		s.removeBullet(b)
		return
	}

	limit := s.config.Game.Rules.BounceLimit
	switch b.Kind {
	case entity.BulletBouncy:
		if b.Bounce(&b.VX, &b.VY) {
			b.Bounces++
		}
	case entity.BulletHoming:
		if b.KeepOnScreen() != entity.EdgeNone {
			if t := s.GetTarget(); t != nil {
				b.Redirect(t.X, t.Y)
			}
			b.Bounces++
		}
	}
	if limit > 0 && b.Bounces >= limit {
		s.removeBullet(b)
		return
	}

	b.Move(dt)

	if b.OwnedByPlayer {
		if e := s.collideEnemy(&b.Body); e != nil {
			s.hitEnemy(e)
			s.removeBullet(b)
			return
		}
	} else {
		if p := s.collidePlayer(&b.Body); p != nil {
			s.hitPlayer(p)
			s.removeBullet(b)
			return
		}
	}

	if !b.OnScreen() {
		s.removeBullet(b)
	}
}

// collideEnemy returns the first live enemy overlapping body
func (s *Stage) collideEnemy(body *entity.Body) *entity.Enemy {
	for _, e := range s.enemies {
		if e.Active && body.Intersects(&e.Body) {
			return e
		}
	}
	return nil
}

func (s *Stage) collidePlayer(body *entity.Body) *entity.Player {
	for _, p := range s.players {
		if body.Intersects(&p.Body) {
			return p
		}
	}
	return nil
}

func (s *Stage) removeEnemy(e *entity.Enemy) {
	e.Deactivate()
	if i := slices.Index(s.enemies, e); i >= 0 {
		s.enemies = slices.Delete(s.enemies, i, i+1)
	}
}

func (s *Stage) removeBullet(b *entity.Bullet) {
	b.Deactivate()
	if i := slices.Index(s.bullets, b); i >= 0 {
		s.bullets = slices.Delete(s.bullets, i, i+1)
	}
}
