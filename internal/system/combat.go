package system

import (
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/event"
)

// CombatSystem разрешает столкновения: пули игрока с врагами, пули врагов
// и тела врагов с игроком. Все проверки — по прямоугольникам (AABB).
type CombatSystem struct {
	world           *entity.World
	effects         *VisualEffectSystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, effects *VisualEffectSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		effects:         effects,
		eventDispatcher: eventDispatcher,
	}
}

// Update runs the three collision passes in order and reports whether the
// player took damage this tick.
func (s *CombatSystem) Update() (damaged bool) {
	s.ResolvePlayerShots()
	if s.ResolveEnemyShots() {
		damaged = true
	}
	if s.ResolveBodyCollisions() {
		damaged = true
	}
	return damaged
}

// ResolvePlayerShots tests every player bullet against every enemy. The first
// overlap in iteration order consumes both, so one bullet kills at most one
// enemy and one enemy dies to at most one bullet.
func (s *CombatSystem) ResolvePlayerShots() (kills int) {
	player := s.world.Player
	for _, bullet := range player.Bullets {
		for _, enemy := range s.world.Enemies {
			if bullet.Dead || enemy.Dead || !bullet.Rect().Overlaps(enemy.Rect()) {
				continue
			}
			bullet.Dead = true
			enemy.Dead = true
			player.Score += config.ScorePerKill
			kills++

			cx, cy := enemy.Rect().Center()
			s.effects.SpawnExplosion(cx, cy)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyDestroyed,
				Data: event.EnemyDestroyedData{X: cx, Y: cy, DefID: enemy.DefID, Score: player.Score},
			})
		}
	}
	return kills
}

// ResolveEnemyShots checks enemy bullets against the player. Only a player
// with Invincible exactly zero can be hit.
func (s *CombatSystem) ResolveEnemyShots() (hit bool) {
	player := s.world.Player
	for _, enemy := range s.world.Enemies {
		for _, bullet := range enemy.Bullets {
			if bullet.Dead || !s.vulnerable() || !bullet.Rect().Overlaps(player.Rect()) {
				continue
			}
			bullet.Dead = true
			s.damagePlayer(event.HitByBullet)
			hit = true
		}
	}
	return hit
}

// ResolveBodyCollisions checks enemy bodies against the player. Ramming costs
// a life like a bullet does, and also destroys the enemy.
func (s *CombatSystem) ResolveBodyCollisions() (hit bool) {
	player := s.world.Player
	for _, enemy := range s.world.Enemies {
		if enemy.Dead || !s.vulnerable() || !enemy.Rect().Overlaps(player.Rect()) {
			continue
		}
		enemy.Dead = true
		s.damagePlayer(event.HitByBody)
		hit = true
	}
	return hit
}

// vulnerable is false during the invincibility window and once the last life
// is gone, so a finished game collects no more damage in the same tick.
func (s *CombatSystem) vulnerable() bool {
	player := s.world.Player
	return player.Invincible == 0 && player.Lives > 0
}

func (s *CombatSystem) damagePlayer(cause event.HitCause) {
	player := s.world.Player
	player.Damage()

	cx, cy := player.Rect().Center()
	s.effects.SpawnHitBurst(cx, cy)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PlayerHit,
		Data: event.PlayerHitData{Cause: cause, LivesLeft: player.Lives},
	})
}
