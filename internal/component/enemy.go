package component

import (
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Position
	Width, Height float64
	Speed         float64
	ShootTimer    int // тиков до следующего выстрела
	Bullets       []*Bullet
	Dead          bool
	DefID         string // ID из библиотеки врагов
	Sprite        string

	def defs.EnemyDefinition
	rng RandSource
}

// NewEnemy creates an enemy of the given type. The first shot comes after a
// random delay from the type's first-shot window.
func NewEnemy(x, y, speed float64, def defs.EnemyDefinition, rng RandSource) *Enemy {
	return &Enemy{
		Position:   Position{X: x, Y: y},
		Width:      def.Width,
		Height:     def.Height,
		Speed:      speed,
		ShootTimer: rng.IntBetween(def.FirstShotMin, def.FirstShotMax),
		DefID:      def.ID,
		Sprite:     def.Sprite,
		def:        def,
		rng:        rng,
	}
}

func (e *Enemy) Update() {
	e.X -= e.Speed

	if e.ShootTimer > 0 {
		e.ShootTimer--
	} else {
		e.Bullets = append(e.Bullets, NewEnemyBullet(e.X, e.Y+e.Height/2, config.EnemyBulletSpeed))
		e.ShootTimer = e.rng.IntBetween(e.def.ShotIntervalMin, e.def.ShotIntervalMax)
	}

	if e.X < -e.Width {
		e.Dead = true
	}

	e.Bullets = updateBullets(e.Bullets)
}

// Rect is the raw body box, no margin.
func (e *Enemy) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}
