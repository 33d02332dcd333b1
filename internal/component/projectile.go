// internal/component/projectile.go
package component

import (
	"go-arcade-shooter/internal/config"
	"slices"
)

// Owner tells which side fired a projectile and therefore which screen edge
// retires it.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Bullet представляет летящий снаряд.
type Bullet struct {
	Position
	Speed  float64 // horizontal, px per tick
	VY     float64
	Radius float64
	Owner  Owner
	Dead   bool
}

// NewBullet creates a player bullet travelling right.
func NewBullet(x, y, speed, vy float64) *Bullet {
	return &Bullet{
		Position: Position{X: x, Y: y},
		Speed:    speed,
		VY:       vy,
		Radius:   config.BulletRadius,
		Owner:    OwnerPlayer,
	}
}

// NewEnemyBullet creates an enemy bullet; speed is negative.
func NewEnemyBullet(x, y, speed float64) *Bullet {
	return &Bullet{
		Position: Position{X: x, Y: y},
		Speed:    speed,
		Radius:   config.BulletRadius,
		Owner:    OwnerEnemy,
	}
}

func (b *Bullet) Update() {
	b.X += b.Speed
	b.Y += b.VY
	switch b.Owner {
	case OwnerPlayer:
		if b.X > config.ScreenWidth+config.BulletDeathMargin {
			b.Dead = true
		}
	case OwnerEnemy:
		if b.X < -config.BulletDeathMargin {
			b.Dead = true
		}
	}
}

// Rect returns the square centred on the bullet with half-width = radius.
func (b *Bullet) Rect() Rect {
	return Rect{
		X: b.X - b.Radius,
		Y: b.Y - b.Radius,
		W: b.Radius * 2,
		H: b.Radius * 2,
	}
}

// Gone reports whether the owner should drop the bullet from its list.
func (b *Bullet) Gone() bool {
	if b.Dead {
		return true
	}
	if b.Owner == OwnerPlayer {
		return b.X >= config.ScreenWidth+config.BulletPruneMargin
	}
	return b.X <= -config.BulletPruneMargin
}

func updateBullets(bullets []*Bullet) []*Bullet {
	for _, b := range bullets {
		b.Update()
	}
	return slices.DeleteFunc(bullets, (*Bullet).Gone)
}
