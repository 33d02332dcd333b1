// internal/component/player.go
package component

import (
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/utils"
)

// Player хранит состояние корабля игрока: позицию, снаряды, таймеры и очки.
type Player struct {
	Position
	Width, Height float64
	Speed         float64
	Bullets       []*Bullet
	ShootCooldown int // тиков до следующего выстрела
	Lives         int
	Invincible    int // тиков неуязвимости после попадания
	Score         int

	AnimFrame   int
	animCounter int
}

// NewPlayer creates a player with full lives at the given position.
func NewPlayer(x, y float64) *Player {
	return &Player{
		Position: Position{X: x, Y: y},
		Width:    config.PlayerWidth,
		Height:   config.PlayerHeight,
		Speed:    config.PlayerSpeed,
		Lives:    config.PlayerLives,
	}
}

// Move shifts the player and clamps it inside the playfield.
func (p *Player) Move(dx, dy float64) {
	p.X = utils.Clamp(p.X+dx, 0, config.ScreenWidth-p.Width)
	p.Y = utils.Clamp(p.Y+dy, 0, config.ScreenHeight-p.Height)
}

// Shoot fires one bullet from the right-centre edge unless the cooldown is
// still running. It reports whether a bullet was fired.
func (p *Player) Shoot() bool {
	if p.ShootCooldown > 0 {
		return false
	}
	p.Bullets = append(p.Bullets, NewBullet(
		p.X+p.Width,
		p.Y+p.Height/2-config.PlayerBulletOffsetY,
		config.PlayerBulletSpeed,
		0,
	))
	p.ShootCooldown = config.PlayerShootCooldown
	return true
}

func (p *Player) Update() {
	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}
	if p.Invincible > 0 {
		p.Invincible--
	}
	p.Bullets = updateBullets(p.Bullets)

	p.animCounter++
	if p.animCounter >= config.PlayerAnimSpeed {
		p.animCounter = 0
		p.AnimFrame = (p.AnimFrame + 1) % config.PlayerAnimFrames
	}
}

// Damage takes one life and opens the invincibility window. Collision
// detection and the invincibility check belong to the caller.
func (p *Player) Damage() {
	p.Lives--
	p.Invincible = config.PlayerInvincibility
}

// Visible is false on the blink-off ticks of the invincibility window.
func (p *Player) Visible() bool {
	return p.Invincible%config.PlayerFlickerPeriod < config.PlayerFlickerPeriod/2
}

func (p *Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
