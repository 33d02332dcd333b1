// internal/component/visual.go
package component

import (
	"go-arcade-shooter/internal/config"
	"image/color"
	"math"
)

// Particle — короткоживущая декоративная точка. На игровой процесс не влияет.
type Particle struct {
	Position
	DX, DY float64
	Radius float64
	Color  color.RGBA
	Life   int // тиков до исчезновения
}

// NewParticle creates a particle with random radius, drift and lifetime.
func NewParticle(x, y float64, c color.RGBA, rng RandSource) *Particle {
	return &Particle{
		Position: Position{X: x, Y: y},
		Radius:   float64(rng.IntBetween(config.ParticleMinRadius, config.ParticleMaxRadius)),
		Color:    c,
		DX:       float64(rng.IntBetween(-config.ParticleMaxSpeed, config.ParticleMaxSpeed)),
		DY:       float64(rng.IntBetween(-config.ParticleMaxSpeed, config.ParticleMaxSpeed)),
		Life:     rng.IntBetween(config.ParticleMinLife, config.ParticleMaxLife),
	}
}

func (p *Particle) Update() {
	p.X += p.DX
	p.Y += p.DY
	p.Life--
}

func (p *Particle) Expired() bool {
	return p.Life <= 0
}

// Alpha fades the particle out over its lifetime.
func (p *Particle) Alpha() float64 {
	return math.Max(0, float64(p.Life)/config.ParticleMaxLife)
}
