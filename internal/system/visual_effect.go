// internal/system/visual_effect.go
package system

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/entity"
	"image/color"
)

// VisualEffectSystem управляет частицами: вспышки при уничтожении врага и
// при попадании по игроку. На игровой процесс частицы не влияют.
type VisualEffectSystem struct {
	world *entity.World
	rng   component.RandSource
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, rng component.RandSource) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, rng: rng}
}

// ExplosionColor returns the colour of the i-th explosion particle.
func ExplosionColor(i int) color.RGBA {
	switch {
	case i%3 == 0:
		return config.ExplosionRed
	case i%2 == 0:
		return config.ExplosionCyan
	default:
		return config.ExplosionSteel
	}
}

// HitColor returns the colour of the i-th player hit particle.
func HitColor(i int) color.RGBA {
	if i%2 == 0 {
		return config.HitEvenColor
	}
	return config.HitOddColor
}

// SpawnExplosion adds the enemy-destroyed burst centred on (x, y).
func (s *VisualEffectSystem) SpawnExplosion(x, y float64) {
	for i := 0; i < config.ExplosionParticleNum; i++ {
		s.world.AddParticle(component.NewParticle(x, y, ExplosionColor(i), s.rng))
	}
}

// SpawnHitBurst adds the player-hit burst centred on (x, y).
func (s *VisualEffectSystem) SpawnHitBurst(x, y float64) {
	for i := 0; i < config.HitParticleCount; i++ {
		s.world.AddParticle(component.NewParticle(x, y, HitColor(i), s.rng))
	}
}

// Update обновляет все частицы и удаляет погасшие.
func (s *VisualEffectSystem) Update() {
	for _, p := range s.world.Particles {
		p.Update()
	}
	s.world.PruneParticles()
}
