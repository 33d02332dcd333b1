// internal/entity/ecs.go
package entity

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"slices"
)

// World owns every live entity of one play session. Slices keep insertion
// order; dead entries are dropped by the prune calls, never reused.
type World struct {
	Frame      int
	Player     *component.Player
	Enemies    []*component.Enemy
	Particles  []*component.Particle
	SpawnTimer int
}

// NewWorld creates a fresh session: player at the start position, nothing
// else on screen and the spawner ready to fire on the first tick.
func NewWorld() *World {
	return &World{
		Player:    component.NewPlayer(config.PlayerStartX, config.PlayerStartY),
		Enemies:   make([]*component.Enemy, 0, 16),
		Particles: make([]*component.Particle, 0, 64),
	}
}

func (w *World) AddEnemy(e *component.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

func (w *World) AddParticle(p *component.Particle) {
	w.Particles = append(w.Particles, p)
}

// PruneEnemies drops enemies flagged dead.
func (w *World) PruneEnemies() {
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e *component.Enemy) bool { return e.Dead })
}

// PruneParticles drops particles whose life ran out.
func (w *World) PruneParticles() {
	w.Particles = slices.DeleteFunc(w.Particles, (*component.Particle).Expired)
}
