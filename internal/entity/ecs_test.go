package entity

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"testing"

	"github.com/stretchr/testify/assert"
)

type lowRand struct{}

func (lowRand) IntBetween(min, max int) int { return min }

func TestNewWorld(t *testing.T) {
	w := NewWorld()
	assert.Equal(t, 60.0, w.Player.X)
	assert.Equal(t, 182.0, w.Player.Y)
	assert.Equal(t, config.PlayerLives, w.Player.Lives)
	assert.Equal(t, 0, w.Player.Score)
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Particles)
	assert.Equal(t, 0, w.SpawnTimer)
}

func TestPruneKeepsOrder(t *testing.T) {
	w := NewWorld()
	def := defs.DefaultEnemies[0]
	for i := 0; i < 4; i++ {
		w.AddEnemy(component.NewEnemy(float64(100*i), 50, 2, def, lowRand{}))
	}
	w.Enemies[1].Dead = true
	w.Enemies[3].Dead = true
	w.PruneEnemies()

	assert.Len(t, w.Enemies, 2)
	assert.Equal(t, 0.0, w.Enemies[0].X)
	assert.Equal(t, 200.0, w.Enemies[1].X)

	alive := component.NewParticle(0, 0, config.ExplosionRed, lowRand{})
	expired := component.NewParticle(0, 0, config.ExplosionRed, lowRand{})
	expired.Life = 0
	w.AddParticle(expired)
	w.AddParticle(alive)
	w.PruneParticles()
	assert.Equal(t, []*component.Particle{alive}, w.Particles)
}
