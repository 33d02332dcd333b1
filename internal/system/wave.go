// internal/system/wave.go
package system

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/utils"
	"math"
)

// Difficulty grows with the square root of the score and is capped, so the
// early game ramps gently and the late game stays bounded.
func Difficulty(score int) float64 {
	if score <= 0 {
		return 0
	}
	return math.Min(math.Sqrt(float64(score)/config.DifficultyScoreDiv), config.DifficultyCap)
}

// SpawnIntervalBounds returns the tick window for the next spawn at the given
// difficulty. Both ends shrink as difficulty rises but never go below their
// floors.
func SpawnIntervalBounds(difficulty float64) (minSpawn, maxSpawn float64) {
	minSpawn = math.Max(config.SpawnBaseMin-difficulty*config.SpawnMinPerLevel, config.SpawnFloorMin)
	maxSpawn = math.Max(config.SpawnBaseMax-difficulty*config.SpawnMaxPerLevel, config.SpawnFloorMax)
	return minSpawn, maxSpawn
}

// WaveSystem выпускает врагов с правого края по таймеру.
type WaveSystem struct {
	world   *entity.World
	rng     *utils.PRNGService
	library *defs.Library
}

func NewWaveSystem(world *entity.World, rng *utils.PRNGService, library *defs.Library) *WaveSystem {
	return &WaveSystem{
		world:   world,
		rng:     rng,
		library: library,
	}
}

// Update counts the spawn timer down and spawns one enemy when it runs out.
// It returns the spawned enemy, or nil.
func (s *WaveSystem) Update(difficulty float64) *component.Enemy {
	if s.world.SpawnTimer > 0 {
		s.world.SpawnTimer--
		return nil
	}

	enemy := s.spawnEnemy(difficulty)
	s.world.SpawnTimer = s.nextInterval(difficulty)
	return enemy
}

func (s *WaveSystem) spawnEnemy(difficulty float64) *component.Enemy {
	def := s.library.Choose(s.rng)
	y := float64(s.rng.IntBetween(config.EnemySpawnMinY, config.EnemySpawnMaxY))
	speed := float64(s.rng.IntBetween(config.EnemyBaseSpeedMin, config.EnemyBaseSpeedMax)) + difficulty

	enemy := component.NewEnemy(config.ScreenWidth+config.EnemySpawnOffsetX, y, speed, def, s.rng)
	s.world.AddEnemy(enemy)
	return enemy
}

func (s *WaveSystem) nextInterval(difficulty float64) int {
	minSpawn, maxSpawn := SpawnIntervalBounds(difficulty)
	return s.rng.IntBetween(int(math.Ceil(minSpawn)), int(math.Floor(maxSpawn)))
}

// UpdateEnemies advances every enemy and drops the dead ones.
func (s *WaveSystem) UpdateEnemies() {
	for _, enemy := range s.world.Enemies {
		enemy.Update()
	}
	s.world.PruneEnemies()
}
