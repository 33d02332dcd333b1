// internal/system/movement.go
package system

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/entity"
)

// MovementSystem переводит удерживаемые клавиши в движение и стрельбу игрока.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update moves the player by the held directions, fires when the fire key is
// held and then advances the player's own timers and bullets.
func (s *MovementSystem) Update(in component.Input) {
	player := s.world.Player
	player.Move(in.Direction(player.Speed))
	if in.Fire {
		player.Shoot()
	}
	player.Update()
}
