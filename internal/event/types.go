// internal/event/types.go
package event

const (
	GameStarted    EventType = iota + 1 // Новая партия, Data: GameStartedData
	EnemyDestroyed                      // Враг сбит пулей игрока, Data: EnemyDestroyedData
	PlayerHit                           // Игрок получил урон, Data: PlayerHitData
	GameOver                            // Жизни кончились, Data: GameOverData
)

func (t EventType) String() string {
	switch t {
	case GameStarted:
		return "GameStarted"
	case EnemyDestroyed:
		return "EnemyDestroyed"
	case PlayerHit:
		return "PlayerHit"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

type GameStartedData struct {
	Epoch uint64
}

type EnemyDestroyedData struct {
	X, Y  float64 // центр врага
	DefID string
	Score int // счёт после начисления
}

// HitCause tells what touched the player.
type HitCause int

const (
	HitByBullet HitCause = iota
	HitByBody
)

type PlayerHitData struct {
	Cause     HitCause
	LivesLeft int
}

type GameOverData struct {
	Epoch     uint64
	Score     int
	HighScore int
}
