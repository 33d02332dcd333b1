package component

// GameState — текущая фаза игры
type GameState int

const (
	MenuState GameState = iota
	PlayingState
	GameOverState
)

func (s GameState) String() string {
	switch s {
	case MenuState:
		return "menu"
	case PlayingState:
		return "playing"
	case GameOverState:
		return "gameover"
	}
	return "unknown"
}
