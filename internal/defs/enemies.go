// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
// Only size, sprite and shot timing vary between types; movement and
// collision rules are shared.
type EnemyDefinition struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	FirstShotMin    int     `json:"first_shot_min"` // ticks before the first shot
	FirstShotMax    int     `json:"first_shot_max"`
	ShotIntervalMin int     `json:"shot_interval_min"` // ticks between later shots
	ShotIntervalMax int     `json:"shot_interval_max"`
	SpawnWeight     int     `json:"spawn_weight"`
	Sprite          string  `json:"sprite"` // asset key, empty draws the vector body
}

const (
	EnemyEndoskeleton = "ENEMY_ENDOSKELETON"
	EnemyHunter       = "ENEMY_HUNTER"
)

// DefaultEnemies is the built-in enemy roster.
var DefaultEnemies = []EnemyDefinition{
	{
		ID:              EnemyEndoskeleton,
		Name:            "T-3000 Endoskeleton",
		Width:           38,
		Height:          52,
		FirstShotMin:    80,
		FirstShotMax:    200,
		ShotIntervalMin: 100,
		ShotIntervalMax: 180,
		SpawnWeight:     3,
	},
	{
		ID:              EnemyHunter,
		Name:            "HK Hunter",
		Width:           38,
		Height:          28,
		FirstShotMin:    80,
		FirstShotMax:    200,
		ShotIntervalMin: 100,
		ShotIntervalMax: 180,
		SpawnWeight:     1,
	},
}

// EnemyLibrary is the active roster keyed by ID, in DefaultEnemies order
// unless a definitions file replaced it.
var EnemyLibrary = NewEnemyLibrary(DefaultEnemies)

// Library keeps definitions both indexed and in declaration order, so
// weighted picks stay deterministic for a given seed.
type Library struct {
	ordered []EnemyDefinition
	byID    map[string]EnemyDefinition
}

func NewEnemyLibrary(defs []EnemyDefinition) *Library {
	lib := &Library{byID: make(map[string]EnemyDefinition, len(defs))}
	for _, def := range defs {
		if _, dup := lib.byID[def.ID]; dup {
			continue
		}
		lib.ordered = append(lib.ordered, def)
		lib.byID[def.ID] = def
	}
	return lib
}

func (l *Library) Get(id string) (EnemyDefinition, bool) {
	def, ok := l.byID[id]
	return def, ok
}

func (l *Library) All() []EnemyDefinition {
	return l.ordered
}

func (l *Library) Len() int {
	return len(l.ordered)
}

// Chooser is the random source used by Choose.
type Chooser interface {
	Intn(n int) int
}

// Choose выполняет взвешенный случайный выбор врага.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (l *Library) Choose(rng Chooser) EnemyDefinition {
	if len(l.ordered) == 0 {
		return DefaultEnemies[0]
	}

	totalWeight := 0
	for _, def := range l.ordered {
		totalWeight += def.SpawnWeight
	}
	if totalWeight <= 0 {
		return l.ordered[0]
	}

	r := rng.Intn(totalWeight)
	upto := 0
	for _, def := range l.ordered {
		if upto+def.SpawnWeight > r {
			return def
		}
		upto += def.SpawnWeight
	}
	return l.ordered[len(l.ordered)-1]
}
