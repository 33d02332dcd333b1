// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadEnemyDefinitions reads the enemy configuration file and replaces
// EnemyLibrary with its contents.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	enemyDefs, err := ParseEnemyDefinitions(file)
	if err != nil {
		return err
	}

	EnemyLibrary = NewEnemyLibrary(enemyDefs)
	log.Printf("Loaded %d enemy definitions", EnemyLibrary.Len())
	return nil
}

// ParseEnemyDefinitions decodes and validates a JSON list of definitions.
func ParseEnemyDefinitions(data []byte) ([]EnemyDefinition, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	if len(enemyDefs) == 0 {
		return nil, fmt.Errorf("enemy definitions file is empty")
	}
	for i, def := range enemyDefs {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("enemy definition %d (%q): %w", i, def.ID, err)
		}
	}
	return enemyDefs, nil
}

func (d EnemyDefinition) validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("missing id")
	case d.Width <= 0 || d.Height <= 0:
		return fmt.Errorf("size must be positive, got %vx%v", d.Width, d.Height)
	case d.FirstShotMin < 0 || d.FirstShotMax < d.FirstShotMin:
		return fmt.Errorf("bad first shot window [%d,%d]", d.FirstShotMin, d.FirstShotMax)
	case d.ShotIntervalMin < 0 || d.ShotIntervalMax < d.ShotIntervalMin:
		return fmt.Errorf("bad shot interval [%d,%d]", d.ShotIntervalMin, d.ShotIntervalMax)
	case d.SpawnWeight < 0:
		return fmt.Errorf("negative spawn weight %d", d.SpawnWeight)
	}
	return nil
}
