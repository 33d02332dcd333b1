package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIntn int

func (f fixedIntn) Intn(n int) int { return int(f) % n }

func TestDefaultRosterMatchesClassicTiming(t *testing.T) {
	def, ok := EnemyLibrary.Get(EnemyEndoskeleton)
	require.True(t, ok)
	assert.Equal(t, 38.0, def.Width)
	assert.Equal(t, 52.0, def.Height)
	assert.Equal(t, 80, def.FirstShotMin)
	assert.Equal(t, 200, def.FirstShotMax)
	assert.Equal(t, 100, def.ShotIntervalMin)
	assert.Equal(t, 180, def.ShotIntervalMax)
}

func TestChooseIsWeighted(t *testing.T) {
	lib := NewEnemyLibrary(DefaultEnemies)
	// Weights are 3 then 1: rolls 0..2 pick the endoskeleton, 3 the hunter.
	for roll := 0; roll < 3; roll++ {
		assert.Equal(t, EnemyEndoskeleton, lib.Choose(fixedIntn(roll)).ID)
	}
	assert.Equal(t, EnemyHunter, lib.Choose(fixedIntn(3)).ID)
}

func TestChooseZeroWeights(t *testing.T) {
	lib := NewEnemyLibrary([]EnemyDefinition{
		{ID: "A", Width: 1, Height: 1},
		{ID: "B", Width: 1, Height: 1},
	})
	assert.Equal(t, "A", lib.Choose(fixedIntn(0)).ID)
}

func TestNewEnemyLibrarySkipsDuplicates(t *testing.T) {
	lib := NewEnemyLibrary([]EnemyDefinition{
		{ID: "A", Name: "first"},
		{ID: "A", Name: "second"},
	})
	assert.Equal(t, 1, lib.Len())
	def, _ := lib.Get("A")
	assert.Equal(t, "first", def.Name)
}

func TestParseEnemyDefinitions(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		defs, err := ParseEnemyDefinitions([]byte(`[
			{"id":"X","width":30,"height":20,"first_shot_min":10,"first_shot_max":20,
			 "shot_interval_min":5,"shot_interval_max":9,"spawn_weight":2}
		]`))
		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Equal(t, 20.0, defs[0].Height)
		assert.Equal(t, 2, defs[0].SpawnWeight)
	})

	bad := map[string]string{
		"not json":       `{`,
		"empty":          `[]`,
		"no id":          `[{"width":1,"height":1}]`,
		"zero size":      `[{"id":"X","width":0,"height":1}]`,
		"inverted shots": `[{"id":"X","width":1,"height":1,"first_shot_min":5,"first_shot_max":1}]`,
	}
	for name, body := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := ParseEnemyDefinitions([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestLoadEnemyDefinitions(t *testing.T) {
	saved := EnemyLibrary
	t.Cleanup(func() { EnemyLibrary = saved })

	path := filepath.Join(t.TempDir(), "enemies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"ONLY","width":10,"height":10,"spawn_weight":1}]`), 0o644))

	require.NoError(t, LoadEnemyDefinitions(path))
	assert.Equal(t, 1, EnemyLibrary.Len())
	assert.Equal(t, "ONLY", EnemyLibrary.Choose(fixedIntn(0)).ID)

	err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read enemy definitions file")
}
