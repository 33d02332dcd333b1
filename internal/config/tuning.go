// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	EnvConfigPath = "SHOOTER_CONFIG"
	EnvSeed       = "SHOOTER_SEED"
)

// Tuning holds the runtime settings of the host process. Gameplay constants
// stay in config.go; only things an operator may want to change live here.
type Tuning struct {
	Seed        int64  `toml:"seed"`         // 0 means time based
	WindowScale int    `toml:"window_scale"` // integer window zoom of the 640x400 screen
	Title       string `toml:"title"`
	TPS         int    `toml:"tps"`        // simulation ticks per second
	PprofAddr   string `toml:"pprof_addr"` // empty disables the pprof listener
	AssetDir    string `toml:"asset_dir"`
	StartInGame bool   `toml:"start_in_game"` // skip the start panel
}

// DefaultTuning returns the settings used when nothing is configured.
func DefaultTuning() Tuning {
	return Tuning{
		WindowScale: 2,
		Title:       "Terminator: Arcade Infiltration",
		TPS:         60,
		PprofAddr:   "localhost:6060",
		AssetDir:    "assets",
	}
}

// LoadTuning reads optional .env files, then the TOML file named by
// SHOOTER_CONFIG, then SHOOTER_SEED. Missing files are not an error.
func LoadTuning(envFiles ...string) (Tuning, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Tuning{}, fmt.Errorf("failed to load env file: %w", err)
	}

	t := DefaultTuning()
	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := t.DecodeFile(path); err != nil {
			return Tuning{}, err
		}
	}

	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Tuning{}, fmt.Errorf("invalid %s %q: %w", EnvSeed, raw, err)
		}
		t.Seed = seed
	}

	t.normalize()
	return t, nil
}

// DecodeFile overlays the values found in a TOML file onto t.
func (t *Tuning) DecodeFile(path string) error {
	md, err := toml.DecodeFile(path, t)
	if err != nil {
		return fmt.Errorf("failed to decode tuning file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("tuning: unknown key %q in %s", key.String(), path)
	}
	return nil
}

func (t *Tuning) normalize() {
	def := DefaultTuning()
	if t.WindowScale < 1 {
		t.WindowScale = def.WindowScale
	}
	if t.TPS <= 0 {
		t.TPS = def.TPS
	}
	if t.Title == "" {
		t.Title = def.Title
	}
}
