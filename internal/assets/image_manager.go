package assets

import (
	"fmt"
	"log"
	"path/filepath"

	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Files looked up under the asset directory for the built-in keys.
var defaultFiles = map[string]string{
	draw.SpritePlayer:     "player.png",
	draw.SpriteBackground: "background.png",
}

// ImageManager загружает и хранит изображения по ключу. Если изображения
// нет, рендерер рисует вместо него заглушку.
type ImageManager struct {
	dir    string
	images map[string]*ebiten.Image
}

// NewImageManager создает менеджер, читающий файлы из dir.
func NewImageManager(dir string) *ImageManager {
	return &ImageManager{
		dir:    dir,
		images: make(map[string]*ebiten.Image),
	}
}

// load безопасно загружает одно изображение.
func (m *ImageManager) load(key, file string) error {
	path := filepath.Join(m.dir, file)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to load image %s: %w", path, err)
	}
	m.images[key] = img
	log.Printf("Loaded image %s from %s (%dx%d)", key, path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// LoadAll loads the player sheet, the background and every sprite named by
// the enemy library. Failures are logged and leave the key unloaded.
func (m *ImageManager) LoadAll(library *defs.Library) {
	for key, file := range defaultFiles {
		if err := m.load(key, file); err != nil {
			log.Printf("WARNING: %v, using placeholder", err)
		}
	}
	for _, def := range library.All() {
		if def.Sprite == "" {
			continue
		}
		if _, ok := m.images[def.Sprite]; ok {
			continue
		}
		if err := m.load(def.Sprite, def.Sprite+".png"); err != nil {
			log.Printf("WARNING: %v, enemy %s falls back to a placeholder", err, def.ID)
		}
	}
}

// Cleanup освобождает все изображения.
func (m *ImageManager) Cleanup() {
	for key, img := range m.images {
		img.Deallocate()
		delete(m.images, key)
	}
	log.Println("All images unloaded.")
}

// Image возвращает изображение по ключу.
func (m *ImageManager) Image(key string) (*ebiten.Image, bool) {
	img, ok := m.images[key]
	return img, ok
}
