// internal/draw/scene.go
package draw

import (
	"image/color"
	"math"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/utils"
)

// Asset keys the executor resolves to images.
const (
	SpriteBackground = "background"
	SpritePlayer     = "player"
)

const (
	gradientBands = 40
	emberCount    = 16
)

// Backdrop is the static scene behind the playfield. The stylised fallback
// is generated once so the skyline does not shimmer between frames; the
// background image, when present, is tiled over it.
type Backdrop struct {
	fallback List
}

// NewBackdrop builds the fallback from rng.
func NewBackdrop(rng *utils.PRNGService) *Backdrop {
	b := &Backdrop{}
	l := &b.fallback
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)

	bandH := h / gradientBands
	for i := 0; i < gradientBands; i++ {
		t := (float64(i) + 0.5) / gradientBands
		l.Rect(0, float64(i)*bandH, w, bandH+1, skyColor(t), 1)
	}

	bases := [3]float64{h - 80, h - 54, h - 32}
	for layer := 0; layer < 3; layer++ {
		alpha := 0.22 + 0.13*float64(layer)
		for x := 0.0; x <= w+80; x += 40 + rng.Float64()*20 {
			bh := 24 + rng.Float64()*(18+float64(layer)*9)
			bw := 24 + rng.Float64()*10
			l.Rect(x, bases[layer]-bh, bw, bh, config.SkylineColors[layer], alpha)
		}
	}

	l.Rect(0, h-100, w, 3, config.ScannerColor, 0.15)

	for i := 0; i < emberCount; i++ {
		px := float64((i * 108) % (config.ScreenWidth + 32))
		py := h - 20 - float64((i*13)%68)
		r := 1.0
		if i%6 == 0 {
			r = 2
		}
		c, alpha := config.EmberColor, 0.28
		if i%2 == 1 {
			c, alpha = config.EmberDimColor, 0.38
		}
		l.Circle(px, py, r, c, alpha)
	}
	return b
}

// Draw appends the fallback, then the tiled background image.
func (b *Backdrop) Draw(l *List) {
	l.cmds = append(l.cmds, b.fallback.cmds...)
	l.TiledSprite(SpriteBackground, config.ScreenWidth, config.ScreenHeight)
}

// Fade darkens the whole screen under the menu and game over panels.
func Fade(l *List) {
	l.Rect(0, 0, config.ScreenWidth, config.ScreenHeight, config.FadeColor, config.MenuFadeAlpha)
}

// skyColor is the steel gradient: top to mid over the first half, mid to
// bottom over the second.
func skyColor(t float64) color.RGBA {
	if t < 0.5 {
		return lerpColor(config.SkyTopColor, config.SkyMidColor, t*2)
	}
	return lerpColor(config.SkyMidColor, config.SkyBottomColor, (t-0.5)*2)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(utils.Lerp(float64(x), float64(y), t)))
	}
	return color.RGBA{ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B), ch(a.A, b.A)}
}

// World appends the player, enemies, projectiles and particles. t is the
// wall clock in seconds and only drives cosmetic animation.
func World(l *List, w *entity.World, t float64) {
	p := w.Player
	if p.Visible() {
		l.Sprite(SpritePlayer, p.AnimFrame, config.PlayerFrameWidth, config.PlayerFrameHeight,
			p.X, p.Y, p.Width, p.Height, config.PlayerColor)
	}
	for _, b := range p.Bullets {
		bullet(l, b)
	}

	for _, e := range w.Enemies {
		switch {
		case e.Dead:
			// убит в этом тике, удалится при следующей чистке
		case e.Sprite != "":
			l.Sprite(e.Sprite, 0, 0, 0, e.X, e.Y, e.Width, e.Height, config.EnemyBodyColor)
		case e.DefID == defs.EnemyHunter:
			hunter(l, e)
		default:
			endoskeleton(l, e, t)
		}
		for _, b := range e.Bullets {
			bullet(l, b)
		}
	}

	for _, pt := range w.Particles {
		l.Circle(pt.X, pt.Y, pt.Radius, pt.Color, pt.Alpha())
	}
}

func bullet(l *List, b *component.Bullet) {
	if b.Dead {
		return
	}
	if b.Owner == component.OwnerEnemy {
		l.Circle(b.X, b.Y, b.Radius, config.EnemyBulletCol, 1)
		l.Line(b.X+config.BulletTrailLength, b.Y, b.X, b.Y, 2, config.EnemyBulletTail, 0.32)
		return
	}
	l.Circle(b.X, b.Y, b.Radius, config.BulletColor, 1)
	l.Line(b.X-config.BulletTrailLength, b.Y, b.X, b.Y, 2, config.BulletTrail, 0.4)
}

// endoskeleton рисует робота в локальных координатах 38x52.
func endoskeleton(l *List, e *component.Enemy, t float64) {
	x, y := e.X, e.Y
	body, joint := config.EnemyBodyColor, config.EnemyJointColor

	l.Ellipse(x+19, y+49, 15, 5, config.ShadowColor, 0.18)

	// ноги
	l.Line(x+16, y+38, x+13, y+50, 6, body, 1)
	l.Line(x+22, y+38, x+25, y+51, 6, body, 1)
	l.Circle(x+13, y+50, 2, joint, 1)
	l.Circle(x+25, y+51, 2, joint, 1)
	l.Ellipse(x+12, y+53, 4, 2, config.EnemyFootColor, 1)
	l.Ellipse(x+25, y+54, 4, 2, config.EnemyFootColor, 1)

	l.Polygon([]Point{{x + 14, y + 20}, {x + 25, y + 20}, {x + 28, y + 39}, {x + 11, y + 39}}, body, 0.92)
	l.Line(x+19.5, y+21, x+18.5, y+39, 2, joint, 1)

	// руки и клинок
	l.Line(x+12, y+23, x+3, y+33, 6, body, 1)
	l.Line(x+27, y+23, x+36, y+30, 6, body, 1)
	l.Circle(x+3, y+33, 2, joint, 1)
	l.Circle(x+36, y+30, 2, joint, 1)
	l.Line(x+36, y+30, x+44, y+23, 3.5, config.ExplosionCyan, 1)

	l.Circle(x+19, y+28, 4.5, config.EnemyCoreColor, 0.85)

	l.Ellipse(x+19, y+12, 8, 10, body, 0.96)
	l.Line(x+14, y+17, x+18, y+19, 1.1, joint, 1)
	l.Line(x+18, y+19, x+24, y+17, 1.1, joint, 1)
	l.Circle(x+16.5, y+13, 1.5, config.EnemyEyeColor, 0.9)
	l.Circle(x+21.5, y+13, 1.5, config.EnemyEyeColor, 0.9)
	l.Ellipse(x+24, y+10, 2.1, 1.2, config.WhiteColor, 0.12)

	shimmerY := 23 + math.Sin(t/config.EnemyShimmerPeriodS+e.X)*4
	l.Ellipse(x+19, y+shimmerY, 7, 2, config.WhiteColor, 0.12)
}

// hunter is the low flying drone, drawn in a 38x28 box.
func hunter(l *List, e *component.Enemy) {
	x, y := e.X, e.Y
	l.Ellipse(x+19, y+26, 14, 2, config.ShadowColor, 0.18)
	l.Line(x+26, y+8, x+36, y+2, 3, config.EnemyBodyColor, 1)
	l.Line(x+26, y+20, x+36, y+26, 3, config.EnemyBodyColor, 1)
	l.Ellipse(x+19, y+14, 17, 8, config.EnemyBodyColor, 0.95)
	l.Ellipse(x+11, y+13, 6, 4, config.EnemyJointColor, 0.9)
	l.Circle(x+7, y+14, 2, config.EnemyEyeColor, 0.9)
	l.Circle(x+25, y+14, 3, config.EnemyCoreColor, 0.85)
}
