package draw

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/utils"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct{ v int }

func (f fixedRand) IntBetween(min, max int) int { return min + f.v }

func count(l *List, kind Kind) int {
	n := 0
	for _, c := range l.Commands() {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func sprites(l *List, key string) []Command {
	var out []Command
	for _, c := range l.Commands() {
		if c.Kind == KindSprite && c.Sprite == key {
			out = append(out, c)
		}
	}
	return out
}

func TestListDropsInvisibleAndClampsAlpha(t *testing.T) {
	var l List
	l.Rect(0, 0, 1, 1, config.WhiteColor, 0)
	l.Circle(0, 0, 1, config.WhiteColor, -0.5)
	l.Polygon([]Point{{0, 0}, {1, 1}}, config.WhiteColor, 1)
	l.Text("", 0, 0, 1, config.WhiteColor)
	assert.Zero(t, l.Len())

	l.Line(0, 0, 1, 1, 2, config.WhiteColor, 3)
	require.Equal(t, 1, l.Len())
	assert.Equal(t, 1.0, l.Commands()[0].Alpha)

	l.Reset()
	assert.Zero(t, l.Len())
}

func TestCenteredText(t *testing.T) {
	var l List
	l.CenteredText("Reboot", 100, 50, 2, config.WhiteColor)
	require.Equal(t, 1, l.Len())
	c := l.Commands()[0]
	assert.Equal(t, 100-3*GlyphWidth*2.0, c.X)
	assert.Equal(t, 6.0*GlyphWidth*2, TextWidth("Reboot", 2))
}

func TestBackdropIsStable(t *testing.T) {
	b := NewBackdrop(utils.NewPRNGService(9))
	var first, second List
	b.Draw(&first)
	b.Draw(&second)
	assert.Equal(t, first.Commands(), second.Commands(), "the skyline is generated once")

	cmds := first.Commands()
	last := cmds[len(cmds)-1]
	assert.Equal(t, KindSprite, last.Kind)
	assert.True(t, last.Tile)
	assert.Equal(t, SpriteBackground, last.Sprite)
	assert.Equal(t, config.SkyTopColor, lerpColor(config.SkyTopColor, config.SkyMidColor, 0))
	assert.Equal(t, config.SkyBottomColor, skyColor(1))
	assert.Equal(t, emberCount, count(&first, KindCircle))
}

func TestWorldDrawsEveryEntity(t *testing.T) {
	w := entity.NewWorld()
	w.Player.Shoot()
	lib := defs.NewEnemyLibrary(defs.DefaultEnemies)
	endo, _ := lib.Get(defs.EnemyEndoskeleton)
	hunt, _ := lib.Get(defs.EnemyHunter)
	rng := fixedRand{}
	shooter := component.NewEnemy(300, 100, 3, endo, rng)
	shooter.Bullets = append(shooter.Bullets, component.NewEnemyBullet(290, 120, config.EnemyBulletSpeed))
	w.AddEnemy(shooter)
	w.AddEnemy(component.NewEnemy(400, 200, 3, hunt, rng))
	w.AddParticle(component.NewParticle(50, 50, config.ExplosionRed, rng))

	var l List
	World(&l, w, 0)

	player := sprites(&l, SpritePlayer)
	require.Len(t, player, 1)
	assert.Equal(t, config.PlayerColor, player[0].Color, "placeholder colour travels with the sprite")
	assert.Equal(t, config.PlayerFrameWidth, player[0].FrameW)

	var bulletCircles int
	for _, c := range l.Commands() {
		if c.Kind == KindCircle && c.R == config.BulletRadius {
			bulletCircles++
		}
	}
	assert.Equal(t, 2, bulletCircles)
	assert.Equal(t, 1, count(&l, KindPolygon), "only the endoskeleton has a torso")
}

func TestWorldFlickersPlayer(t *testing.T) {
	w := entity.NewWorld()
	w.Player.Invincible = 4
	var l List
	World(&l, w, 0)
	assert.Empty(t, sprites(&l, SpritePlayer))

	w.Player.Invincible = 2
	l.Reset()
	World(&l, w, 0)
	assert.Len(t, sprites(&l, SpritePlayer), 1)
}

func TestWorldUsesDefinitionSprite(t *testing.T) {
	w := entity.NewWorld()
	def := defs.DefaultEnemies[0]
	def.Sprite = "t800"
	w.AddEnemy(component.NewEnemy(300, 100, 3, def, fixedRand{}))

	var l List
	World(&l, w, 0)
	got := sprites(&l, "t800")
	require.Len(t, got, 1)
	assert.Equal(t, def.Width, got[0].W)
	assert.Zero(t, count(&l, KindPolygon))
}

func TestWorldSkipsDeadEntities(t *testing.T) {
	w := entity.NewWorld()
	e := component.NewEnemy(300, 100, 3, defs.DefaultEnemies[0], fixedRand{})
	e.Dead = true
	w.AddEnemy(e)
	w.Player.Shoot()
	w.Player.Bullets[0].Dead = true

	var l List
	World(&l, w, 0)
	assert.Equal(t, 1, l.Len(), "only the player sprite is left")
}

func TestVertexColorIsStraight(t *testing.T) {
	c := color.RGBA{R: 0x11, G: 0x88, B: 0xff, A: 255}
	r, g, b, a := VertexColor(c, 0.18)
	assert.InDelta(t, 0x11/255.0, r, 1e-6, "rgb is not scaled by alpha")
	assert.InDelta(t, 0x88/255.0, g, 1e-6)
	assert.InDelta(t, 1.0, b, 1e-6)
	assert.InDelta(t, 0.18, a, 1e-6)

	_, _, _, a = VertexColor(c, 3)
	assert.Equal(t, float32(1), a)
}

func TestPremultiply(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 0, A: 17}
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 0, A: 128}, Premultiply(c, 0.5))
	assert.Equal(t, color.RGBA{R: 200, G: 100, B: 0, A: 255}, Premultiply(c, 1))
	assert.Equal(t, color.RGBA{}, Premultiply(c, -1))
}
