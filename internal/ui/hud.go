// internal/ui/hud.go
package ui

import (
	"strconv"

	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/draw"
)

// HUD рисует счёт и оставшиеся жизни поверх игрового поля.
type HUD struct {
	ScoreX, ScoreY float64
	LifeX, LifeY   float64
}

func NewHUD() *HUD {
	return &HUD{
		ScoreX: config.HUDScoreX, ScoreY: config.HUDScoreY,
		LifeX: config.HUDLifeX, LifeY: config.HUDLifeY,
	}
}

func (h *HUD) Draw(l *draw.List, score, lives int) {
	l.Text("Score: "+strconv.Itoa(score), h.ScoreX, h.ScoreY, 1.5, config.ScoreTextColor)
	for i := 0; i < lives; i++ {
		skull(l, h.LifeX+float64(i*config.HUDLifeSpacing), h.LifeY, config.HUDLifeScale)
	}
}

// skull — значок жизни: череп с красным глазом и челюстью.
func skull(l *draw.List, ox, oy, s float64) {
	at := func(x, y float64) (float64, float64) { return ox + x*s, oy + y*s }

	cx, cy := at(22, 18)
	l.Ellipse(cx, cy, 16*s, 15*s, config.SkullColor, 1)
	ex, ey := at(31, 18)
	l.Circle(ex, ey, 3*s, config.SkullEyeColor, 1)

	jaw := [][2]float64{{35, 29}, {27, 34}, {19, 33}, {12, 29}}
	for i := 1; i < len(jaw); i++ {
		x1, y1 := at(jaw[i-1][0], jaw[i-1][1])
		x2, y2 := at(jaw[i][0], jaw[i][1])
		l.Line(x1, y1, x2, y2, 2*s, config.SkullJawColor, 1)
	}
}
