package ui

import (
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(l *draw.List) []string {
	var out []string
	for _, c := range l.Commands() {
		if c.Kind == draw.KindText {
			out = append(out, c.Text)
		}
	}
	return out
}

func TestButtonContains(t *testing.T) {
	b := NewButton(100, 50, 140, 34, "Initiate")
	cases := []struct {
		x, y float64
		want bool
	}{
		{100, 50, true},
		{170, 67, true},
		{239.9, 83.9, true},
		{240, 60, false},
		{150, 84, false},
		{99, 60, false},
		{150, 49, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, b.Contains(tc.x, tc.y), "(%v,%v)", tc.x, tc.y)
	}
}

func TestButtonHover(t *testing.T) {
	b := NewButton(0, 0, 10, 10, "x")
	var l draw.List
	b.Draw(&l, false)
	assert.Equal(t, config.ButtonColor, l.Commands()[0].Color)

	l.Reset()
	b.Draw(&l, true)
	assert.Equal(t, config.PanelBorder, l.Commands()[0].Color)
}

func TestStartPanel(t *testing.T) {
	p := StartPanel()
	var l draw.List
	p.Draw(&l, false)

	got := texts(&l)
	assert.Equal(t, "TERMINATOR", got[0])
	assert.Contains(t, got, "Arcade Infiltration")
	assert.Contains(t, got, "Press Space or click below")
	assert.Equal(t, "Initiate", got[len(got)-1])

	cx, cy := p.Button.X+p.Button.W/2, p.Button.Y+p.Button.H/2
	assert.True(t, p.Button.Contains(cx, cy))
	assert.False(t, p.Button.Contains(0, 0))
}

func TestPanelFitsOnScreen(t *testing.T) {
	for _, p := range []*Panel{StartPanel(), GameOverPanel(123456, 999999)} {
		var l draw.List
		p.Draw(&l, false)
		for _, c := range l.Commands() {
			if c.Kind != draw.KindText {
				continue
			}
			w := draw.TextWidth(c.Text, c.Size)
			assert.LessOrEqual(t, w, float64(config.PanelWidth), "%q is wider than the panel", c.Text)
		}
		b := p.Button
		assert.GreaterOrEqual(t, b.Y+b.H, 0.0)
		assert.LessOrEqual(t, b.Y+b.H, float64(config.ScreenHeight+config.PanelHeight)/2)
	}
}

func TestGameOverPanel(t *testing.T) {
	p := GameOverPanel(1200, 3400)
	var l draw.List
	p.Draw(&l, false)

	got := texts(&l)
	assert.Equal(t, "TERMINATED", got[0])
	assert.Contains(t, got, "Score: 1200")
	assert.Contains(t, got, "High Score: 3400")
	assert.Contains(t, got, "Press Space or click below to retry")
	assert.Equal(t, "Reboot", p.Button.Text)
}

func TestHUD(t *testing.T) {
	h := NewHUD()
	var l draw.List
	h.Draw(&l, 300, 2)

	got := texts(&l)
	require.Len(t, got, 1)
	assert.Equal(t, "Score: 300", got[0])

	var skulls int
	for _, c := range l.Commands() {
		if c.Kind == draw.KindEllipse && c.Color == config.SkullColor {
			skulls++
		}
	}
	assert.Equal(t, 2, skulls)

	l.Reset()
	h.Draw(&l, 0, 0)
	assert.Len(t, l.Commands(), 1, "no skulls without lives")
}
