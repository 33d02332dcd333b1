// internal/ui/button.go
package ui

import (
	"image/color"

	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/draw"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float64
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	FontSize   float64
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float64, text string) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:       text,
		TextColor:  config.ButtonTextColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.PanelBorder,
		FontSize:   1.5,
	}
}

// Contains проверяет, попадает ли точка в кнопку. Правая и нижняя
// границы в кнопку не входят.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(l *draw.List, hover bool) {
	bg := b.BgColor
	if hover {
		bg = b.HoverColor
	}
	l.Rect(b.X, b.Y, b.W, b.H, bg, 1)
	l.StrokeRect(b.X, b.Y, b.W, b.H, 2, config.PanelBorder, 1)

	textY := b.Y + (b.H+draw.GlyphHeight*b.FontSize)/2 - 3*b.FontSize
	l.CenteredText(b.Text, b.X+b.W/2, textY, b.FontSize, b.TextColor)
}
