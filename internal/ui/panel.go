// internal/ui/panel.go
package ui

import (
	"fmt"
	"image/color"

	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/draw"
)

// Line is one row of panel text. An empty Text keeps the gap.
type Line struct {
	Text  string
	Color color.RGBA
}

// Panel is a centred modal card with a title, a few lines and one button.
type Panel struct {
	Title      string
	TitleColor color.RGBA
	Lines      []Line
	Button     *Button
}

func panelOrigin() (float64, float64) {
	return (config.ScreenWidth - config.PanelWidth) / 2, (config.ScreenHeight - config.PanelHeight) / 2
}

func newPanel(title string, lines []Line, label string) *Panel {
	x, y := panelOrigin()
	bx := x + (config.PanelWidth-config.PanelButtonW)/2
	by := y + config.PanelHeight - config.PanelButtonH - 18
	return &Panel{
		Title:      title,
		TitleColor: config.TitleColor,
		Lines:      lines,
		Button:     NewButton(bx, by, config.PanelButtonW, config.PanelButtonH, label),
	}
}

// StartPanel is shown in the menu state.
func StartPanel() *Panel {
	return newPanel("TERMINATOR", []Line{
		{"Arcade Infiltration", config.SubtitleColor},
		{"Arrow keys to move", config.HintColor},
		{"Space or Z to fire", config.ScoreTextColor},
		{},
		{"Press Space or click below", config.TitleColor},
	}, "Initiate")
}

// GameOverPanel reports the finished run next to the session record.
func GameOverPanel(score, highScore int) *Panel {
	return newPanel("TERMINATED", []Line{
		{fmt.Sprintf("Score: %d", score), config.ScoreTextColor},
		{fmt.Sprintf("High Score: %d", highScore), config.HintColor},
		{},
		{"Press Space or click below to retry", config.TitleColor},
	}, "Reboot")
}

// Draw renders the card. hover highlights the button.
func (p *Panel) Draw(l *draw.List, hover bool) {
	x, y := panelOrigin()
	cx := x + config.PanelWidth/2

	l.Rect(x, y, config.PanelWidth, config.PanelHeight, config.PanelColor, float64(config.PanelColor.A)/255)
	l.StrokeRect(x, y, config.PanelWidth, config.PanelHeight, 2, config.PanelBorder, 1)
	l.CenteredText(p.Title, cx, y+40, 2.5, p.TitleColor)

	lineY := y + 72.0
	for _, line := range p.Lines {
		l.CenteredText(line.Text, cx, lineY, 1, line.Color)
		lineY += config.PanelLineHeight
	}
	p.Button.Draw(l, hover)
}
