// internal/draw/list.go
package draw

import (
	"image/color"
	"unicode/utf8"
)

// Kind says how the executor should interpret a Command.
type Kind int

const (
	KindRect Kind = iota
	KindStrokeRect
	KindCircle
	KindEllipse
	KindLine
	KindPolygon
	KindSprite
	KindText
)

// Glyph metrics of the bitmap face the executor renders text with.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)

// Point is a vertex of a polygon.
type Point struct{ X, Y float64 }

// Command is one primitive of a frame. Which fields matter depends on Kind:
//   - rect, stroke rect, sprite: X, Y, W, H
//   - circle: X, Y centre, R
//   - ellipse: X, Y centre, W and H are the radii
//   - line: X, Y to X2, Y2 with Width
//   - polygon: Points
//   - text: X, Y baseline start, Size scales the glyphs
type Command struct {
	Kind   Kind
	X, Y   float64
	W, H   float64
	X2, Y2 float64
	R      float64
	Width  float64
	Points []Point
	Color  color.RGBA
	Alpha  float64

	// Sprite fields. A sprite the executor cannot find is replaced by a
	// rect in Color, or skipped when Color is fully transparent.
	Sprite string
	Frame  int
	FrameW int
	FrameH int
	Tile   bool

	Text string
	Size float64
}

// List collects the commands of one frame in painter's order.
type List struct {
	cmds []Command
}

func (l *List) Reset()              { l.cmds = l.cmds[:0] }
func (l *List) Commands() []Command { return l.cmds }
func (l *List) Len() int            { return len(l.cmds) }

func (l *List) push(c Command) {
	if c.Alpha <= 0 {
		return
	}
	if c.Alpha > 1 {
		c.Alpha = 1
	}
	l.cmds = append(l.cmds, c)
}

func (l *List) Rect(x, y, w, h float64, c color.RGBA, alpha float64) {
	l.push(Command{Kind: KindRect, X: x, Y: y, W: w, H: h, Color: c, Alpha: alpha})
}

func (l *List) StrokeRect(x, y, w, h, width float64, c color.RGBA, alpha float64) {
	l.push(Command{Kind: KindStrokeRect, X: x, Y: y, W: w, H: h, Width: width, Color: c, Alpha: alpha})
}

func (l *List) Circle(x, y, r float64, c color.RGBA, alpha float64) {
	l.push(Command{Kind: KindCircle, X: x, Y: y, R: r, Color: c, Alpha: alpha})
}

func (l *List) Ellipse(x, y, rx, ry float64, c color.RGBA, alpha float64) {
	l.push(Command{Kind: KindEllipse, X: x, Y: y, W: rx, H: ry, Color: c, Alpha: alpha})
}

func (l *List) Line(x1, y1, x2, y2, width float64, c color.RGBA, alpha float64) {
	l.push(Command{Kind: KindLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: width, Color: c, Alpha: alpha})
}

func (l *List) Polygon(points []Point, c color.RGBA, alpha float64) {
	if len(points) < 3 {
		return
	}
	l.push(Command{Kind: KindPolygon, Points: points, Color: c, Alpha: alpha})
}

// Sprite draws frame of a horizontal strip scaled into the destination rect.
// frameW and frameH of 0 mean the whole image.
func (l *List) Sprite(key string, frame, frameW, frameH int, x, y, w, h float64, placeholder color.RGBA) {
	l.push(Command{
		Kind: KindSprite, Sprite: key, Frame: frame, FrameW: frameW, FrameH: frameH,
		X: x, Y: y, W: w, H: h, Color: placeholder, Alpha: 1,
	})
}

// TiledSprite repeats an image from the origin until it covers w by h.
func (l *List) TiledSprite(key string, w, h float64) {
	l.push(Command{Kind: KindSprite, Sprite: key, Tile: true, W: w, H: h, Alpha: 1})
}

func (l *List) Text(s string, x, y, size float64, c color.RGBA) {
	if s == "" {
		return
	}
	l.push(Command{Kind: KindText, Text: s, X: x, Y: y, Size: size, Color: c, Alpha: 1})
}

// CenteredText places s so that its middle sits on cx.
func (l *List) CenteredText(s string, cx, y, size float64, c color.RGBA) {
	l.Text(s, cx-TextWidth(s, size)/2, y, size, c)
}

// TextWidth is the advance of s in the executor's face at the given scale.
func TextWidth(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * GlyphWidth * size
}
