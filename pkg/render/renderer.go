package render

import (
	"image"
	"math"

	"go-arcade-shooter/internal/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const ellipseSegments = 24

// ImageSource resolves sprite keys to images.
type ImageSource interface {
	Image(key string) (*ebiten.Image, bool)
}

// Renderer executes a draw list on an ebiten image.
type Renderer struct {
	images   ImageSource
	fontFace font.Face
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
}

func NewRenderer(images ImageSource) *Renderer {
	fillImg := ebiten.NewImage(3, 3)
	fillImg.Fill(image.White.C)
	return &Renderer{
		images:   images,
		fontFace: basicfont.Face7x13,
		// Центр 3x3, чтобы края атласа не попадали в выборку.
		fillImg: fillImg.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		fillVs:  make([]ebiten.Vertex, 0, 64),
		fillIs:  make([]uint16, 0, 96),
	}
}

// Draw выполняет все команды по порядку.
func (r *Renderer) Draw(screen *ebiten.Image, cmds []draw.Command) {
	for i := range cmds {
		r.exec(screen, &cmds[i])
	}
}

func (r *Renderer) exec(dst *ebiten.Image, c *draw.Command) {
	clr := draw.Premultiply(c.Color, c.Alpha)
	switch c.Kind {
	case draw.KindRect:
		vector.DrawFilledRect(dst, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), clr, false)
	case draw.KindStrokeRect:
		vector.StrokeRect(dst, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), float32(c.Width), clr, false)
	case draw.KindCircle:
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(c.R), clr, true)
	case draw.KindLine:
		vector.StrokeLine(dst, float32(c.X), float32(c.Y), float32(c.X2), float32(c.Y2), float32(c.Width), clr, true)
	case draw.KindEllipse:
		var path vector.Path
		for i := 0; i < ellipseSegments; i++ {
			a := 2 * math.Pi * float64(i) / ellipseSegments
			px, py := float32(c.X+c.W*math.Cos(a)), float32(c.Y+c.H*math.Sin(a))
			if i == 0 {
				path.MoveTo(px, py)
			} else {
				path.LineTo(px, py)
			}
		}
		path.Close()
		r.fillPath(dst, &path, c)
	case draw.KindPolygon:
		var path vector.Path
		path.MoveTo(float32(c.Points[0].X), float32(c.Points[0].Y))
		for _, p := range c.Points[1:] {
			path.LineTo(float32(p.X), float32(p.Y))
		}
		path.Close()
		r.fillPath(dst, &path, c)
	case draw.KindSprite:
		r.drawSprite(dst, c)
	case draw.KindText:
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(c.Size, c.Size)
		op.GeoM.Translate(c.X, c.Y)
		op.ColorScale.ScaleWithColor(clr)
		text.DrawWithOptions(dst, c.Text, r.fontFace, op)
	}
}

func (r *Renderer) fillPath(dst *ebiten.Image, path *vector.Path, c *draw.Command) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	cr, cg, cb, ca := draw.VertexColor(c.Color, c.Alpha)
	for i := range r.fillVs {
		r.fillVs[i].SrcX, r.fillVs[i].SrcY = 1, 1
		r.fillVs[i].ColorR = cr
		r.fillVs[i].ColorG = cg
		r.fillVs[i].ColorB = cb
		r.fillVs[i].ColorA = ca
	}
	dst.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	})
}

// drawSprite рисует кадр или тайлы изображения, либо заглушку, если
// изображения нет.
func (r *Renderer) drawSprite(dst *ebiten.Image, c *draw.Command) {
	img, ok := r.images.Image(c.Sprite)
	if !ok {
		if c.Color.A > 0 && !c.Tile {
			vector.DrawFilledRect(dst, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), c.Color, false)
		}
		return
	}

	if c.Tile {
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		if iw == 0 || ih == 0 {
			return
		}
		for x := 0; x < int(c.W); x += iw {
			for y := 0; y < int(c.H); y += ih {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x), float64(y))
				dst.DrawImage(img, op)
			}
		}
		return
	}

	src := img
	fw, fh := c.FrameW, c.FrameH
	if fw > 0 && fh > 0 {
		sx := c.Frame * fw
		if sx+fw > img.Bounds().Dx() {
			sx = 0
		}
		src = img.SubImage(image.Rect(sx, 0, sx+fw, fh)).(*ebiten.Image)
	} else {
		fw, fh = img.Bounds().Dx(), img.Bounds().Dy()
	}
	if fw == 0 || fh == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(c.W/float64(fw), c.H/float64(fh))
	op.GeoM.Translate(c.X, c.Y)
	dst.DrawImage(src, op)
}
