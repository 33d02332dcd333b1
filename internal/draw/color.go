// internal/draw/color.go
package draw

import "image/color"

// Premultiply applies an opacity to a straight colour for the vector
// helpers, which expect premultiplied colours. The alpha channel of c is
// ignored: commands carry opacity separately.
func Premultiply(c color.RGBA, alpha float64) color.RGBA {
	alpha = clampAlpha(alpha)
	return color.RGBA{
		R: uint8(float64(c.R)*alpha + 0.5),
		G: uint8(float64(c.G)*alpha + 0.5),
		B: uint8(float64(c.B)*alpha + 0.5),
		A: uint8(255*alpha + 0.5),
	}
}

// VertexColor returns straight (non-premultiplied) vertex components for
// triangle fills drawn in straight alpha mode.
func VertexColor(c color.RGBA, alpha float64) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(clampAlpha(alpha))
}

func clampAlpha(alpha float64) float64 {
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
