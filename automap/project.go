package automap

import (
	"math"

	"github.com/lixenwraith/vi-automap/vmath"
)

// ClampCenter moves the window so its center lies within bounds, size unchanged
// Callers invoke it explicitly after panning when the map has a known extent
func (e *Engine) ClampCenter(bounds Rect) {
	c := e.rect.Center()
	target := vmath.Point{
		X: min(max(c.X, bounds.MinX), bounds.MaxX),
		Y: min(max(c.Y, bounds.MinY), bounds.MaxY),
	}
	if target != c {
		e.rect = e.rect.Translate(target.Sub(c))
	}
}

// MapToScreen converts a map point to display pixels relative to the window origin
// In rotate mode the point is first turned about the player so the heading points up
func (e *Engine) MapToScreen(x, y int64) (sx, sy int32) {
	p := vmath.Point{X: x, Y: y}
	if e.rotate {
		p = vmath.RotateAround(p, e.player, -e.heading)
	}
	return clampInt32(vmath.MulWide(p.X-e.rect.MinX, e.scale)),
		clampInt32(vmath.MulWide(p.Y-e.rect.MinY, e.scale))
}

// ScreenToMap converts display pixels relative to the window origin to a map point
func (e *Engine) ScreenToMap(sx, sy int32) (x, y int64) {
	p := vmath.Point{
		X: e.rect.MinX + vmath.DivWide(int64(sx), e.scale),
		Y: e.rect.MinY + vmath.DivWide(int64(sy), e.scale),
	}
	if e.rotate {
		p = vmath.RotateAround(p, e.player, e.heading)
	}
	return p.X, p.Y
}

// FitScale returns the largest scale at which bounds fits a width x height display
func FitScale(bounds Rect, width, height int32) vmath.Fixed {
	bw, bh := bounds.Width(), bounds.Height()
	if bw <= 0 || bh <= 0 || width <= 0 || height <= 0 {
		return vmath.FracUnit
	}
	sx := vmath.MulDiv(int64(width), int64(vmath.FracUnit), bw)
	sy := vmath.MulDiv(int64(height), int64(vmath.FracUnit), bh)
	scale := min(sx, sy, math.MaxInt32)
	if scale < 1 {
		return 1
	}
	return vmath.Fixed(scale)
}

func clampInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
