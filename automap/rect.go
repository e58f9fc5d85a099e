package automap

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/vi-automap/vmath"
)

// Rect is a map-space rectangle, Min inclusive and Max exclusive
type Rect struct {
	MinX, MinY int64
	MaxX, MaxY int64
}

// RectFromOrigin builds a Rect from its origin and size
func RectFromOrigin(x, y, width, height int64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

func (r Rect) Width() int64  { return r.MaxX - r.MinX }
func (r Rect) Height() int64 { return r.MaxY - r.MinY }

// Center returns the midpoint, rounded toward negative infinity
func (r Rect) Center() vmath.Point {
	return vmath.Point{X: (r.MinX + r.MaxX) >> 1, Y: (r.MinY + r.MaxY) >> 1}
}

// Translate returns r moved by v, size unchanged
func (r Rect) Translate(v vmath.Vector) Rect {
	return Rect{r.MinX + v.X, r.MinY + v.Y, r.MaxX + v.X, r.MaxY + v.Y}
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p vmath.Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// Union returns the smallest rectangle containing r and s
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

// centered returns a rect of the given size whose Center is c
func centered(c vmath.Point, width, height int64) Rect {
	minX := c.X - width>>1
	minY := c.Y - height>>1
	return Rect{MinX: minX, MinY: minY, MaxX: minX + width, MaxY: minY + height}
}

func (r Rect) String() string {
	return fmt.Sprintf("rect{min=(%d,%d) max=(%d,%d) size=%dx%d}",
		r.MinX, r.MinY, r.MaxX, r.MaxY, r.Width(), r.Height())
}

// LogValue implements slog.LogValuer
func (r Rect) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("x", r.MinX),
		slog.Int64("y", r.MinY),
		slog.Int64("w", r.Width()),
		slog.Int64("h", r.Height()),
	)
}
