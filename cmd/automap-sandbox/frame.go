package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-automap/vmath"
)

// Pixel colors of the overview frame
const (
	pixEmpty uint8 = iota
	pixWall
	pixRoute
	pixExit
	pixPlayer
)

var pixColors = [...]tcell.Color{
	pixEmpty:  tcell.ColorDefault,
	pixWall:   tcell.ColorSilver,
	pixRoute:  tcell.ColorNavy,
	pixExit:   tcell.ColorLime,
	pixPlayer: tcell.ColorYellow,
}

// frame is a pixel buffer drawn to the terminal two pixels per cell using half blocks
type frame struct {
	width, height int
	pix           []uint8
}

func newFrame(width, height int) *frame {
	return &frame{width: width, height: height, pix: make([]uint8, width*height)}
}

func (f *frame) clear() {
	clear(f.pix)
}

func (f *frame) set(x, y int, c uint8) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
}

func (f *frame) at(x, y int) uint8 {
	return f.pix[y*f.width+x]
}

// line draws a segment after clipping it to the frame
func (f *frame) line(x0, y0, x1, y1 int64, c uint8) {
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, int64(f.width-1), int64(f.height-1))
	if !ok {
		return
	}

	dx, dy := vmath.Abs64(x1-x0), -vmath.Abs64(y1-y0)
	sx, sy := int64(1), int64(1)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		f.set(int(x0), int(y0), c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// blit copies the frame to the screen at (ox, oy)
func (f *frame) blit(screen tcell.Screen, ox, oy int) {
	for cy := 0; cy*2 < f.height; cy++ {
		for cx := 0; cx < f.width; cx++ {
			top := f.at(cx, cy*2)
			bottom := pixEmpty
			if cy*2+1 < f.height {
				bottom = f.at(cx, cy*2+1)
			}

			switch {
			case top == pixEmpty && bottom == pixEmpty:
				screen.SetContent(ox+cx, oy+cy, ' ', nil, tcell.StyleDefault)
			case top == bottom:
				screen.SetContent(ox+cx, oy+cy, '█', nil, tcell.StyleDefault.Foreground(pixColors[top]))
			case bottom == pixEmpty:
				screen.SetContent(ox+cx, oy+cy, '▀', nil, tcell.StyleDefault.Foreground(pixColors[top]))
			case top == pixEmpty:
				screen.SetContent(ox+cx, oy+cy, '▄', nil, tcell.StyleDefault.Foreground(pixColors[bottom]))
			default:
				screen.SetContent(ox+cx, oy+cy, '▀', nil,
					tcell.StyleDefault.Foreground(pixColors[top]).Background(pixColors[bottom]))
			}
		}
	}
}

// Outcodes for Cohen-Sutherland clipping
const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func outcode(x, y, maxX, maxY int64) int {
	code := 0
	if x < 0 {
		code |= outLeft
	} else if x > maxX {
		code |= outRight
	}
	if y < 0 {
		code |= outTop
	} else if y > maxY {
		code |= outBottom
	}
	return code
}

// clipLine trims a segment to [0, maxX] x [0, maxY]
// Intersections use a 128-bit intermediate since projected points may sit far off screen
func clipLine(x0, y0, x1, y1, maxX, maxY int64) (int64, int64, int64, int64, bool) {
	c0, c1 := outcode(x0, y0, maxX, maxY), outcode(x1, y1, maxX, maxY)
	// Each pass pins one endpoint to one edge, four edges per endpoint at most
	for range 8 {
		if c0|c1 == 0 {
			return x0, y0, x1, y1, true
		}
		if c0&c1 != 0 {
			return 0, 0, 0, 0, false
		}

		out := c0
		if out == 0 {
			out = c1
		}

		var x, y int64
		switch {
		case out&outBottom != 0:
			x, y = x0+vmath.MulDiv(x1-x0, maxY-y0, y1-y0), maxY
		case out&outTop != 0:
			x, y = x0+vmath.MulDiv(x1-x0, -y0, y1-y0), 0
		case out&outRight != 0:
			x, y = maxX, y0+vmath.MulDiv(y1-y0, maxX-x0, x1-x0)
		default:
			x, y = 0, y0+vmath.MulDiv(y1-y0, -x0, x1-x0)
		}

		if out == c0 {
			x0, y0 = x, y
			c0 = outcode(x0, y0, maxX, maxY)
		} else {
			x1, y1 = x, y
			c1 = outcode(x1, y1, maxX, maxY)
		}
	}
	return x0, y0, x1, y1, c0|c1 == 0
}
