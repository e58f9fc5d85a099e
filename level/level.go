// Package level builds the sandbox map: a braided maze whose walls are
// exported as axis-aligned segments in map units
package level

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-automap/automap"
	"github.com/lixenwraith/vi-automap/vmath"
)

var ErrInvalidOptions = errors.New("level: invalid options")

// Options controls level generation
type Options struct {
	// Width and Height in cells, rounded down to odd
	Width, Height int
	// CellSize is the edge of one cell in map units
	CellSize int32
	// BraidPercent is the chance a dead end gets opened into a loop, 0 keeps a perfect maze
	BraidPercent int
	// Seed 0 picks a time-based seed
	Seed int64
}

// Segment is one straight wall edge in map units
type Segment struct {
	A, B vmath.Point
}

// Level is a generated map
type Level struct {
	Grid     [][]bool
	CellSize int64
	Seed     int64

	// Spawn and Exit are cell centers in map units
	Spawn, Exit vmath.Point

	Walls []Segment

	start, end Cell
}

// Generate builds a level from opts
func Generate(opts Options) (*Level, error) {
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %d", ErrInvalidOptions, opts.CellSize)
	}
	if opts.BraidPercent < 0 || opts.BraidPercent > 100 {
		return nil, fmt.Errorf("%w: braid %d%%", ErrInvalidOptions, opts.BraidPercent)
	}

	rows, cols := oddFloor(opts.Height), oddFloor(opts.Width)
	// Player positions travel as int32 map units
	if int64(max(rows, cols))*int64(opts.CellSize) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %dx%d cells of %d exceed the int32 map range", ErrInvalidOptions, cols, rows, opts.CellSize)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := newGrid(rows, cols)
	start := Cell{1, 1}
	end := Cell{cols - 2, rows - 2}

	carve(grid, start, rng)
	if opts.BraidPercent > 0 {
		braid(grid, opts.BraidPercent, rng)
	}

	l := &Level{
		Grid:     grid,
		CellSize: int64(opts.CellSize),
		Seed:     seed,
		start:    start,
		end:      end,
	}
	l.Spawn = l.CellCenter(start)
	l.Exit = l.CellCenter(end)
	l.Walls = l.traceWalls()
	return l, nil
}

// Size returns the grid dimensions in cells
func (l *Level) Size() (cols, rows int) {
	return len(l.Grid[0]), len(l.Grid)
}

// Bounds returns the map extent of the level
func (l *Level) Bounds() automap.Rect {
	cols, rows := l.Size()
	return automap.Rect{MaxX: int64(cols) * l.CellSize, MaxY: int64(rows) * l.CellSize}
}

// CellCenter returns the map position of the middle of c
func (l *Level) CellCenter(c Cell) vmath.Point {
	return vmath.Point{
		X: int64(c.X)*l.CellSize + l.CellSize/2,
		Y: int64(c.Y)*l.CellSize + l.CellSize/2,
	}
}

// CellAt returns the cell containing map point p
// Points outside the level return ok=false
func (l *Level) CellAt(p vmath.Point) (c Cell, ok bool) {
	if p.X < 0 || p.Y < 0 {
		return Cell{}, false
	}
	c = Cell{int(p.X / l.CellSize), int(p.Y / l.CellSize)}
	cols, rows := l.Size()
	if c.X >= cols || c.Y >= rows {
		return Cell{}, false
	}
	return c, true
}

// Walkable reports whether p lies on a passage
func (l *Level) Walkable(p vmath.Point) bool {
	c, ok := l.CellAt(p)
	return ok && l.Grid[c.Y][c.X] == Passage
}

// Route returns the cell centers along the shortest walk from spawn to exit
func (l *Level) Route() []vmath.Point {
	cells := route(l.Grid, l.start, l.end)
	points := make([]vmath.Point, len(cells))
	for i, c := range cells {
		points[i] = l.CellCenter(c)
	}
	return points
}

// traceWalls emits every edge between a wall cell and a passage or the outside,
// merging collinear neighbours into one segment
func (l *Level) traceWalls() []Segment {
	cols, rows := l.Size()
	wall := func(x, y int) bool {
		return x >= 0 && x < cols && y >= 0 && y < rows && l.Grid[y][x] == Wall
	}
	cs := l.CellSize

	var segs []Segment

	// Horizontal edges lie on row lines 0..rows
	for y := 0; y <= rows; y++ {
		runStart := -1
		for x := 0; x <= cols; x++ {
			edge := x < cols && wall(x, y-1) != wall(x, y)
			if edge && runStart < 0 {
				runStart = x
			}
			if !edge && runStart >= 0 {
				segs = append(segs, Segment{
					A: vmath.Point{X: int64(runStart) * cs, Y: int64(y) * cs},
					B: vmath.Point{X: int64(x) * cs, Y: int64(y) * cs},
				})
				runStart = -1
			}
		}
	}

	// Vertical edges lie on column lines 0..cols
	for x := 0; x <= cols; x++ {
		runStart := -1
		for y := 0; y <= rows; y++ {
			edge := y < rows && wall(x-1, y) != wall(x, y)
			if edge && runStart < 0 {
				runStart = y
			}
			if !edge && runStart >= 0 {
				segs = append(segs, Segment{
					A: vmath.Point{X: int64(x) * cs, Y: int64(runStart) * cs},
					B: vmath.Point{X: int64(x) * cs, Y: int64(y) * cs},
				})
				runStart = -1
			}
		}
	}

	return segs
}
