package level

import (
	"math/rand"
)

// Cell values of the level grid
const (
	Wall    = true
	Passage = false
)

// Cell addresses one grid square
type Cell struct {
	X, Y int
}

var (
	stepDirs     = [4]Cell{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	neighborDirs = [4]Cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// newGrid returns a rows x cols grid filled with walls
func newGrid(rows, cols int) [][]bool {
	grid := make([][]bool, rows)
	for y := range grid {
		grid[y] = make([]bool, cols)
		for x := range grid[y] {
			grid[y][x] = Wall
		}
	}
	return grid
}

// carve opens a spanning tree of rooms on odd coordinates using a depth-first walk
func carve(grid [][]bool, start Cell, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	stack := []Cell{start}
	grid[start.Y][start.X] = Passage

	candidates := make([]Cell, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range stepDirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] == Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		grid[cur.Y+d.Y/2][cur.X+d.X/2] = Passage
		next := Cell{cur.X + d.X, cur.Y + d.Y}
		grid[next.Y][next.X] = Passage
		stack = append(stack, next)
	}
}

// braid opens one extra wall at each dead end with the given percent chance, creating loops
func braid(grid [][]bool, percent int, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	candidates := make([]Cell, 0, 4)
	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid[y][x] == Wall || exits(grid, x, y) != 1 {
				continue
			}
			if rng.Intn(100) >= percent {
				continue
			}

			candidates = candidates[:0]
			for _, d := range stepDirs {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if nx <= 0 || nx >= cols-1 || ny <= 0 || ny >= rows-1 {
					continue
				}
				if grid[ny][nx] == Passage && grid[wy][wx] == Wall && canOpen(grid, wx, wy) {
					candidates = append(candidates, Cell{wx, wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				grid[c.Y][c.X] = Passage
			}
		}
	}
}

func exits(grid [][]bool, x, y int) int {
	n := 0
	for _, d := range neighborDirs {
		if grid[y+d.Y][x+d.X] == Passage {
			n++
		}
	}
	return n
}

// canOpen reports whether turning (x, y) into a passage keeps the grid free of
// 2x2 open areas and of wall cells with no wall neighbour
func canOpen(grid [][]bool, x, y int) bool {
	rows, cols := len(grid), len(grid[0])
	open := func(cx, cy int) bool {
		return cx >= 0 && cx < cols && cy >= 0 && cy < rows && grid[cy][cx] == Passage
	}

	for _, q := range [4]Cell{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if open(x+q.X, y) && open(x, y+q.Y) && open(x+q.X, y+q.Y) {
			return false
		}
	}

	for _, d := range neighborDirs {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || grid[ny][nx] == Passage {
			continue
		}
		walls := 0
		for _, d2 := range neighborDirs {
			mx, my := nx+d2.X, ny+d2.Y
			if mx == x && my == y {
				continue
			}
			if mx >= 0 && mx < cols && my >= 0 && my < rows && grid[my][mx] == Wall {
				walls++
			}
		}
		if walls == 0 {
			return false
		}
	}
	return true
}

// oddFloor rounds n down to an odd number of at least 5
func oddFloor(n int) int {
	if n < 5 {
		return 5
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// route returns the shortest passage path from start to end, both included
func route(grid [][]bool, start, end Cell) []Cell {
	rows, cols := len(grid), len(grid[0])
	if grid[start.Y][start.X] == Wall || grid[end.Y][end.X] == Wall {
		return nil
	}

	from := make(map[Cell]Cell, rows*cols/2)
	from[start] = start
	queue := []Cell{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == end {
			var path []Cell
			for c := end; c != start; c = from[c] {
				path = append(path, c)
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range neighborDirs {
			next := Cell{cur.X + d.X, cur.Y + d.Y}
			if next.X < 0 || next.X >= cols || next.Y < 0 || next.Y >= rows {
				continue
			}
			if _, seen := from[next]; seen || grid[next.Y][next.X] == Wall {
				continue
			}
			from[next] = cur
			queue = append(queue, next)
		}
	}
	return nil
}
