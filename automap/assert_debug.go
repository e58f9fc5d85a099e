//go:build debug

package automap

import "fmt"

// assertOrdered fails loudly on inverted or empty bounds in debug builds
func assertOrdered(minX, minY, maxX, maxY int64) {
	if maxX <= minX || maxY <= minY {
		panic(fmt.Sprintf("automap: window bounds out of order: min=(%d,%d) max=(%d,%d)", minX, minY, maxX, maxY))
	}
}
