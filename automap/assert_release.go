//go:build !debug

package automap

// assertOrdered trusts the caller outside debug builds
func assertOrdered(minX, minY, maxX, maxY int64) {}
