package vmath

// Point is a position in map units
type Point struct {
	X, Y int64
}

// Vector is a displacement in map units
type Vector struct {
	X, Y int64
}

// Add returns p translated by v
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub returns the displacement from q to p
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

// Add returns the sum of two displacements
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

// IsZero reports whether the displacement is null
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// RotateVector rotates vector by angle using the fine Sin/Cos LUT
// Components use a 128-bit intermediate, so any int64 map delta is accepted
func RotateVector(x, y int64, angle Angle) (rx, ry int64) {
	cos := Cos(angle)
	sin := Sin(angle)
	rx = MulWide(x, cos) - MulWide(y, sin)
	ry = MulWide(x, sin) + MulWide(y, cos)
	return rx, ry
}

// Rotate returns v rotated by angle
func (v Vector) Rotate(angle Angle) Vector {
	x, y := RotateVector(v.X, v.Y, angle)
	return Vector{x, y}
}

// RotateAround rotates p about origin by angle
func RotateAround(p, origin Point, angle Angle) Point {
	return origin.Add(p.Sub(origin).Rotate(angle))
}

// ScaleVector multiplies vector by a Q16.16 factor
func ScaleVector(x, y int64, factor Fixed) (sx, sy int64) {
	return MulWide(x, factor), MulWide(y, factor)
}

// Perpendicular returns vector rotated 90° counter-clockwise
func Perpendicular(x, y int64) (px, py int64) {
	return -y, x
}
