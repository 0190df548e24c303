package tabulated

import "strconv"

// Point is a single (x, y) sample.
//
// Point is a plain value: assigning or passing it copies it, and the zero
// value is the origin. A Point carries no invariant of its own; it becomes
// subject to ordering rules only when stored in a Function.
type Point struct {
	X float64
	Y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	buf := make([]byte, 0, 32)
	buf = append(buf, '(')
	buf = strconv.AppendFloat(buf, p.X, 'g', -1, 64)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
	buf = append(buf, ')')

	return string(buf)
}
