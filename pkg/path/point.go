// Package path converts ordered 3D key points into a continuous,
// correctly oriented sequence of frame samples suitable for extruding
// path-following geometry.
package path

import "github.com/soBigRice/three.path/pkg/math"

// Point is one sample of a path frame: a position with an orthonormal
// basis (Dir is the tangent, Up the normal, Right the binormal), the
// accumulated distance from the path start, a width-scale factor that
// compensates cross-section pinching at sharp turns, and a flag marking
// the sample for miter-style geometry emission.
type Point struct {
	Pos        math.Vec3
	Dir        math.Vec3
	Up         math.Vec3
	Right      math.Vec3
	Dist       float64
	WidthScale float64
	Sharp      bool
}

// Lerp sets p to the linear interpolation between a and b at alpha.
// Interpolated samples are never sharp.
func (p *Point) Lerp(a, b *Point, alpha float64) {
	p.Pos = a.Pos.Lerp(b.Pos, alpha)
	p.Dir = a.Dir.Lerp(b.Dir, alpha)
	p.Up = a.Up.Lerp(b.Up, alpha)
	p.Right = a.Right.Lerp(b.Right, alpha)
	p.Dist = a.Dist + (b.Dist-a.Dist)*alpha
	p.WidthScale = a.WidthScale + (b.WidthScale-a.WidthScale)*alpha
	p.Sharp = false
}
