package path

import (
	gomath "math"

	"github.com/soBigRice/three.path/pkg/math"
)

// quadBezier is a quadratic Bezier curve used for corner rounding.
type quadBezier struct {
	v0, v1, v2 math.Vec3
}

// at evaluates the curve at parameter t in [0, 1].
func (c quadBezier) at(t float64) math.Vec3 {
	u := 1 - t
	p := c.v0.Scale(u * u)
	p = p.Add(c.v1.Scale(2 * u * t))
	return p.Add(c.v2.Scale(t * t))
}

// sample returns n+1 curve points at uniform parameter steps,
// inclusive of both endpoints.
func (c quadBezier) sample(n int) []math.Vec3 {
	points := make([]math.Vec3, n+1)
	for i := 0; i <= n; i++ {
		points[i] = c.at(float64(i) / float64(n))
	}
	return points
}

// cornerBezier builds the rounding curve for the corner at current,
// entered from last and left toward next. The curve endpoints are
// pulled back along the adjoining edges by cornerRadius, clamped so a
// corner never consumes more edge length than is available to it.
func cornerBezier(last, current, next math.Vec3, cornerRadius float64, firstCorner bool) quadBezier {
	inDir := current.Sub(last)
	outDir := next.Sub(current)
	inLen := inDir.Length()
	outLen := outDir.Length()
	inDir = inDir.Normalize()
	outDir = outDir.Normalize()

	avail := inLen
	if firstCorner {
		avail = inLen / 2
	}
	v0Dist := gomath.Min(avail*0.999999, cornerRadius)
	v2Dist := gomath.Min(outLen/2*0.999999, cornerRadius)

	return quadBezier{
		v0: current.Sub(inDir.Scale(v0Dist)),
		v1: current,
		v2: current.Add(outDir.Scale(v2Dist)),
	}
}
