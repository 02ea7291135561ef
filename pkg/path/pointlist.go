package path

import (
	gomath "math"

	"github.com/soBigRice/three.path/pkg/math"
)

// Default corner parameters applied by callers that take rounding
// settings from user input.
const (
	DefaultCornerRadius = 0.1
	DefaultCornerSplit  = 10
)

// Turns with |cos - 1| above this are flagged for miter emission.
const sharpCosThreshold = 0.05

// Cross-section inflation at a sharp turn is capped near sqrt(2).
const maxWidthScale = 1.415

// PointList builds and owns an ordered sequence of frame samples.
// Backing storage is reused across Set calls, so a list can be rebuilt
// every frame without reallocating.
//
// A PointList is not safe for concurrent mutation.
type PointList struct {
	points []Point
	count  int
}

// NewPointList returns an empty point list.
func NewPointList() *PointList {
	return &PointList{}
}

// Count returns the number of valid samples.
func (l *PointList) Count() int {
	return l.count
}

// At returns the i-th sample. The pointer stays valid until the next
// Set call.
func (l *PointList) At(i int) *Point {
	return &l.points[i]
}

// Distance returns the accumulated length of the sampled path, or 0
// for an empty list.
func (l *PointList) Distance() float64 {
	if l.count == 0 {
		return 0
	}
	return l.points[l.count-1].Dist
}

// Set rebuilds the sample sequence from the given key points.
//
// cornerRadius and cornerSplit control corner rounding: each interior
// key point is replaced by cornerSplit (or cornerSplit+1) samples on a
// quadratic curve when both are positive, and by a single hard sample
// otherwise. up, when non-nil, pins the frame normal instead of
// transporting it along the path. close appends a copy of the first
// point when the path does not already end where it starts, and makes
// the seam frame-continuous.
//
// Fewer than 2 points leave the list empty; that is a recoverable
// condition, not an error.
func (l *PointList) Set(points []math.Vec3, cornerRadius float64, cornerSplit int, up *math.Vec3, close bool) {
	l.count = 0
	if len(points) < 2 {
		return
	}

	if close && points[0] != points[len(points)-1] {
		closed := make([]math.Vec3, len(points)+1)
		copy(closed, points)
		closed[len(points)] = points[0]
		points = closed
	}

	last := len(points) - 1
	for i := 0; i <= last; i++ {
		switch {
		case i == 0:
			l.start(points[0], points[1], up)
		case i == last:
			if close {
				// The seam is a corner between the last edge and the
				// first edge, rounded like any interior corner.
				l.corner(points[i], points[1], cornerRadius, cornerSplit, up)
				l.fixSeam()
			} else {
				l.end(points[i], up)
			}
		default:
			l.corner(points[i], points[i+1], cornerRadius, cornerSplit, up)
		}
	}
}

// fixSeam copies the final frame orientation back onto the first
// sample so a closed path has identical frames at both ends. The first
// sample keeps Dist 0.
func (l *PointList) fixSeam() {
	first := &l.points[0]
	final := &l.points[l.count-1]
	first.Pos = final.Pos
	first.Dir = final.Dir
	first.Up = final.Up
	first.Right = final.Right
	first.WidthScale = final.WidthScale
	first.Sharp = final.Sharp
}

// next returns a zeroed sample slot at the current count, growing
// storage when needed. Callers must re-resolve earlier sample pointers
// after calling next, since growth may move the backing array.
func (l *PointList) next() *Point {
	if l.count >= len(l.points) {
		l.points = append(l.points, Point{})
	}
	p := &l.points[l.count]
	*p = Point{}
	return p
}

func (l *PointList) start(current, next math.Vec3, up *math.Vec3) {
	point := l.next()

	point.Pos = current
	dir := next.Sub(current)

	if up != nil {
		point.Up = *up
	} else {
		// Choose the world axis with the smallest projection onto the
		// tangent as the initial normal.
		min := gomath.MaxFloat64
		tx := gomath.Abs(dir.X)
		ty := gomath.Abs(dir.Y)
		tz := gomath.Abs(dir.Z)
		if tx < min {
			min = tx
			point.Up = math.Vec3{X: 1}
		}
		if ty < min {
			min = ty
			point.Up = math.Vec3{Y: 1}
		}
		if tz < min {
			point.Up = math.Vec3{Z: 1}
		}
	}

	point.Dir = dir.Normalize()
	point.Right = point.Dir.Cross(point.Up).Normalize()
	point.Up = point.Right.Cross(point.Dir).Normalize()
	point.Dist = 0
	point.WidthScale = 1
	point.Sharp = false

	l.count++
}

func (l *PointList) corner(current, next math.Vec3, cornerRadius float64, cornerSplit int, up *math.Vec3) {
	if cornerRadius > 0 && cornerSplit > 0 {
		prev := l.points[l.count-1].Pos
		curve := cornerBezier(prev, current, next, cornerRadius, l.count == 1)
		samples := curve.sample(cornerSplit)

		for f := 0; f < cornerSplit; f++ {
			mode := dirMiddle
			if f == 0 {
				// The curve start lies on the straight incoming edge.
				mode = dirIncoming
			}
			l.sample(samples[f], samples[f+1], up, mode, false)
		}

		if samples[cornerSplit] != next {
			l.sample(samples[cornerSplit], next, up, dirOutgoing, false)
		}
	} else {
		l.sample(current, next, up, dirMiddle, true)
	}
}

func (l *PointList) end(current math.Vec3, up *math.Vec3) {
	point := l.next()
	prev := &l.points[l.count-1]

	point.Pos = current
	dir := current.Sub(prev.Pos)
	dist := dir.Length()
	point.Dir = dir.Normalize()

	if up != nil {
		point.Up = *up
	} else {
		point.Up = transportUp(prev.Dir, point.Dir, prev.Up)
	}

	point.Right = point.Dir.Cross(point.Up).Normalize()
	point.Dist = prev.Dist + dist
	point.WidthScale = 1
	point.Sharp = false

	l.count++
}

// dirMode selects the tangent used for an interior sample.
type dirMode int

const (
	dirMiddle   dirMode = iota // average of incoming and outgoing
	dirIncoming                // incoming edge direction
	dirOutgoing                // outgoing edge direction
)

// sample appends one interior frame sample at current, headed toward
// next. eligibleSharp marks hard corners that may emit miter geometry;
// rounded-corner samples never qualify.
func (l *PointList) sample(current, next math.Vec3, up *math.Vec3, mode dirMode, eligibleSharp bool) {
	point := l.next()
	prev := &l.points[l.count-1]

	inDir := current.Sub(prev.Pos)
	outDir := next.Sub(current)
	inLen := inDir.Length()
	inDir = inDir.Normalize()
	outDir = outDir.Normalize()

	var dir math.Vec3
	switch mode {
	case dirIncoming:
		dir = inDir
	case dirOutgoing:
		dir = outDir
	default:
		dir = inDir.Add(outDir).Normalize()
	}

	point.Pos = current
	point.Dir = dir

	if up != nil {
		point.Up = *up
	} else {
		point.Up = transportUp(prev.Dir, dir, prev.Up)
	}

	point.Right = dir.Cross(point.Up).Normalize()
	point.Dist = prev.Dist + inLen

	cos := inDir.Dot(outDir)
	widthScale := gomath.Min(1/gomath.Sqrt((1+cos)/2), maxWidthScale)
	if gomath.IsNaN(widthScale) || gomath.IsInf(widthScale, 0) {
		widthScale = 1
	}
	point.WidthScale = widthScale
	point.Sharp = gomath.Abs(cos-1) > sharpCosThreshold && eligibleSharp

	l.count++
}

// transportUp propagates the previous up vector onto a new tangent by
// rotating it through the exact angle between the tangents, keeping
// the frame twist-free. Parallel tangents keep the previous up.
func transportUp(prevDir, dir, prevUp math.Vec3) math.Vec3 {
	axis := prevDir.Cross(dir)
	if axis.Length() <= 1e-12 {
		return prevUp
	}
	axis = axis.Normalize()
	theta := gomath.Acos(clamp(prevDir.Dot(dir), -1, 1))
	return prevUp.ApplyAxisAngle(axis, theta)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
