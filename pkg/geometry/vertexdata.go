// Package geometry emits renderable mesh data (positions, normals,
// texture coordinates, triangle indices) for path-following
// cross-sections, and manages growable CPU-side buffers that mirror
// GPU buffer semantics.
package geometry

import (
	"github.com/soBigRice/three.path/pkg/math"
	"github.com/soBigRice/three.path/pkg/path"
)

// VertexData is one emission result: flat attribute arrays in GPU
// layout (position/normal stride 3, uv/uv2 stride 2) plus triangle
// list indices. UV2 stays nil unless secondary UVs were requested.
type VertexData struct {
	Position []float32
	Normal   []float32
	UV       []float32
	UV2      []float32
	Indices  []uint32

	// VertexCount is the number of vertices written.
	VertexCount int
	// IndexCount is the number of valid indices (3 per triangle).
	IndexCount int
}

// progressWalk drives the shared partial-path truncation: emit is
// called for every sample up to progress x total distance, plus one
// interpolated terminal sample when the cut falls inside a segment.
// It returns the last emitted sample, or nil when nothing should be
// drawn (empty path or zero progress distance).
func progressWalk(list *path.PointList, progress float64, emit func(*path.Point)) *path.Point {
	total := list.Distance()
	if total == 0 {
		return nil
	}
	if progress < 0 {
		progress = 0
	}
	progressDistance := progress * total
	if progressDistance == 0 {
		return nil
	}

	var truncated path.Point
	var last *path.Point
	for i := 0; i < list.Count(); i++ {
		p := list.At(i)
		if p.Dist > progressDistance {
			prev := list.At(i - 1)
			alpha := (progressDistance - prev.Dist) / (p.Dist - prev.Dist)
			truncated.Lerp(prev, p, alpha)
			emit(&truncated)
			last = &truncated
			break
		}
		emit(p)
		last = p
	}
	return last
}

func appendVec3(dst []float32, v math.Vec3) []float32 {
	return append(dst, float32(v.X), float32(v.Y), float32(v.Z))
}

func appendUV(dst []float32, u, v float64) []float32 {
	return append(dst, float32(u), float32(v))
}

func vec3At(a []float32, i int) math.Vec3 {
	return math.Vec3{X: float64(a[i]), Y: float64(a[i+1]), Z: float64(a[i+2])}
}
