package geometry

import (
	"github.com/soBigRice/three.path/pkg/math"
	"github.com/soBigRice/three.path/pkg/path"
)

// RectOptions configures the rectangular tube cross-section with a
// shared 5-vertex ring (four corners plus a seam duplicate). Radius
// scales the whole cross-section uniformly.
type RectOptions struct {
	Radius   float64
	Progress float64
	Width    float64
	Height   float64
}

// DefaultRectOptions returns the standard rectangular tube settings.
func DefaultRectOptions() RectOptions {
	return RectOptions{Radius: 0.1, Progress: 1, Width: 1, Height: 0.5}
}

// Shape tags these options for emitter dispatch.
func (RectOptions) Shape() Shape { return ShapeRectTube }

// BoxOptions configures the rectangular tube variant with an 8-vertex
// ring: every corner is duplicated once per adjoining face so each
// face carries a distinct flat normal.
type BoxOptions struct {
	Progress float64
	Width    float64
	Height   float64
}

// DefaultBoxOptions returns the standard box tube settings.
func DefaultBoxOptions() BoxOptions {
	return BoxOptions{Progress: 1, Width: 1, Height: 0.5}
}

// Shape tags these options for emitter dispatch.
func (BoxOptions) Shape() Shape { return ShapeBoxTube }

// BuildRectTube emits a rectangular tube with 5 ring vertices per
// sample. Corner normals point along the corner diagonals; uv.y runs
// in cumulative perimeter-fraction bands around the ring. Returns nil
// when there is nothing to draw.
func BuildRectTube(list *path.PointList, opts RectOptions, generateUV2 bool) *VertexData {
	totalDistance := list.Distance()
	if totalDistance == 0 {
		return nil
	}

	halfW := opts.Width / 2
	halfH := opts.Height / 2
	perimeter := 2 * (opts.Width + opts.Height)
	// World-space perimeter normalizes the along-path uv.
	uvLength := perimeter * opts.Radius

	// Ring corners in the (right, up) plane, wound bottom-right up
	// and around, with the seam duplicate closing the loop.
	corners := [5][2]float64{
		{halfW, -halfH},
		{halfW, halfH},
		{-halfW, halfH},
		{-halfW, -halfH},
		{halfW, -halfH},
	}
	bands := [5]float64{
		0,
		opts.Height / perimeter,
		(opts.Height + opts.Width) / perimeter,
		(2*opts.Height + opts.Width) / perimeter,
		1,
	}

	data := &VertexData{}

	emit := func(p *path.Point) {
		first := data.VertexCount == 0
		uvDist := p.Dist / uvLength
		uvDist2 := p.Dist / totalDistance
		scale := opts.Radius * p.WidthScale

		for k := 0; k < 5; k++ {
			offset := p.Right.Scale(corners[k][0]).Add(p.Up.Scale(corners[k][1])).Scale(scale)
			data.Position = appendVec3(data.Position, p.Pos.Add(offset))
			data.Normal = appendVec3(data.Normal, offset.Normalize())
			data.UV = appendUV(data.UV, uvDist, bands[k])
			if generateUV2 {
				data.UV2 = appendUV(data.UV2, uvDist2, bands[k])
			}
			data.VertexCount++
		}

		if !first {
			a := uint32(data.VertexCount) - 10 // previous ring
			b := uint32(data.VertexCount) - 5  // current ring
			// One quad per face; the 5-vertex layout shares corner
			// positions between faces, so faces are indexed explicitly.
			data.Indices = append(data.Indices,
				b+0, a+0, a+1, b+0, a+1, b+1, // +right face
				b+1, a+1, a+2, b+1, a+2, b+2, // +up face
				b+2, a+2, a+3, b+2, a+3, b+3, // -right face
				b+3, a+3, a+4, b+3, a+4, b+4, // -up face
			)
			data.IndexCount += 24
		}
	}

	if progressWalk(list, opts.Progress, emit) == nil {
		return nil
	}
	return data
}

// BuildBoxTube emits a rectangular tube with 8 ring vertices per
// sample: each face owns both of its ring vertices and a flat normal
// (+right, +up, -right, -up). Returns nil when there is nothing to
// draw.
func BuildBoxTube(list *path.PointList, opts BoxOptions, generateUV2 bool) *VertexData {
	totalDistance := list.Distance()
	if totalDistance == 0 {
		return nil
	}

	halfW := opts.Width / 2
	halfH := opts.Height / 2
	perimeter := 2 * (opts.Width + opts.Height)

	// Per-face corner pairs in the (right, up) plane. Face order:
	// +right, +up, -right, -up; each face lists its two ring corners
	// in winding order.
	ringCorners := [8][2]float64{
		{halfW, -halfH}, {halfW, halfH}, // +right
		{halfW, halfH}, {-halfW, halfH}, // +up
		{-halfW, halfH}, {-halfW, -halfH}, // -right
		{-halfW, -halfH}, {halfW, -halfH}, // -up
	}
	bands := [8]float64{
		0,
		opts.Height / perimeter,
		opts.Height / perimeter,
		(opts.Height + opts.Width) / perimeter,
		(opts.Height + opts.Width) / perimeter,
		(2*opts.Height + opts.Width) / perimeter,
		(2*opts.Height + opts.Width) / perimeter,
		1,
	}

	data := &VertexData{}

	emit := func(p *path.Point) {
		first := data.VertexCount == 0
		uvDist := p.Dist / perimeter
		uvDist2 := p.Dist / totalDistance

		faceNormals := [4]math.Vec3{
			p.Right,
			p.Up,
			p.Right.Scale(-1),
			p.Up.Scale(-1),
		}

		for k := 0; k < 8; k++ {
			offset := p.Right.Scale(ringCorners[k][0]).Add(p.Up.Scale(ringCorners[k][1])).Scale(p.WidthScale)
			data.Position = appendVec3(data.Position, p.Pos.Add(offset))
			data.Normal = appendVec3(data.Normal, faceNormals[k/2])
			data.UV = appendUV(data.UV, uvDist, bands[k])
			if generateUV2 {
				data.UV2 = appendUV(data.UV2, uvDist2, bands[k])
			}
			data.VertexCount++
		}

		if !first {
			a := uint32(data.VertexCount) - 16 // previous ring
			b := uint32(data.VertexCount) - 8  // current ring
			// Two triangles per face, faces indexed explicitly since
			// every face owns its own vertex pair.
			data.Indices = append(data.Indices,
				b+0, a+0, a+1, b+0, a+1, b+1, // +right face
				b+2, a+2, a+3, b+2, a+3, b+3, // +up face
				b+4, a+4, a+5, b+4, a+5, b+5, // -right face
				b+6, a+6, a+7, b+6, a+7, b+7, // -up face
			)
			data.IndexCount += 24
		}
	}

	if progressWalk(list, opts.Progress, emit) == nil {
		return nil
	}
	return data
}
