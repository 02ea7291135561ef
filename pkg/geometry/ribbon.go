package geometry

import (
	gomath "math"

	"github.com/soBigRice/three.path/pkg/math"
	"github.com/soBigRice/three.path/pkg/path"
)

// Side selects which half of the ribbon is emitted.
type Side int

const (
	SideBoth Side = iota
	SideLeft
	SideRight
)

// RibbonOptions configures the flat ribbon cross-section.
type RibbonOptions struct {
	Width    float64
	Progress float64
	Arrow    bool
	Side     Side
}

// DefaultRibbonOptions returns the standard ribbon settings.
func DefaultRibbonOptions() RibbonOptions {
	return RibbonOptions{Width: 0.1, Progress: 1, Arrow: true, Side: SideBoth}
}

// Shape tags these options for emitter dispatch.
func (RibbonOptions) Shape() Shape { return ShapeRibbon }

// BuildRibbon emits a flat ribbon along the frame sequence: one
// left/right vertex pair per sample connected by two triangles per
// segment, a 6-vertex miter fan at samples flagged sharp, and an
// optional arrowhead at the terminal sample. Returns nil when there
// is nothing to draw.
func BuildRibbon(list *path.PointList, opts RibbonOptions, generateUV2 bool) *VertexData {
	totalDistance := list.Distance()
	if totalDistance == 0 {
		return nil
	}

	halfWidth := opts.Width / 2
	sideWidth := opts.Width
	if opts.Side != SideBoth {
		sideWidth = halfWidth
	}

	// At a sharp sample the fan spreads one halfWidth of uv space to
	// each side of the sample's own uv coordinate.
	sharpUVOffset := halfWidth / sideWidth
	sharpUVOffset2 := halfWidth / totalDistance

	data := &VertexData{}

	emit := func(p *path.Point) {
		first := data.VertexCount == 0
		uvDist := p.Dist / sideWidth
		uvDist2 := p.Dist / totalDistance

		var left, right math.Vec3
		if opts.Side != SideLeft {
			right = p.Right.Scale(halfWidth * p.WidthScale)
		}
		if opts.Side != SideRight {
			left = p.Right.Scale(-halfWidth * p.WidthScale)
		}
		left = left.Add(p.Pos)
		right = right.Add(p.Pos)

		if p.Sharp && !first {
			prevLeft := vec3At(data.Position, len(data.Position)-6)
			prevRight := vec3At(data.Position, len(data.Position)-3)

			leftOffset := prevLeft.Sub(left)
			rightOffset := prevRight.Sub(right)
			sideOffset := leftOffset.Length() - rightOffset.Length()

			var longerOffset, longEdge math.Vec3
			if sideOffset > 0 {
				longerOffset = leftOffset
				longEdge = left
			} else {
				longerOffset = rightOffset
				longEdge = right
			}

			// Base sits on the longer edge, level with the shorter
			// side's previous ring; the apex projects it forward along
			// the tangent so the two fan quads cannot bow-tie.
			base := longerOffset.SetLength(gomath.Abs(sideOffset)).Add(longEdge)
			toEdge := longEdge.Sub(base)
			cos := toEdge.Normalize().Dot(p.Dir)
			apex := base.Add(p.Dir.SetLength(cos * toEdge.Length() * 2))

			vc := uint32(data.VertexCount)
			if sideOffset > 0 {
				data.Position = appendVec3(data.Position, base)
				data.Position = appendVec3(data.Position, right)
				data.Position = appendVec3(data.Position, left)
				data.Position = appendVec3(data.Position, right)
				data.Position = appendVec3(data.Position, apex)
				data.Position = appendVec3(data.Position, right)

				data.Indices = append(data.Indices,
					vc, vc-2, vc-1,
					vc, vc-1, vc+1,
					vc+2, vc, vc+3,
					vc+4, vc+2, vc+5,
				)

				data.UV = appendUV(data.UV, uvDist-sharpUVOffset, 0)
				data.UV = appendUV(data.UV, uvDist-sharpUVOffset, 1)
				data.UV = appendUV(data.UV, uvDist, 0)
				data.UV = appendUV(data.UV, uvDist, 1)
				data.UV = appendUV(data.UV, uvDist+sharpUVOffset, 0)
				data.UV = appendUV(data.UV, uvDist+sharpUVOffset, 1)
				if generateUV2 {
					data.UV2 = appendUV(data.UV2, uvDist2-sharpUVOffset2, 0)
					data.UV2 = appendUV(data.UV2, uvDist2-sharpUVOffset2, 1)
					data.UV2 = appendUV(data.UV2, uvDist2, 0)
					data.UV2 = appendUV(data.UV2, uvDist2, 1)
					data.UV2 = appendUV(data.UV2, uvDist2+sharpUVOffset2, 0)
					data.UV2 = appendUV(data.UV2, uvDist2+sharpUVOffset2, 1)
				}
			} else {
				data.Position = appendVec3(data.Position, left)
				data.Position = appendVec3(data.Position, base)
				data.Position = appendVec3(data.Position, left)
				data.Position = appendVec3(data.Position, right)
				data.Position = appendVec3(data.Position, left)
				data.Position = appendVec3(data.Position, apex)

				data.Indices = append(data.Indices,
					vc, vc-2, vc-1,
					vc, vc-1, vc+1,
					vc+2, vc+1, vc+3,
					vc+4, vc+3, vc+5,
				)

				data.UV = appendUV(data.UV, uvDist-sharpUVOffset, 0)
				data.UV = appendUV(data.UV, uvDist-sharpUVOffset, 1)
				data.UV = appendUV(data.UV, uvDist, 0)
				data.UV = appendUV(data.UV, uvDist, 1)
				data.UV = appendUV(data.UV, uvDist+sharpUVOffset, 0)
				data.UV = appendUV(data.UV, uvDist+sharpUVOffset, 1)
				if generateUV2 {
					data.UV2 = appendUV(data.UV2, uvDist2-sharpUVOffset2, 0)
					data.UV2 = appendUV(data.UV2, uvDist2-sharpUVOffset2, 1)
					data.UV2 = appendUV(data.UV2, uvDist2, 0)
					data.UV2 = appendUV(data.UV2, uvDist2, 1)
					data.UV2 = appendUV(data.UV2, uvDist2+sharpUVOffset2, 0)
					data.UV2 = appendUV(data.UV2, uvDist2+sharpUVOffset2, 1)
				}
			}

			for i := 0; i < 6; i++ {
				data.Normal = appendVec3(data.Normal, p.Up)
			}

			data.VertexCount += 6
			data.IndexCount += 12
		} else {
			data.Position = appendVec3(data.Position, left)
			data.Position = appendVec3(data.Position, right)
			data.Normal = appendVec3(data.Normal, p.Up)
			data.Normal = appendVec3(data.Normal, p.Up)
			data.UV = appendUV(data.UV, uvDist, 0)
			data.UV = appendUV(data.UV, uvDist, 1)
			if generateUV2 {
				data.UV2 = appendUV(data.UV2, uvDist2, 0)
				data.UV2 = appendUV(data.UV2, uvDist2, 1)
			}

			if !first {
				vc := uint32(data.VertexCount)
				data.Indices = append(data.Indices,
					vc, vc-2, vc-1,
					vc, vc-1, vc+1,
				)
				data.IndexCount += 6
			}
			data.VertexCount += 2
		}
	}

	last := progressWalk(list, opts.Progress, emit)
	if last == nil {
		return nil
	}

	if opts.Arrow {
		uvDist := last.Dist / sideWidth
		uvDist2 := last.Dist / totalDistance
		arrowLen := halfWidth * 1.5

		left := last.Pos.Add(last.Right.Scale(-opts.Width))
		right := last.Pos.Add(last.Right.Scale(opts.Width))
		apex := last.Pos.Add(last.Dir.SetLength(arrowLen))

		vc := uint32(data.VertexCount)
		data.Position = appendVec3(data.Position, left)
		data.Position = appendVec3(data.Position, right)
		data.Position = appendVec3(data.Position, apex)
		for i := 0; i < 3; i++ {
			data.Normal = appendVec3(data.Normal, last.Up)
		}
		data.UV = appendUV(data.UV, uvDist, 0)
		data.UV = appendUV(data.UV, uvDist, 1)
		data.UV = appendUV(data.UV, uvDist+arrowLen/sideWidth, 0.5)
		if generateUV2 {
			data.UV2 = appendUV(data.UV2, uvDist2, 0)
			data.UV2 = appendUV(data.UV2, uvDist2, 1)
			data.UV2 = appendUV(data.UV2, uvDist2+arrowLen/totalDistance, 0.5)
		}
		data.Indices = append(data.Indices, vc+2, vc, vc+1)

		data.VertexCount += 3
		data.IndexCount += 3
	}

	return data
}
