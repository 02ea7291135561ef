package geometry

import (
	gomath "math"

	"github.com/soBigRice/three.path/pkg/path"
)

// TubeOptions configures the circular tube cross-section.
type TubeOptions struct {
	Radius         float64
	Progress       float64
	RadialSegments int
	StartRad       float64
}

// DefaultTubeOptions returns the standard tube settings.
func DefaultTubeOptions() TubeOptions {
	return TubeOptions{Radius: 0.1, Progress: 1, RadialSegments: 8, StartRad: 0}
}

// Shape tags these options for emitter dispatch.
func (TubeOptions) Shape() Shape { return ShapeTube }

// BuildTube emits a circular tube along the frame sequence. Each
// sample contributes radialSegments+1 ring vertices (the last
// duplicates the first so seam UVs stay continuous); consecutive
// rings are stitched with a quad strip. Returns nil when there is
// nothing to draw.
func BuildTube(list *path.PointList, opts TubeOptions, generateUV2 bool) *VertexData {
	totalDistance := list.Distance()
	if totalDistance == 0 {
		return nil
	}

	radialSegments := opts.RadialSegments
	if radialSegments < 2 {
		radialSegments = 2
	}
	circumference := opts.Radius * 2 * gomath.Pi

	data := &VertexData{}

	emit := func(p *path.Point) {
		first := data.VertexCount == 0
		uvDist := p.Dist / circumference
		uvDist2 := p.Dist / totalDistance

		for r := 0; r <= radialSegments; r++ {
			// The seam vertex repeats ring position 0 with uv.y 1.
			ri := r % radialSegments
			angle := opts.StartRad + 2*gomath.Pi*float64(ri)/float64(radialSegments)
			normalDir := p.Up.ApplyAxisAngle(p.Dir, angle).Normalize()
			pos := p.Pos.Add(normalDir.Scale(opts.Radius * p.WidthScale))

			data.Position = appendVec3(data.Position, pos)
			data.Normal = appendVec3(data.Normal, normalDir)
			data.UV = appendUV(data.UV, uvDist, float64(r)/float64(radialSegments))
			if generateUV2 {
				data.UV2 = appendUV(data.UV2, uvDist2, float64(r)/float64(radialSegments))
			}
			data.VertexCount++
		}

		if !first {
			ringSize := uint32(radialSegments + 1)
			prevRing := uint32(data.VertexCount) - ringSize*2
			ring := uint32(data.VertexCount) - ringSize
			for i := uint32(0); i < uint32(radialSegments); i++ {
				data.Indices = append(data.Indices,
					ring+i, prevRing+i, prevRing+i+1,
					ring+i, prevRing+i+1, ring+i+1,
				)
				data.IndexCount += 6
			}
		}
	}

	if progressWalk(list, opts.Progress, emit) == nil {
		return nil
	}
	return data
}
