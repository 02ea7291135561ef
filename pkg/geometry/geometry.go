package geometry

import "github.com/soBigRice/three.path/pkg/path"

// Shape identifies a cross-section emitter.
type Shape int

const (
	ShapeRibbon Shape = iota
	ShapeTube
	ShapeRectTube
	ShapeBoxTube
)

// String returns the shape name used in config files and logs.
func (s Shape) String() string {
	switch s {
	case ShapeRibbon:
		return "ribbon"
	case ShapeTube:
		return "tube"
	case ShapeRectTube:
		return "rect"
	case ShapeBoxTube:
		return "box"
	default:
		return "unknown"
	}
}

// Options is implemented by the per-shape option records and selects
// the emitter during dispatch.
type Options interface {
	Shape() Shape
}

// Build emits vertex data for the cross-section tagged by opts.
// Returns nil when there is nothing to draw.
func Build(list *path.PointList, opts Options, generateUV2 bool) *VertexData {
	switch o := opts.(type) {
	case RibbonOptions:
		return BuildRibbon(list, o, generateUV2)
	case TubeOptions:
		return BuildTube(list, o, generateUV2)
	case RectOptions:
		return BuildRectTube(list, o, generateUV2)
	case BoxOptions:
		return BuildBoxTube(list, o, generateUV2)
	default:
		return nil
	}
}

// Geometry owns a MeshBuffer and refreshes it from a frame sequence.
// It is the composition-based replacement for a scene-graph geometry
// class hierarchy: one neutral buffer, emitters selected by shape.
type Geometry struct {
	buffer *MeshBuffer
}

// NewGeometry pre-allocates an empty geometry sized for a vertex
// budget. Use this for geometry that is rebuilt every frame.
func NewGeometry(maxVertices int, secondaryUV bool) *Geometry {
	return &Geometry{buffer: NewMeshBuffer(maxVertices, secondaryUV)}
}

// NewGeometryFromData builds a geometry from an immediate emission,
// sizing the buffer to the emitted vertex count.
func NewGeometryFromData(list *path.PointList, opts Options, secondaryUV bool) *Geometry {
	data := Build(list, opts, secondaryUV)
	maxVertices := 0
	if data != nil {
		maxVertices = data.VertexCount
	}
	g := &Geometry{buffer: NewMeshBuffer(maxVertices, secondaryUV)}
	g.buffer.Write(data)
	return g
}

// Buffer exposes the owned mesh buffer.
func (g *Geometry) Buffer() *MeshBuffer {
	return g.buffer
}

// Update re-emits geometry for the current frame sequence and writes
// it into the owned buffer. Returns the visible vertex count, 0 when
// the emission produced nothing to draw.
func (g *Geometry) Update(list *path.PointList, opts Options) int {
	data := Build(list, opts, g.buffer.hasUV2)
	g.buffer.Write(data)
	return g.buffer.DrawRange.Count
}

// Uploader is the boundary to the host scene graph that owns the
// GPU-facing buffers. This package never renders; it only hands flat
// arrays across this interface.
type Uploader interface {
	SetAttribute(name string, data []float32, itemSize int)
	SetIndex16(data []uint16)
	SetIndex32(data []uint32)
	SetDrawRange(start, count int)
}

// Upload pushes the current buffer contents into the sink.
func (g *Geometry) Upload(u Uploader) {
	b := g.buffer
	u.SetAttribute("position", b.Position, 3)
	u.SetAttribute("normal", b.Normal, 3)
	u.SetAttribute("uv", b.UV, 2)
	if b.hasUV2 {
		u.SetAttribute("uv2", b.UV2, 2)
	}
	if b.use32 {
		u.SetIndex32(b.Index32)
	} else {
		u.SetIndex16(b.Index16)
	}
	u.SetDrawRange(b.DrawRange.Start, b.DrawRange.Count)
}
