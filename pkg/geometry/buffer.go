package geometry

// DrawRange marks the prefix of the backing storage that holds valid
// geometry. Everything beyond Count is stale and must not be drawn.
type DrawRange struct {
	Start int
	Count int
}

// MeshBuffer owns growable CPU-side arrays mirroring GPU buffer
// semantics: allocated once for a vertex budget, grown by doubling on
// overflow and never shrunk. The index width (16 or 32 bit) is fixed
// for the buffer's lifetime by the initial vertex budget.
//
// A MeshBuffer is not safe for concurrent Write calls.
type MeshBuffer struct {
	Position []float32
	Normal   []float32
	UV       []float32
	UV2      []float32
	Index16  []uint16
	Index32  []uint32

	DrawRange DrawRange

	use32  bool
	hasUV2 bool
}

// NewMeshBuffer allocates zero-filled storage for maxVertices
// vertices and maxVertices*3 triangle-list indices. secondaryUV adds
// a second UV channel.
func NewMeshBuffer(maxVertices int, secondaryUV bool) *MeshBuffer {
	if maxVertices < 1 {
		maxVertices = 1
	}

	b := &MeshBuffer{
		Position: make([]float32, maxVertices*3),
		Normal:   make([]float32, maxVertices*3),
		UV:       make([]float32, maxVertices*2),
		use32:    maxVertices > 65536,
		hasUV2:   secondaryUV,
	}
	if secondaryUV {
		b.UV2 = make([]float32, maxVertices*2)
	}
	if b.use32 {
		b.Index32 = make([]uint32, maxVertices*3)
	} else {
		b.Index16 = make([]uint16, maxVertices*3)
	}
	return b
}

// Uses32BitIndices reports whether the buffer stores 32-bit indices.
func (b *MeshBuffer) Uses32BitIndices() bool {
	return b.use32
}

// HasSecondaryUV reports whether the buffer carries a uv2 channel.
func (b *MeshBuffer) HasSecondaryUV() bool {
	return b.hasUV2
}

// Write copies freshly emitted data into the backing storage, growing
// overflowing arrays by repeated doubling, and sets DrawRange.Count to
// the emitted vertex count. nil data marks the buffer empty without
// touching storage.
func (b *MeshBuffer) Write(data *VertexData) {
	if data == nil || data.VertexCount == 0 {
		b.DrawRange.Count = 0
		return
	}

	b.Position = writeFloats(b.Position, data.Position)
	b.Normal = writeFloats(b.Normal, data.Normal)
	b.UV = writeFloats(b.UV, data.UV)
	if b.hasUV2 && data.UV2 != nil {
		b.UV2 = writeFloats(b.UV2, data.UV2)
	}

	if b.use32 {
		for len(b.Index32) < len(data.Indices) {
			b.Index32 = make([]uint32, len(b.Index32)*2)
		}
		copy(b.Index32, data.Indices)
	} else {
		for len(b.Index16) < len(data.Indices) {
			b.Index16 = make([]uint16, len(b.Index16)*2)
		}
		for i, idx := range data.Indices {
			b.Index16[i] = uint16(idx)
		}
	}

	b.DrawRange.Count = data.VertexCount
}

// writeFloats copies src into dst, doubling dst until it fits. Grown
// storage need not preserve old content: the copy that triggered the
// growth overwrites the live prefix immediately.
func writeFloats(dst, src []float32) []float32 {
	for len(dst) < len(src) {
		dst = make([]float32, len(dst)*2)
	}
	copy(dst, src)
	return dst
}
