package geometry

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRectTubeStraightSegment(t *testing.T) {
	l := straightList(t, 10)

	opts := RectOptions{Radius: 1, Progress: 1, Width: 2, Height: 1}
	data := BuildRectTube(l, opts, false)
	require.NotNil(t, data)

	// Two 5-vertex rings, four quads between them.
	assert.Equal(t, 10, data.VertexCount)
	assert.Equal(t, 24, data.IndexCount)
	assert.Len(t, data.Position, 30)
	assert.Len(t, data.Indices, 24)
}

func TestBuildRectTubeCornerOffsets(t *testing.T) {
	l := straightList(t, 10)

	opts := RectOptions{Radius: 2, Progress: 1, Width: 2, Height: 1}
	data := BuildRectTube(l, opts, false)
	require.NotNil(t, data)

	// Corners sit on the scaled half-diagonal.
	wantDist := opts.Radius * gomath.Hypot(opts.Width/2, opts.Height/2)
	for i := 0; i < 5; i++ {
		pos := vec3At(data.Position, i*3)
		assert.InDelta(t, wantDist, pos.Length(), 1e-5, "corner %d", i)

		normal := vec3At(data.Normal, i*3)
		assert.InDelta(t, 1, normal.Length(), 1e-5, "corner %d normal", i)
	}

	// Seam duplicate closes the ring.
	first := vec3At(data.Position, 0)
	seam := vec3At(data.Position, 4*3)
	assert.InDelta(t, 0, first.Distance(seam), 1e-6)
}

func TestBuildRectTubePerimeterBands(t *testing.T) {
	l := straightList(t, 10)

	opts := RectOptions{Radius: 1, Progress: 1, Width: 2, Height: 1}
	data := BuildRectTube(l, opts, false)
	require.NotNil(t, data)

	perimeter := 2 * (opts.Width + opts.Height)
	want := []float64{
		0,
		opts.Height / perimeter,
		(opts.Height + opts.Width) / perimeter,
		(2*opts.Height + opts.Width) / perimeter,
		1,
	}
	for k, w := range want {
		assert.InDelta(t, w, float64(data.UV[k*2+1]), 1e-6, "band %d", k)
	}
}

func TestBuildRectTubeZeroProgress(t *testing.T) {
	l := straightList(t, 10)
	opts := DefaultRectOptions()
	opts.Progress = 0
	assert.Nil(t, BuildRectTube(l, opts, false))
}

func TestBuildBoxTubeStraightSegment(t *testing.T) {
	l := straightList(t, 10)

	opts := BoxOptions{Progress: 1, Width: 2, Height: 1}
	data := BuildBoxTube(l, opts, false)
	require.NotNil(t, data)

	// Two 8-vertex rings, four quads between them.
	assert.Equal(t, 16, data.VertexCount)
	assert.Equal(t, 24, data.IndexCount)
	assert.Len(t, data.Position, 48)
	assert.Len(t, data.Indices, 24)
}

func TestBuildBoxTubeFlatFaceNormals(t *testing.T) {
	l := straightList(t, 10)

	opts := BoxOptions{Progress: 1, Width: 2, Height: 1}
	data := BuildBoxTube(l, opts, false)
	require.NotNil(t, data)

	// Face order is +right, +up, -right, -up; with the straight path
	// along X the frame is right=Z(-ish) handedness dependent, so just
	// check each face pair shares one unit axis-aligned normal.
	for face := 0; face < 4; face++ {
		n0 := vec3At(data.Normal, face*2*3)
		n1 := vec3At(data.Normal, (face*2+1)*3)
		assert.InDelta(t, 0, n0.Distance(n1), 1e-6, "face %d normal pair", face)
		assert.InDelta(t, 1, n0.Length(), 1e-5, "face %d normal length", face)
	}

	// Opposite faces carry opposite normals.
	right := vec3At(data.Normal, 0)
	negRight := vec3At(data.Normal, 4*3)
	assert.InDelta(t, 0, right.Add(negRight).Length(), 1e-6)
	up := vec3At(data.Normal, 2*3)
	negUp := vec3At(data.Normal, 6*3)
	assert.InDelta(t, 0, up.Add(negUp).Length(), 1e-6)
}

func TestBuildBoxTubeUnscaledCrossSection(t *testing.T) {
	l := straightList(t, 10)

	opts := BoxOptions{Progress: 1, Width: 2, Height: 1}
	data := BuildBoxTube(l, opts, false)
	require.NotNil(t, data)

	// The box variant uses width/height directly, no radius scale.
	wantDist := gomath.Hypot(opts.Width/2, opts.Height/2)
	for i := 0; i < 8; i++ {
		pos := vec3At(data.Position, i*3)
		assert.InDelta(t, wantDist, pos.Length(), 1e-5, "ring vertex %d", i)
	}
}

func TestBuildBoxTubeHalfProgress(t *testing.T) {
	l := straightList(t, 10)

	opts := BoxOptions{Progress: 0.5, Width: 2, Height: 1}
	data := BuildBoxTube(l, opts, false)
	require.NotNil(t, data)
	require.Equal(t, 16, data.VertexCount)

	for i := 8; i < 16; i++ {
		pos := vec3At(data.Position, i*3)
		assert.InDelta(t, 5, pos.X, 1e-5, "truncated ring vertex %d", i)
	}
}

func TestBuildRectTubeIndicesInRange(t *testing.T) {
	l := straightList(t, 10)

	rect := BuildRectTube(l, DefaultRectOptions(), false)
	require.NotNil(t, rect)
	for _, idx := range rect.Indices {
		assert.Less(t, int(idx), rect.VertexCount)
	}

	box := BuildBoxTube(l, DefaultBoxOptions(), false)
	require.NotNil(t, box)
	for _, idx := range box.Indices {
		assert.Less(t, int(idx), box.VertexCount)
	}
}
