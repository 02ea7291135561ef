// Package export writes emitted mesh data to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/soBigRice/three.path/pkg/geometry"
)

// WriteOBJ writes vertex data as a Wavefront OBJ object. Positions,
// texture coordinates and normals are written per vertex, faces index
// all three. OBJ indices are 1-based.
func WriteOBJ(w io.Writer, name string, data *geometry.VertexData) error {
	if data == nil || data.VertexCount == 0 {
		return fmt.Errorf("no geometry to export for %q", name)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", name)

	for i := 0; i < data.VertexCount; i++ {
		fmt.Fprintf(bw, "v %g %g %g\n",
			data.Position[i*3], data.Position[i*3+1], data.Position[i*3+2])
	}
	for i := 0; i < data.VertexCount; i++ {
		fmt.Fprintf(bw, "vt %g %g\n", data.UV[i*2], data.UV[i*2+1])
	}
	for i := 0; i < data.VertexCount; i++ {
		fmt.Fprintf(bw, "vn %g %g %g\n",
			data.Normal[i*3], data.Normal[i*3+1], data.Normal[i*3+2])
	}

	for i := 0; i+2 < data.IndexCount; i += 3 {
		a := data.Indices[i] + 1
		b := data.Indices[i+1] + 1
		c := data.Indices[i+2] + 1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

// WriteOBJFile writes vertex data to dir/name.obj, creating the
// directory if needed.
func WriteOBJFile(dir, name string, data *geometry.VertexData) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name+".obj")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := WriteOBJ(f, name, data); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
