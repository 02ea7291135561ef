// Package scene turns a loaded scene config into path frames and
// exported mesh files.
package scene

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/soBigRice/three.path/internal/config"
	"github.com/soBigRice/three.path/internal/export"
	"github.com/soBigRice/three.path/internal/logger"
	"github.com/soBigRice/three.path/pkg/geometry"
	"github.com/soBigRice/three.path/pkg/math"
	"github.com/soBigRice/three.path/pkg/path"
)

// Builder generates meshes for every path in a scene.
type Builder struct {
	cfg *config.Config
}

// New creates a builder for the given scene.
func New(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Run builds every path in the scene and writes one OBJ file per
// path into the configured output directory.
func (b *Builder) Run() error {
	if len(b.cfg.Paths) == 0 {
		return fmt.Errorf("scene has no paths")
	}

	for i := range b.cfg.Paths {
		pc := &b.cfg.Paths[i]
		name := pc.Name
		if name == "" {
			name = fmt.Sprintf("path%02d", i)
		}

		start := time.Now()

		list := BuildPointList(pc)
		data := geometry.Build(list, BuildOptions(pc), b.cfg.Output.SecondaryUV)
		if data == nil {
			logger.Warn("path produced no geometry",
				zap.String("path", name),
				zap.Float64("progress", pc.Progress))
			continue
		}

		out, err := export.WriteOBJFile(b.cfg.Output.Dir, name, data)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", name, err)
		}

		logger.Info("path exported",
			zap.String("path", name),
			zap.String("shape", pc.Shape),
			zap.String("file", out),
			zap.Int("samples", list.Count()),
			zap.Int("vertices", data.VertexCount),
			zap.Int("triangles", data.IndexCount/3),
			zap.Duration("took", time.Since(start)))
	}

	return nil
}

// BuildPointList converts a scene path entry into a frame sequence.
func BuildPointList(pc *config.PathConfig) *path.PointList {
	points := make([]math.Vec3, len(pc.Points))
	for i, p := range pc.Points {
		points[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}

	var up *math.Vec3
	if pc.Up != nil {
		up = &math.Vec3{X: pc.Up[0], Y: pc.Up[1], Z: pc.Up[2]}
	}

	list := path.NewPointList()
	list.Set(points, pc.CornerRadius, pc.CornerSplit, up, pc.Close)
	return list
}

// BuildOptions maps a scene path entry onto the emitter options for
// its shape.
func BuildOptions(pc *config.PathConfig) geometry.Options {
	switch pc.Shape {
	case "ribbon":
		return geometry.RibbonOptions{
			Width:    pc.Ribbon.Width,
			Progress: pc.Progress,
			Arrow:    pc.Ribbon.Arrow,
			Side:     ribbonSide(pc.Ribbon.Side),
		}
	case "rect":
		return geometry.RectOptions{
			Radius:   pc.Rect.Radius,
			Progress: pc.Progress,
			Width:    pc.Rect.Width,
			Height:   pc.Rect.Height,
		}
	case "box":
		return geometry.BoxOptions{
			Progress: pc.Progress,
			Width:    pc.Box.Width,
			Height:   pc.Box.Height,
		}
	default:
		return geometry.TubeOptions{
			Radius:         pc.Tube.Radius,
			Progress:       pc.Progress,
			RadialSegments: pc.Tube.RadialSegments,
			StartRad:       pc.Tube.StartRad,
		}
	}
}

func ribbonSide(s string) geometry.Side {
	switch s {
	case "left":
		return geometry.SideLeft
	case "right":
		return geometry.SideRight
	default:
		return geometry.SideBoth
	}
}
