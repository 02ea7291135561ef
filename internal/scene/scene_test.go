package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soBigRice/three.path/internal/config"
	"github.com/soBigRice/three.path/internal/logger"
	"github.com/soBigRice/three.path/pkg/geometry"
)

func TestMain(m *testing.M) {
	// Silence logging for the package tests.
	if err := logger.InitWithFileConfig("error", logger.FileConfig{}, false); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func tubePath(name string) config.PathConfig {
	p := config.DefaultPath()
	p.Name = name
	p.Points = [][3]float64{{0, 0, 0}, {10, 0, 0}}
	return p
}

func TestBuildPointList(t *testing.T) {
	p := tubePath("straight")

	list := BuildPointList(&p)
	if list.Count() != 2 {
		t.Fatalf("expected 2 frame samples, got %d", list.Count())
	}
	if got := list.Distance(); got != 10 {
		t.Errorf("expected distance 10, got %f", got)
	}
}

func TestBuildPointListForcedUp(t *testing.T) {
	p := tubePath("pinned")
	p.Up = &[3]float64{0, 0, 1}

	list := BuildPointList(&p)
	for i := 0; i < list.Count(); i++ {
		up := list.At(i).Up
		if up.Z != 1 || up.X != 0 || up.Y != 0 {
			t.Errorf("sample %d: expected up [0 0 1], got %+v", i, up)
		}
	}
}

func TestBuildOptions(t *testing.T) {
	p := tubePath("shapes")

	p.Shape = "ribbon"
	p.Ribbon.Width = 2
	p.Ribbon.Side = "left"
	opts := BuildOptions(&p)
	ribbon, ok := opts.(geometry.RibbonOptions)
	if !ok {
		t.Fatalf("expected RibbonOptions, got %T", opts)
	}
	if ribbon.Width != 2 || ribbon.Side != geometry.SideLeft {
		t.Errorf("ribbon options not mapped: %+v", ribbon)
	}

	p.Shape = "tube"
	p.Tube.RadialSegments = 12
	opts = BuildOptions(&p)
	tube, ok := opts.(geometry.TubeOptions)
	if !ok {
		t.Fatalf("expected TubeOptions, got %T", opts)
	}
	if tube.RadialSegments != 12 {
		t.Errorf("tube options not mapped: %+v", tube)
	}

	p.Shape = "rect"
	opts = BuildOptions(&p)
	if _, ok := opts.(geometry.RectOptions); !ok {
		t.Fatalf("expected RectOptions, got %T", opts)
	}

	p.Shape = "box"
	opts = BuildOptions(&p)
	if _, ok := opts.(geometry.BoxOptions); !ok {
		t.Fatalf("expected BoxOptions, got %T", opts)
	}
}

func TestRunExportsEveryPath(t *testing.T) {
	outDir := t.TempDir()

	cfg := config.Default()
	cfg.Output.Dir = outDir
	cfg.Paths = []config.PathConfig{tubePath("pipe"), tubePath("")}
	cfg.Paths[1].Shape = "ribbon"
	cfg.Paths[1].Ribbon.Width = 1

	if err := New(cfg).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, want := range []string{"pipe.obj", "path01.obj"} {
		if _, err := os.Stat(filepath.Join(outDir, want)); err != nil {
			t.Errorf("expected output file %s: %v", want, err)
		}
	}

	content, err := os.ReadFile(filepath.Join(outDir, "pipe.obj"))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(content), "o pipe\n") {
		t.Error("output missing object header")
	}
}

func TestRunSkipsEmptyEmission(t *testing.T) {
	outDir := t.TempDir()

	cfg := config.Default()
	cfg.Output.Dir = outDir
	p := tubePath("hidden")
	p.Progress = 0
	cfg.Paths = []config.PathConfig{p}

	if err := New(cfg).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "hidden.obj")); !os.IsNotExist(err) {
		t.Error("zero-progress path must not produce a file")
	}
}

func TestRunEmptyScene(t *testing.T) {
	cfg := config.Default()
	if err := New(cfg).Run(); err == nil {
		t.Error("expected error for scene without paths")
	}
}
