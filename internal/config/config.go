// Package config handles generator configuration loading and management.
package config

// Config holds all generator settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Paths   []PathConfig  `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	SecondaryUV bool   `yaml:"secondary_uv"`
}

// PathConfig describes one path and the cross-section swept along it.
type PathConfig struct {
	Name         string       `yaml:"name"`
	Points       [][3]float64 `yaml:"points"`
	Close        bool         `yaml:"close"`
	CornerRadius float64      `yaml:"corner_radius"`
	CornerSplit  int          `yaml:"corner_split"`
	Up           *[3]float64  `yaml:"up"` // nil picks an up vector per path
	Shape        string       `yaml:"shape"`
	Progress     float64      `yaml:"progress"`

	Ribbon RibbonConfig `yaml:"ribbon"`
	Tube   TubeConfig   `yaml:"tube"`
	Rect   RectConfig   `yaml:"rect"`
	Box    BoxConfig    `yaml:"box"`
}

// RibbonConfig holds ribbon cross-section settings.
type RibbonConfig struct {
	Width float64 `yaml:"width"`
	Arrow bool    `yaml:"arrow"`
	Side  string  `yaml:"side"` // both, left or right
}

// TubeConfig holds circular tube cross-section settings.
type TubeConfig struct {
	Radius         float64 `yaml:"radius"`
	RadialSegments int     `yaml:"radial_segments"`
	StartRad       float64 `yaml:"start_rad"`
}

// RectConfig holds rectangular tube cross-section settings.
type RectConfig struct {
	Radius float64 `yaml:"radius"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BoxConfig holds box tube cross-section settings.
type BoxConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:         "out",
			SecondaryUV: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultPath returns a PathConfig with the standard per-path values.
// Scene entries are merged over these before building.
func DefaultPath() PathConfig {
	return PathConfig{
		CornerRadius: 0.1,
		CornerSplit:  10,
		Shape:        "tube",
		Progress:     1,
		Ribbon:       RibbonConfig{Width: 0.1, Arrow: true, Side: "both"},
		Tube:         TubeConfig{Radius: 0.1, RadialSegments: 8},
		Rect:         RectConfig{Radius: 0.1, Width: 1, Height: 0.5},
		Box:          BoxConfig{Width: 1, Height: 0.5},
	}
}
