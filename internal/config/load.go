package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile looks for a scene file in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./scene.yaml",
		filepath.Join(ConfigDir(), "scene.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "PathGen")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "PathGen")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "pathgen")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "pathgen")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// UnmarshalYAML merges a scene entry over the per-path defaults, so
// entries only need to state what differs.
func (p *PathConfig) UnmarshalYAML(value *yaml.Node) error {
	type rawPath PathConfig
	raw := rawPath(DefaultPath())
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = PathConfig(raw)
	return nil
}

// Validate checks the loaded scene for entries the generator cannot
// build.
func (c *Config) Validate() error {
	for i := range c.Paths {
		p := &c.Paths[i]
		label := p.Name
		if label == "" {
			label = fmt.Sprintf("paths[%d]", i)
		}

		if len(p.Points) < 2 {
			return fmt.Errorf("%s: need at least 2 points, got %d", label, len(p.Points))
		}
		switch p.Shape {
		case "ribbon", "tube", "rect", "box":
		default:
			return fmt.Errorf("%s: unknown shape %q", label, p.Shape)
		}
		switch p.Ribbon.Side {
		case "both", "left", "right":
		default:
			return fmt.Errorf("%s: unknown ribbon side %q", label, p.Ribbon.Side)
		}
		if p.Progress < 0 || p.Progress > 1 {
			return fmt.Errorf("%s: progress %v out of range [0,1]", label, p.Progress)
		}
	}
	return nil
}
