package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to scene config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagOut      = flag.String("out", "", "Output directory for generated meshes")
	flagProgress = flag.Float64("progress", -1, "Override path progress for all paths (0..1)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagProgress >= 0 {
		for i := range cfg.Paths {
			cfg.Paths[i].Progress = *flagProgress
		}
	}
}
