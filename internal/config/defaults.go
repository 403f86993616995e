package config

const (
	defaultSourceDir      = "~/Pictures/theframe"
	defaultDestinationDir = "~/Pictures/display"

	// Device limits for the display hardware: at most 1200 photos and
	// 4 GiB per rotation folder. Configurable, not planner invariants.
	defaultMaxFiles       = 1200
	defaultMaxBytes int64 = 4 * 1024 * 1024 * 1024

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Source:      defaultSourceDir,
			Destination: defaultDestinationDir,
		},
		Limits: Limits{
			MaxFiles: defaultMaxFiles,
			MaxBytes: defaultMaxBytes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
