package source

// Backend names accepted in Config.Backend.
const (
	BackendFile = "file"
	BackendS3   = "s3"
)

// Config holds the location of the upstream order exports.
type Config struct {
	// Backend selects where exports are read from (file, s3).
	Backend string `mapstructure:"backend" default:"file"`
	// Dir is the preferred local data directory.
	Dir string `mapstructure:"dir" default:"data"`
	// FallbackDirs are probed in order when Dir does not exist.
	FallbackDirs []string `mapstructure:"fallback_dirs" default:"../data"`
	// SystemAFile is the name of the System A JSON export.
	SystemAFile string `mapstructure:"system_a_file" default:"system_a_orders.json"`
	// SystemBFile is the name of the System B CSV export.
	SystemBFile string `mapstructure:"system_b_file" default:"system_b_orders.csv"`
	// Prefix is prepended to object names when Backend is s3.
	Prefix string `mapstructure:"prefix" default:""`
}

// IsValidBackend checks if the configured backend is supported.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendFile, BackendS3:
		return true
	default:
		return false
	}
}
