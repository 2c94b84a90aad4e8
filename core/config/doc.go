// Package config provides configuration management for the order hub.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults are declared with `default` struct tags on the
// partial configurations and registered through reflection.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, route prefix, CORS origins and static front-end directory
//   - Source: export backend (file or s3), data directory probing and file names
//   - Storage: S3/MinIO credentials and bucket settings for the s3 backend
//   - Log: Logging level and format
//
// Nested keys map to upper-case environment variables joined by underscores,
// e.g. SOURCE_DIR, SOURCE_FALLBACK_DIRS=../data,/srv/orders or SERVER_PORT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
