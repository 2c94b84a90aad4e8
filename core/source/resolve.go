package source

import (
	"fmt"
	"os"

	"order-hub/core/storage"
)

// ResolveDir returns the first existing directory among dir and fallbacks.
// When none exists dir is returned unchanged, and every export read from it
// will then be reported as missing.
func ResolveDir(dir string, fallbacks []string) string {
	candidates := append([]string{dir}, fallbacks...)
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return dir
}

// New builds the fetcher selected by cfg.Backend.
// client is only required for the s3 backend.
func New(cfg Config, client storage.Client, bucket string) (Fetcher, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return NewDirFetcher(ResolveDir(cfg.Dir, cfg.FallbackDirs)), nil
	case BackendS3:
		if client == nil {
			return nil, fmt.Errorf("source backend %q requires a storage client", cfg.Backend)
		}
		return NewObjectFetcher(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unsupported source backend %q", cfg.Backend)
	}
}
