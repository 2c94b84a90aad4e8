package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BasePath is the route prefix under which the order API is mounted.
	BasePath string `mapstructure:"base_path" default:"/api/order-hub"`
	// CORSOrigins is the comma separated list of allowed origins ("*" allows any).
	CORSOrigins string `mapstructure:"cors_origins" default:"*"`
	// StaticDir optionally serves the browser front-end from a local directory.
	StaticDir string `mapstructure:"static_dir" default:""`
}

// Prefix returns the normalized route prefix: a leading slash and no trailing slash.
// An empty base path mounts the API at the root.
func (c Config) Prefix() string {
	p := strings.TrimSpace(c.BasePath)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// AllowOrigins returns the origins in the form expected by the fiber CORS middleware.
func (c Config) AllowOrigins() string {
	if strings.TrimSpace(c.CORSOrigins) == "" {
		return "*"
	}
	parts := strings.Split(c.CORSOrigins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ",")
}
