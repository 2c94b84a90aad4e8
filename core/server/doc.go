// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for the listener port, the route prefix of the order API,
// the CORS policy and the optional static front-end directory. It also provides the
// Fiber error handler that renders failures as {message, code} JSON bodies.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command when building the Fiber application.
package server
