// Package server holds the HTTP server configuration.
//
// The main application entry point (the serve command) handles the server
// startup; this package only defines the configuration structure embedded
// by core/config.
//
// # Configuration
//
// The Config struct defines the HTTP port and the API key protecting the
// sync endpoints.
package server
