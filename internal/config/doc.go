// Package config loads the server, database, authentication and rate limit
// settings from an optional config.yaml and LIBRARY_* environment variables,
// and validates them before any component is constructed.
package config
