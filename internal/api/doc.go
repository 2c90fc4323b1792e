// Package api implements the HTTP handlers for customers, categories and
// books. Handlers decode and validate request bodies, call the service layer,
// and translate domain errors into the JSON error envelope.
package api
