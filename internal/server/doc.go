// Package server runs the browser console HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
