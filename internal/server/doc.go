// Package server runs the HTTP server of sstatic.
//
// It owns the server lifecycle: listening, signal handling and graceful
// shutdown.
package server
