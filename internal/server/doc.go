// Package server wires and runs the remote save store's HTTP server.
//
// It provides lifecycle orchestration: startup, signal handling, and
// graceful shutdown.
package server
