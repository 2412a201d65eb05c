// Package server wires and runs a service's HTTP transport.
//
// It provides startup, signal handling, and graceful shutdown around a
// router built by the handler layer. Every service binary of the monorepo
// uses the same lifecycle.
package server
