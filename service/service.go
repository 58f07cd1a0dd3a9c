// Package service starts and stops the optional long-lived subsystems of a session, such as the
// audio backend and the trace file, in dependency order.
package service

// Service defines the lifecycle interface for infrastructure subsystems
//
// Lifecycle:
//  1. Construction, configured by the caller
//  2. Start() - acquire devices or files, launch goroutines if any
//  3. [runtime operation]
//  4. Stop() - release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must start before this one
	Dependencies() []string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}
