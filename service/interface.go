// Package service orders the lifecycle of long-lived infrastructure: screen, audio, storage
package service

// Service is one piece of process-wide infrastructure owned by a Hub
//
// The hub drives every service through the same sequence:
//  1. Init(args...) with the arguments given at Register, in dependency order
//  2. Start() once every service initialized, to open devices and spawn pollers
//  3. Stop() in reverse order at shutdown, or to roll back a failed startup
type Service interface {
	// Name is the registration key other services list in Dependencies
	Name() string

	// Dependencies names the services that must initialize first, nil for none
	Dependencies() []string

	// Init applies configuration; argument meaning is defined per service
	Init(args ...any) error

	// Start opens resources, a service may degrade instead of failing
	Start() error

	// Stop releases resources and may be called more than once
	Stop() error
}
