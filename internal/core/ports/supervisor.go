// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/snobb/imk/internal/core/domain"
)

// Supervisor runs one command invocation to completion.
//
//go:generate mockgen -source=supervisor.go -destination=mocks/mock_supervisor.go -package=mocks
type Supervisor interface {
	// Run spawns the command described by spec and blocks until it exits,
	// is terminated by the timeout policy, or ctx is cancelled.
	// Failures are reported through the result, never as a separate error.
	Run(ctx context.Context, spec domain.CommandSpec) domain.RunResult
}
