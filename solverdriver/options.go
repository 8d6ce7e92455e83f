package solverdriver

import (
	"time"

	"go.uber.org/zap"
)

// driverConfig holds every knob an Option can set, with defaults applied in
// New before any Option runs.
type driverConfig struct {
	vehicles      int
	neighbors     int
	solverCommand string
	timeout       time.Duration
	tempDir       string
	logger        *zap.Logger
}

// Option customizes a Driver's configuration before a Solve call. Option
// constructors validate and panic on meaningless input; the algorithms
// themselves never panic.
type Option func(*driverConfig)

// WithVehicles sets the target fleet size K passed to ClarkeWright. Panics
// if k<=0.
func WithVehicles(k int) Option {
	if k <= 0 {
		panic("solverdriver: WithVehicles(k<=0)")
	}

	return func(c *driverConfig) { c.vehicles = k }
}

// WithNeighbors sets the KNeighbors neighbor count k. Panics if k<=0.
func WithNeighbors(k int) Option {
	if k <= 0 {
		panic("solverdriver: WithNeighbors(k<=0)")
	}

	return func(c *driverConfig) { c.neighbors = k }
}

// WithSolverCommand sets the external PBO solver's executable path/name.
// Panics on an empty command.
func WithSolverCommand(cmd string) Option {
	if cmd == "" {
		panic("solverdriver: WithSolverCommand(\"\")")
	}

	return func(c *driverConfig) { c.solverCommand = cmd }
}

// WithTimeout bounds the external solver invocation; zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *driverConfig) { c.timeout = d }
}

// WithTempDir overrides the directory used for the solver's input/output
// scratch files. Empty means the OS default temp directory.
func WithTempDir(dir string) Option {
	return func(c *driverConfig) { c.tempDir = dir }
}

// WithLogger attaches a structured logger for stage-by-stage progress.
// Panics on nil; use zap.NewNop() to silence logging explicitly.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("solverdriver: WithLogger(nil)")
	}

	return func(c *driverConfig) { c.logger = logger }
}
