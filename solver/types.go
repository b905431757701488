// Package solver defines options, statuses, and sentinel errors for the
// observe–propagate engine.
package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver construction.
var (
	// ErrNilTopology is returned when a nil topology is passed to New.
	ErrNilTopology = errors.New("solver: topology is nil")

	// ErrNilRuleset is returned when a nil ruleset is passed to New.
	ErrNilRuleset = errors.New("solver: ruleset is nil")

	// ErrNilPrototype is returned when the prototype superposition is nil.
	ErrNilPrototype = errors.New("solver: prototype superposition is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Defaults for Options, single source of truth.
const (
	// DefaultMaxSteps bounds observe–propagate iterations per attempt.
	DefaultMaxSteps = 100000

	// DefaultMaxAttempts bounds fresh attempts before reporting failure.
	DefaultMaxAttempts = 20

	// DefaultRandomSeed seeds the PRNG at reset.
	DefaultRandomSeed = 0
)

// Status is the outcome of a single observe–propagate step.
type Status int

const (
	// StatusContinue: a slot was observed and propagation stayed consistent.
	StatusContinue Status = iota
	// StatusFinished: no slot has entropy left; every slot is collapsed.
	StatusFinished
	// StatusFailed: propagation emptied a slot; only restart is valid.
	StatusFailed
)

// String renders a Status for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "Continue"
	case StatusFinished:
		return "Finished"
	case StatusFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Option configures solver behavior via functional arguments. An invalid
// Option (e.g. a non-positive budget) is recorded internally and surfaced
// as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a solve.
type Options struct {
	// MaxSteps is the upper bound on observe–propagate iterations per
	// attempt; exceeding it counts as attempt failure.
	MaxSteps int

	// MaxAttempts is the number of fresh attempts before Solve gives up.
	MaxAttempts int

	// RandomSeed seeds the PRNG at reset. Attempts after the first do not
	// reseed; they continue the stream.
	RandomSeed int64

	// UseRecursive selects the depth-first recursive propagation walk (the
	// canonical variant) instead of the iterative LIFO worklist. Both
	// reach the same fixpoint; the recursive walk may overflow the stack
	// on very large topologies.
	UseRecursive bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
// MaxSteps 100000, MaxAttempts 20, RandomSeed 0, iterative propagation.
func DefaultOptions() Options {
	return Options{
		MaxSteps:     DefaultMaxSteps,
		MaxAttempts:  DefaultMaxAttempts,
		RandomSeed:   DefaultRandomSeed,
		UseRecursive: false,
		err:          nil,
	}
}

// WithMaxSteps bounds observe–propagate iterations per attempt.
// Non-positive values are invalid → ErrOptionViolation.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxSteps must be > 0 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithMaxAttempts bounds the number of attempts.
// Non-positive values are invalid → ErrOptionViolation.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxAttempts must be > 0 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithRandomSeed sets the PRNG seed used at reset.
func WithRandomSeed(seed int64) Option {
	return func(o *Options) { o.RandomSeed = seed }
}

// WithRecursive selects between the recursive (true) and iterative (false)
// propagation walks.
func WithRecursive(recursive bool) Option {
	return func(o *Options) { o.UseRecursive = recursive }
}
