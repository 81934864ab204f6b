// Package saga runs ordered remote side effects that share no transaction.
//
// A Saga is a list of steps, each an action with an optional compensation.
// When a required step fails, the compensations of the steps that already
// completed run in reverse order, and only for the steps that define one.
// Steps without a compensation are left in place and logged. Optional steps
// may fail without aborting the saga. A pivot step is the point of no return:
// once it completes, later failures no longer unwind anything before it.
package saga

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Step is one remote side effect.
type Step struct {
	Name       string
	Action     func(ctx context.Context) error
	Compensate func(ctx context.Context) error
	Optional   bool
	Pivot      bool
}

// Observer is notified about saga outcomes. Implementations must be safe for concurrent use.
type Observer interface {
	SagaCompleted(saga string, err error)
	StepCompensated(saga, step string, err error)
}

// Option configures a Saga
type Option func(*Saga)

// WithLogger sets the logger used for step and compensation events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Saga) {
		s.logger = logger
	}
}

// WithObserver registers an observer for outcomes.
func WithObserver(o Observer) Option {
	return func(s *Saga) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

type Saga struct {
	name      string
	steps     []Step
	logger    *slog.Logger
	observers []Observer
}

// New creates a saga with the given name.
func New(name string, opts ...Option) *Saga {
	s := &Saga{name: name, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the saga name.
func (s *Saga) Name() string { return s.name }

// Add appends a step and returns the saga for chaining.
func (s *Saga) Add(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// StepError reports the failed step and the outcome of every compensation that ran.
type StepError struct {
	Saga          string
	Step          string
	Err           error
	Compensations []Compensation
}

// Compensation is the outcome of one undo action.
type Compensation struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: step %q failed: %v", e.Saga, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// CompensationFailed reports whether any compensation returned an error.
func (e *StepError) CompensationFailed() bool {
	for _, c := range e.Compensations {
		if c.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the steps in order. The first required failure stops the saga.
func (s *Saga) Run(ctx context.Context) error {
	completed := make([]Step, 0, len(s.steps))

	for _, step := range s.steps {
		if err := step.Action(ctx); err != nil {
			if step.Optional {
				s.logger.WarnContext(ctx, "optional saga step failed, continuing",
					"saga", s.name,
					"step", step.Name,
					"error", err,
				)
				continue
			}

			stepErr := &StepError{Saga: s.name, Step: step.Name, Err: err}
			stepErr.Compensations = s.unwind(ctx, completed)
			s.notifyCompleted(stepErr)
			return stepErr
		}
		completed = append(completed, step)
		if step.Pivot {
			completed = completed[:0]
		}
	}

	s.notifyCompleted(nil)
	return nil
}

// unwind compensates completed steps in reverse order. It detaches from the
// caller's cancellation so a dropped request still rolls back.
func (s *Saga) unwind(ctx context.Context, completed []Step) []Compensation {
	ctx = context.WithoutCancel(ctx)

	var results []Compensation
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			s.logger.WarnContext(ctx, "saga step has no compensation, leaving it in place",
				"saga", s.name,
				"step", step.Name,
			)
			continue
		}

		err := step.Compensate(ctx)
		if err != nil {
			s.logger.ErrorContext(ctx, "saga compensation failed",
				"saga", s.name,
				"step", step.Name,
				"error", err,
			)
		} else {
			s.logger.InfoContext(ctx, "saga step compensated", "saga", s.name, "step", step.Name)
		}

		results = append(results, Compensation{Step: step.Name, Err: err})
		for _, o := range s.observers {
			o.StepCompensated(s.name, step.Name, err)
		}
	}
	return results
}

func (s *Saga) notifyCompleted(err error) {
	for _, o := range s.observers {
		o.SagaCompleted(s.name, err)
	}
}

// FailedStep returns the failed step name when err came from a saga.
func FailedStep(err error) (string, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step, true
	}
	return "", false
}
