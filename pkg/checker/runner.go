package checker

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/modelcheck/pkg/scene"
)

// Outcome is the per-check entry of a report: either a finding (possibly
// empty) or a typed error, never both.
type Outcome struct {
	Check    string
	Category string
	Result   *Result
	Err      error
}

// Failed reports whether the check could not run.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Runner executes registered checks against a scene view. Checks are pure
// functions over an immutable snapshot, so independent checks run
// concurrently; one check's failure never aborts the others.
type Runner struct {
	reg     *Registry
	log     *zap.Logger
	workers int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger attaches a logger for per-check debug output.
func WithLogger(log *zap.Logger) RunnerOption {
	return func(r *Runner) { r.log = log }
}

// WithWorkers caps the number of checks running concurrently. Zero or
// negative means one worker per CPU.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) { r.workers = n }
}

// NewRunner returns a runner over the given registry.
func NewRunner(reg *Registry, opts ...RunnerOption) *Runner {
	r := &Runner{reg: reg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.NumCPU()
	}
	return r
}

// Run executes the requested checks (all registered checks when ids is nil)
// and returns a report with exactly one outcome per requested ID. Overrides
// are merged over each check's default parameters by check ID.
//
// Cancelling ctx aborts checks that have not started yet; their outcomes
// carry the context error.
func (r *Runner) Run(ctx context.Context, view scene.View, ids []string, overrides map[string]Params) Report {
	if ids == nil {
		ids = r.reg.IDs()
	}

	outcomes := make([]Outcome, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, id := range ids {
		check, ok := r.reg.Get(id)
		if !ok {
			outcomes[i] = Outcome{
				Check: id,
				Err:   &ConfigurationError{Check: id, Reason: "unknown check"},
			}
			continue
		}

		i := i
		params := check.Defaults.Merged(overrides[id])
		g.Go(func() error {
			outcomes[i] = r.runOne(gctx, check, view, params)
			return nil
		})
	}
	// Workers never return errors; failures live in their outcomes.
	_ = g.Wait()

	return NewReport(outcomes)
}

// runOne executes a single check in isolation.
func (r *Runner) runOne(ctx context.Context, check Check, view scene.View, params Params) Outcome {
	out := Outcome{Check: check.ID, Category: check.Category}

	// A cancelled run skips checks that have not started.
	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	result, err := check.Run(ctx, view, params)
	if err != nil {
		out.Err = stampCheckID(err, check.ID)
		r.log.Debug("check failed",
			zap.String("check", check.ID),
			zap.Error(out.Err))
		return out
	}
	if result == nil {
		result = &Result{Shape: check.Shape}
	}
	if result.Shape != check.Shape {
		out.Err = fmt.Errorf("check %q: declared result shape %s but returned %s", check.ID, check.Shape, result.Shape)
		return out
	}
	out.Result = result
	r.log.Debug("check finished",
		zap.String("check", check.ID),
		zap.Int("flagged", result.Count()))
	return out
}

// stampCheckID fills the check ID into typed errors constructed inside check
// functions, which do not know their registered ID.
func stampCheckID(err error, id string) error {
	var cfg *ConfigurationError
	if errors.As(err, &cfg) && cfg.Check == "" {
		cfg.Check = id
		return err
	}
	var str *StructuralError
	if errors.As(err, &str) && str.Check == "" {
		str.Check = id
		return err
	}
	return err
}
