package doctor

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/smykla-labs/anvilcost/pkg/logger"
)

// Runner runs checkers concurrently and applies fixes.
type Runner struct {
	checkers []Checker
	fixers   map[string]Fixer
	logger   logger.Logger
}

// NewRunner creates a runner for checkers.
func NewRunner(checkers ...Checker) *Runner {
	return &Runner{
		checkers: checkers,
		fixers:   make(map[string]Fixer),
		logger:   logger.NewNoOpLogger(),
	}
}

// WithLogger sets the logger.
func (r *Runner) WithLogger(l logger.Logger) *Runner {
	r.logger = l

	return r
}

// RegisterFixer makes f available to Fix.
func (r *Runner) RegisterFixer(f Fixer) *Runner {
	r.fixers[f.ID()] = f

	return r
}

// Run executes every checker and returns the results in registration order.
// The result category is taken from the checker.
func (r *Runner) Run(ctx context.Context) ([]CheckResult, error) {
	results := make([]CheckResult, len(r.checkers))

	g, ctx := errgroup.WithContext(ctx)

	for i, checker := range r.checkers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result := checker.Check(ctx)
			result.Category = checker.Category()
			results[i] = result

			r.logger.Debug("check finished",
				"check", checker.Name(),
				"status", result.Status,
			)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "running checks")
	}

	return results, nil
}

// Fix applies the fixer of every failed result once, returning the IDs that
// were applied. Results with an unknown fix ID are ignored.
func (r *Runner) Fix(ctx context.Context, results []CheckResult) ([]string, error) {
	var applied []string

	seen := make(map[string]bool)

	for _, result := range results {
		if result.Status != StatusFail || !result.HasFix() || seen[result.FixID] {
			continue
		}

		seen[result.FixID] = true

		fixer, ok := r.fixers[result.FixID]
		if !ok {
			r.logger.Debug("no fixer registered", "fix_id", result.FixID)

			continue
		}

		if err := fixer.Fix(ctx); err != nil {
			return applied, errors.Wrapf(err, "fixing %s", result.FixID)
		}

		r.logger.Info("fix applied", "fix_id", result.FixID)
		applied = append(applied, result.FixID)
	}

	return applied, nil
}
