// Package penalty provides checkers for the effective prior work penalty
// settings.
package penalty

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/smykla-labs/anvilcost/internal/doctor"
	"github.com/smykla-labs/anvilcost/internal/schemadoc"
	"github.com/smykla-labs/anvilcost/pkg/anvil"
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
	"github.com/smykla-labs/anvilcost/pkg/penalty"
)

const (
	// curveWorks is how many prior works the curve check samples.
	curveWorks = 10

	// lockoutWorks is the horizon of the too expensive check. Items locked out
	// within it produce a warning.
	lockoutWorks = 10

	// searchWorks bounds the search for the lockout point.
	searchWorks = 62
)

// SettingsLoader returns the effective settings.
type SettingsLoader interface {
	Load() (*pkgconfig.Config, error)
}

// CurveChecker checks that the active policy produces a sane cost curve.
type CurveChecker struct {
	settings SettingsLoader
}

// NewCurveChecker creates a new curve checker
func NewCurveChecker(settings SettingsLoader) *CurveChecker {
	return &CurveChecker{settings: settings}
}

func (*CurveChecker) Name() string {
	return "Penalty curve"
}

func (*CurveChecker) Category() doctor.Category {
	return doctor.CategoryPenalty
}

func (c *CurveChecker) Check(_ context.Context) doctor.CheckResult {
	cfg, err := c.settings.Load()
	if err != nil {
		return doctor.Skip(c.Name(), "Settings could not be loaded")
	}

	rules := anvil.NewRules(cfg)

	if rules.Policy() == penalty.PolicyNone {
		return doctor.Pass(c.Name(), "Prior work penalty disabled")
	}

	rows, err := schemadoc.Curve(curveWorks, rules.MaxIncrease())
	if err != nil {
		return doctor.FailError(c.Name(), fmt.Sprintf("Failed to compute: %v", err))
	}

	costs := make([]string, 0, len(rows))
	previous := 0

	for _, row := range rows {
		cost := row.Vanilla
		if rules.Policy() == penalty.PolicyLimited {
			cost = row.Limited
		}

		if cost < previous || row.Limited > row.Vanilla {
			return doctor.FailError(c.Name(), fmt.Sprintf("Curve breaks after %d prior works", row.Works))
		}

		previous = cost
		costs = append(costs, strconv.Itoa(cost))
	}

	message := rules.Policy().String()
	if rules.Policy() == penalty.PolicyLimited {
		message = fmt.Sprintf("LIMITED, at most +%d per operation", rules.MaxIncrease())
	}

	return doctor.Pass(c.Name(), message).
		WithDetails(fmt.Sprintf("Penalty for 0..%d prior works: %s", curveWorks, strings.Join(costs, ", ")))
}

// TooExpensiveChecker warns when items get locked out by the too expensive
// limit after only a few operations.
type TooExpensiveChecker struct {
	settings SettingsLoader
}

// NewTooExpensiveChecker creates a new too expensive limit checker
func NewTooExpensiveChecker(settings SettingsLoader) *TooExpensiveChecker {
	return &TooExpensiveChecker{settings: settings}
}

func (*TooExpensiveChecker) Name() string {
	return "Too expensive limit"
}

func (*TooExpensiveChecker) Category() doctor.Category {
	return doctor.CategoryPenalty
}

func (c *TooExpensiveChecker) Check(_ context.Context) doctor.CheckResult {
	cfg, err := c.settings.Load()
	if err != nil {
		return doctor.Skip(c.Name(), "Settings could not be loaded")
	}

	costs := cfg.GetCosts()
	if !costs.IsTooExpensiveLimitEnabled() {
		return doctor.Skip(c.Name(), "Limit disabled")
	}

	rules := anvil.NewRules(cfg)

	works, cost, found, err := lockout(rules)
	if err != nil {
		return doctor.FailError(c.Name(), fmt.Sprintf("Failed to compute: %v", err))
	}

	if !found || works > lockoutWorks {
		return doctor.Pass(c.Name(), fmt.Sprintf("Limit %d is not reached within %d prior works",
			costs.TooExpensiveLimit, lockoutWorks))
	}

	result := doctor.FailWarning(c.Name(), fmt.Sprintf("Items become too expensive after %d prior works", works)).
		WithDetails(fmt.Sprintf("Penalty alone reaches %d levels, limit is %d", cost, costs.TooExpensiveLimit))

	if cfg.GetPriorWorkPenalty().RenameAndRepairCosts == pkgconfig.RenameAndRepairCostVanilla {
		result = result.WithDetails("Renaming and repairing are refused too; consider rename_and_repair_costs = \"LIMITED\"")
	}

	return result
}

// lockout finds the first prior work count whose penalty alone reaches the limit.
func lockout(rules *anvil.Rules) (works, cost int, found bool, err error) {
	for n := range searchWorks {
		cost, err = rules.PriorWorkCost(penalty.VanillaCost(n))
		if err != nil {
			return 0, 0, false, err
		}

		if rules.IsTooExpensive(cost) {
			return n, cost, true, nil
		}
	}

	return 0, 0, false, nil
}
