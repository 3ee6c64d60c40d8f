package main

import (
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"

	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
	"github.com/smykla-labs/anvilcost/pkg/penalty"
)

// promptPenaltySettings asks for the prior work penalty settings and the too
// expensive limit, starting from the values in cfg.
func promptPenaltySettings(cfg *pkgconfig.Config) error {
	pwp := cfg.GetPriorWorkPenalty()
	costs := cfg.GetCosts()

	policy := pwp.PriorWorkPenalty
	renameCosts := pwp.RenameAndRepairCosts
	maxIncrease := strconv.Itoa(pwp.MaximumPriorWorkPenaltyIncrease)
	limit := strconv.Itoa(costs.TooExpensiveLimit)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[penalty.Policy]().
				Title("Prior work penalty").
				Description("How working an item repeatedly raises later costs").
				Options(enumOptions(penalty.PolicyValues())...).
				Value(&policy),
			huh.NewInput().
				Title("Maximum increase per operation").
				Description("Only used by LIMITED").
				Value(&maxIncrease).
				Validate(intAtLeast(1)),
		),
		huh.NewGroup(
			huh.NewSelect[pkgconfig.RenameAndRepairCost]().
				Title("Rename and repair costs").
				Options(enumOptions(pkgconfig.RenameAndRepairCostValues())...).
				Value(&renameCosts),
			huh.NewInput().
				Title("Too expensive limit").
				Description("-1 disables the limit, vanilla uses 40").
				Value(&limit).
				Validate(intAtLeast(pkgconfig.TooExpensiveLimitDisabled)),
		),
	)

	if err := form.Run(); err != nil {
		return errors.Wrap(err, "reading answers")
	}

	pwp.PriorWorkPenalty = policy
	pwp.RenameAndRepairCosts = renameCosts
	pwp.MaximumPriorWorkPenaltyIncrease, _ = strconv.Atoi(maxIncrease)
	costs.TooExpensiveLimit, _ = strconv.Atoi(limit)

	return nil
}

func enumOptions[T interface {
	comparable
	String() string
}](values []T) []huh.Option[T] {
	options := make([]huh.Option[T], 0, len(values))
	for _, v := range values {
		options = append(options, huh.NewOption(v.String(), v))
	}

	return options
}

func intAtLeast(minimum int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("enter a whole number")
		}

		if n < minimum {
			return errors.Newf("must be at least %d", minimum)
		}

		return nil
	}
}
