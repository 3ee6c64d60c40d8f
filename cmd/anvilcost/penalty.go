package main

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-labs/anvilcost/pkg/anvil"
	"github.com/smykla-labs/anvilcost/pkg/penalty"
)

var penaltyExplain bool

var penaltyCmd = &cobra.Command{
	Use:   "penalty <counter>",
	Short: "Apply the prior work penalty to a repair cost counter",
	Long: `Print the penalty charged for an item whose repair cost counter is
<counter>, under the effective settings.

The counter is the value stored on the item, which grows as 2c+1 with
every operation. Use --explain for the decoded work count and the counter the
item carries after its next enchantment.`,
	Example: `  anvilcost penalty 31
  anvilcost penalty 31 --policy VANILLA
  anvilcost penalty 63 --max-increase 2 --explain`,
	Args: cobra.ExactArgs(1),
	RunE: runPenalty,
}

func init() {
	rootCmd.AddCommand(penaltyCmd)
	penaltyCmd.Flags().BoolVar(&penaltyExplain, "explain", false, "Show how the penalty was computed")
}

func runPenalty(cmd *cobra.Command, args []string) error {
	counter, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrapf(penalty.ErrInvalidArgument, "counter %q is not an integer", args[0])
	}

	p, _, err := newProvider(cmd, commandLogger(cmd))
	if err != nil {
		return err
	}

	cfg, err := p.Load()
	if err != nil {
		return err
	}

	rules := anvil.NewRules(cfg)

	cost, err := penalty.ComputePenalizedCost(counter, rules.Policy(), rules.MaxIncrease())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if !penaltyExplain {
		fmt.Fprintln(out, cost)

		return nil
	}

	next, err := rules.NextRepairCost(counter, anvil.OperationEnchant)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "counter:      %d\n", counter)
	fmt.Fprintf(out, "prior works:  %d\n", penalty.DecodePriorWorkCount(counter))
	fmt.Fprintf(out, "policy:       %s\n", rules.Policy())

	if rules.Policy() == penalty.PolicyLimited {
		fmt.Fprintf(out, "max increase: %d\n", rules.MaxIncrease())
	}

	fmt.Fprintf(out, "penalty:      %d\n", cost)
	fmt.Fprintf(out, "next counter: %d\n", next)

	return nil
}
