package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smykla-labs/anvilcost/internal/schemadoc"
)

const defaultCurveWorks = 10

var curveWorks int

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the penalty of every policy per prior work count",
	Long: `Print a markdown table of the penalty charged under NONE, VANILLA and
LIMITED after 0..N prior works, using the effective maximum increase.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, _, err := newProvider(cmd, commandLogger(cmd))
		if err != nil {
			return err
		}

		cfg, err := p.Load()
		if err != nil {
			return err
		}

		table, err := schemadoc.PenaltyCurve(curveWorks, cfg.GetPriorWorkPenalty().MaximumPriorWorkPenaltyIncrease)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), table)

		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print a markdown reference of every setting",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), schemadoc.SettingsReference())
	},
}

func init() {
	rootCmd.AddCommand(curveCmd, schemaCmd)
	curveCmd.Flags().IntVarP(&curveWorks, "works", "n", defaultCurveWorks, "Highest prior work count to show")
}
