package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-labs/anvilcost/internal/doctor"
	configchecks "github.com/smykla-labs/anvilcost/internal/doctor/checkers/config"
	penaltychecks "github.com/smykla-labs/anvilcost/internal/doctor/checkers/penalty"
	"github.com/smykla-labs/anvilcost/internal/doctor/reporters"
)

var (
	doctorVerbose bool
	doctorFix     bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check settings files and the effective penalty settings",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVarP(&doctorVerbose, "verbose", "V", false, "Show check details")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Apply available fixes")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	log := commandLogger(cmd)

	p, loader, err := newProvider(cmd, log)
	if err != nil {
		return err
	}

	runner := doctor.NewRunner(
		configchecks.NewGlobalChecker(loader),
		configchecks.NewProjectChecker(loader),
		configchecks.NewPermissionsChecker(loader),
		penaltychecks.NewCurveChecker(p),
		penaltychecks.NewTooExpensiveChecker(p),
	).
		WithLogger(log).
		RegisterFixer(configchecks.NewGlobalConfigFixer(loader)).
		RegisterFixer(configchecks.NewPermissionsFixer(loader))

	ctx := cmd.Context()

	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	reporter := reporters.NewSimpleReporter(cmd.OutOrStdout())
	reporter.Report(results, doctorVerbose)

	if doctorFix {
		applied, err := runner.Fix(ctx, results)
		reporter.ReportFixes(applied)

		if err != nil {
			return err
		}

		if len(applied) > 0 {
			p.Reload()

			if results, err = runner.Run(ctx); err != nil {
				return err
			}
		}
	}

	if doctor.HasErrors(results) {
		return errors.New("health checks failed")
	}

	return nil
}
