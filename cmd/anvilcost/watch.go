package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-labs/anvilcost/internal/config/provider"
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
	"github.com/smykla-labs/anvilcost/pkg/logger"
)

var watchDebounce = provider.DefaultDebounce

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the penalty settings whenever a settings file changes",
	Long: `Watch the settings files and print the effective penalty settings on
start and after every change. An invalid edit is logged and the previous
settings stay in effect. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", provider.DefaultDebounce, "Wait this long after the last change")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	log := logger.NewLogger(cmd.ErrOrStderr(), debugLogs)

	p, _, err := newProvider(cmd, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	cfg, err := p.Load()
	if err != nil {
		return err
	}

	printPenaltySettings(out, cfg)

	w, err := provider.NewWatcher(p, p.WatchPaths())
	if err != nil {
		return err
	}

	w.WithDebounce(watchDebounce).
		WithLogger(log).
		OnChange(func(cfg *pkgconfig.Config) { printPenaltySettings(out, cfg) })

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("watching settings", "paths", w.Paths())

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func printPenaltySettings(w io.Writer, cfg *pkgconfig.Config) {
	pwp := cfg.GetPriorWorkPenalty()

	fmt.Fprintf(w, "prior_work_penalty=%s maximum_increase=%d rename_and_repair_costs=%s too_expensive_limit=%d\n",
		pwp.PriorWorkPenalty,
		pwp.MaximumPriorWorkPenaltyIncrease,
		pwp.RenameAndRepairCosts,
		cfg.GetCosts().TooExpensiveLimit,
	)
}
