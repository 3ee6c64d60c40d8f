package main

import (
	"github.com/spf13/cobra"

	"github.com/smykla-labs/anvilcost/internal/config"
	"github.com/smykla-labs/anvilcost/internal/config/provider"
	"github.com/smykla-labs/anvilcost/pkg/logger"
)

var (
	configPath string
	debugLogs  bool
)

var rootCmd = &cobra.Command{
	Use:   "anvilcost",
	Short: "Anvil cost settings and prior work penalty calculator",
	Long: `anvilcost computes anvil prior work penalties and manages the settings
that control them.

Settings are layered, lowest precedence first: built-in defaults,
~/.anvilcost/config.toml, ./.anvilcost/config.toml, ANVILCOST_<GROUP>_<KEY>
environment variables and command line flags.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&configPath, "config", "c", "", "Read settings only from this file")
	flags.BoolVar(&debugLogs, "debug", false, "Log debug messages to stderr")

	flags.String("policy", "", "Prior work penalty: NONE, VANILLA or LIMITED")
	flags.Int("max-increase", 0, "Maximum penalty increase per operation under LIMITED")
	flags.String("rename-and-repair-costs", "", "Rename and repair costs: VANILLA, FIXED or LIMITED")
	flags.Int("too-expensive-limit", 0, "Too expensive limit in levels, -1 disables it")
	flags.String("free-renames", "", "Free renames: NEVER, ALL_ITEMS or NAME_TAGS_ONLY")
}

// flagOverrides collects the settings flags that were set explicitly.
func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := make(map[string]any)

	for name := range provider.FlagPaths {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}

		overrides[name] = flag.Value.String()
	}

	return overrides
}

func newLoader() (*config.KoanfLoader, error) {
	loader, err := config.NewKoanfLoader()
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		loader.WithFile(configPath)
	}

	return loader, nil
}

func newProvider(cmd *cobra.Command, log logger.Logger) (*provider.Provider, *config.KoanfLoader, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, nil, err
	}

	p := provider.NewDefaultProvider(loader, flagOverrides(cmd)).WithLogger(log)

	return p, loader, nil
}

// commandLogger logs to stderr only with --debug.
func commandLogger(cmd *cobra.Command) logger.Logger {
	if !debugLogs {
		return logger.NewNoOpLogger()
	}

	return logger.NewLogger(cmd.ErrOrStderr(), true)
}
