package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/smykla-labs/anvilcost/internal/config"
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
)

var (
	initGlobal      bool
	initForce       bool
	initInteractive bool
	showFormat      string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings files",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a documented settings file",
	Long: `Write a settings file with every key documented.

By default the project file ./.anvilcost/config.toml is written. Use --global
for ~/.anvilcost/config.toml or --config for any other path.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [FILE|GLOB...]",
	Short: "Validate settings files",
	Long: `Load and validate each file on its own, on top of the defaults.
Arguments may be doublestar globs such as 'servers/**/config.toml'.

Without arguments the effective layered settings are validated.`,
	RunE: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd, configValidateCmd)

	configInitCmd.Flags().BoolVarP(&initGlobal, "global", "g", false, "Write the global settings file")
	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
	configInitCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "Choose the penalty settings interactively")

	configShowCmd.Flags().StringVarP(&showFormat, "format", "o", "toml", "Output format: toml, yaml or json")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}

	path := loader.ProjectConfigPath()

	switch {
	case configPath != "":
		path = configPath
	case initGlobal:
		path = loader.GlobalConfigPath()
	}

	cfg := config.DefaultConfig()
	cfg.Version = config.SchemaVersion

	if initInteractive {
		if err := promptPenaltySettings(cfg); err != nil {
			return err
		}

		if err := config.NewValidator().Validate(cfg); err != nil {
			return err
		}
	}

	if err := config.WriteFile(path, cfg, initForce); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	p, _, err := newProvider(cmd, commandLogger(cmd))
	if err != nil {
		return err
	}

	cfg, err := p.Load()
	if err != nil {
		return err
	}

	return encodeConfig(cmd.OutOrStdout(), cfg, showFormat)
}

func encodeConfig(w io.Writer, cfg *pkgconfig.Config, format string) error {
	switch strings.ToLower(format) {
	case "toml":
		return errors.Wrap(toml.NewEncoder(w).Encode(cfg), "encoding toml")
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}

		return errors.Wrap(enc.Close(), "encoding yaml")
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(cfg), "encoding json")
	default:
		return errors.WithHint(
			errors.Newf("unknown format %q", format),
			"use one of: toml, yaml, json",
		)
	}
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		p, _, err := newProvider(cmd, commandLogger(cmd))
		if err != nil {
			return err
		}

		if _, err := p.Load(); err != nil {
			return err
		}

		fmt.Fprintln(out, "ok effective settings")

		return nil
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	loader, err := newLoader()
	if err != nil {
		return err
	}

	validator := config.NewValidator()

	invalid := 0

	for _, path := range paths {
		cfg, err := loader.LoadFile(path)
		if err == nil {
			err = validator.Validate(cfg)
		}

		if err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			invalid++

			continue
		}

		fmt.Fprintf(out, "ok %s\n", path)
	}

	if invalid > 0 {
		return errors.Mark(errors.Newf("%d of %d files are invalid", invalid, len(paths)), config.ErrValidationFailed)
	}

	return nil
}

// expandPaths resolves doublestar globs. Arguments without glob syntax are
// kept as they are so that missing files are reported.
func expandPaths(args []string) ([]string, error) {
	var paths []string

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)

			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "expanding %s", arg)
		}

		if len(matches) == 0 {
			return nil, errors.Newf("no files match %s", arg)
		}

		paths = append(paths, matches...)
	}

	return paths, nil
}
