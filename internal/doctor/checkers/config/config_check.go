// Package config provides checkers for settings file validation.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/anvilcost/internal/config"
	"github.com/smykla-labs/anvilcost/internal/doctor"
)

// Fix IDs handled by the fixers in this package.
const (
	FixCreateGlobalConfig = "create_global_config"
	FixConfigPermissions  = "fix_config_permissions"
)

// GlobalChecker checks the validity of the global settings file
type GlobalChecker struct {
	loader *config.KoanfLoader
}

// NewGlobalChecker creates a new global config checker
func NewGlobalChecker(loader *config.KoanfLoader) *GlobalChecker {
	return &GlobalChecker{loader: loader}
}

// Name returns the name of the check
func (*GlobalChecker) Name() string {
	return "Global config"
}

// Category returns the category of the check
func (*GlobalChecker) Category() doctor.Category {
	return doctor.CategoryConfig
}

// Check performs the global config validity check
func (c *GlobalChecker) Check(_ context.Context) doctor.CheckResult {
	if c.loader.ExplicitPath() != "" {
		return doctor.Skip(c.Name(), "Not used (--config is set)")
	}

	path := c.loader.GlobalConfigPath()

	if !c.loader.HasGlobalConfig() {
		return doctor.FailWarning(c.Name(), "Not found (optional)").
			WithDetails(
				"Expected at: "+path,
				"Create with: anvilcost config init --global",
			).
			WithFixID(FixCreateGlobalConfig)
	}

	return checkFile(c.Name(), c.loader, path)
}

// ProjectChecker checks the validity of the project settings file
type ProjectChecker struct {
	loader *config.KoanfLoader
}

// NewProjectChecker creates a new project config checker
func NewProjectChecker(loader *config.KoanfLoader) *ProjectChecker {
	return &ProjectChecker{loader: loader}
}

// Name returns the name of the check
func (*ProjectChecker) Name() string {
	return "Project config"
}

// Category returns the category of the check
func (*ProjectChecker) Category() doctor.Category {
	return doctor.CategoryConfig
}

// Check performs the project config validity check. A file given with
// --config takes the place of the project file.
func (c *ProjectChecker) Check(_ context.Context) doctor.CheckResult {
	if path := c.loader.ExplicitPath(); path != "" {
		return checkFile(c.Name(), c.loader, path)
	}

	if !c.loader.HasProjectConfig() {
		// the global file is the primary one
		return doctor.Skip(c.Name(), "Not found (using global config)")
	}

	return checkFile(c.Name(), c.loader, c.loader.ProjectConfigPath())
}

// PermissionsChecker checks that settings files are not world-writable
type PermissionsChecker struct {
	loader *config.KoanfLoader
}

// NewPermissionsChecker creates a new permissions checker
func NewPermissionsChecker(loader *config.KoanfLoader) *PermissionsChecker {
	return &PermissionsChecker{loader: loader}
}

// Name returns the name of the check
func (*PermissionsChecker) Name() string {
	return "Config permissions"
}

// Category returns the category of the check
func (*PermissionsChecker) Category() doctor.Category {
	return doctor.CategoryConfig
}

// Check performs the permissions check
func (c *PermissionsChecker) Check(_ context.Context) doctor.CheckResult {
	// a missing --config file is reported by ProjectChecker
	paths, _ := c.loader.Paths()
	if len(paths) == 0 {
		return doctor.Skip(c.Name(), "No config files found")
	}

	insecure := insecurePaths(paths)
	if len(insecure) > 0 {
		result := doctor.FailError(c.Name(), "Insecure file permissions detected")
		for _, path := range insecure {
			result = result.WithDetails("World-writable: " + path)
		}

		return result.
			WithDetails("Fix with: chmod 600 <config-file>").
			WithFixID(FixConfigPermissions)
	}

	return doctor.Pass(c.Name(), "Files are secured")
}

func checkFile(name string, loader *config.KoanfLoader, path string) doctor.CheckResult {
	cfg, err := loader.LoadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			return doctor.FailError(name, "Not found").WithDetails("Expected at: " + path)
		case errors.Is(err, config.ErrInvalidTOML):
			return doctor.FailError(name, "Invalid TOML syntax").
				WithDetails("File: "+path, fmt.Sprintf("Error: %v", err))
		case errors.Is(err, config.ErrInvalidPermissions):
			return doctor.FailError(name, "Insecure file permissions").
				WithDetails(
					"File: "+path,
					"Config file should not be world-writable",
					"Fix with: chmod 600 "+path,
				).
				WithFixID(FixConfigPermissions)
		case errors.Is(err, config.ErrInvalidConfig):
			return doctor.FailError(name, "Unknown key or wrong value type").
				WithDetails("File: "+path, fmt.Sprintf("Error: %v", err))
		default:
			return doctor.FailError(name, fmt.Sprintf("Failed to load: %v", err))
		}
	}

	if err := config.NewValidator().Validate(cfg); err != nil {
		result := doctor.FailError(name, "Validation failed").WithDetails("File: " + path)

		var verr *config.ValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Errors {
				result = result.WithDetails(fe.Error())
			}
		}

		return result
	}

	return doctor.Pass(name, "Loaded and validated")
}

func insecurePaths(paths []string) []string {
	var insecure []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err == nil && info.Mode().Perm()&0o002 != 0 {
			insecure = append(insecure, path)
		}
	}

	return insecure
}
