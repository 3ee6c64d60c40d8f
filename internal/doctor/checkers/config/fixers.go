package config

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/anvilcost/internal/config"
)

// GlobalConfigFixer writes a documented global settings file with the defaults.
type GlobalConfigFixer struct {
	loader *config.KoanfLoader
}

func NewGlobalConfigFixer(loader *config.KoanfLoader) *GlobalConfigFixer {
	return &GlobalConfigFixer{loader: loader}
}

func (*GlobalConfigFixer) ID() string {
	return FixCreateGlobalConfig
}

func (*GlobalConfigFixer) Description() string {
	return "Create the global config with default settings"
}

func (f *GlobalConfigFixer) Fix(_ context.Context) error {
	cfg := config.DefaultConfig()
	cfg.Version = config.SchemaVersion

	return config.WriteFile(f.loader.GlobalConfigPath(), cfg, false)
}

// PermissionsFixer removes world write access from settings files.
type PermissionsFixer struct {
	loader *config.KoanfLoader
}

func NewPermissionsFixer(loader *config.KoanfLoader) *PermissionsFixer {
	return &PermissionsFixer{loader: loader}
}

func (*PermissionsFixer) ID() string {
	return FixConfigPermissions
}

func (*PermissionsFixer) Description() string {
	return "Restrict config file permissions to 0600"
}

func (f *PermissionsFixer) Fix(_ context.Context) error {
	paths, err := f.loader.Paths()
	if err != nil {
		return err
	}

	for _, path := range insecurePaths(paths) {
		if err := os.Chmod(path, 0o600); err != nil {
			return errors.Wrapf(err, "chmod %s", path)
		}
	}

	return nil
}
