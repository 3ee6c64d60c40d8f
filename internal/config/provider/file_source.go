package provider

import (
	"os"

	"github.com/smykla-labs/anvilcost/internal/config"
)

// FileSource reads a TOML settings file.
type FileSource struct {
	loader   *config.KoanfLoader
	name     string
	path     string
	priority int
	required bool
}

// NewGlobalFileSource reads the per-user settings file, if present.
func NewGlobalFileSource(loader *config.KoanfLoader) *FileSource {
	return &FileSource{
		loader:   loader,
		name:     "global file",
		path:     loader.GlobalConfigPath(),
		priority: PriorityGlobalFile,
	}
}

// NewProjectFileSource reads the per-server settings file, if present.
func NewProjectFileSource(loader *config.KoanfLoader) *FileSource {
	return &FileSource{
		loader:   loader,
		name:     "project file",
		path:     loader.ProjectConfigPath(),
		priority: PriorityProjectFile,
	}
}

// NewFileSource reads path, which must exist.
func NewFileSource(loader *config.KoanfLoader, path string) *FileSource {
	return &FileSource{
		loader:   loader,
		name:     "file " + path,
		path:     path,
		priority: PriorityProjectFile,
		required: true,
	}
}

// Name returns the source name.
func (s *FileSource) Name() string {
	return s.name
}

// Priority returns the source priority.
func (s *FileSource) Priority() int {
	return s.priority
}

// Path returns the file the source reads.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads the file. Optional files that don't exist contribute nothing.
func (s *FileSource) Load() (map[string]any, error) {
	if !s.required {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return map[string]any{}, nil
		}
	}

	return s.loader.ReadFile(s.path)
}
