package config

import (
	"encoding"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
)

const (
	// DirName is the directory holding settings, under $HOME and the server directory.
	DirName = ".anvilcost"

	// FileName is the settings file name inside DirName.
	FileName = "config.toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "ANVILCOST_"

	// keyDelim separates nested keys.
	keyDelim = "."

	// worldWritable is the permission bit that makes a file unsafe to load.
	worldWritable = 0o002
)

// KoanfLoader locates and reads settings files.
type KoanfLoader struct {
	homeDir      string
	projectDir   string
	explicitPath string
}

// NewKoanfLoader creates a loader rooted at the user's home directory and the
// current working directory.
func NewKoanfLoader() (*KoanfLoader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolving home directory")
	}

	projectDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "resolving working directory")
	}

	return NewLoaderWithDirs(homeDir, projectDir), nil
}

// NewLoaderWithDirs creates a loader with explicit global and project roots.
func NewLoaderWithDirs(homeDir, projectDir string) *KoanfLoader {
	return &KoanfLoader{
		homeDir:    homeDir,
		projectDir: projectDir,
	}
}

// WithFile makes the loader read only path, ignoring the global and project files.
func (l *KoanfLoader) WithFile(path string) *KoanfLoader {
	l.explicitPath = path

	return l
}

// ExplicitPath returns the file set with WithFile, if any.
func (l *KoanfLoader) ExplicitPath() string {
	return l.explicitPath
}

// GlobalConfigPath returns the path of the per-user settings file.
func (l *KoanfLoader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, DirName, FileName)
}

// ProjectConfigPath returns the path of the per-server settings file.
func (l *KoanfLoader) ProjectConfigPath() string {
	return filepath.Join(l.projectDir, DirName, FileName)
}

// HasGlobalConfig reports whether the global settings file exists.
func (l *KoanfLoader) HasGlobalConfig() bool {
	return fileExists(l.GlobalConfigPath())
}

// HasProjectConfig reports whether the project settings file exists.
func (l *KoanfLoader) HasProjectConfig() bool {
	return fileExists(l.ProjectConfigPath())
}

// Paths returns the existing settings files in use, lowest precedence first.
// With WithFile only that file is returned, and it must exist.
func (l *KoanfLoader) Paths() ([]string, error) {
	if l.explicitPath != "" {
		if !fileExists(l.explicitPath) {
			return nil, errors.Wrapf(ErrConfigNotFound, "%s", l.explicitPath)
		}

		return []string{l.explicitPath}, nil
	}

	var paths []string

	if l.HasGlobalConfig() {
		paths = append(paths, l.GlobalConfigPath())
	}

	if l.HasProjectConfig() {
		paths = append(paths, l.ProjectConfigPath())
	}

	return paths, nil
}

// ReadFile parses a single settings file into a nested map.
func (*KoanfLoader) ReadFile(path string) (map[string]any, error) {
	k := koanf.New(keyDelim)

	if err := loadFile(k, path); err != nil {
		return nil, err
	}

	return k.Raw(), nil
}

// LoadFile reads and decodes one settings file on top of the defaults.
func (l *KoanfLoader) LoadFile(path string) (*pkgconfig.Config, error) {
	values, err := l.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return DecodeMap(values)
}

// EnvProvider returns a koanf provider mapping ANVILCOST_<GROUP>_<KEY>
// variables onto schema paths, with values converted by ParseValue. Empty
// variables and variables that name no setting are skipped.
func EnvProvider(environ func() []string) *env.Env {
	fields := make(map[string]pkgconfig.Field, len(pkgconfig.Schema()))
	for _, f := range pkgconfig.Schema() {
		fields[pkgconfig.EnvKey(EnvPrefix, f.Path())] = f
	}

	return env.Provider(keyDelim, env.Opt{
		Prefix:      EnvPrefix,
		EnvironFunc: environ,
		TransformFunc: func(key, value string) (string, any) {
			field, ok := fields[key]
			if !ok || value == "" {
				return "", nil
			}

			return field.Path(), ParseValue(field, value)
		},
	})
}

// ParseValue converts a textual value, as given in the environment or on the
// command line, to the type of field. Text that doesn't parse is returned
// unchanged so that Decode reports it.
func ParseValue(field pkgconfig.Field, raw string) any {
	raw = strings.TrimSpace(raw)

	var (
		value any
		err   error
	)

	switch field.Kind {
	case pkgconfig.KindInt:
		value, err = strconv.Atoi(raw)
	case pkgconfig.KindFloat:
		value, err = strconv.ParseFloat(raw, 64)
	case pkgconfig.KindBool:
		value, err = strconv.ParseBool(raw)
	default:
		return raw
	}

	if err != nil {
		return raw
	}

	return value
}

// Decode unmarshals k onto the defaults. Unknown keys and values of the wrong
// type fail with ErrInvalidConfig; nothing is coerced.
func Decode(k *koanf.Koanf) (*pkgconfig.Config, error) {
	cfg := DefaultConfig()

	err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "toml",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				enumNameHook,
				integralHook,
				mapstructure.TextUnmarshallerHookFunc(),
			),
			ErrorUnused: true,
			Result:      cfg,
		},
	})
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding config"), ErrInvalidConfig)
	}

	return cfg, nil
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// enumNameHook only accepts enum values given by name.
func enumNameHook(from, to reflect.Type, data any) (any, error) {
	if !reflect.PointerTo(to).Implements(textUnmarshalerType) || from.Kind() == reflect.String {
		return data, nil
	}

	return nil, errors.Newf("expected a %s name, got %v", to.Name(), data)
}

// integralHook refuses to truncate fractional numbers into int settings.
func integralHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int || (from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32) {
		return data, nil
	}

	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, errors.Newf("expected an integer, got %v", data)
	}

	return int(f), nil
}

// DecodeMap decodes a nested map of values onto the defaults.
func DecodeMap(values map[string]any) (*pkgconfig.Config, error) {
	k := koanf.New(keyDelim)

	if err := k.Load(confmap.Provider(values, keyDelim), nil); err != nil {
		return nil, errors.Wrap(err, "loading values")
	}

	return Decode(k)
}

func loadFile(k *koanf.Koanf, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrConfigNotFound, "%s", path)
		}

		return errors.Wrapf(err, "reading %s", path)
	}

	if info.Mode().Perm()&worldWritable != 0 {
		return errors.WithHint(
			errors.Wrapf(ErrInvalidPermissions, "%s is world-writable", path),
			"fix with: chmod 600 "+path,
		)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Mark(errors.Wrapf(err, "parsing %s", path), ErrInvalidTOML)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
