package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
)

const (
	configDirPerm  = 0o755
	configFilePerm = 0o600
)

// Write renders cfg as a TOML document with every setting documented.
func Write(w io.Writer, cfg *pkgconfig.Config) error {
	var buf bytes.Buffer

	buf.WriteString("# anvilcost settings\n")
	buf.WriteString("# Every setting can be overridden with ANVILCOST_<GROUP>_<KEY> environment variables.\n\n")

	version := cfg.Version
	if version == "" {
		version = SchemaVersion
	}

	if err := writeKeyValue(&buf, "version", version); err != nil {
		return err
	}

	for _, group := range pkgconfig.Groups() {
		fmt.Fprintf(&buf, "\n[%s]\n", group)

		for i, field := range pkgconfig.FieldsIn(group) {
			if i > 0 {
				buf.WriteString("\n")
			}

			writeComments(&buf, field)

			if err := writeKeyValue(&buf, field.Key, field.Get(cfg)); err != nil {
				return err
			}
		}
	}

	_, err := w.Write(buf.Bytes())

	return errors.Wrap(err, "writing config")
}

// WriteFile writes cfg to path, creating parent directories. An existing file
// is only replaced when force is set.
func WriteFile(path string, cfg *pkgconfig.Config, force bool) error {
	if !force && fileExists(path) {
		return errors.WithHint(
			errors.Wrapf(ErrConfigExists, "%s", path),
			"use --force to overwrite it",
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirPerm); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(path))
	}

	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), configFilePerm); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	return nil
}

func writeComments(buf *bytes.Buffer, field pkgconfig.Field) {
	for _, line := range field.Description {
		buf.WriteString("# " + line + "\n")
	}

	if len(field.Choices) > 0 {
		buf.WriteString("# Allowed values: " + strings.Join(field.Choices, ", ") + "\n")
	}

	if field.HasRange() {
		buf.WriteString("# Range: " + FormatRange(field) + "\n")
	}

	fmt.Fprintf(buf, "# Default: %v\n", field.Default)
}

// FormatRange renders the bounds of a numeric field, e.g. ">= 1" or "0 ~ 1".
func FormatRange(field pkgconfig.Field) string {
	switch {
	case field.Min != nil && field.Max != nil:
		return fmt.Sprintf("%v ~ %v", *field.Min, *field.Max)
	case field.Min != nil:
		return fmt.Sprintf(">= %v", *field.Min)
	case field.Max != nil:
		return fmt.Sprintf("<= %v", *field.Max)
	default:
		return ""
	}
}

func writeKeyValue(buf *bytes.Buffer, key string, value any) error {
	line, err := toml.Marshal(map[string]any{key: value})
	if err != nil {
		return errors.Wrapf(err, "encoding %s", key)
	}

	buf.Write(line)

	return nil
}
