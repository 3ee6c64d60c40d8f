package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"

	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
)

// SupportedVersions is the constraint a file's version key must satisfy.
const SupportedVersions = "^1"

// FieldError describes one invalid setting.
type FieldError struct {
	// Path is the dotted key of the setting.
	Path string

	// Message explains what is wrong.
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationError collects every invalid setting of a config.
type ValidationError struct {
	Errors []*FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Error())
	}

	return "invalid settings: " + strings.Join(msgs, "; ")
}

// Validator checks decoded settings against the schema.
type Validator struct {
	versions *semver.Constraints
}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	versions, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		panic(err)
	}

	return &Validator{versions: versions}
}

// Validate returns an error marked ErrValidationFailed listing every
// violation, or nil. Use errors.As to get the *ValidationError.
func (v *Validator) Validate(cfg *pkgconfig.Config) error {
	var fieldErrors []*FieldError

	if fe := v.validateVersion(cfg.Version); fe != nil {
		fieldErrors = append(fieldErrors, fe)
	}

	for _, field := range pkgconfig.Schema() {
		if fe := validateField(field, field.Get(cfg)); fe != nil {
			fieldErrors = append(fieldErrors, fe)
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return errors.Mark(&ValidationError{Errors: fieldErrors}, ErrValidationFailed)
}

func (v *Validator) validateVersion(version string) *FieldError {
	if version == "" {
		return nil
	}

	parsed, err := semver.NewVersion(version)
	if err != nil {
		return &FieldError{Path: "version", Message: fmt.Sprintf("%q is not a semantic version", version)}
	}

	if !v.versions.Check(parsed) {
		return &FieldError{
			Path:    "version",
			Message: fmt.Sprintf("version %s is not supported (want %s)", parsed, SupportedVersions),
		}
	}

	return nil
}

func validateField(field pkgconfig.Field, value any) *FieldError {
	switch field.Kind {
	case pkgconfig.KindEnum:
		return validateEnum(field, value)
	case pkgconfig.KindInt, pkgconfig.KindFloat:
		return validateRange(field, value)
	default:
		return nil
	}
}

func validateEnum(field pkgconfig.Field, value any) *FieldError {
	ev, ok := value.(fmt.Stringer)
	if !ok {
		return &FieldError{Path: field.Path(), Message: fmt.Sprintf("unexpected value %v", value)}
	}

	name := ev.String()
	for _, choice := range field.Choices {
		if name == choice {
			return nil
		}
	}

	return &FieldError{
		Path:    field.Path(),
		Message: fmt.Sprintf("%s is not one of %s", name, strings.Join(field.Choices, ", ")),
	}
}

func validateRange(field pkgconfig.Field, value any) *FieldError {
	var n float64

	switch val := value.(type) {
	case int:
		n = float64(val)
	case float64:
		n = val
	default:
		return &FieldError{Path: field.Path(), Message: fmt.Sprintf("unexpected value %v", value)}
	}

	if math.IsNaN(n) {
		return &FieldError{Path: field.Path(), Message: "NaN is not a number"}
	}

	if field.Min != nil && n < *field.Min {
		return &FieldError{
			Path:    field.Path(),
			Message: fmt.Sprintf("%v is below the minimum %v", value, *field.Min),
		}
	}

	if field.Max != nil && n > *field.Max {
		return &FieldError{
			Path:    field.Path(),
			Message: fmt.Sprintf("%v is above the maximum %v", value, *field.Max),
		}
	}

	return nil
}
