package provider

import (
	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-labs/anvilcost/internal/config"
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
)

// FlagPaths maps CLI flag names onto settings paths.
var FlagPaths = map[string]string{
	"policy":                  "prior_work_penalty.prior_work_penalty",
	"max-increase":            "prior_work_penalty.maximum_prior_work_penalty_increase",
	"rename-and-repair-costs": "prior_work_penalty.rename_and_repair_costs",
	"too-expensive-limit":     "costs.too_expensive_limit",
	"free-renames":            "costs.free_renames",
}

// FlagSource turns explicitly set CLI flags into settings values.
type FlagSource struct {
	flags map[string]any
}

// NewFlagSource creates a source from flag values keyed by flag name or by
// dotted settings path. Names that match neither are ignored.
func NewFlagSource(flags map[string]any) *FlagSource {
	return &FlagSource{flags: flags}
}

func (*FlagSource) Name() string  { return "flags" }
func (*FlagSource) Priority() int { return PriorityFlags }

// Load returns the nested values of the recognised flags. Textual values are
// converted to the setting's type.
func (s *FlagSource) Load() (map[string]any, error) {
	flat := make(map[string]any, len(s.flags))

	for name, value := range s.flags {
		path, ok := FlagPaths[name]
		if !ok {
			path = name
		}

		field, ok := pkgconfig.Lookup(path)
		if !ok {
			continue
		}

		if text, isText := value.(string); isText {
			value = config.ParseValue(field, text)
		}

		flat[path] = value
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(flat, "."), nil); err != nil {
		return nil, errors.Wrap(err, "reading flags")
	}

	return k.Raw(), nil
}
