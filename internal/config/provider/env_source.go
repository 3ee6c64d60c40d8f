package provider

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-labs/anvilcost/internal/config"
)

// EnvSource reads ANVILCOST_<GROUP>_<KEY> environment variables.
type EnvSource struct {
	environ func() []string
}

// NewEnvSource reads the process environment.
func NewEnvSource() *EnvSource {
	return NewEnvSourceWithEnviron(os.Environ)
}

// NewEnvSourceWithEnviron reads variables from environ.
func NewEnvSourceWithEnviron(environ func() []string) *EnvSource {
	return &EnvSource{environ: environ}
}

func (*EnvSource) Name() string  { return "environment" }
func (*EnvSource) Priority() int { return PriorityEnv }

// Load returns the values of every recognised variable.
func (s *EnvSource) Load() (map[string]any, error) {
	k := koanf.New(".")

	if err := k.Load(config.EnvProvider(s.environ), nil); err != nil {
		return nil, errors.Wrap(err, "reading environment")
	}

	return k.Raw(), nil
}
