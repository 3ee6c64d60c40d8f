package provider

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-labs/anvilcost/internal/config"
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
	"github.com/smykla-labs/anvilcost/pkg/logger"
)

// Provider merges sources over the defaults, validates the result and caches it
// until Reload is called. It is safe for concurrent use.
type Provider struct {
	sources   []Source
	validator *config.Validator
	logger    logger.Logger

	mu     sync.RWMutex
	cached *pkgconfig.Config
}

// NewProvider creates a provider. Sources may be passed in any order.
func NewProvider(sources ...Source) *Provider {
	sorted := slices.Clone(sources)
	slices.SortStableFunc(sorted, func(a, b Source) int {
		return a.Priority() - b.Priority()
	})

	return &Provider{
		sources:   sorted,
		validator: config.NewValidator(),
		logger:    logger.NewNoOpLogger(),
	}
}

// NewDefaultProvider wires the standard sources: the global and project files
// (or only explicitPath when set), the environment and flags.
func NewDefaultProvider(loader *config.KoanfLoader, flags map[string]any) *Provider {
	sources := []Source{NewEnvSource(), NewFlagSource(flags)}

	if path := loader.ExplicitPath(); path != "" {
		sources = append(sources, NewFileSource(loader, path))
	} else {
		sources = append(sources, NewGlobalFileSource(loader), NewProjectFileSource(loader))
	}

	return NewProvider(sources...)
}

// WithLogger sets the logger.
func (p *Provider) WithLogger(l logger.Logger) *Provider {
	p.logger = l

	return p
}

// Sources returns the sources in increasing priority.
func (p *Provider) Sources() []Source {
	return slices.Clone(p.sources)
}

// WatchPaths returns the files read by file sources.
func (p *Provider) WatchPaths() []string {
	var paths []string

	for _, s := range p.sources {
		if fs, ok := s.(*FileSource); ok {
			paths = append(paths, fs.Path())
		}
	}

	return paths
}

// Load returns the merged settings, loading them on first use.
// The returned config is shared and must not be modified.
func (p *Provider) Load() (*pkgconfig.Config, error) {
	p.mu.RLock()
	cached := p.cached
	p.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil {
		return p.cached, nil
	}

	cfg, err := p.load()
	if err != nil {
		return nil, err
	}

	p.cached = cfg

	return cfg, nil
}

// Reload drops the cached settings so the next Load reads every source again.
func (p *Provider) Reload() {
	p.mu.Lock()
	p.cached = nil
	p.mu.Unlock()
}

func (p *Provider) load() (*pkgconfig.Config, error) {
	k := koanf.New(".")

	for _, s := range p.sources {
		values, err := s.Load()
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s", s.Name())
		}

		if len(values) == 0 {
			continue
		}

		p.logger.Debug("source loaded", "source", s.Name(), "keys", len(values))

		if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
			return nil, errors.Wrapf(err, "merging %s", s.Name())
		}
	}

	cfg, err := config.Decode(k)
	if err != nil {
		return nil, err
	}

	if err := p.validator.Validate(cfg); err != nil {
		return nil, err
	}

	p.logger.Info("config loaded",
		"policy", cfg.GetPriorWorkPenalty().PriorWorkPenalty,
		"max_increase", cfg.GetPriorWorkPenalty().MaximumPriorWorkPenaltyIncrease,
	)

	return cfg, nil
}
