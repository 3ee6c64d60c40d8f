package provider

import (
	"context"
	"path/filepath"
	"slices"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
	"github.com/smykla-labs/anvilcost/pkg/logger"
)

// DefaultDebounce is how long the watcher waits after the last change.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads a provider when one of its settings files changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	provider *Provider
	paths    []string
	debounce time.Duration
	logger   logger.Logger
	onChange func(*pkgconfig.Config)
	current  atomic.Pointer[pkgconfig.Config]
}

// NewWatcher watches the directories holding paths. Directories that don't
// exist are skipped, so a file created later in a missing directory is not
// picked up.
func NewWatcher(p *Provider, paths []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating file watcher")
	}

	var (
		watched []string
		dirs    []string
	)

	for _, path := range paths {
		if path == "" {
			continue
		}

		path = filepath.Clean(path)
		dir := filepath.Dir(path)

		if !slices.Contains(dirs, dir) {
			if err := fw.Add(dir); err != nil {
				continue
			}

			dirs = append(dirs, dir)
		}

		watched = append(watched, path)
	}

	return &Watcher{
		watcher:  fw,
		provider: p,
		paths:    watched,
		debounce: DefaultDebounce,
		logger:   logger.NewNoOpLogger(),
		onChange: func(*pkgconfig.Config) {},
	}, nil
}

// WithDebounce sets the quiet period before a reload.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d

	return w
}

// WithLogger sets the logger.
func (w *Watcher) WithLogger(l logger.Logger) *Watcher {
	w.logger = l

	return w
}

// OnChange registers fn to receive every successfully reloaded config.
func (w *Watcher) OnChange(fn func(*pkgconfig.Config)) *Watcher {
	w.onChange = fn

	return w
}

// Paths returns the watched files.
func (w *Watcher) Paths() []string {
	return slices.Clone(w.paths)
}

// Current returns the last config loaded by the watcher, or nil before Run.
func (w *Watcher) Current() *pkgconfig.Config {
	return w.current.Load()
}

// Run loads the initial config and reloads on change. Blocks until ctx is
// cancelled. A failed reload keeps the previous config.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	cfg, err := w.provider.Load()
	if err != nil {
		return err
	}

	w.current.Store(cfg)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("settings file changed", "path", event.Name, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Error("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}

	return slices.Contains(w.paths, filepath.Clean(event.Name))
}

func (w *Watcher) reload() {
	w.provider.Reload()

	cfg, err := w.provider.Load()
	if err != nil {
		w.logger.Error("reload failed, keeping previous settings", "error", err)

		return
	}

	w.current.Store(cfg)
	w.logger.Info("settings reloaded")
	w.onChange(cfg)
}
