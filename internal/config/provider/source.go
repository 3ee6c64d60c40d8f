// Package provider layers settings sources and caches the merged result.
package provider

//go:generate mockgen -source=source.go -destination=source_mock.go -package=provider

// Source supplies a partial settings document.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string

	// Priority orders sources; higher priorities override lower ones.
	Priority() int

	// Load returns the nested values the source sets. Sources that have
	// nothing to contribute return an empty map.
	Load() (map[string]any, error)
}

// Source priorities.
const (
	PriorityGlobalFile  = 10
	PriorityProjectFile = 20
	PriorityEnv         = 30
	PriorityFlags       = 40
)
