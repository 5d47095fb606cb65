package storage

import "github.com/julianstephens/readlit/internal/models"

// Provider durably stores and retrieves one serialized TrackerState. The
// tracker engine loads once at startup and saves write-through after every
// successful mutation.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// State
	Load() (models.TrackerState, error)
	Save(models.TrackerState) error

	// Utils
	GetConfigPath() string
}
