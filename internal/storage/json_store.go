package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/logger"
	"github.com/julianstephens/readlit/internal/models"
)

// JSONStore persists the tracker state as a single JSON document, namespaced
// under the fixed state key.
type JSONStore struct {
	path string
}

// stateBlob mirrors models.TrackerState with pointer preference fields so
// missing fields can be told apart from explicit zero values on load.
type stateBlob struct {
	Books       []models.Book           `json:"books"`
	Sessions    []models.ReadingSession `json:"sessions"`
	Preferences *prefsBlob              `json:"preferences"`
}

type prefsBlob struct {
	WeeklyMinutesGoal *int  `json:"weeklyMinutesGoal"`
	DailyPagesGoal    *int  `json:"dailyPagesGoal"`
	ShowCompleted     *bool `json:"showCompleted"`
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.DefaultState())
}

// Load reads the persisted state. A missing file, unparseable content, or a
// missing state key are all recoverable: the default state is returned and the
// condition is logged, never propagated.
func (s *JSONStore) Load() (models.TrackerState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultState(), nil
		}
		return models.DefaultState(), fmt.Errorf("failed to read storage: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("Storage content unparseable, falling back to default state", "path", s.path, "error", err)
		return models.DefaultState(), nil
	}

	raw, ok := doc[constants.StateKey]
	if !ok {
		logger.Warn("Storage missing state key, falling back to default state", "path", s.path, "key", constants.StateKey)
		return models.DefaultState(), nil
	}

	var blob stateBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		logger.Warn("Stored state unparseable, falling back to default state", "path", s.path, "error", err)
		return models.DefaultState(), nil
	}

	return blob.toState(), nil
}

func (s *JSONStore) Save(state models.TrackerState) error {
	state.Normalize()

	doc := map[string]models.TrackerState{
		constants.StateKey: state,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Create config directory on first save so plain writes work without init
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - Running multiple readlit processes that share the same storage path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// toState converts a decoded blob into a TrackerState, filling missing
// preference fields from the documented defaults and ignoring extras.
func (b stateBlob) toState() models.TrackerState {
	state := models.TrackerState{
		Books:       b.Books,
		Sessions:    b.Sessions,
		Preferences: models.DefaultPreferences(),
	}

	if b.Preferences != nil {
		if b.Preferences.WeeklyMinutesGoal != nil && *b.Preferences.WeeklyMinutesGoal > 0 {
			state.Preferences.WeeklyMinutesGoal = *b.Preferences.WeeklyMinutesGoal
		}
		if b.Preferences.DailyPagesGoal != nil && *b.Preferences.DailyPagesGoal > 0 {
			state.Preferences.DailyPagesGoal = *b.Preferences.DailyPagesGoal
		}
		if b.Preferences.ShowCompleted != nil {
			state.Preferences.ShowCompleted = *b.Preferences.ShowCompleted
		}
	}

	state.Normalize()
	return state
}
