package store

import (
	"path/filepath"
	"sync"

	"marketplace/internal/domain"
)

const settingsFilename = "settings.json"

// SettingsFileStore persists app preferences as JSON.
type SettingsFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSettingsFileStore returns a SettingsFileStore rooted at dir.
func NewSettingsFileStore(dir string) *SettingsFileStore {
	return &SettingsFileStore{dir: dir}
}

// LoadSettings returns the stored settings, or the defaults if none were saved.
func (s *SettingsFileStore) LoadSettings() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := domain.DefaultSettings()
	if err := readJSON(filepath.Join(s.dir, settingsFilename), &settings); err != nil {
		return domain.Settings{}, err
	}
	if settings.Theme == "" {
		settings.Theme = domain.ThemeSystem
	}
	return settings, nil
}

// SaveSettings writes settings to disk.
func (s *SettingsFileStore) SaveSettings(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, settingsFilename), settings, 0o600)
}

// Compile-time assertion that SettingsFileStore implements domain.SettingsStore.
var _ domain.SettingsStore = (*SettingsFileStore)(nil)
