package settings

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"marketplace/internal/domain"
)

// Service implements domain.SettingsService.
type Service struct {
	store domain.SettingsStore
	log   logrus.FieldLogger
}

// New constructs a settings Service.
func New(store domain.SettingsStore, log logrus.FieldLogger) *Service {
	return &Service{store: store, log: log}
}

// Get returns the stored settings, or the defaults when nothing is stored.
func (s *Service) Get() (domain.Settings, error) {
	return s.store.LoadSettings()
}

// SetTheme validates and stores the theme.
func (s *Service) SetTheme(theme domain.Theme) (domain.Settings, error) {
	parsed, err := domain.ParseTheme(string(theme))
	if err != nil {
		return domain.Settings{}, err
	}
	return s.update(func(st *domain.Settings) { st.Theme = parsed })
}

// SetDynamicColor stores the dynamic colour flag.
func (s *Service) SetDynamicColor(enabled bool) (domain.Settings, error) {
	return s.update(func(st *domain.Settings) { st.DynamicColor = enabled })
}

func (s *Service) update(apply func(*domain.Settings)) (domain.Settings, error) {
	st, err := s.store.LoadSettings()
	if err != nil {
		return domain.Settings{}, err
	}
	apply(&st)
	if err := s.store.SaveSettings(st); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	s.log.WithFields(logrus.Fields{"theme": st.Theme, "dynamic_color": st.DynamicColor}).Debug("settings updated")
	return st, nil
}

// Compile-time assertion that Service implements domain.SettingsService.
var _ domain.SettingsService = (*Service)(nil)
