package settings

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
	"marketplace/internal/store"
)

func TestSettingsRoundTrip(t *testing.T) {
	log, _ := test.NewNullLogger()
	dir := t.TempDir()
	svc := New(store.NewSettingsFileStore(dir), log)

	st, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), st)

	st, err = svc.SetTheme(domain.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, st.Theme)
	assert.True(t, st.DynamicColor)

	_, err = svc.SetDynamicColor(false)
	require.NoError(t, err)

	reopened := New(store.NewSettingsFileStore(dir), log)
	st, err = reopened.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Theme: domain.ThemeDark, DynamicColor: false}, st)
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	log, _ := test.NewNullLogger()
	svc := New(store.NewSettingsFileStore(t.TempDir()), log)
	_, err := svc.SetTheme("sepia")
	assert.ErrorIs(t, err, domain.ErrInvalidTheme)
}
