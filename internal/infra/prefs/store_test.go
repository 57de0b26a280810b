package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/timers/internal/domain"
)

func TestStore_GetMissing(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), domain.PrefsFileName))

	v, ok, err := s.Get(domain.ThemePreferenceKey)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestStore_SetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", domain.PrefsFileName)
	s := New(path)

	require.NoError(t, s.Set(domain.ThemePreferenceKey, "dark"))
	require.NoError(t, s.Set("other", "value"))

	v, ok, err := s.Get(domain.ThemePreferenceKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	// A fresh store sees the same file.
	v, ok, err = New(path).Get("other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "theme: dark")
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.PrefsFileName)
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	require.NoError(t, New(path).Set(domain.ThemePreferenceKey, "light"))
}

func TestStore_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.PrefsFileName)
	require.NoError(t, os.WriteFile(path, []byte("theme: [unterminated"), 0o600))

	_, _, err := New(path).Get(domain.ThemePreferenceKey)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse preferences yaml")
}
