package landmark_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/dispatch"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "landmarks.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "")
	t.Setenv(constants.LocaleEnvVar, "")

	cfg, err := landmark.LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, landmark.DefaultConfig(), cfg)
	require.Equal(t, "F6", cfg.NavigationKey)
	require.Equal(t, dispatch.DefaultHistorySize, cfg.HistorySize)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "")
	t.Setenv(constants.LocaleEnvVar, "")

	path := writeConfig(t, `
log_level = "debug"
locale = "fr"
navigation_key = "F8"
history_size = 4
hidden_attributes = ["hidden", "inert"]
`)
	cfg, err := landmark.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "fr", cfg.Locale)
	require.Equal(t, "F8", cfg.NavigationKey)
	require.Equal(t, 4, cfg.HistorySize)
	require.Equal(t, []string{"hidden", "inert"}, cfg.HiddenAttributes)
	require.Empty(t, cfg.LogPath)
	require.Empty(t, cfg.UnknownKeys)
}

func TestLoadConfigKeepsUnknownKeys(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "")
	t.Setenv(constants.LocaleEnvVar, "")

	path := writeConfig(t, `
log_path = "logs/landmarks.log"
colour = "blue"
size = 3
`)
	cfg, err := landmark.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "logs/landmarks.log", cfg.LogPath)
	require.ElementsMatch(t, []string{"colour", "size"}, cfg.UnknownKeys)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "error")
	t.Setenv(constants.LocaleEnvVar, "fr")

	path := writeConfig(t, `
log_level = "debug"
locale = "en"
`)
	cfg, err := landmark.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
	require.Equal(t, "fr", cfg.Locale)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := landmark.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = landmark.LoadConfig(writeConfig(t, `history_size = "many"`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "landmark: load config")
}

func TestConfigOptions(t *testing.T) {
	cfg := landmark.DefaultConfig()
	cfg.NavigationKey = "F8"
	cfg.HistorySize = 2

	doc := newDoc(t)
	reg := newRegistry(t, doc, cfg.Options()...)
	add(t, reg, doc, "main", landmark.RoleMain, "")
	add(t, reg, doc, "nav", landmark.RoleNavigation, "")

	doc.KeyDown("F6", landmark.ModNone)
	require.True(t, reg.History().IsEmpty())

	for range 3 {
		doc.KeyDown("F8", landmark.ModNone)
	}
	require.Equal(t, 2, reg.History().Len())
}
