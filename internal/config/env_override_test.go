package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("ENGAGE_STATE_PATH replaces state path", func(t *testing.T) {
		t.Setenv("ENGAGE_STATE_PATH", "/srv/engage/state.json")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/srv/engage/state.json", cfg.StatePath)
	})

	t.Run("ENGAGE_THEME and ENGAGE_LOG_LEVEL", func(t *testing.T) {
		t.Setenv("ENGAGE_THEME", "light")
		t.Setenv("ENGAGE_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, ThemeLight, cfg.UI.Theme)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("ENGAGE_WIDTH ignores non-numbers", func(t *testing.T) {
		t.Setenv("ENGAGE_WIDTH", "wide")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Zero(t, cfg.UI.Width)

		t.Setenv("ENGAGE_WIDTH", "160")
		cfg.applyEnvOverrides()
		assert.Equal(t, 160, cfg.UI.Width)
	})

	t.Run("env wins over file", func(t *testing.T) {
		path := t.TempDir() + "/config.yaml"
		cfg := DefaultConfig()
		cfg.SnapshotPath = "from-file.png"
		require.NoError(t, cfg.Save(path))

		t.Setenv("ENGAGE_SNAPSHOT_PATH", "from-env.svg")
		loaded, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "from-env.svg", loaded.SnapshotPath)
	})
}
