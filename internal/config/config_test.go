package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-registration-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// рабочая директория без config.yaml
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Seed.File)
}

func TestLoadActivities(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "activities.yaml")

	seed := `activities:
  - name: Chess Club
    description: Learn strategies and compete in chess tournaments
    schedule: Fridays, 3:30 PM - 5:00 PM
    max_participants: 12
    participants:
      - michael@mergington.edu
  - name: Tennis Team
    description: Competitive tennis training
    schedule: Tuesdays, 4:00 PM - 5:30 PM
    max_participants: 10
    participants: []
`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	activities, err := config.LoadActivities(path)
	require.NoError(t, err)
	require.Len(t, activities, 2)

	assert.Equal(t, "Chess Club", activities[0].Name)
	assert.Equal(t, 12, activities[0].MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu"}, activities[0].Participants)
	assert.Empty(t, activities[1].Participants)
}

func TestLoadActivities_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadActivities(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "activities.yaml")
		require.NoError(t, os.WriteFile(path, []byte("activities: []\n"), 0o644))

		_, err := config.LoadActivities(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no activities")
	})
}
