package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyviewer/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"), nil)

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigServiceAt(path, nil)

	cfg := DefaultConfig()
	cfg.DeckPath = "/decks/trip.toml"
	cfg.UISettings.DragDeadZone = 3
	cfg.UISettings.ShowControls = false
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("deck = \"stories.toml\"\n[ui]\nshow_progress = false\n"), 0644))

	cfg, err := NewConfigServiceAt(path, nil).LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "stories.toml", cfg.DeckPath)
	assert.False(t, cfg.UISettings.ShowProgress)
	assert.True(t, cfg.UISettings.ShowControls)
	assert.Equal(t, 1, cfg.UISettings.DragDeadZone)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("deck = \"file.toml\"\n"), 0644))

	t.Setenv("STORYVIEWER_DECK", "env.toml")
	t.Setenv("STORYVIEWER_DEAD_ZONE", "4")
	t.Setenv("STORYVIEWER_LOG_LEVEL", "debug")
	t.Setenv("STORYVIEWER_WATCH", "false")

	cfg, err := NewConfigServiceAt(path, nil).Load()
	require.NoError(t, err)

	assert.Equal(t, "env.toml", cfg.DeckPath)
	assert.Equal(t, 4, cfg.UISettings.DragDeadZone)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Watch)
}

func TestInvalidEnvIsAnError(t *testing.T) {
	t.Setenv("STORYVIEWER_DEAD_ZONE", "wide")

	_, err := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"), nil).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("deck = [unterminated"), 0644))

	_, err := NewConfigServiceAt(path, nil).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadAndSavePublishEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	events := make(chan eventbus.EventType, 2)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { events <- e.Type() })
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { events <- e.Type() })

	cs := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"), bus)
	cfg, err := cs.Load()
	require.NoError(t, err)
	require.NoError(t, cs.Save(cfg))

	seen := map[eventbus.EventType]bool{}
	for i := 0; i < 2; i++ {
		select {
		case e := <-events:
			seen[e] = true
		case <-time.After(time.Second):
			t.Fatal("config events not delivered")
		}
	}
	assert.True(t, seen[eventbus.EventConfigLoaded])
	assert.True(t, seen[eventbus.EventConfigSaved])
}
