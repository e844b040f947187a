package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WatchReloadsOnWrite(t *testing.T) {
	// Arrange
	path := writeConfig(t, "[store]\nsweep_every = 8\n")
	m, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	changes := make(chan *Config, 16)
	m.OnConfigChange(func(cfg *Config) {
		select {
		case changes <- cfg:
		default:
		}
	})

	// Act
	require.NoError(t, m.Watch())
	require.NoError(t, m.Watch(), "second Watch is a no-op")
	require.NoError(t, os.WriteFile(path, []byte("[store]\nsweep_every = 32\n"), filePerm))

	// Assert
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Store.SweepEvery == 32 {
				assert.Equal(t, 32, m.Get().Store.SweepEvery)
				return
			}
		case <-timeout:
			t.Fatal("no reload after the config file was rewritten")
		}
	}
}
