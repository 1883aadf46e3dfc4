package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	orig := lookupEnv
	lookupEnv = func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
	t.Cleanup(func() { lookupEnv = orig })
}

func TestGStreamerRootPrecedence(t *testing.T) {
	cfg := Default()

	withEnv(t, map[string]string{})
	assert.Equal(t, ".", cfg.GStreamerRoot())

	cfg.GStreamer.Root = "/from/config"
	assert.Equal(t, "/from/config", cfg.GStreamerRoot())

	withEnv(t, map[string]string{EnvGStreamerRoot: "/from/env"})
	assert.Equal(t, "/from/env", cfg.GStreamerRoot())

	withEnv(t, map[string]string{EnvGStreamerRoot: " "})
	assert.Equal(t, "/from/config", cfg.GStreamerRoot())
}

func TestPluginRootFromEnv(t *testing.T) {
	withEnv(t, map[string]string{})
	_, ok := PluginRootFromEnv()
	assert.False(t, ok)

	withEnv(t, map[string]string{EnvPluginRoot: "/plugin"})
	value, ok := PluginRootFromEnv()
	assert.True(t, ok)
	assert.Equal(t, "/plugin", value)
}

func TestExpandPath(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	got, err := ExpandPath("~/build")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "build"), got)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	got, err = ExpandPath("build/../out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "out"), got)
}

func TestExpandPathRejectsOtherUsers(t *testing.T) {
	_, err := ExpandPath("~someone/build")
	require.Error(t, err)
}
