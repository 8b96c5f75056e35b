package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramparser/pkg/config"
)

var envKeys = []string{
	"HTTP_ADDR", "LOG_LEVEL", "SPEC_TAGS", "SPEC_BANNER", "SPEC_EMPTY",
	"SPEC_SOURCE", "SPEC_ONLY_OVERRIDE", "SPEC_REQUIRED_DIR",
}

func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		os.Unsetenv(k)
	}
	config.ResetCache()
	t.Cleanup(func() {
		for _, k := range envKeys {
			os.Unsetenv(k)
		}
		config.ResetCache()
	})
}

type fileConfig struct {
	Addr   string   `env:"HTTP_ADDR"`
	Level  string   `env:"LOG_LEVEL"`
	Tags   []string `env:"SPEC_TAGS" envSeparator:","`
	Banner string   `env:"SPEC_BANNER"`
	Empty  string   `env:"SPEC_EMPTY"`
	Source string   `env:"SPEC_SOURCE"`
}

type overrideConfig struct {
	Only   string `env:"SPEC_ONLY_OVERRIDE"`
	Source string `env:"SPEC_SOURCE"`
}

type requiredDirConfig struct {
	Dir string `env:"SPEC_REQUIRED_DIR,required"`
}

func TestLoadEnv(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		cleanEnv(t)
		require.NoError(t, config.LoadEnv("testdata/base.env"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, []string{"signup", "profile", "orders"}, cfg.Tags)
		assert.Equal(t, "validated by paramparser", cfg.Banner)
		assert.Empty(t, cfg.Empty)
		assert.Equal(t, "base", cfg.Source)
	})

	t.Run("later files win", func(t *testing.T) {
		cleanEnv(t)
		require.NoError(t, config.LoadEnv("testdata/base.env", "testdata/override.env"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "warn", cfg.Level)
		assert.Equal(t, "override", cfg.Source)
		assert.Equal(t, ":9090", cfg.Addr)

		var over overrideConfig
		require.NoError(t, config.Load(&over))
		assert.Equal(t, "yes", over.Only)
		assert.Equal(t, "override", over.Source)
	})

	t.Run("missing file", func(t *testing.T) {
		cleanEnv(t)
		err := config.LoadEnv("testdata/does-not-exist.env")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("default file in working directory", func(t *testing.T) {
		cleanEnv(t)
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SPEC_SOURCE=dotenv\n"), 0o600))
		t.Chdir(dir)

		require.NoError(t, config.LoadEnv())
		assert.Equal(t, "dotenv", os.Getenv("SPEC_SOURCE"))
	})
}

func TestMustLoadEnv(t *testing.T) {
	cleanEnv(t)

	assert.NotPanics(t, func() {
		config.MustLoadEnv("testdata/base.env")
	})
	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/does-not-exist.env")
	})
}

func TestForceReloadConfig(t *testing.T) {
	cleanEnv(t)

	var cfg requiredDirConfig
	require.Error(t, config.Load(&cfg))

	t.Setenv("SPEC_REQUIRED_DIR", "/etc/specs")

	var reloaded requiredDirConfig
	require.NoError(t, config.ForceReloadConfig(&reloaded))
	assert.Equal(t, "/etc/specs", reloaded.Dir)

	assert.ErrorIs(t, config.ForceReloadConfig[requiredDirConfig](nil), config.ErrNilPointer)
}
