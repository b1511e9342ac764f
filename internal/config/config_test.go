package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	return Config{OutDir: "dist", Message: "testing %o", Ext: "ts", LogFormat: "text"}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	t.Setenv(EnvOutDir, "")
	t.Setenv(EnvMessage, "")
	t.Setenv(EnvExt, "")
	t.Setenv(EnvLogFormat, "")

	cfg, err := Load(filepath.Join(t.TempDir(), ".env"), defaults())
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestLoad_EnvironmentOverridesFallback(t *testing.T) {
	t.Setenv(EnvOutDir, "generated")
	t.Setenv(EnvMessage, "")
	t.Setenv(EnvExt, "js")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load("", defaults())
	require.NoError(t, err)
	assert.Equal(t, "generated", cfg.OutDir)
	assert.Equal(t, "testing %o", cfg.Message)
	assert.Equal(t, "js", cfg.Ext)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_EnvFile(t *testing.T) {
	// An empty value counts as unset; godotenv only fills unset variables.
	for _, key := range []string{EnvOutDir, EnvMessage, EnvExt, EnvLogFormat} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv(EnvExt, "tsx")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := EnvOutDir + "=out\n" + EnvMessage + "=\"case %#\"\n" + EnvExt + "=js\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	cfg, err := Load(envFile, defaults())
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, "case %#", cfg.Message)
	assert.Equal(t, "tsx", cfg.Ext)
	assert.Equal(t, "text", cfg.LogFormat)
}
