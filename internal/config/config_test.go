package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears the variables Load reads and restores them when the
// test ends.
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG_PATH", "ENV", "STORAGE_PATH", "SESSION_PROMPT", "LOG_PATH"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_Load_Defaults(t *testing.T) {
	unsetEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":memory:", cfg.StoragePath)
	assert.Equal(t, "Enter a command: ", cfg.Prompt)
	assert.Empty(t, cfg.LogPath)
}

func Test_Load_EnvOverrides(t *testing.T) {
	unsetEnv(t)
	t.Setenv("ENV", "prod")
	t.Setenv("SESSION_PROMPT", "> ")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "> ", cfg.Session.Prompt)
	assert.Equal(t, ":memory:", cfg.StoragePath)
}

func Test_Load_File(t *testing.T) {
	unsetEnv(t)
	path := writeConfig(t, `
env: staging
storage_path: contacts.db
log_path: "-"
session:
  prompt: "bot> "
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, "contacts.db", cfg.StoragePath)
	assert.Equal(t, "-", cfg.LogPath)
	assert.Equal(t, "bot> ", cfg.Prompt)
}

func Test_Load_FileFromEnv(t *testing.T) {
	unsetEnv(t)
	t.Setenv("CONFIG_PATH", writeConfig(t, "env: prod\n"))

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":memory:", cfg.StoragePath)
}

func Test_Load_MissingFile(t *testing.T) {
	unsetEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.ErrorContains(t, err, "config file does not exist")
}
