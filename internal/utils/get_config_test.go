package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	require.NoError(t, LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")))

	assert.Equal(t, "3000", GetConfig("PORT"))
	assert.Equal(t, "gpt-4o-mini", GetConfig("OPENAI_MODEL"))
	assert.Equal(t, "", GetConfig("NOT_A_KEY"))
}

func TestLoadConfig_FileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "DB_HOST: db.internal\nDB_NAME: recipes\nJWT_SECRET: from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("JWT_SECRET", "from-env")

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, "recipes", GetConfig("DB_NAME"))
	assert.Equal(t, "from-env", GetConfig("JWT_SECRET"))
	assert.Equal(t, "5432", GetConfig("DB_PORT"))
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST: [unterminated"), 0o600))

	assert.Error(t, LoadConfig(path))
}

func TestLoadConfig_DotEnvBetweenFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST: from-file\nDB_NAME: from-file\n"), 0o600))
	dotenv := "DB_NAME=from-dotenv\nOPENAI_API_KEY=sk-dotenv\nJWT_SECRET=from-dotenv\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o600))

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("OPENAI_API_KEY", "")
	os.Unsetenv("OPENAI_API_KEY")
	t.Setenv("DB_NAME", "")
	os.Unsetenv("DB_NAME")
	t.Setenv("DB_HOST", "")
	os.Unsetenv("DB_HOST")

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "from-file", GetConfig("DB_HOST"))
	assert.Equal(t, "from-dotenv", GetConfig("DB_NAME"))
	assert.Equal(t, "sk-dotenv", GetConfig("OPENAI_API_KEY"))
	assert.Equal(t, "from-env", GetConfig("JWT_SECRET"))

	_, set := os.LookupEnv("OPENAI_API_KEY")
	assert.False(t, set)
}
