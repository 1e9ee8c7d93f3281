package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvRepoOrg, "acme")
	t.Setenv(EnvRepoName, "rosdistro")
	t.Setenv(EnvRepoBranch, "main")
	t.Setenv(EnvStatusPath, "status/sync.yaml")
	t.Setenv(EnvToken, "ghp_testtoken")
}

func clearOptionalEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvHoldLabel, "")
	t.Setenv(EnvHTTPTimeout, "")
}

func TestLoadFromEnv(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)

	cfg, err := LoadFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "acme", cfg.RepoOrg)
	assert.Equal(t, "rosdistro", cfg.RepoName)
	assert.Equal(t, "main", cfg.RepoBranch)
	assert.Equal(t, "status/sync.yaml", cfg.StatusPath)
	assert.Equal(t, "ghp_testtoken", cfg.Token)
	assert.Equal(t, DefaultHoldLabel, cfg.HoldLabel)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
}

func TestLoadFromEnv_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)
	t.Setenv(EnvRepoOrg, "")
	t.Setenv(EnvToken, "")

	cfg, err := LoadFromEnv()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	// All missing variables are reported, not just the first
	assert.Contains(t, err.Error(), EnvRepoOrg)
	assert.Contains(t, err.Error(), EnvToken)
	assert.NotContains(t, err.Error(), EnvRepoName)
}

func TestLoadFromEnv_TrimsWhitespace(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)
	t.Setenv(EnvToken, "  ghp_testtoken\n")

	cfg, err := LoadFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "ghp_testtoken", cfg.Token)
}

func TestLoadFromEnv_HoldLabelOverride(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)
	t.Setenv(EnvHoldLabel, "release-freeze")

	cfg, err := LoadFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "release-freeze", cfg.HoldLabel)
}

func TestLoadFromEnv_TimeoutOverride(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)
	t.Setenv(EnvHTTPTimeout, "90s")

	cfg, err := LoadFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.HTTPTimeout)
}

func TestLoadFromEnv_InvalidTimeout(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)
	t.Setenv(EnvHTTPTimeout, "soon")

	cfg, err := LoadFromEnv()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), EnvHTTPTimeout)
}

func TestLoadFromEnv_NegativeTimeout(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)
	t.Setenv(EnvHTTPTimeout, "-5s")

	cfg, err := LoadFromEnv()

	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestValidate_EmptyHoldLabel(t *testing.T) {
	cfg := &Config{
		RepoOrg:    "acme",
		RepoName:   "rosdistro",
		RepoBranch: "main",
		StatusPath: "status/sync.yaml",
		Token:      "ghp_testtoken",
	}

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "hold label")
}
