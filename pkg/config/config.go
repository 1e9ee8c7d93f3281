// Package config loads the holdsync runtime configuration from the
// environment. A .env file in the working directory is honored when
// present, matching how the bot is deployed.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names for the required settings
const (
	EnvRepoOrg    = "GITHUB_REPO_ORG"
	EnvRepoName   = "GITHUB_REPO_NAME"
	EnvRepoBranch = "GITHUB_REPO_BRANCH_NAME"
	EnvStatusPath = "GITHUB_REPO_PATH_TO_SYNC_STATUS"
	EnvToken      = "GITHUB_PERSONAL_ACCESS_TOKEN"
)

// Environment variable names for the optional settings
const (
	EnvHoldLabel   = "HOLDSYNC_HOLD_LABEL"
	EnvHTTPTimeout = "HOLDSYNC_HTTP_TIMEOUT"
)

// Defaults for the optional settings
const (
	DefaultHoldLabel   = "in_sync_hold"
	DefaultHTTPTimeout = 30 * time.Second
)

// Config represents the holdsync configuration
type Config struct {
	// RepoOrg and RepoName identify both the repository hosting the
	// status file and the repository whose issues are reconciled.
	RepoOrg    string
	RepoName   string
	RepoBranch string
	// StatusPath is the path of the status YAML file within the
	// repository, relative to its root.
	StatusPath string
	Token      string

	// HoldLabel is the label that marks a sync hold on an issue
	HoldLabel string
	// HTTPTimeout bounds every network request the bot makes
	HTTPTimeout time.Duration
}

// LoadFromEnv reads the configuration from the environment. A .env
// file is loaded first if one exists; real environment variables take
// precedence over it.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		RepoOrg:     strings.TrimSpace(os.Getenv(EnvRepoOrg)),
		RepoName:    strings.TrimSpace(os.Getenv(EnvRepoName)),
		RepoBranch:  strings.TrimSpace(os.Getenv(EnvRepoBranch)),
		StatusPath:  strings.TrimSpace(os.Getenv(EnvStatusPath)),
		Token:       strings.TrimSpace(os.Getenv(EnvToken)),
		HoldLabel:   DefaultHoldLabel,
		HTTPTimeout: DefaultHTTPTimeout,
	}

	if label := strings.TrimSpace(os.Getenv(EnvHoldLabel)); label != "" {
		cfg.HoldLabel = label
	}

	if raw := strings.TrimSpace(os.Getenv(EnvHTTPTimeout)); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvHTTPTimeout, raw, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("invalid %s value %q: must be positive", EnvHTTPTimeout, raw)
		}
		cfg.HTTPTimeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required settings are present. All missing
// variables are reported together so a misconfigured deployment can be
// fixed in one pass.
func (c *Config) Validate() error {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{EnvRepoOrg, c.RepoOrg},
		{EnvRepoName, c.RepoName},
		{EnvRepoBranch, c.RepoBranch},
		{EnvStatusPath, c.StatusPath},
		{EnvToken, c.Token},
	}

	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if c.HoldLabel == "" {
		return fmt.Errorf("hold label must not be empty")
	}

	return nil
}
