package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdsync/pkg/config"
)

func TestSyncCommand_Flags(t *testing.T) {
	dryRun := syncCmd.Flags().Lookup("dry-run")
	assert.NotNil(t, dryRun)
	assert.Equal(t, "false", dryRun.DefValue)

	statusURL := syncCmd.Flags().Lookup("status-url")
	assert.NotNil(t, statusURL)
	assert.Equal(t, "", statusURL.DefValue)
}

func TestSyncCommand_RejectsArgs(t *testing.T) {
	err := syncCmd.Args(syncCmd, []string{"extra"})

	assert.Error(t, err)
}

func TestRunSync_MissingConfiguration(t *testing.T) {
	t.Setenv(config.EnvRepoOrg, "")
	t.Setenv(config.EnvRepoName, "")
	t.Setenv(config.EnvRepoBranch, "")
	t.Setenv(config.EnvStatusPath, "")
	t.Setenv(config.EnvToken, "")

	err := runSync(syncCmd, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Contains(t, err.Error(), config.EnvRepoOrg)
}
