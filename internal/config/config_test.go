package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	datadir := t.TempDir()
	t.Setenv("LEND_DATADIR", datadir)

	require.NoError(t, InitConfig())

	assert.Equal(t, datadir, GetDatadir())
	assert.Equal(t, "https://api.lend.network", GetString(LendingServiceEndpointKey))
	assert.Equal(t, "1000000000000000", GetString(MinBalanceWeiKey))
	assert.Equal(t, 5*time.Minute, GetDuration(ConfirmationTimeoutKey))
	assert.Equal(t, 5*time.Second, GetDuration(ConfirmationPollIntervalKey))
	assert.Equal(t, 0, GetInt(MaxSecretAttemptsKey))
	assert.Equal(t, 500, GetInt(MaxLogEntriesKey))

	// The db folder inside the datadir is created on init.
	info, err := os.Stat(filepath.Join(datadir, DbLocation))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitConfigEnvOverride(t *testing.T) {
	t.Setenv("LEND_DATADIR", t.TempDir())
	t.Setenv("LEND_LENDING_SERVICE_ENDPOINT", "http://localhost:8080")
	t.Setenv("LEND_MAX_SECRET_ATTEMPTS", "3")
	t.Setenv("LEND_CONFIRMATION_POLL_INTERVAL", "1s")

	require.NoError(t, InitConfig())

	assert.Equal(t, "http://localhost:8080", GetString(LendingServiceEndpointKey))
	assert.Equal(t, 3, GetInt(MaxSecretAttemptsKey))
	assert.Equal(t, time.Second, GetDuration(ConfirmationPollIntervalKey))
}

func TestFailingInitConfig(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{
			name:  "negative_secret_attempts",
			key:   "LEND_MAX_SECRET_ATTEMPTS",
			value: "-1",
		},
		{
			name:  "null_log_backlog",
			key:   "LEND_MAX_LOG_ENTRIES",
			value: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LEND_DATADIR", t.TempDir())
			t.Setenv(tt.key, tt.value)

			require.Error(t, InitConfig())
		})
	}
}
