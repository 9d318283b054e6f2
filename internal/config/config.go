package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory to store the internal state
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// ExplorerEndpointKey is the endpoint of the chain explorer to use for
	// balance and confirmation queries
	ExplorerEndpointKey = "EXPLORER_ENDPOINT"
	// LendingServiceEndpointKey is the endpoint of the remote lending service
	LendingServiceEndpointKey = "LENDING_SERVICE_ENDPOINT"
	// AuthEndpointKey is the out-of-band authentication endpoint opened when
	// the lending service rejects the stored credential
	AuthEndpointKey = "AUTH_ENDPOINT"
	// MinBalanceWeiKey is the minimum on-chain balance (in wei) required to
	// submit the loan transaction without a deployment stipend
	MinBalanceWeiKey = "MIN_BALANCE_WEI"
	// ConfirmationTimeoutKey is how long to wait for a stipend tx confirmation
	ConfirmationTimeoutKey = "CONFIRMATION_TIMEOUT"
	// ConfirmationPollIntervalKey is the pause between two confirmation polls
	ConfirmationPollIntervalKey = "CONFIRMATION_POLL_INTERVAL"
	// MaxSecretAttemptsKey bounds the number of passphrase or recovery phrase
	// retries. 0 keeps the flow looping until the user gives up.
	MaxSecretAttemptsKey = "MAX_SECRET_ATTEMPTS"
	// MaxLogEntriesKey caps the dashboard log panel backlog
	MaxLogEntriesKey = "MAX_LOG_ENTRIES"
	// ShutdownGraceKey is the delay before exiting the dashboard, giving the
	// terminal time to flush
	ShutdownGraceKey = "SHUTDOWN_GRACE"

	// DbLocation is the folder inside the datadir containing db files
	DbLocation = "db"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("lend-daemon", false)

// InitConfig loads env vars with the LEND_ prefix and prepares the datadir.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("LEND")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(ExplorerEndpointKey, "https://explorer.lend.network/api")
	vip.SetDefault(LendingServiceEndpointKey, "https://api.lend.network")
	vip.SetDefault(AuthEndpointKey, "https://app.lend.network/authenticate")
	vip.SetDefault(MinBalanceWeiKey, "1000000000000000")
	vip.SetDefault(ConfirmationTimeoutKey, 5*time.Minute)
	vip.SetDefault(ConfirmationPollIntervalKey, 5*time.Second)
	vip.SetDefault(MaxSecretAttemptsKey, 0)
	vip.SetDefault(MaxLogEntriesKey, 500)
	vip.SetDefault(ShutdownGraceKey, 2*time.Second)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	if len(GetString(ExplorerEndpointKey)) <= 0 {
		return fmt.Errorf("missing explorer endpoint")
	}
	if len(GetString(LendingServiceEndpointKey)) <= 0 {
		return fmt.Errorf("missing lending service endpoint")
	}
	if GetInt(MaxSecretAttemptsKey) < 0 {
		return fmt.Errorf("%s must not be negative", MaxSecretAttemptsKey)
	}
	if GetInt(MaxLogEntriesKey) <= 0 {
		return fmt.Errorf("%s must be strictly positive", MaxLogEntriesKey)
	}

	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(filepath.Join(GetDatadir(), DbLocation))
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
