package main

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"

	"github.com/lend-network/lend-daemon/internal/appstate"
	"github.com/lend-network/lend-daemon/internal/config"
	"github.com/lend-network/lend-daemon/internal/daemon"
	"github.com/lend-network/lend-daemon/internal/dashboard"
	"github.com/lend-network/lend-daemon/internal/infrastructure/lending"
)

var statePath = path.Join(btcutil.AppDataDir("lend", false), "state.json")

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	streamer, err := lending.NewLoanStreamer(
		stateEntry("lending_url", config.GetString(config.LendingServiceEndpointKey)),
		stateEntry("auth_token", ""),
	)
	if err != nil {
		log.WithError(err).Fatal("could not create loan feed client")
	}

	store := appstate.NewStore(config.GetInt(config.MaxLogEntriesKey))
	screen := dashboard.NewAnsiScreen(os.Stdout, os.Stdin)
	board := dashboard.New(dashboard.Opts{
		Store:  store,
		Daemon: daemon.New(streamer),
		Screen: screen,
		Grace:  config.GetDuration(config.ShutdownGraceKey),
	})

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	os.Exit(board.Run(ctx))
}

func stateEntry(key, fallback string) string {
	data := map[string]string{}
	file, err := ioutil.ReadFile(statePath)
	if err != nil {
		return fallback
	}
	json.Unmarshal(file, &data)

	if value, ok := data[key]; ok && len(value) > 0 {
		return value
	}
	return fallback
}
