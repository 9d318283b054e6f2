package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/lend-network/lend-daemon/internal/config"
)

var (
	lendDataDir = btcutil.AppDataDir("lend", false)
	statePath   = path.Join(lendDataDir, "state.json")
)

func newApp() *cli.App {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "lend CLI"
	app.Usage = "Command line interface for borrowers of the lend network"
	app.Commands = append(
		app.Commands,
		&configCmd,
		&authenticate,
		&borrow,
		&info,
	)
	// Invocation without a recognized command is a usage error, not a success.
	app.Action = func(ctx *cli.Context) error {
		if args := ctx.Args(); args.Present() {
			return fmt.Errorf("unknown command %q", args.First())
		}
		_ = cli.ShowAppHelp(ctx)
		return errors.New("a command is required")
	}

	return app
}

func main() {
	if err := config.InitConfig(); err != nil {
		fatal(err)
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := ioutil.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	json.Unmarshal(file, &data)

	return data, nil
}

// stateEntry returns the value stored under key, or fallback if the state
// file does not exist or does not hold the key.
func stateEntry(key, fallback string) string {
	state, err := getState()
	if err != nil {
		return fallback
	}
	if value, ok := state[key]; ok && len(value) > 0 {
		return value
	}
	return fallback
}

func setState(data map[string]string) error {
	if _, err := os.Stat(lendDataDir); os.IsNotExist(err) {
		os.Mkdir(lendDataDir, os.ModeDir|0755)
	}

	file, err := os.OpenFile(statePath, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	currentData, _ := getState()
	mergedData := merge(currentData, data)

	jsonString, err := json.Marshal(mergedData)
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(statePath, jsonString, 0644); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	return nil
}

func merge(maps ...map[string]string) map[string]string {
	merged := make(map[string]string, 0)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[lend] %v\n", err)
	}
	os.Exit(1)
}
