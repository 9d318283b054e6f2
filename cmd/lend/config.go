package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

var (
	lendingURLFlag = cli.StringFlag{
		Name:  "lending_url",
		Usage: "endpoint of the remote lending service",
		Value: "https://api.lend.network",
	}

	explorerURLFlag = cli.StringFlag{
		Name:  "explorer_url",
		Usage: "endpoint of the chain explorer",
		Value: "https://explorer.lend.network/api",
	}

	authURLFlag = cli.StringFlag{
		Name:  "auth_url",
		Usage: "out-of-band authentication endpoint",
		Value: "https://app.lend.network/authenticate",
	}
)

var configCmd = cli.Command{
	Name:   "config",
	Usage:  "Print local configuration of the lend CLI",
	Action: configAction,
	Subcommands: []*cli.Command{
		{
			Name:   "set",
			Usage:  "set a <key> <value> in the local state",
			Action: configSetAction,
		},
		{
			Name:   "init",
			Usage:  "initialize the local state with flags",
			Action: configInitAction,
			Flags: []cli.Flag{
				&lendingURLFlag,
				&explorerURLFlag,
				&authURLFlag,
			},
		},
	},
}

func configAction(ctx *cli.Context) error {
	state, err := getState()
	if err != nil {
		return err
	}

	for key, value := range state {
		fmt.Println(key + ": " + value)
	}

	return nil
}

func configInitAction(c *cli.Context) error {
	return setState(map[string]string{
		"lending_url":  c.String("lending_url"),
		"explorer_url": c.String("explorer_url"),
		"auth_url":     c.String("auth_url"),
	})
}

func configSetAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("key and value are missing")
	}

	key := c.Args().Get(0)
	value := c.Args().Get(1)

	if err := setState(map[string]string{key: value}); err != nil {
		return err
	}

	fmt.Printf("%s %s has been set\n", key, value)

	return nil
}
