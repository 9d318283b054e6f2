package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/lend-network/lend-daemon/internal/config"
	"github.com/lend-network/lend-daemon/internal/core/domain"
	dbbadger "github.com/lend-network/lend-daemon/internal/infrastructure/storage/db/badger"
)

var info = cli.Command{
	Name:   "info",
	Usage:  "print the stored identity address",
	Action: infoAction,
}

func infoAction(ctx *cli.Context) error {
	dbManager, err := dbbadger.NewDbManager(
		filepath.Join(config.GetDatadir(), config.DbLocation), nil,
	)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	identity, err := dbbadger.NewIdentityRepositoryImpl(dbManager).Get(ctx.Context)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			fmt.Println("No identity stored yet, run 'lend borrow' to create one")
			return nil
		}
		return err
	}

	fmt.Println("Address:", identity.Address)
	return nil
}
