package main

import (
	"fmt"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/lend-network/lend-daemon/internal/config"
	"github.com/lend-network/lend-daemon/internal/core/application"
	"github.com/lend-network/lend-daemon/internal/core/domain"
	"github.com/lend-network/lend-daemon/internal/core/ports"
	"github.com/lend-network/lend-daemon/internal/infrastructure/lending"
	dbbadger "github.com/lend-network/lend-daemon/internal/infrastructure/storage/db/badger"
	"github.com/lend-network/lend-daemon/pkg/confirmer"
	"github.com/lend-network/lend-daemon/pkg/denom"
	"github.com/lend-network/lend-daemon/pkg/explorer/blockscout"
)

var borrow = cli.Command{
	Name:      "borrow",
	Usage:     "request a loan for the given amount",
	ArgsUsage: "<amount>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "unit",
			Usage: "denomination of the amount: wei, kwei, mwei, gwei, szabo, finney, ether, kether, mether, gether or tether",
			Value: denom.Ether.String(),
		},
	},
	Action: borrowAction,
}

func borrowAction(ctx *cli.Context) error {
	amount := ctx.Args().First()
	if len(amount) <= 0 {
		return &invalidUsageError{ctx, "borrow"}
	}

	unit, err := denom.ParseUnit(ctx.String("unit"))
	if err != nil {
		return err
	}
	amountWei, err := denom.ToWei(amount, unit)
	if err != nil {
		return err
	}

	dbManager, err := dbbadger.NewDbManager(
		filepath.Join(config.GetDatadir(), config.DbLocation), nil,
	)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	identityRepo := dbbadger.NewIdentityRepositoryImpl(dbManager)
	unlockerSvc := application.NewUnlockerService(
		identityRepo,
		newTerminalPrompter(),
		config.GetInt(config.MaxSecretAttemptsKey),
	)
	identity, err := unlockerSvc.AcquireIdentity(ctx.Context)
	if err != nil {
		return err
	}

	explorerSvc, err := blockscout.NewService(
		stateEntry("explorer_url", config.GetString(config.ExplorerEndpointKey)),
	)
	if err != nil {
		return err
	}
	confirmerSvc, err := confirmer.NewService(confirmer.Opts{
		ExplorerSvc:  explorerSvc,
		PollInterval: config.GetDuration(config.ConfirmationPollIntervalKey),
		Timeout:      config.GetDuration(config.ConfirmationTimeoutKey),
	})
	if err != nil {
		return err
	}
	lendingSvc, err := lending.NewService(lending.ServiceOpts{
		APIURL: stateEntry(
			"lending_url", config.GetString(config.LendingServiceEndpointKey),
		),
		AuthEndpointURL: stateEntry(
			"auth_url", config.GetString(config.AuthEndpointKey),
		),
		Token: stateEntry("auth_token", ""),
	})
	if err != nil {
		return err
	}

	minBalanceWei, err := decimal.NewFromString(
		config.GetString(config.MinBalanceWeiKey),
	)
	if err != nil {
		return err
	}

	borrowSvc := application.NewBorrowService(application.BorrowServiceOpts{
		LendingSvc:    lendingSvc,
		ExplorerSvc:   explorerSvc,
		ConfirmerSvc:  confirmerSvc,
		MinBalanceWei: minBalanceWei,
	})

	request := domain.LoanRequest{
		BorrowerAddress: identity.Address,
		AmountWei:       amountWei,
		Unit:            unit.String(),
	}
	progress := ports.StageFunc(func(label string) {
		fmt.Println(label)
	})

	result, err := borrowSvc.Borrow(ctx.Context, identity, request, progress)
	if err != nil {
		return err
	}

	fmt.Println()
	switch result.State {
	case application.StateAuthFailed:
		fmt.Println("Authentication required: complete it in the browser, then run 'lend authenticate <token>' and borrow again")
	case application.StateDone:
		fmt.Printf("Loan attested (id %s, principal %s ether, rate %.2f%%, term %d days)\n",
			result.Attestation.ID,
			denom.FromWei(result.Attestation.PrincipalWei, denom.Ether),
			float64(result.Attestation.RateBps)/100,
			result.Attestation.TermDays,
		)
		if result.Stipend != nil {
			fmt.Printf("Deployment stipend tx %s is %s\n",
				result.Stipend.TxID, result.Stipend.Status)
		}
	}
	return nil
}
