package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lend-network/lend-daemon/internal/core/domain"
	"github.com/lend-network/lend-daemon/internal/core/ports"
)

var (
	testIdentity = &domain.SigningIdentity{
		Address: "0x51dba71cfb2885c34795500f71b7ad49680d4e17",
	}
	testAttestation = &domain.Attestation{
		ID:           "att-1",
		PrincipalWei: decimal.RequireFromString("1000000000000000000"),
		RateBps:      250,
		TermDays:     30,
	}
	testRequest = domain.LoanRequest{
		BorrowerAddress: testIdentity.Address,
		AmountWei:       decimal.RequireFromString("1000000000000000000"),
		Unit:            "ether",
	}
	testMinBalance = decimal.RequireFromString("1000000000000000")
)

func TestBorrowEndsWithAuthFailed(t *testing.T) {
	lendingSvc := &mockLendingService{
		attestationErr: ports.ErrNotAuthenticated,
	}
	explorerSvc := &mockExplorer{}
	confirmerSvc := &mockConfirmer{}
	opened := make(chan string, 1)

	svc := NewBorrowService(BorrowServiceOpts{
		LendingSvc:    lendingSvc,
		ExplorerSvc:   explorerSvc,
		ConfirmerSvc:  confirmerSvc,
		MinBalanceWei: testMinBalance,
		OpenURL:       func(url string) { opened <- url },
	})

	result, err := svc.Borrow(context.Background(), testIdentity, testRequest, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, StateAuthFailed, result.State)
	assert.Nil(t, result.Attestation)
	assert.Nil(t, result.Stipend)

	// The run stops before touching the chain or requesting any stipend.
	assert.Equal(t, 0, explorerSvc.balanceCalls)
	assert.Equal(t, 0, lendingSvc.stipendCalls)

	select {
	case url := <-opened:
		assert.Equal(t, lendingSvc.AuthEndpointURL(), url)
	case <-time.After(time.Second):
		t.Fatal("auth endpoint was never opened")
	}
}

func TestBorrowSkipsStipendWithSufficientBalance(t *testing.T) {
	lendingSvc := &mockLendingService{attestation: testAttestation}
	explorerSvc := &mockExplorer{
		balance: decimal.RequireFromString("2000000000000000"),
	}
	confirmerSvc := &mockConfirmer{}

	svc := NewBorrowService(BorrowServiceOpts{
		LendingSvc:    lendingSvc,
		ExplorerSvc:   explorerSvc,
		ConfirmerSvc:  confirmerSvc,
		MinBalanceWei: testMinBalance,
	})

	result, err := svc.Borrow(context.Background(), testIdentity, testRequest, nil)
	require.NoError(t, err)
	assert.Equal(t, StateDone, result.State)
	assert.Equal(t, testAttestation, result.Attestation)
	assert.Nil(t, result.Stipend)
	assert.Equal(t, 0, lendingSvc.stipendCalls)
	assert.Equal(t, testIdentity.Address, lendingSvc.lastAddress)
	assert.True(t, testRequest.AmountWei.Equal(lendingSvc.lastAmountWei))
}

func TestBorrowSkipsStipendWithBalanceBeyondInt64(t *testing.T) {
	// 10 ether in wei does not fit in an int64, the balance gate must still
	// read it as sufficient.
	lendingSvc := &mockLendingService{attestation: testAttestation}
	explorerSvc := &mockExplorer{
		balance: decimal.RequireFromString("10000000000000000000"),
	}
	confirmerSvc := &mockConfirmer{}

	svc := NewBorrowService(BorrowServiceOpts{
		LendingSvc:    lendingSvc,
		ExplorerSvc:   explorerSvc,
		ConfirmerSvc:  confirmerSvc,
		MinBalanceWei: testMinBalance,
	})

	result, err := svc.Borrow(context.Background(), testIdentity, testRequest, nil)
	require.NoError(t, err)
	assert.Equal(t, StateDone, result.State)
	assert.Nil(t, result.Stipend)
	assert.Equal(t, 0, lendingSvc.stipendCalls)
	assert.Empty(t, confirmerSvc.calls)
}

func TestBorrowFundsStipendWithInsufficientBalance(t *testing.T) {
	lendingSvc := &mockLendingService{
		attestation: testAttestation,
		stipendTxID: "f4e7f4e7",
	}
	explorerSvc := &mockExplorer{balance: decimal.NewFromInt(100)}
	confirmerSvc := &mockConfirmer{}

	svc := NewBorrowService(BorrowServiceOpts{
		LendingSvc:    lendingSvc,
		ExplorerSvc:   explorerSvc,
		ConfirmerSvc:  confirmerSvc,
		MinBalanceWei: testMinBalance,
	})

	result, err := svc.Borrow(context.Background(), testIdentity, testRequest, nil)
	require.NoError(t, err)
	assert.Equal(t, StateDone, result.State)

	assert.Equal(t, 1, lendingSvc.stipendCalls)
	// The confirmation wait targets exactly the funded tx.
	require.Equal(t, []string{"f4e7f4e7"}, confirmerSvc.calls)
	require.NotNil(t, result.Stipend)
	assert.Equal(t, "f4e7f4e7", result.Stipend.TxID)
	assert.Equal(t, domain.StipendMined, result.Stipend.Status)
}

func TestBorrowCompletesDespiteUnconfirmedStipend(t *testing.T) {
	lendingSvc := &mockLendingService{
		attestation: testAttestation,
		stipendTxID: "f4e7f4e7",
	}
	explorerSvc := &mockExplorer{balance: decimal.NewFromInt(100)}
	confirmerSvc := &mockConfirmer{err: errSomethingWentWrong}

	svc := NewBorrowService(BorrowServiceOpts{
		LendingSvc:    lendingSvc,
		ExplorerSvc:   explorerSvc,
		ConfirmerSvc:  confirmerSvc,
		MinBalanceWei: testMinBalance,
	})

	result, err := svc.Borrow(context.Background(), testIdentity, testRequest, nil)
	require.NoError(t, err)
	assert.Equal(t, StateDone, result.State)
	require.NotNil(t, result.Stipend)
	assert.Equal(t, domain.StipendFailed, result.Stipend.Status)
}

func TestFailingBorrow(t *testing.T) {
	tests := []struct {
		name          string
		lendingSvc    *mockLendingService
		explorerSvc   *mockExplorer
		identity      *domain.SigningIdentity
		expectedError error
	}{
		{
			name:          "attestation_request_fails",
			lendingSvc:    &mockLendingService{attestationErr: errSomethingWentWrong},
			explorerSvc:   &mockExplorer{},
			identity:      testIdentity,
			expectedError: errSomethingWentWrong,
		},
		{
			name:       "balance_query_fails",
			lendingSvc: &mockLendingService{attestation: testAttestation},
			explorerSvc: &mockExplorer{
				balanceErr: errSomethingWentWrong,
			},
			identity:      testIdentity,
			expectedError: errSomethingWentWrong,
		},
		{
			name: "stipend_request_fails",
			lendingSvc: &mockLendingService{
				attestation: testAttestation,
				stipendErr:  errSomethingWentWrong,
			},
			explorerSvc:   &mockExplorer{balance: decimal.NewFromInt(100)},
			identity:      testIdentity,
			expectedError: errSomethingWentWrong,
		},
		{
			name:          "nil_identity",
			lendingSvc:    &mockLendingService{},
			explorerSvc:   &mockExplorer{},
			identity:      nil,
			expectedError: ErrNullIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewBorrowService(BorrowServiceOpts{
				LendingSvc:    tt.lendingSvc,
				ExplorerSvc:   tt.explorerSvc,
				ConfirmerSvc:  &mockConfirmer{},
				MinBalanceWei: testMinBalance,
			})

			result, err := svc.Borrow(
				context.Background(), tt.identity, testRequest, nil,
			)
			require.EqualError(t, err, tt.expectedError.Error())
			require.NotNil(t, result)
			assert.Equal(t, StateAborted, result.State)
		})
	}
}

func TestBorrowReportsProgress(t *testing.T) {
	lendingSvc := &mockLendingService{
		attestation: testAttestation,
		stipendTxID: "f4e7f4e7",
	}
	explorerSvc := &mockExplorer{balance: decimal.NewFromInt(100)}

	svc := NewBorrowService(BorrowServiceOpts{
		LendingSvc:    lendingSvc,
		ExplorerSvc:   explorerSvc,
		ConfirmerSvc:  &mockConfirmer{},
		MinBalanceWei: testMinBalance,
	})

	var stages []string
	progress := ports.StageFunc(func(stage string) {
		stages = append(stages, stage)
	})

	_, err := svc.Borrow(context.Background(), testIdentity, testRequest, progress)
	require.NoError(t, err)
	require.Len(t, stages, 4)
	assert.Contains(t, stages[0], "attestation")
	assert.Contains(t, stages[1], "balance")
	assert.Contains(t, stages[2], "stipend")
	assert.Contains(t, stages[3], "confirmation")
}
