package confirmer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lend-network/lend-daemon/pkg/explorer"
)

func TestWaitForConfirmation(t *testing.T) {
	mockExplorerSvc := &mockExplorer{confirmAfter: 3}
	svc, err := NewService(Opts{
		ExplorerSvc:  mockExplorerSvc,
		PollInterval: 10 * time.Millisecond,
		Timeout:      2 * time.Second,
	})
	require.NoError(t, err)

	receipt, err := svc.WaitForConfirmation(context.Background(), "aa11")
	require.NoError(t, err)
	assert.Equal(t, "aa11", receipt.TxID)
	assert.Equal(t, "deadbeef", receipt.BlockHash)
	assert.Equal(t, 42, receipt.BlockHeight)
	assert.GreaterOrEqual(t, mockExplorerSvc.calls(), int32(3))
}

func TestWaitForConfirmationPacesQueries(t *testing.T) {
	mockExplorerSvc := &mockExplorer{confirmAfter: 4}
	svc, err := NewService(Opts{
		ExplorerSvc:  mockExplorerSvc,
		PollInterval: 30 * time.Millisecond,
		Timeout:      2 * time.Second,
	})
	require.NoError(t, err)

	start := time.Now()
	_, err = svc.WaitForConfirmation(context.Background(), "aa11")
	require.NoError(t, err)

	// Four queries, the first slot is free: at least three paced intervals
	// must have elapsed.
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	assert.Equal(t, int32(4), mockExplorerSvc.calls())
}

func TestWaitForConfirmationTimeout(t *testing.T) {
	mockExplorerSvc := &mockExplorer{confirmAfter: -1}
	svc, err := NewService(Opts{
		ExplorerSvc:  mockExplorerSvc,
		PollInterval: 10 * time.Millisecond,
		Timeout:      100 * time.Millisecond,
	})
	require.NoError(t, err)

	_, err = svc.WaitForConfirmation(context.Background(), "aa11")
	assert.ErrorIs(t, err, ErrConfirmationTimeout)
}

func TestWaitForConfirmationToleratesQueryErrors(t *testing.T) {
	// first queries fail at the transport level, the wait must survive them.
	mockExplorerSvc := &mockExplorer{confirmAfter: 4, failFirst: 2}
	svc, err := NewService(Opts{
		ExplorerSvc:  mockExplorerSvc,
		PollInterval: 10 * time.Millisecond,
		Timeout:      2 * time.Second,
	})
	require.NoError(t, err)

	receipt, err := svc.WaitForConfirmation(context.Background(), "bb22")
	require.NoError(t, err)
	assert.Equal(t, "bb22", receipt.TxID)
}

func TestWaitForConfirmationCanceledContext(t *testing.T) {
	mockExplorerSvc := &mockExplorer{confirmAfter: -1}
	svc, err := NewService(Opts{
		ExplorerSvc:  mockExplorerSvc,
		PollInterval: 10 * time.Millisecond,
		Timeout:      2 * time.Second,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.WaitForConfirmation(ctx, "cc33")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFailingNewService(t *testing.T) {
	_, err := NewService(Opts{})
	assert.Equal(t, ErrNullExplorer, err)
}

// MOCK //

type mockExplorer struct {
	count        int32
	confirmAfter int32
	failFirst    int32
}

func (m *mockExplorer) calls() int32 {
	return atomic.LoadInt32(&m.count)
}

func (m *mockExplorer) GetTransactionStatus(
	txid string,
) (explorer.TransactionStatus, error) {
	n := atomic.AddInt32(&m.count, 1)
	if n <= m.failFirst {
		return nil, errors.New("network is down")
	}
	confirmed := m.confirmAfter >= 0 && n >= m.confirmAfter
	return mockStatus{confirmed: confirmed}, nil
}

func (m *mockExplorer) IsTransactionConfirmed(txid string) (bool, error) {
	status, err := m.GetTransactionStatus(txid)
	if err != nil {
		return false, err
	}
	return status.Confirmed(), nil
}

func (m *mockExplorer) GetBalance(address string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (m *mockExplorer) GetBlockHeight() (int, error) {
	return 42, nil
}

type mockStatus struct {
	confirmed bool
}

func (m mockStatus) Confirmed() bool {
	return m.confirmed
}

func (m mockStatus) BlockHash() string {
	if m.confirmed {
		return "deadbeef"
	}
	return ""
}

func (m mockStatus) BlockHeight() int {
	if m.confirmed {
		return 42
	}
	return 0
}
