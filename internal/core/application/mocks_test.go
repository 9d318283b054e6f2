package application

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lend-network/lend-daemon/internal/core/domain"
	"github.com/lend-network/lend-daemon/pkg/confirmer"
	"github.com/lend-network/lend-daemon/pkg/explorer"
)

var errSomethingWentWrong = errors.New("something went wrong")

// MOCKS //

type mockIdentityRepo struct {
	mtx      sync.Mutex
	identity *domain.Identity
	saves    int
}

func (m *mockIdentityRepo) Exists(ctx context.Context) (bool, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.identity != nil, nil
}

func (m *mockIdentityRepo) Get(ctx context.Context) (*domain.Identity, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.identity == nil {
		return nil, domain.ErrIdentityNotFound
	}
	return m.identity, nil
}

func (m *mockIdentityRepo) Save(
	ctx context.Context, identity *domain.Identity,
) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.identity = identity
	m.saves++
	return nil
}

// mockPrompter replays scripted answers and records what is shown.
type mockPrompter struct {
	secrets []string
	phrases [][]string
	choices []int
	shown   []string
}

func (m *mockPrompter) Secret(label string) (string, error) {
	secret := m.secrets[0]
	m.secrets = m.secrets[1:]
	return secret, nil
}

func (m *mockPrompter) RecoveryPhrase() ([]string, error) {
	phrase := m.phrases[0]
	m.phrases = m.phrases[1:]
	return phrase, nil
}

func (m *mockPrompter) Choose(label string, options []string) (int, error) {
	choice := m.choices[0]
	m.choices = m.choices[1:]
	return choice, nil
}

func (m *mockPrompter) Show(message string) {
	m.shown = append(m.shown, message)
}

type mockLendingService struct {
	attestation    *domain.Attestation
	attestationErr error
	stipendTxID    string
	stipendErr     error

	attestationCalls int
	stipendCalls     int
	lastAddress      string
	lastAmountWei    decimal.Decimal
}

func (m *mockLendingService) RequestAttestation(
	ctx context.Context, address string, amountWei decimal.Decimal,
) (*domain.Attestation, error) {
	m.attestationCalls++
	m.lastAddress = address
	m.lastAmountWei = amountWei
	if m.attestationErr != nil {
		return nil, m.attestationErr
	}
	return m.attestation, nil
}

func (m *mockLendingService) RequestDeploymentStipend(
	ctx context.Context, address string,
) (string, error) {
	m.stipendCalls++
	if m.stipendErr != nil {
		return "", m.stipendErr
	}
	return m.stipendTxID, nil
}

func (m *mockLendingService) AuthEndpointURL() string {
	return "https://app.lend.network/authenticate"
}

type mockExplorer struct {
	balance      decimal.Decimal
	balanceErr   error
	balanceCalls int
}

func (m *mockExplorer) GetBalance(address string) (decimal.Decimal, error) {
	m.balanceCalls++
	return m.balance, m.balanceErr
}

func (m *mockExplorer) IsTransactionConfirmed(txid string) (bool, error) {
	return false, nil
}

func (m *mockExplorer) GetTransactionStatus(
	txid string,
) (status explorer.TransactionStatus, err error) {
	return nil, nil
}

func (m *mockExplorer) GetBlockHeight() (int, error) {
	return 0, nil
}

type mockConfirmer struct {
	err   error
	calls []string
}

func (m *mockConfirmer) WaitForConfirmation(
	ctx context.Context, txid string,
) (*confirmer.Receipt, error) {
	m.calls = append(m.calls, txid)
	if m.err != nil {
		return nil, m.err
	}
	return &confirmer.Receipt{TxID: txid, BlockHash: "deadbeef", BlockHeight: 7}, nil
}
