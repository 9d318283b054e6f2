package explorer

import "github.com/shopspring/decimal"

// TransactionStatus is the inclusion status of a transaction in the chain.
type TransactionStatus interface {
	Confirmed() bool
	BlockHash() string
	BlockHeight() int
}

// Service is representation of a chain explorer that allows to query account
// balances and the inclusion status of submitted transactions.
type Service interface {
	// GetBalance returns the on-chain balance in wei for the given address.
	// Wei balances routinely exceed 64 bits, the amount is arbitrary precision.
	GetBalance(address string) (decimal.Decimal, error)
	// IsTransactionConfirmed returns whether the tx identified by its hash has
	// been included in the blockchain.
	IsTransactionConfirmed(txid string) (confirmed bool, err error)
	// GetTransactionStatus returns the status of the tx identified by its hash.
	GetTransactionStatus(txid string) (status TransactionStatus, err error)
	// GetBlockHeight returns the number of blocks of the blockchain.
	GetBlockHeight() (int, error)
}
