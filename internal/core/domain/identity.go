package domain

import (
	"bytes"
	"strings"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/lend-network/lend-daemon/pkg/wallet"
)

// Identity is the stored form of the borrower signing identity. The mnemonic
// is never persisted in plain text, only its encryption under the borrower
// passphrase together with the hash of that passphrase and the derived
// account address.
type Identity struct {
	Address           string
	EncryptedMnemonic string
	PassphraseHash    []byte
}

// SigningIdentity is an unlocked identity: the account address along with the
// signing wallet. It lives only in memory and is exclusively owned by the
// active session.
type SigningIdentity struct {
	Address string
	Wallet  *wallet.Wallet
}

// NewIdentity encrypts the provided mnemonic with the passphrase and returns
// a new Identity holding the encrypted mnemonic, the hash of the passphrase
// and the address derived from the mnemonic.
func NewIdentity(mnemonic []string, passphrase string) (*Identity, error) {
	if len(mnemonic) <= 0 || len(passphrase) <= 0 {
		return nil, ErrNullMnemonicOrPassphrase
	}

	w, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		SigningMnemonic: mnemonic,
	})
	if err != nil {
		return nil, err
	}
	address, err := w.Address()
	if err != nil {
		return nil, err
	}

	encryptedMnemonic, err := wallet.Encrypt(wallet.EncryptOpts{
		PlainText:  strings.Join(mnemonic, " "),
		Passphrase: passphrase,
	})
	if err != nil {
		return nil, err
	}

	return &Identity{
		Address:           address,
		EncryptedMnemonic: encryptedMnemonic,
		PassphraseHash:    btcutil.Hash160([]byte(passphrase)),
	}, nil
}

// IsValidPassphrase returns whether the provided passphrase matches the one
// the identity was encrypted under.
func (i *Identity) IsValidPassphrase(passphrase string) bool {
	return bytes.Equal(btcutil.Hash160([]byte(passphrase)), i.PassphraseHash)
}

// Unlock decrypts the stored mnemonic with the passphrase and returns the
// in-memory signing identity. It fails with ErrInvalidPassphrase on a wrong
// passphrase and has no persistence side effect.
func (i *Identity) Unlock(passphrase string) (*SigningIdentity, error) {
	if !i.IsValidPassphrase(passphrase) {
		return nil, ErrInvalidPassphrase
	}

	mnemonic, err := wallet.Decrypt(wallet.DecryptOpts{
		CypherText: i.EncryptedMnemonic,
		Passphrase: passphrase,
	})
	if err != nil {
		return nil, ErrInvalidPassphrase
	}

	w, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		SigningMnemonic: strings.Split(mnemonic, " "),
	})
	if err != nil {
		return nil, err
	}

	return &SigningIdentity{Address: i.Address, Wallet: w}, nil
}

// IsValidRecoveryPhrase returns whether the phrase encodes a valid seed.
func IsValidRecoveryPhrase(phrase []string) bool {
	_, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		SigningMnemonic: phrase,
	})
	return err == nil
}

// RecoverIdentity rebuilds an identity from its recovery phrase, re-encrypted
// under a brand new passphrase. It fails with ErrInvalidRecoveryPhrase if the
// phrase does not encode a valid seed.
func RecoverIdentity(phrase []string, newPassphrase string) (*Identity, error) {
	if _, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		SigningMnemonic: phrase,
	}); err != nil {
		return nil, ErrInvalidRecoveryPhrase
	}

	return NewIdentity(phrase, newPassphrase)
}
